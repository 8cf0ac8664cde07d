package justgo

type playersEnvelope struct {
	Players []playerPayload `json:"players"`
}

type playerPayload struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MemberID string `json:"member_id"`
	Rating   int    `json:"rating"`
	Club     string `json:"club"`
}

type headToHeadEnvelope struct {
	Matches []matchPayload `json:"matches"`
}

// matchPayload is one provider row. Sides and winner are player names and
// the scores are positional.
type matchPayload struct {
	ID         string `json:"id"`
	Tournament string `json:"tournament"`
	Date       string `json:"date"`
	Player1    string `json:"player1"`
	Player2    string `json:"player2"`
	Score1     int    `json:"score1"`
	Score2     int    `json:"score2"`
	Winner     string `json:"winner"`
}
