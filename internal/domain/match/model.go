package match

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Match is one completed head-to-head encounter. Side order is as stored and
// carries no meaning; WinnerID names the winning player, empty when unknown.
type Match struct {
	ID             string
	PlayerOneID    string
	PlayerTwoID    string
	WinnerID       string
	PlayerOneScore int
	PlayerTwoScore int
	ScoreDetail    string
	TournamentName string
	PlayedOn       time.Time
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.PlayerOneID) == "" || strings.TrimSpace(m.PlayerTwoID) == "" {
		return fmt.Errorf("match %s: both player ids are required", m.ID)
	}
	if m.PlayerOneID == m.PlayerTwoID {
		return fmt.Errorf("match %s: players must differ", m.ID)
	}
	if m.PlayerOneScore < 0 || m.PlayerTwoScore < 0 {
		return fmt.Errorf("match %s: scores must be >= 0", m.ID)
	}
	if m.PlayedOn.IsZero() {
		return fmt.Errorf("match %s: date is required", m.ID)
	}

	return nil
}

// Involves reports whether the match was played between exactly a and b.
func (m Match) Involves(a, b string) bool {
	return (m.PlayerOneID == a && m.PlayerTwoID == b) ||
		(m.PlayerOneID == b && m.PlayerTwoID == a)
}

// HasWinner reports whether the winner is one of the two sides.
func (m Match) HasWinner() bool {
	return m.WinnerID != "" && (m.WinnerID == m.PlayerOneID || m.WinnerID == m.PlayerTwoID)
}

// Score is the human-readable score in stored side order.
func (m Match) Score() string {
	if detail := strings.TrimSpace(m.ScoreDetail); detail != "" {
		return detail
	}
	return strconv.Itoa(m.PlayerOneScore) + "-" + strconv.Itoa(m.PlayerTwoScore)
}

// ScoreFor returns the games won by playerID, and false when the player did
// not take part in the match.
func (m Match) ScoreFor(playerID string) (int, bool) {
	switch playerID {
	case m.PlayerOneID:
		return m.PlayerOneScore, true
	case m.PlayerTwoID:
		return m.PlayerTwoScore, true
	default:
		return 0, false
	}
}

// Opponent returns the other side's id.
func (m Match) Opponent(playerID string) (string, bool) {
	switch playerID {
	case m.PlayerOneID:
		return m.PlayerTwoID, true
	case m.PlayerTwoID:
		return m.PlayerOneID, true
	default:
		return "", false
	}
}
