package justgo

import (
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/gosimple/slug"

	"github.com/riskibarqy/face2face/internal/domain/match"
	"github.com/riskibarqy/face2face/internal/domain/player"
)

var errUnexpectedParticipant = crerr.New("justgo returned a match outside the requested pair")

func mapPlayer(p playerPayload) player.Player {
	name := player.CleanName(p.Name)
	id := strings.TrimSpace(p.ID)
	if id == "" {
		id = "justgo-" + slug.Make(name)
	}

	return player.Player{
		ID:        id,
		Name:      name,
		MemberRef: strings.TrimSpace(p.MemberID),
		Rating:    p.Rating,
		Club:      strings.TrimSpace(p.Club),
	}
}

// mapMatches turns name-keyed provider rows into canonical matches between a
// and b. A winner naming neither player maps to an empty WinnerID.
func mapMatches(a, b player.Player, rows []matchPayload) ([]match.Match, error) {
	out := make([]match.Match, 0, len(rows))
	for i, row := range rows {
		one, okOne := sideID(row.Player1, a, b)
		two, okTwo := sideID(row.Player2, a, b)
		if !okOne || !okTwo || one == two {
			return nil, crerr.Wrapf(errUnexpectedParticipant, "row=%d player1=%q player2=%q", i, row.Player1, row.Player2)
		}

		playedOn, err := parseDate(row.Date)
		if err != nil {
			return nil, crerr.Wrapf(err, "row=%d date=%q", i, row.Date)
		}

		winner, _ := sideID(row.Winner, a, b)

		id := strings.TrimSpace(row.ID)
		if id == "" {
			id = "justgo-" + playedOn.Format(time.DateOnly) + "-" + strconv.Itoa(i)
		}

		out = append(out, match.Match{
			ID:             id,
			PlayerOneID:    one,
			PlayerTwoID:    two,
			WinnerID:       winner,
			PlayerOneScore: row.Score1,
			PlayerTwoScore: row.Score2,
			TournamentName: strings.TrimSpace(row.Tournament),
			PlayedOn:       playedOn,
		})
	}

	return out, nil
}

func sideID(name string, a, b player.Player) (string, bool) {
	switch {
	case player.SameName(name, a.Name):
		return a.ID, true
	case player.SameName(name, b.Name):
		return b.ID, true
	default:
		return "", false
	}
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, crerr.Newf("unsupported date format %q", value)
	}
	return t.UTC(), nil
}
