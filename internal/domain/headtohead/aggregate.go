package headtohead

import (
	"errors"
	"fmt"
	"sort"

	"github.com/riskibarqy/face2face/internal/domain/match"
	"github.com/riskibarqy/face2face/internal/domain/player"
)

var (
	ErrMissingPlayerID = errors.New("player id is required")
	ErrSamePlayer      = errors.New("head-to-head requires two different players")
	ErrForeignMatch    = errors.New("match is not between the queried players")
)

// Aggregate tallies wins and losses for a and b over matches and orders the
// matches most recent first.
//
// Every match must be played between a and b; otherwise the whole call fails
// with ErrForeignMatch. A match whose winner is missing or is neither player
// counts as Undecided for both sides and still counts toward Total.
func Aggregate(a, b player.Player, matches []match.Match) (Result, error) {
	if a.ID == "" || b.ID == "" {
		return Result{}, ErrMissingPlayerID
	}
	if a.ID == b.ID {
		return Result{}, fmt.Errorf("%w: id=%s", ErrSamePlayer, a.ID)
	}

	recA := Record{Player: a}
	recB := Record{Player: b}
	entries := make([]Entry, 0, len(matches))

	for i, m := range matches {
		if !m.Involves(a.ID, b.ID) {
			return Result{}, fmt.Errorf("%w: index=%d match=%s sides=%s,%s", ErrForeignMatch, i, m.ID, m.PlayerOneID, m.PlayerTwoID)
		}

		outcome := outcomeOf(m, a.ID, b.ID)
		switch outcome {
		case OutcomePlayerA:
			recA.Wins++
			recB.Losses++
		case OutcomePlayerB:
			recB.Wins++
			recA.Losses++
		default:
			recA.Undecided++
			recB.Undecided++
		}
		entries = append(entries, Entry{Match: m, Outcome: outcome})
	}

	recA.Total = len(entries)
	recB.Total = len(entries)

	sortMostRecentFirst(entries)

	return Result{
		Summary: Summary{A: recA, B: recB},
		Matches: entries,
	}, nil
}

func outcomeOf(m match.Match, aID, bID string) Outcome {
	switch m.WinnerID {
	case aID:
		return OutcomePlayerA
	case bID:
		return OutcomePlayerB
	default:
		return OutcomeUndecided
	}
}

// Ties on date keep input order.
func sortMostRecentFirst(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Match.PlayedOn.After(entries[j].Match.PlayedOn)
	})
}
