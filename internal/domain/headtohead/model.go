package headtohead

import (
	"github.com/riskibarqy/face2face/internal/domain/match"
	"github.com/riskibarqy/face2face/internal/domain/player"
)

// Outcome is a match result seen from the queried pair.
type Outcome string

const (
	OutcomePlayerA   Outcome = "player_a"
	OutcomePlayerB   Outcome = "player_b"
	OutcomeUndecided Outcome = "undecided"
)

// Record is one player's tally against the other.
// Wins + Losses + Undecided == Total.
type Record struct {
	Player    player.Player
	Wins      int
	Losses    int
	Undecided int
	Total     int
}

// Summary holds both records. A.Wins == B.Losses, A.Losses == B.Wins and
// A.Total == B.Total always hold.
type Summary struct {
	A Record
	B Record
}

// Entry is a match in display order with its outcome for the pair.
type Entry struct {
	Match   match.Match
	Outcome Outcome
}

// Result is the aggregated head-to-head between A and B.
type Result struct {
	Summary Summary
	Matches []Entry
}

// HasHistory reports whether the two players have met at least once.
func (r Result) HasHistory() bool {
	return r.Summary.A.Total > 0
}
