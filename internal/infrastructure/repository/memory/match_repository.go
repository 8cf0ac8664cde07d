package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/face2face/internal/domain/match"
	"github.com/riskibarqy/face2face/internal/domain/player"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches []match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	return &MatchRepository{matches: append([]match.Match(nil), matches...)}
}

func (r *MatchRepository) ListBetween(_ context.Context, a, b player.Player) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, 8)
	for _, m := range r.matches {
		if m.Involves(a.ID, b.ID) {
			out = append(out, m)
		}
	}

	return out, nil
}
