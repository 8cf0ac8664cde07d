package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/face2face/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
	byName  map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	byName := make(map[string]player.Player, len(players))
	for _, p := range players {
		key := player.FoldName(p.Name)
		if _, exists := byName[key]; exists {
			continue
		}
		byName[key] = p
	}

	return &PlayerRepository{
		players: append([]player.Player(nil), players...),
		byName:  byName,
	}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	out = append(out, r.players...)

	return out, nil
}

func (r *PlayerRepository) FindByName(_ context.Context, name string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byName[player.FoldName(name)]
	return p, ok, nil
}
