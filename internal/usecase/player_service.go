package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/face2face/internal/domain/player"
	"github.com/riskibarqy/face2face/internal/platform/logging"
)

type PlayerService struct {
	playerRepo player.Repository
	logger     *logging.Logger
}

func NewPlayerService(playerRepo player.Repository, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		logger:     logger,
	}
}

// ListPlayers returns the directory sorted by name. A non-empty query keeps
// only fuzzy matches, closest first.
func (s *PlayerService) ListPlayers(ctx context.Context, query string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, lookupError("list players", err)
	}

	query = player.CleanName(query)
	if query == "" {
		out := append([]player.Player(nil), players...)
		sort.SliceStable(out, func(i, j int) bool {
			return player.FoldName(out[i].Name) < player.FoldName(out[j].Name)
		})
		return out, nil
	}

	return rankPlayers(query, players), nil
}

func (s *PlayerService) GetPlayerByName(ctx context.Context, name string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayerByName")
	defer span.End()

	name = player.CleanName(name)
	if name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	item, found, err := s.playerRepo.FindByName(ctx, name)
	if err != nil {
		return player.Player{}, lookupError("find player by name", err)
	}
	if !found {
		return player.Player{}, notFoundWithSuggestions(ctx, s.playerRepo, s.logger, []string{name})
	}

	return item, nil
}
