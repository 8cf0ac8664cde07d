package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/sourcegraph/conc"

	"github.com/riskibarqy/face2face/internal/domain/headtohead"
	"github.com/riskibarqy/face2face/internal/domain/match"
	"github.com/riskibarqy/face2face/internal/domain/player"
	"github.com/riskibarqy/face2face/internal/platform/logging"
)

// HeadToHead is the aggregated history between two resolved players.
type HeadToHead struct {
	headtohead.Result
}

type HeadToHeadService struct {
	playerRepo player.Repository
	matchRepo  match.Repository
	logger     *logging.Logger
}

func NewHeadToHeadService(playerRepo player.Repository, matchRepo match.Repository, logger *logging.Logger) *HeadToHeadService {
	if logger == nil {
		logger = logging.Default()
	}

	return &HeadToHeadService{
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		logger:     logger,
	}
}

// Compare resolves both names and aggregates every match played between them.
// Input problems are reported before any repository call.
func (s *HeadToHeadService) Compare(ctx context.Context, nameA, nameB string) (HeadToHead, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HeadToHeadService.Compare")
	defer span.End()

	nameA = player.CleanName(nameA)
	nameB = player.CleanName(nameB)
	if nameA == "" || nameB == "" {
		return HeadToHead{}, fmt.Errorf("%w: please enter both player names", ErrInvalidInput)
	}
	if player.SameName(nameA, nameB) {
		return HeadToHead{}, fmt.Errorf("%w: please enter two different players", ErrInvalidInput)
	}

	a, b, err := s.resolvePair(ctx, nameA, nameB)
	if err != nil {
		return HeadToHead{}, err
	}
	if a.ID == b.ID {
		return HeadToHead{}, fmt.Errorf("%w: %q and %q are the same player", ErrInvalidInput, nameA, nameB)
	}

	matches, err := s.matchRepo.ListBetween(ctx, a, b)
	if err != nil {
		return HeadToHead{}, lookupError("list matches", err)
	}

	result, err := headtohead.Aggregate(a, b, matches)
	if err != nil {
		s.logger.ErrorContext(ctx, "match repository returned inconsistent matches",
			"player_a", a.ID,
			"player_b", b.ID,
			"error", err,
		)
		return HeadToHead{}, fmt.Errorf("%w: aggregate: %v", ErrLookupFailed, err)
	}

	return HeadToHead{Result: result}, nil
}

type resolved struct {
	player player.Player
	found  bool
	err    error
}

func (s *HeadToHeadService) resolvePair(ctx context.Context, nameA, nameB string) (player.Player, player.Player, error) {
	var ra, rb resolved
	var wg conc.WaitGroup
	wg.Go(func() {
		ra.player, ra.found, ra.err = s.playerRepo.FindByName(ctx, nameA)
	})
	wg.Go(func() {
		rb.player, rb.found, rb.err = s.playerRepo.FindByName(ctx, nameB)
	})
	wg.Wait()

	if err := errors.Join(ra.err, rb.err); err != nil {
		return player.Player{}, player.Player{}, lookupError("find player by name", err)
	}

	missing := make([]string, 0, 2)
	if !ra.found {
		missing = append(missing, nameA)
	}
	if !rb.found {
		missing = append(missing, nameB)
	}
	if len(missing) > 0 {
		return player.Player{}, player.Player{}, notFoundWithSuggestions(ctx, s.playerRepo, s.logger, missing)
	}

	return ra.player, rb.player, nil
}

func lookupError(op string, err error) error {
	if errors.Is(err, ErrDependencyUnavailable) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrLookupFailed, op, err)
}
