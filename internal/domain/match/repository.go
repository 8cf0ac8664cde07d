package match

import (
	"context"

	"github.com/riskibarqy/face2face/internal/domain/player"
)

// Repository returns match history between two resolved players.
type Repository interface {
	// ListBetween returns every match played between a and b, in any side
	// order, with winners expressed as WinnerID.
	ListBetween(ctx context.Context, a, b player.Player) ([]Match, error)
}
