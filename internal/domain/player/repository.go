package player

import "context"

// Repository describes player lookup needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	// FindByName resolves a name case-insensitively. The bool is false when
	// no player carries that name.
	FindByName(ctx context.Context, name string) (Player, bool, error)
}
