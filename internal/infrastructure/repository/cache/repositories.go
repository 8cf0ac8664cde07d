package cache

import (
	"context"
	"time"

	"github.com/riskibarqy/face2face/internal/domain/player"
	basecache "github.com/riskibarqy/face2face/internal/platform/cache"
)

const playerListKey = "player:list"

// PlayerRepository caches the player directory. Match history is never
// cached so results always reflect the store.
type PlayerRepository struct {
	next   player.Repository
	list   *basecache.Store[[]player.Player]
	byName *basecache.Store[cachedPlayerByName]
}

type cachedPlayerByName struct {
	value  player.Player
	exists bool
}

func NewPlayerRepository(next player.Repository, ttl time.Duration) *PlayerRepository {
	return &PlayerRepository{
		next:   next,
		list:   basecache.NewStore[[]player.Player](ttl),
		byName: basecache.NewStore[cachedPlayerByName](ttl),
	}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	items, err := r.list.GetOrLoad(ctx, playerListKey, func(ctx context.Context) ([]player.Player, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) FindByName(ctx context.Context, name string) (player.Player, bool, error) {
	key := "player:name:" + player.FoldName(name)
	cached, err := r.byName.GetOrLoad(ctx, key, func(ctx context.Context) (cachedPlayerByName, error) {
		item, exists, err := r.next.FindByName(ctx, name)
		if err != nil {
			return cachedPlayerByName{}, err
		}
		return cachedPlayerByName{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	return cached.value, cached.exists, nil
}
