package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/face2face/internal/domain/player"
	qb "github.com/riskibarqy/face2face/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id",
	"public_id",
	"name",
	"usatt_id",
	"rating",
	"club",
	"created_at",
	"updated_at",
	"deleted_at",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.IsNull("deleted_at")).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}

	return out, nil
}

// FindByName matches case-insensitively; duplicates resolve to the oldest row.
func (r *PlayerRepository) FindByName(ctx context.Context, name string) (player.Player, bool, error) {
	name = player.CleanName(name)
	if name == "" {
		return player.Player{}, false, nil
	}

	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(
			qb.Expr("LOWER(name) = LOWER(?)", name),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player by name query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by name: %w", err)
	}

	return playerFromRow(row), true, nil
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:        row.PublicID,
		Name:      row.Name,
		MemberRef: nullString(row.USATTID),
		Rating:    int(row.Rating.Int64),
		Club:      nullString(row.Club),
	}
}
