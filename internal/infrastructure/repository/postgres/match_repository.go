package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/face2face/internal/domain/match"
	"github.com/riskibarqy/face2face/internal/domain/player"
	qb "github.com/riskibarqy/face2face/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

var matchSelectColumns = []string{
	"m.public_id",
	"p1.public_id AS player_one_id",
	"p2.public_id AS player_two_id",
	"w.public_id AS winner_id",
	"m.player1_score",
	"m.player2_score",
	"m.score_detail",
	"t.name AS tournament_name",
	"m.match_date",
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListBetween(ctx context.Context, a, b player.Player) ([]match.Match, error) {
	query, args, err := listBetweenQuery(a.ID, b.ID)
	if err != nil {
		return nil, fmt.Errorf("build select matches between query: %w", err)
	}

	var rows []matchRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches between players=%s,%s: %w", a.ID, b.ID, err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}

	return out, nil
}

func listBetweenQuery(aID, bID string) (string, []any, error) {
	return qb.Select(matchSelectColumns...).From("matches m").
		Join("players p1", "p1.id = m.player1_id").
		Join("players p2", "p2.id = m.player2_id").
		LeftJoin("players w", "w.id = m.winner_id").
		LeftJoin("tournaments t", "t.id = m.tournament_id").
		Where(
			qb.Or(
				qb.And(qb.Eq("p1.public_id", aID), qb.Eq("p2.public_id", bID)),
				qb.And(qb.Eq("p1.public_id", bID), qb.Eq("p2.public_id", aID)),
			),
			qb.IsNull("m.deleted_at"),
		).
		OrderBy("m.match_date DESC", "m.id").
		ToSQL()
}

func matchFromRow(row matchRowModel) match.Match {
	return match.Match{
		ID:             row.PublicID,
		PlayerOneID:    row.PlayerOneID,
		PlayerTwoID:    row.PlayerTwoID,
		WinnerID:       nullString(row.WinnerID),
		PlayerOneScore: row.PlayerOneScore,
		PlayerTwoScore: row.PlayerTwoScore,
		ScoreDetail:    nullString(row.ScoreDetail),
		TournamentName: nullString(row.TournamentName),
		PlayedOn:       row.MatchDate,
	}
}
