package postgres

import (
	"database/sql"
	"time"
)

// matchRowModel is one matches row joined with its players and tournament.
type matchRowModel struct {
	PublicID       string         `db:"public_id"`
	PlayerOneID    string         `db:"player_one_id"`
	PlayerTwoID    string         `db:"player_two_id"`
	WinnerID       sql.NullString `db:"winner_id"`
	PlayerOneScore int            `db:"player1_score"`
	PlayerTwoScore int            `db:"player2_score"`
	ScoreDetail    sql.NullString `db:"score_detail"`
	TournamentName sql.NullString `db:"tournament_name"`
	MatchDate      time.Time      `db:"match_date"`
}
