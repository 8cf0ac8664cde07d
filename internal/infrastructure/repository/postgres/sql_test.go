package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("expected true for sql.ErrNoRows")
	}
	if !isNotFound(fmt.Errorf("get player: %w", sql.ErrNoRows)) {
		t.Fatalf("expected true for wrapped sql.ErrNoRows")
	}
	if isNotFound(fmt.Errorf("pq: relation players does not exist")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestNullString(t *testing.T) {
	if got := nullString(sql.NullString{}); got != "" {
		t.Fatalf("expected empty string for null, got %q", got)
	}
	if got := nullString(sql.NullString{String: " 12345 ", Valid: true}); got != "12345" {
		t.Fatalf("unexpected value: %q", got)
	}
}

func TestPlayerFromRow(t *testing.T) {
	got := playerFromRow(playerTableModel{
		ID:       7,
		PublicID: "ply-1",
		Name:     "John Smith",
		USATTID:  sql.NullString{String: "12345", Valid: true},
		Rating:   sql.NullInt64{Int64: 2150, Valid: true},
	})

	if got.ID != "ply-1" || got.Name != "John Smith" || got.MemberRef != "12345" || got.Rating != 2150 || got.Club != "" {
		t.Fatalf("unexpected player: %+v", got)
	}
}

func TestMatchFromRow(t *testing.T) {
	played := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	got := matchFromRow(matchRowModel{
		PublicID:       "mat-1",
		PlayerOneID:    "ply-1",
		PlayerTwoID:    "ply-2",
		PlayerOneScore: 3,
		PlayerTwoScore: 2,
		TournamentName: sql.NullString{String: "Spring Championship", Valid: true},
		MatchDate:      played,
	})

	if got.WinnerID != "" {
		t.Fatalf("expected empty winner for null winner_id, got %q", got.WinnerID)
	}
	if got.Score() != "3-2" || got.TournamentName != "Spring Championship" || !got.PlayedOn.Equal(played) {
		t.Fatalf("unexpected match: %+v", got)
	}
}

func TestListBetweenQuery(t *testing.T) {
	query, args, err := listBetweenQuery("ply-1", "ply-2")
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	want := "SELECT m.public_id, p1.public_id AS player_one_id, p2.public_id AS player_two_id, w.public_id AS winner_id," +
		" m.player1_score, m.player2_score, m.score_detail, t.name AS tournament_name, m.match_date" +
		" FROM matches m JOIN players p1 ON p1.id = m.player1_id JOIN players p2 ON p2.id = m.player2_id" +
		" LEFT JOIN players w ON w.id = m.winner_id LEFT JOIN tournaments t ON t.id = m.tournament_id" +
		" WHERE ((p1.public_id = $1 AND p2.public_id = $2) OR (p1.public_id = $3 AND p2.public_id = $4))" +
		" AND m.deleted_at IS NULL ORDER BY m.match_date DESC, m.id"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 4 || args[0] != "ply-1" || args[3] != "ply-1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}
