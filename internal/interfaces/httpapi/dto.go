package httpapi

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/face2face/internal/domain/headtohead"
	"github.com/riskibarqy/face2face/internal/domain/match"
	"github.com/riskibarqy/face2face/internal/domain/player"
	"github.com/riskibarqy/face2face/internal/usecase"
)

const displayDateLayout = "January 2, 2006"

type playerDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	MemberRef string `json:"member_ref,omitempty"`
	Rating    int    `json:"rating,omitempty"`
	Club      string `json:"club,omitempty"`
}

type playerRecordDTO struct {
	Player    playerDTO `json:"player"`
	Wins      int       `json:"wins"`
	Losses    int       `json:"losses"`
	Undecided int       `json:"undecided"`
	Total     int       `json:"total"`
}

type headToHeadDTO struct {
	PlayerA      playerRecordDTO `json:"player_a"`
	PlayerB      playerRecordDTO `json:"player_b"`
	TotalMatches int             `json:"total_matches"`
	HasHistory   bool            `json:"has_history"`
	Matches      []matchDTO      `json:"matches"`
}

type matchDTO struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	DisplayDate  string `json:"display_date"`
	Tournament   string `json:"tournament,omitempty"`
	Player1      string `json:"player1"`
	Player2      string `json:"player2"`
	Winner       string `json:"winner,omitempty"`
	Loser        string `json:"loser,omitempty"`
	Score        string `json:"score"`
	StoredScore  string `json:"stored_score"`
	Outcome      string `json:"outcome"`
	OutcomeLabel string `json:"outcome_label"`
}

func playerToDTO(ctx context.Context, v player.Player) playerDTO {
	_, span := startSpan(ctx, "httpapi.playerToDTO")
	defer span.End()

	return playerDTO{
		ID:        v.ID,
		Name:      v.Name,
		Slug:      v.Slug(),
		MemberRef: v.MemberRef,
		Rating:    v.Rating,
		Club:      v.Club,
	}
}

func recordToDTO(ctx context.Context, v headtohead.Record) playerRecordDTO {
	return playerRecordDTO{
		Player:    playerToDTO(ctx, v.Player),
		Wins:      v.Wins,
		Losses:    v.Losses,
		Undecided: v.Undecided,
		Total:     v.Total,
	}
}

func headToHeadToDTO(ctx context.Context, v usecase.HeadToHead) headToHeadDTO {
	ctx, span := startSpan(ctx, "httpapi.headToHeadToDTO")
	defer span.End()

	a, b := v.Summary.A.Player, v.Summary.B.Player
	names := map[string]string{a.ID: a.Name, b.ID: b.Name}

	matches := make([]matchDTO, 0, len(v.Matches))
	for _, entry := range v.Matches {
		matches = append(matches, matchToDTO(entry, names, a.Name, b.Name))
	}

	return headToHeadDTO{
		PlayerA:      recordToDTO(ctx, v.Summary.A),
		PlayerB:      recordToDTO(ctx, v.Summary.B),
		TotalMatches: v.Summary.A.Total,
		HasHistory:   v.HasHistory(),
		Matches:      matches,
	}
}

func matchToDTO(entry headtohead.Entry, names map[string]string, nameA, nameB string) matchDTO {
	m := entry.Match
	out := matchDTO{
		ID:          m.ID,
		Date:        m.PlayedOn.Format(time.DateOnly),
		DisplayDate: m.PlayedOn.Format(displayDateLayout),
		Tournament:  m.TournamentName,
		Player1:     names[m.PlayerOneID],
		Player2:     names[m.PlayerTwoID],
		Score:       winnerScore(m),
		StoredScore: m.Score(),
		Outcome:     string(entry.Outcome),
	}

	switch entry.Outcome {
	case headtohead.OutcomePlayerA:
		out.Winner, out.Loser = nameA, nameB
		out.OutcomeLabel = nameA + " won"
	case headtohead.OutcomePlayerB:
		out.Winner, out.Loser = nameB, nameA
		out.OutcomeLabel = nameB + " won"
	default:
		out.OutcomeLabel = "Result unknown"
	}

	return out
}

// winnerScore puts the winner's games first, e.g. "11 - 9". Without a known
// winner the stored side order is kept.
func winnerScore(m match.Match) string {
	if !m.HasWinner() {
		return fmt.Sprintf("%d - %d", m.PlayerOneScore, m.PlayerTwoScore)
	}

	won, _ := m.ScoreFor(m.WinnerID)
	loserID, _ := m.Opponent(m.WinnerID)
	lost, _ := m.ScoreFor(loserID)
	return fmt.Sprintf("%d - %d", won, lost)
}
