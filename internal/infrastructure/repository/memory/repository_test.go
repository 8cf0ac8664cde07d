package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/face2face/internal/domain/player"
)

func TestPlayerRepository_FindByNameIsCaseInsensitive(t *testing.T) {
	repo := NewPlayerRepository(SeedPlayers())

	got, found, err := repo.FindByName(context.Background(), "  sarah   JOHNSON ")
	if err != nil {
		t.Fatalf("find by name: %v", err)
	}
	if !found || got.ID != PlayerIDSarahJohnson {
		t.Fatalf("expected Sarah Johnson, got found=%v player=%+v", found, got)
	}

	_, found, err = repo.FindByName(context.Background(), "Sarah Jonson")
	if err != nil {
		t.Fatalf("find by name: %v", err)
	}
	if found {
		t.Fatalf("did not expect a match for a misspelled name")
	}
}

func TestPlayerRepository_DuplicateNamesResolveToFirst(t *testing.T) {
	repo := NewPlayerRepository([]player.Player{
		{ID: "a", Name: "Alex Kim"},
		{ID: "b", Name: "alex kim"},
	})

	got, found, err := repo.FindByName(context.Background(), "ALEX KIM")
	if err != nil || !found {
		t.Fatalf("find by name: found=%v err=%v", found, err)
	}
	if got.ID != "a" {
		t.Fatalf("expected first player, got %s", got.ID)
	}
}

func TestPlayerRepository_ListReturnsCopy(t *testing.T) {
	repo := NewPlayerRepository(SeedPlayers())

	first, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	first[0].Name = "changed"

	second, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if second[0].Name != "John Smith" {
		t.Fatalf("repository state leaked through List: %s", second[0].Name)
	}
}

func TestMatchRepository_ListBetween(t *testing.T) {
	players := NewPlayerRepository(SeedPlayers())
	matches := NewMatchRepository(SeedMatches())
	ctx := context.Background()

	john, _, _ := players.FindByName(ctx, "John Smith")
	sarah, _, _ := players.FindByName(ctx, "Sarah Johnson")
	emily, _, _ := players.FindByName(ctx, "Emily Rodriguez")

	got, err := matches.ListBetween(ctx, sarah, john)
	if err != nil {
		t.Fatalf("list between: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].WinnerID != PlayerIDJohnSmith || got[1].WinnerID != PlayerIDSarahJohnson {
		t.Fatalf("unexpected winners: %s, %s", got[0].WinnerID, got[1].WinnerID)
	}

	got, err = matches.ListBetween(ctx, john, emily)
	if err != nil {
		t.Fatalf("list between: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestSeedMatchesAreValid(t *testing.T) {
	for _, m := range SeedMatches() {
		if err := m.Validate(); err != nil {
			t.Fatalf("invalid seed match: %v", err)
		}
		if !m.HasWinner() {
			t.Fatalf("seed match %s has no winner", m.ID)
		}
	}
}
