package memory

import (
	"time"

	"github.com/riskibarqy/face2face/internal/domain/match"
	"github.com/riskibarqy/face2face/internal/domain/player"
)

const (
	PlayerIDJohnSmith      = "player-1"
	PlayerIDSarahJohnson   = "player-2"
	PlayerIDMichaelChen    = "player-3"
	PlayerIDEmilyRodriguez = "player-4"
	PlayerIDDavidWilson    = "player-5"
)

// SeedPlayers mirrors the sample rows in the seed migration.
func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: PlayerIDJohnSmith, Name: "John Smith", MemberRef: "USATT12345", Rating: 2100, Club: "Chicago Table Tennis Club"},
		{ID: PlayerIDSarahJohnson, Name: "Sarah Johnson", MemberRef: "USATT67890", Rating: 1950, Club: "New York Table Tennis Association"},
		{ID: PlayerIDMichaelChen, Name: "Michael Chen", MemberRef: "USATT11223", Rating: 2250, Club: "Los Angeles Table Tennis Club"},
		{ID: PlayerIDEmilyRodriguez, Name: "Emily Rodriguez", MemberRef: "USATT44556", Rating: 1800, Club: "Boston Table Tennis Society"},
		{ID: PlayerIDDavidWilson, Name: "David Wilson", MemberRef: "USATT77889", Rating: 2300, Club: "Seattle Table Tennis Center"},
	}
}

func SeedMatches() []match.Match {
	return []match.Match{
		seedMatch("match-1", PlayerIDJohnSmith, PlayerIDSarahJohnson, 11, 8, "Chicago Open", "2023-05-15"),
		seedMatch("match-2", PlayerIDJohnSmith, PlayerIDSarahJohnson, 9, 11, "Midwest Championships", "2023-07-22"),
		seedMatch("match-3", PlayerIDJohnSmith, PlayerIDMichaelChen, 11, 7, "National Tournament", "2023-09-10"),
		seedMatch("match-4", PlayerIDSarahJohnson, PlayerIDMichaelChen, 8, 11, "Regional Open", "2023-11-05"),
		seedMatch("match-5", PlayerIDMichaelChen, PlayerIDEmilyRodriguez, 11, 6, "West Coast Championships", "2024-01-18"),
		seedMatch("match-6", PlayerIDEmilyRodriguez, PlayerIDDavidWilson, 11, 9, "Pacific Northwest Open", "2024-03-12"),
		seedMatch("match-7", PlayerIDJohnSmith, PlayerIDDavidWilson, 7, 11, "Grand Prix", "2024-04-20"),
		seedMatch("match-8", PlayerIDSarahJohnson, PlayerIDDavidWilson, 11, 10, "Summer Showdown", "2024-06-08"),
	}
}

// seedMatch derives the winner from the score; seed data has no draws.
func seedMatch(id, one, two string, scoreOne, scoreTwo int, tournament, date string) match.Match {
	playedOn, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}

	winner := one
	if scoreTwo > scoreOne {
		winner = two
	}

	return match.Match{
		ID:             id,
		PlayerOneID:    one,
		PlayerTwoID:    two,
		WinnerID:       winner,
		PlayerOneScore: scoreOne,
		PlayerTwoScore: scoreTwo,
		TournamentName: tournament,
		PlayedOn:       playedOn,
	}
}
