package usecase

import (
	"context"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/riskibarqy/face2face/internal/domain/player"
	"github.com/riskibarqy/face2face/internal/platform/logging"
)

const maxSuggestions = 3

type rankedPlayer struct {
	player   player.Player
	distance int
}

// rankPlayers returns players whose name fuzzily matches query, closest
// first. Names containing the query's characters in order always match;
// others match when within a small edit distance.
func rankPlayers(query string, players []player.Player) []player.Player {
	folded := player.FoldName(query)
	if folded == "" {
		return nil
	}

	tolerance := len([]rune(folded)) / 3
	if tolerance < 2 {
		tolerance = 2
	}

	ranked := make([]rankedPlayer, 0, len(players))
	for _, p := range players {
		name := player.FoldName(p.Name)
		if d := fuzzy.RankMatchFold(folded, name); d >= 0 {
			ranked = append(ranked, rankedPlayer{player: p, distance: d})
			continue
		}
		if d := fuzzy.LevenshteinDistance(folded, name); d <= tolerance {
			ranked = append(ranked, rankedPlayer{player: p, distance: d})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].distance != ranked[j].distance {
			return ranked[i].distance < ranked[j].distance
		}
		return ranked[i].player.Name < ranked[j].player.Name
	})

	out := make([]player.Player, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.player)
	}
	return out
}

func suggestNames(query string, players []player.Player) []string {
	ranked := rankPlayers(query, players)
	if len(ranked) > maxSuggestions {
		ranked = ranked[:maxSuggestions]
	}

	names := make([]string, 0, len(ranked))
	for _, p := range ranked {
		names = append(names, p.Name)
	}
	return names
}

// notFoundWithSuggestions builds a PlayerNotFoundError. Suggestions are best
// effort; a directory failure leaves them empty.
func notFoundWithSuggestions(ctx context.Context, repo player.Repository, logger *logging.Logger, missing []string) error {
	out := &PlayerNotFoundError{
		Missing:     missing,
		Suggestions: make(map[string][]string, len(missing)),
	}

	players, err := repo.List(ctx)
	if err != nil {
		logger.WarnContext(ctx, "list players for suggestions failed", "error", err)
		return out
	}
	for _, name := range missing {
		out.Suggestions[name] = suggestNames(name, players)
	}
	return out
}
