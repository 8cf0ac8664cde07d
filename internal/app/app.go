package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/face2face/external/justgo"
	"github.com/riskibarqy/face2face/internal/config"
	"github.com/riskibarqy/face2face/internal/domain/match"
	"github.com/riskibarqy/face2face/internal/domain/player"
	"github.com/riskibarqy/face2face/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/face2face/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/face2face/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/face2face/internal/interfaces/httpapi"
	"github.com/riskibarqy/face2face/internal/platform/logging"
	"github.com/riskibarqy/face2face/internal/usecase"
)

type repositories struct {
	players player.Repository
	matches match.Repository
	db      *sqlx.DB
}

// NewHTTPServer builds the API server for the configured match source. The
// returned cleanup releases the database pool, if one was opened.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	playerRepo := repos.players
	if cfg.CacheEnabled {
		playerRepo = cache.NewPlayerRepository(playerRepo, cfg.CacheTTL)
		logger.Info("player directory cache enabled", "ttl", cfg.CacheTTL.String())
	}

	headToHeadSvc := usecase.NewHeadToHeadService(playerRepo, repos.matches, logger)
	playerSvc := usecase.NewPlayerService(playerRepo, logger)

	var health httpapi.HealthChecker
	if repos.db != nil {
		health = repos.db
	}

	handler := httpapi.NewHandler(headToHeadSvc, playerSvc, health, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	cleanup := func() error {
		if repos.db == nil {
			return nil
		}
		return repos.db.Close()
	}

	return server, cleanup, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	switch cfg.MatchSource {
	case config.MatchSourceMemory:
		logger.Info("match source selected", "source", cfg.MatchSource)
		return repositories{
			players: memory.NewPlayerRepository(memory.SeedPlayers()),
			matches: memory.NewMatchRepository(memory.SeedMatches()),
		}, nil
	case config.MatchSourceJustGo:
		logger.Info("match source selected", "source", cfg.MatchSource, "base_url", cfg.JustGoBaseURL)
		client := justgo.NewClient(justgo.ClientConfig{
			BaseURL:        cfg.JustGoBaseURL,
			Token:          cfg.JustGoToken,
			Timeout:        cfg.JustGoTimeout,
			RateLimit:      cfg.JustGoRateLimit,
			RateBurst:      cfg.JustGoRateBurst,
			Logger:         logger,
			CircuitBreaker: cfg.JustGoCircuit,
		})
		return repositories{players: client, matches: client}, nil
	case config.MatchSourcePostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}
		logger.Info("match source selected", "source", cfg.MatchSource, "db_name", dbNameFromURL(cfg.DBURL))
		return repositories{
			players: postgres.NewPlayerRepository(db),
			matches: postgres.NewMatchRepository(db),
			db:      db,
		}, nil
	default:
		return repositories{}, fmt.Errorf("unsupported match source %q", cfg.MatchSource)
	}
}
