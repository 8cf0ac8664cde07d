package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/face2face/internal/platform/logging"
	"github.com/riskibarqy/face2face/internal/usecase"
)

const healthPingTimeout = 2 * time.Second

// HealthChecker reports database reachability. *sqlx.DB satisfies it.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	headToHeadService *usecase.HeadToHeadService
	playerService     *usecase.PlayerService
	db                HealthChecker
	logger            *logging.Logger
	validator         *validator.Validate
}

// NewHandler wires the HTTP handlers. db may be nil when no database backs
// the configured match source.
func NewHandler(
	headToHeadService *usecase.HeadToHeadService,
	playerService *usecase.PlayerService,
	db HealthChecker,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		headToHeadService: headToHeadService,
		playerService:     playerService,
		db:                db,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Health")
	defer span.End()

	if h.db == nil {
		writeSuccess(ctx, w, http.StatusOK, healthDTO{
			Status:    "ok",
			Database:  "not_configured",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := h.db.PingContext(pingCtx); err != nil {
		h.logger.WarnContext(ctx, "database health check failed", "error", err)
		writeSuccess(ctx, w, http.StatusServiceUnavailable, healthDTO{
			Status:    "error",
			Database:  "disconnected",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	writeSuccess(ctx, w, http.StatusOK, healthDTO{
		Status:    "ok",
		Database:  "connected",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type headToHeadRequest struct {
	PlayerOne string `validate:"max=100"`
	PlayerTwo string `validate:"max=100"`
}

type listPlayersRequest struct {
	Query string `validate:"max=100"`
}

type getPlayerRequest struct {
	Name string `validate:"max=100"`
}

type healthDTO struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}
