package justgo

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"golang.org/x/time/rate"

	"github.com/riskibarqy/face2face/internal/domain/match"
	"github.com/riskibarqy/face2face/internal/domain/player"
	"github.com/riskibarqy/face2face/internal/platform/logging"
	"github.com/riskibarqy/face2face/internal/platform/resilience"
	"github.com/riskibarqy/face2face/internal/usecase"
)

const (
	defaultBaseURL = "https://api.justgo.com/v1"
	maxBodyBytes   = 4 << 20
)

var errJustGoTransient = crerr.New("justgo transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	RateLimit      float64
	RateBurst      int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads players and head-to-head history from the JustGo API. It
// serves as both the player and the match repository. Requests are never
// retried.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	logger         *logging.Logger
	limiter        *rate.Limiter
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight[[]byte]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("justgo")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)
	breaker := resilience.NewCircuitBreaker("justgo", breakerCfg)
	breaker.OnStateChange(func(name string, from, to resilience.CircuitState) {
		logger.Warn("circuit breaker state changed", "breaker", name, "from", from, "to", to)
	})

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		logger:         logger,
		limiter:        rate.NewLimiter(limit, burst),
		breaker:        breaker,
		circuitEnabled: breakerCfg.Enabled,
	}
}

var (
	_ player.Repository = (*Client)(nil)
	_ match.Repository  = (*Client)(nil)
)

func (c *Client) List(ctx context.Context) ([]player.Player, error) {
	var payload playersEnvelope
	if err := c.getJSON(ctx, "/players", nil, &payload); err != nil {
		return nil, fmt.Errorf("list justgo players: %w", err)
	}

	out := make([]player.Player, 0, len(payload.Players))
	for _, item := range payload.Players {
		p := mapPlayer(item)
		if p.Name == "" {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// FindByName asks the provider to search by name and keeps the first
// case-insensitive exact match.
func (c *Client) FindByName(ctx context.Context, name string) (player.Player, bool, error) {
	name = player.CleanName(name)
	if name == "" {
		return player.Player{}, false, nil
	}

	var payload playersEnvelope
	if err := c.getJSON(ctx, "/players", url.Values{"search": []string{name}}, &payload); err != nil {
		return player.Player{}, false, fmt.Errorf("search justgo player name=%q: %w", name, err)
	}

	for _, item := range payload.Players {
		if player.SameName(item.Name, name) {
			return mapPlayer(item), true, nil
		}
	}
	return player.Player{}, false, nil
}

func (c *Client) ListBetween(ctx context.Context, a, b player.Player) ([]match.Match, error) {
	query := url.Values{
		"player1": []string{a.Name},
		"player2": []string{b.Name},
	}

	var payload headToHeadEnvelope
	if err := c.getJSON(ctx, "/head-to-head", query, &payload); err != nil {
		return nil, fmt.Errorf("fetch justgo head-to-head players=%s,%s: %w", a.ID, b.ID, err)
	}

	out, err := mapMatches(a, b, payload.Matches)
	if err != nil {
		c.logger.WarnContext(ctx, "justgo head-to-head payload rejected", "player_a", a.ID, "player_b", b.ID, "error", err)
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	if c.token == "" {
		return fmt.Errorf("%w: justgo token is not configured", usecase.ErrDependencyUnavailable)
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	raw, err, _ := c.flight.Do(fullURL, func() ([]byte, error) {
		if !c.circuitEnabled {
			return c.executeRequest(ctx, fullURL)
		}

		var body []byte
		execErr := c.breaker.Execute(func() error {
			var reqErr error
			body, reqErr = c.executeRequest(ctx, fullURL)
			return reqErr
		}, isCircuitFailure)
		if stderrors.Is(execErr, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "justgo circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: match provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		return body, execErr
	})
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrap(err, "decode justgo payload")
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, crerr.Wrap(err, "wait for justgo rate limit")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "justgo request failed", "url", fullURL, "error", sanitizeToken(err.Error(), c.token))
		return nil, crerr.Wrapf(errJustGoTransient, "send request: %s", sanitizeToken(err.Error(), c.token))
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		return nil, crerr.Wrapf(errJustGoTransient, "read response body: %v", err)
	}

	c.logger.DebugContext(ctx, "justgo request completed",
		"url", fullURL,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return append([]byte(nil), buf.B...), nil
	case isTransientStatus(resp.StatusCode):
		return nil, crerr.Wrapf(errJustGoTransient, "provider status=%d body=%s", resp.StatusCode, abbreviateBody(buf.B))
	default:
		return nil, crerr.Newf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(buf.B))
	}
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, context.Canceled) {
		return false
	}
	return crerr.Is(err, errJustGoTransient) || stderrors.Is(err, context.DeadlineExceeded)
}

func isTransientStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func sanitizeToken(value, token string) string {
	value = strings.TrimSpace(value)
	if token == "" || value == "" {
		return value
	}
	return strings.ReplaceAll(value, token, "REDACTED")
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) <= limit {
		return body
	}
	return body[:limit] + "..."
}
