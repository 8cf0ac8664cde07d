package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/face2face/internal/platform/logging"
	"github.com/riskibarqy/face2face/internal/platform/resilience"
)

const (
	MatchSourcePostgres = "postgres"
	MatchSourceMemory   = "memory"
	MatchSourceJustGo   = "justgo"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	LogLevel                   logging.Level
	HTTPAddr                   string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	CORSAllowedOrigins         []string
	SwaggerEnabled             bool
	MatchSource                string
	DBURL                      string
	DBDisablePreparedBinary    bool
	DBMaxOpenConns             int
	DBMaxIdleConns             int
	DBConnMaxLifetime          time.Duration
	CacheEnabled               bool
	CacheTTL                   time.Duration
	JustGoBaseURL              string
	JustGoToken                string
	JustGoTimeout              time.Duration
	JustGoRateLimit            float64
	JustGoRateBurst            int
	JustGoCircuit              resilience.CircuitBreakerConfig
	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	httpAddr := strings.TrimSpace(getEnv("APP_HTTP_ADDR", ""))
	if httpAddr == "" {
		port, err := getEnvAsInt("SERVER_PORT", 3000)
		if err != nil {
			return Config{}, fmt.Errorf("parse SERVER_PORT: %w", err)
		}
		if port < 1 || port > 65535 {
			return Config{}, fmt.Errorf("SERVER_PORT must be between 1 and 65535")
		}
		httpAddr = ":" + strconv.Itoa(port)
	}

	readTimeout, err := getEnvAsDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := getEnvAsDuration("APP_WRITE_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}

	corsAllowedOrigins := splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*"))
	if len(corsAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	matchSource, err := parseMatchSource(getEnv("MATCH_SOURCE", MatchSourcePostgres))
	if err != nil {
		return Config{}, err
	}

	dbURL, err := DatabaseURL()
	if err != nil {
		return Config{}, err
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	dbMaxOpenConns, err := getEnvAsInt("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_MAX_OPEN_CONNS: %w", err)
	}
	if dbMaxOpenConns < 1 {
		return Config{}, fmt.Errorf("DB_MAX_OPEN_CONNS must be >= 1")
	}
	dbMaxIdleConns, err := getEnvAsInt("DB_MAX_IDLE_CONNS", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_MAX_IDLE_CONNS: %w", err)
	}
	if dbMaxIdleConns < 0 {
		return Config{}, fmt.Errorf("DB_MAX_IDLE_CONNS must be >= 0")
	}
	dbConnMaxLifetime, err := getEnvAsDuration("DB_CONN_MAX_LIFETIME", "30m")
	if err != nil {
		return Config{}, err
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := getEnvAsDuration("CACHE_TTL", "60s")
	if err != nil {
		return Config{}, err
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	justGoToken := strings.TrimSpace(getEnv("JUSTGO_TOKEN", ""))
	if matchSource == MatchSourceJustGo && justGoToken == "" {
		return Config{}, fmt.Errorf("JUSTGO_TOKEN is required when MATCH_SOURCE=justgo")
	}
	justGoTimeout, err := getEnvAsDuration("JUSTGO_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	if justGoTimeout <= 0 {
		return Config{}, fmt.Errorf("JUSTGO_TIMEOUT must be > 0")
	}
	justGoRateLimit, err := strconv.ParseFloat(getEnv("JUSTGO_RATE_LIMIT", "5"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse JUSTGO_RATE_LIMIT: %w", err)
	}
	if justGoRateLimit < 0 {
		return Config{}, fmt.Errorf("JUSTGO_RATE_LIMIT must be >= 0")
	}
	justGoRateBurst, err := getEnvAsInt("JUSTGO_RATE_BURST", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse JUSTGO_RATE_BURST: %w", err)
	}
	if justGoRateBurst < 1 {
		return Config{}, fmt.Errorf("JUSTGO_RATE_BURST must be >= 1")
	}
	justGoCircuit, err := loadCircuitBreaker("JUSTGO")
	if err != nil {
		return Config{}, err
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "face2face-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:                   logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		HTTPAddr:                   httpAddr,
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		CORSAllowedOrigins:         corsAllowedOrigins,
		SwaggerEnabled:             swaggerEnabled,
		MatchSource:                matchSource,
		DBURL:                      dbURL,
		DBDisablePreparedBinary:    dbDisablePreparedBinary,
		DBMaxOpenConns:             dbMaxOpenConns,
		DBMaxIdleConns:             dbMaxIdleConns,
		DBConnMaxLifetime:          dbConnMaxLifetime,
		CacheEnabled:               cacheEnabled,
		CacheTTL:                   cacheTTL,
		JustGoBaseURL:              strings.TrimSpace(getEnv("JUSTGO_BASE_URL", "https://api.justgo.com/v1")),
		JustGoToken:                justGoToken,
		JustGoTimeout:              justGoTimeout,
		JustGoRateLimit:            justGoRateLimit,
		JustGoRateBurst:            justGoRateBurst,
		JustGoCircuit:              justGoCircuit,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}

	return cfg, nil
}

// UsesDatabase reports whether the configured match source reads postgres.
func (c Config) UsesDatabase() bool {
	return c.MatchSource == MatchSourcePostgres
}

func loadCircuitBreaker(prefix string) (resilience.CircuitBreakerConfig, error) {
	defaults := resilience.DefaultCircuitBreakerConfig()

	enabled, err := strconv.ParseBool(getEnv(prefix+"_CIRCUIT_ENABLED", strconv.FormatBool(defaults.Enabled)))
	if err != nil {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("parse %s_CIRCUIT_ENABLED: %w", prefix, err)
	}
	failureCount, err := getEnvAsInt(prefix+"_CIRCUIT_FAILURE_COUNT", defaults.FailureThreshold)
	if err != nil {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("parse %s_CIRCUIT_FAILURE_COUNT: %w", prefix, err)
	}
	openTimeout, err := getEnvAsDuration(prefix+"_CIRCUIT_OPEN_TIMEOUT", defaults.OpenTimeout.String())
	if err != nil {
		return resilience.CircuitBreakerConfig{}, err
	}
	halfOpenMaxReq, err := getEnvAsInt(prefix+"_CIRCUIT_HALF_OPEN_MAX_REQ", defaults.HalfOpenMaxReq)
	if err != nil {
		return resilience.CircuitBreakerConfig{}, fmt.Errorf("parse %s_CIRCUIT_HALF_OPEN_MAX_REQ: %w", prefix, err)
	}

	cfg := resilience.CircuitBreakerConfig{
		Enabled:          enabled,
		FailureThreshold: failureCount,
		OpenTimeout:      openTimeout,
		HalfOpenMaxReq:   halfOpenMaxReq,
	}
	if err := cfg.Validate(prefix); err != nil {
		return resilience.CircuitBreakerConfig{}, err
	}

	return resilience.NormalizeCircuitBreakerConfig(cfg), nil
}

// DatabaseURL returns DB_URL, or a postgres URL assembled from the discrete
// DB_* variables when it is unset.
func DatabaseURL() (string, error) {
	if raw := strings.TrimSpace(getEnv("DB_URL", "")); raw != "" {
		return raw, nil
	}

	port, err := getEnvAsInt("DB_PORT", 5432)
	if err != nil {
		return "", fmt.Errorf("parse DB_PORT: %w", err)
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(getEnv("DB_USER", "postgres"), getEnv("DB_PASSWORD", "postgres")),
		Host:   net.JoinHostPort(strings.TrimSpace(getEnv("DB_HOST", "localhost")), strconv.Itoa(port)),
		Path:   "/" + strings.TrimSpace(getEnv("DB_NAME", "face2face")),
	}
	q := u.Query()
	q.Set("sslmode", strings.TrimSpace(getEnv("DB_SSLMODE", "disable")))
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseMatchSource(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case MatchSourcePostgres, MatchSourceMemory, MatchSourceJustGo:
		return value, nil
	default:
		return "", fmt.Errorf("invalid MATCH_SOURCE %q: valid values are %s, %s, %s", v, MatchSourcePostgres, MatchSourceMemory, MatchSourceJustGo)
	}
}
