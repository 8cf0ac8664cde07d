package resilience

import (
	"fmt"
	"time"
)

type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
		HalfOpenMaxReq:   1,
	}
}

// NormalizeCircuitBreakerConfig fills unset limits with defaults.
func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}
	if cfg.HalfOpenMaxReq < 1 {
		cfg.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}
	return cfg
}

// Validate rejects explicitly negative limits on an enabled breaker.
func (c CircuitBreakerConfig) Validate(prefix string) error {
	if !c.Enabled {
		return nil
	}
	if c.FailureThreshold < 0 {
		return fmt.Errorf("%s_CIRCUIT_FAILURE_COUNT must be >= 0", prefix)
	}
	if c.OpenTimeout < 0 {
		return fmt.Errorf("%s_CIRCUIT_OPEN_TIMEOUT must be >= 0", prefix)
	}
	if c.HalfOpenMaxReq < 0 {
		return fmt.Errorf("%s_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 0", prefix)
	}
	return nil
}
