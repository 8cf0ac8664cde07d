package resilience

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func newTestBreaker(threshold int, timeout time.Duration, halfOpen int) (*CircuitBreaker, *time.Time) {
	b := NewCircuitBreaker("test", CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: threshold,
		OpenTimeout:      timeout,
		HalfOpenMaxReq:   halfOpen,
	})

	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }
	return b, &now
}

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	b, now := newTestBreaker(2, 5*time.Second, 1)

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	*now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected second half-open probe to be rejected, got %v", err)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open probe, got %s", state)
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	b, now := newTestBreaker(1, time.Second, 1)

	b.RecordFailure()
	*now = now.Add(2 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after failed probe, got %s", state)
	}
}

func TestCircuitBreaker_ExecuteClassifiesFailures(t *testing.T) {
	b, _ := newTestBreaker(1, time.Minute, 1)
	errCaller := errors.New("bad request")
	errUpstream := errors.New("upstream down")
	isFailure := func(err error) bool { return !errors.Is(err, errCaller) }

	if err := b.Execute(func() error { return errCaller }, isFailure); !errors.Is(err, errCaller) {
		t.Fatalf("expected caller error, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("caller errors must not trip the breaker, got %s", state)
	}

	if err := b.Execute(func() error { return errUpstream }, isFailure); !errors.Is(err, errUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if err := b.Execute(func() error { return nil }, isFailure); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open, got %v", err)
	}
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	b, now := newTestBreaker(1, time.Second, 1)

	var mu sync.Mutex
	var transitions []string
	b.OnStateChange(func(name string, from, to CircuitState) {
		mu.Lock()
		defer mu.Unlock()
		transitions = append(transitions, name+":"+string(from)+"->"+string(to))
	})

	b.RecordFailure()
	*now = now.Add(2 * time.Second)
	_ = b.Allow()
	b.RecordSuccess()

	want := []string{"test:closed->open", "test:open->half_open", "test:half_open->closed"}
	mu.Lock()
	defer mu.Unlock()
	if len(transitions) != len(want) {
		t.Fatalf("unexpected transitions: %v", transitions)
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Fatalf("unexpected transition %d: got=%s want=%s", i, transitions[i], want[i])
		}
	}
}

func TestNormalizeCircuitBreakerConfig(t *testing.T) {
	got := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Enabled: true})
	want := DefaultCircuitBreakerConfig()
	if got != want {
		t.Fatalf("unexpected normalized config: got=%+v want=%+v", got, want)
	}

	if err := (CircuitBreakerConfig{Enabled: true, FailureThreshold: -1}).Validate("JUSTGO"); err == nil {
		t.Fatalf("expected validation error for negative threshold")
	}
}
