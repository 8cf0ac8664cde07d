package justgo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/face2face/internal/domain/player"
	"github.com/riskibarqy/face2face/internal/platform/resilience"
	"github.com/riskibarqy/face2face/internal/usecase"
)

var (
	john  = player.Player{ID: "jg-1", Name: "John Smith"}
	sarah = player.Player{ID: "jg-2", Name: "Sarah Johnson"}
)

func newTestClient(t *testing.T, handler http.HandlerFunc, breaker resilience.CircuitBreakerConfig) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		HTTPClient:     server.Client(),
		BaseURL:        server.URL,
		Token:          "secret-token",
		CircuitBreaker: breaker,
	})
}

func TestClient_ListBetween_NormalizesWinnerNames(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/head-to-head" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret-token" {
			t.Errorf("unexpected authorization header: %q", got)
		}
		if r.URL.Query().Get("player1") != "John Smith" || r.URL.Query().Get("player2") != "Sarah Johnson" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"matches":[
			{"tournament":"2024 National Championship","date":"2024-06-15","player1":"John Smith","player2":"Sarah Johnson","score1":11,"score2":9,"winner":"john smith"},
			{"tournament":"2023 Regional Tournament","date":"2023-11-22","player1":"Sarah Johnson","player2":"John Smith","score1":11,"score2":7,"winner":"Sarah Johnson"},
			{"tournament":"2023 State Championship","date":"2023-04-18","player1":"John Smith","player2":"Sarah Johnson","score1":11,"score2":8,"winner":""}
		]}`))
	}, resilience.CircuitBreakerConfig{})

	got, err := client.ListBetween(context.Background(), john, sarah)
	if err != nil {
		t.Fatalf("list between: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(got))
	}

	if got[0].PlayerOneID != john.ID || got[0].WinnerID != john.ID || got[0].PlayerOneScore != 11 {
		t.Fatalf("unexpected first match: %+v", got[0])
	}
	if got[1].PlayerOneID != sarah.ID || got[1].PlayerTwoID != john.ID || got[1].WinnerID != sarah.ID {
		t.Fatalf("unexpected second match: %+v", got[1])
	}
	if got[2].WinnerID != "" {
		t.Fatalf("expected empty winner, got %q", got[2].WinnerID)
	}
	if want := time.Date(2023, 11, 22, 0, 0, 0, 0, time.UTC); !got[1].PlayedOn.Equal(want) {
		t.Fatalf("unexpected date: %s", got[1].PlayedOn)
	}
	if got[0].ID == "" || got[0].ID == got[1].ID {
		t.Fatalf("expected distinct synthesized ids, got %q and %q", got[0].ID, got[1].ID)
	}
}

func TestClient_ListBetween_RejectsForeignParticipants(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"matches":[{"date":"2024-01-01","player1":"John Smith","player2":"Mike Chen","score1":11,"score2":3,"winner":"John Smith"}]}`))
	}, resilience.CircuitBreakerConfig{})

	_, err := client.ListBetween(context.Background(), john, sarah)
	if !errors.Is(err, errUnexpectedParticipant) {
		t.Fatalf("expected errUnexpectedParticipant, got %v", err)
	}
}

func TestClient_FindByName(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("search") != "sarah johnson" {
			t.Errorf("unexpected search: %q", r.URL.Query().Get("search"))
		}
		_, _ = w.Write([]byte(`{"players":[
			{"id":"jg-9","name":"Sarah Johnsonn"},
			{"id":"jg-2","name":"Sarah  Johnson","member_id":"USATT67890","rating":1950}
		]}`))
	}, resilience.CircuitBreakerConfig{})

	got, found, err := client.FindByName(context.Background(), "sarah johnson")
	if err != nil {
		t.Fatalf("find by name: %v", err)
	}
	if !found || got.ID != "jg-2" || got.Name != "Sarah Johnson" || got.MemberRef != "USATT67890" {
		t.Fatalf("unexpected player: found=%v %+v", found, got)
	}
}

func TestClient_List_SynthesizesMissingIDs(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"players":[{"name":"Emily Rodriguez"},{"name":"  "}]}`))
	}, resilience.CircuitBreakerConfig{})

	got, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != "justgo-emily-rodriguez" {
		t.Fatalf("unexpected players: %+v", got)
	}
}

func TestClient_CircuitOpensOnTransientFailures(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	for i := 0; i < 2; i++ {
		_, err := client.List(context.Background())
		if !errors.Is(err, errJustGoTransient) {
			t.Fatalf("attempt %d: expected transient error, got %v", i, err)
		}
	}

	_, err := client.List(context.Background())
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if got := hits.Load(); got != 2 {
		t.Fatalf("expected no request while open and no retries, got %d hits", got)
	}
}

func TestClient_ClientErrorsDoNotTripCircuit(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"bad name"}`, http.StatusBadRequest)
	}, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 1,
		OpenTimeout:      time.Minute,
	})

	for i := 0; i < 3; i++ {
		_, err := client.List(context.Background())
		if err == nil || errors.Is(err, errJustGoTransient) || errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("attempt %d: expected a plain provider error, got %v", i, err)
		}
	}
}

func TestClient_MissingTokenIsUnavailable(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{BaseURL: "http://127.0.0.1:1"})
	_, err := client.List(context.Background())
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestSanitizeToken(t *testing.T) {
	got := sanitizeToken(`Get "https://api.justgo.com?token=abc123": dial tcp`, "abc123")
	if got != `Get "https://api.justgo.com?token=REDACTED": dial tcp` {
		t.Fatalf("unexpected sanitized text: %s", got)
	}
}
