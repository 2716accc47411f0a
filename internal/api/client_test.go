package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dgnsrekt/match-relay/internal/api/generated"
	"github.com/dgnsrekt/match-relay/internal/data"
)

func TestPublishMatches_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/matches" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %s", ct)
		}

		var payload data.MatchesPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if len(payload.Matches) != 2 {
			t.Errorf("expected 2 matches, got %d", len(payload.Matches))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(generated.Status{Status: "success", Message: "2 matches stored"})
	}))
	defer server.Close()

	logger, _ := zap.NewDevelopment()
	client := NewClient(server.URL, 10, 5*time.Second, time.Second, 3, logger)

	msg, err := client.PublishMatches(context.Background(), []data.Match{{"team1": "A"}, {"team1": "B"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "2 matches stored" {
		t.Errorf("unexpected message: %s", msg)
	}
}

func TestPublishMatches_NilSendsEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"matches":[]}` {
			t.Errorf("unexpected body: %s", body)
		}
		json.NewEncoder(w).Encode(generated.Status{Status: "success", Message: "0 matches stored"})
	}))
	defer server.Close()

	logger, _ := zap.NewDevelopment()
	client := NewClient(server.URL, 10, 5*time.Second, time.Second, 0, logger)

	if _, err := client.PublishMatches(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPublishMatches_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(generated.Status{Status: "error", Message: "bad payload"})
	}))
	defer server.Close()

	logger, _ := zap.NewDevelopment()
	client := NewClient(server.URL, 10, 5*time.Second, time.Second, 3, logger)

	_, err := client.PublishMatches(context.Background(), []data.Match{})
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
}

func TestGetMatches_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	logger, _ := zap.NewDevelopment()
	client := NewClient(server.URL, 10, 5*time.Second, time.Second, 0, logger)

	_, err := client.GetMatches(context.Background())
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetStreamLinks_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stream_links/abc" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusGatewayTimeout)
	}))
	defer server.Close()

	logger, _ := zap.NewDevelopment()
	client := NewClient(server.URL, 10, 5*time.Second, time.Second, 3, logger)

	_, err := client.GetStreamLinks(context.Background(), "abc")
	if err != ErrTimeout {
		t.Errorf("expected ErrTimeout, got %v", err)
	}
}

func TestGetStreamLinks_ReturnsRawPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"links":["a","b"]}`))
	}))
	defer server.Close()

	logger, _ := zap.NewDevelopment()
	client := NewClient(server.URL, 10, 5*time.Second, time.Second, 0, logger)

	payload, err := client.GetStreamLinks(context.Background(), "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(payload) != `{"links":["a","b"]}` {
		t.Errorf("unexpected payload: %s", payload)
	}
}

func TestPublishStreamLinks_InvalidJSON(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	client := NewClient("http://127.0.0.1:0", 10, time.Second, time.Second, 0, logger)

	_, err := client.PublishStreamLinks(context.Background(), "abc", data.StreamLinks(`{"a":`))
	if !errors.Is(err, ErrRejected) {
		t.Errorf("expected ErrRejected, got %v", err)
	}
}

func TestDo_RetriesServerErrors(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	logger, _ := zap.NewDevelopment()
	client := NewClient(server.URL, 10, 5*time.Second, 10*time.Millisecond, 2, logger)

	_, err := client.GetMatches(context.Background())
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}

	// Should have attempted 3 times (initial + 2 retries)
	if got := attempts.Load(); got != 3 {
		t.Errorf("expected 3 attempts, got %d", got)
	}
}

func TestStreamLinks_EscapesSlashInID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.EscapedPath(); got != "/stream_links/a%2Fb" {
			t.Errorf("expected escaped path /stream_links/a%%2Fb, got %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"url":"http://ab"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 100, 5*time.Second, time.Millisecond, 0, zap.NewNop())
	got, err := client.GetStreamLinks(context.Background(), "a/b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"url":"http://ab"}` {
		t.Errorf("unexpected payload %s", got)
	}
}
