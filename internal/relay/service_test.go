package relay

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/dgnsrekt/match-relay/internal/data"
)

func newTestService(t *testing.T, opts Options) *Service {
	t.Helper()
	svc, err := New(opts, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("creating service: %v", err)
	}
	svc.Reset()
	return svc
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	if _, err := New(Options{WaitMode: "bogus"}, zaptest.NewLogger(t)); err == nil {
		t.Error("expected error for invalid wait mode")
	}
	if _, err := New(Options{ReadTimeout: -time.Second}, zaptest.NewLogger(t)); err == nil {
		t.Error("expected error for negative timeout")
	}

	svc, err := New(Options{}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Status().WaitMode != WaitModeShared {
		t.Errorf("expected shared default, got %s", svc.Status().WaitMode)
	}
}

func TestReadMatchesWaitsForPublish(t *testing.T) {
	svc := newTestService(t, Options{})

	type result struct {
		matches []data.Match
		err     error
	}
	done := make(chan result, 1)
	go func() {
		m, err := svc.ReadMatches(context.Background())
		done <- result{m, err}
	}()

	select {
	case r := <-done:
		t.Fatalf("read resolved before publish: %+v", r)
	case <-time.After(50 * time.Millisecond):
	}

	svc.PublishMatches([]data.Match{{"team1": "A", "team2": "B", "score": "1-0"}})

	select {
	case r := <-done:
		if r.err != nil {
			t.Fatalf("unexpected error: %v", r.err)
		}
		if len(r.matches) != 1 || r.matches[0]["score"] != "1-0" {
			t.Errorf("unexpected matches: %v", r.matches)
		}
	case <-time.After(time.Second):
		t.Fatal("read still blocked after publish")
	}
}

func TestReadMatchesReleasesAllReaders(t *testing.T) {
	svc := newTestService(t, Options{})
	const readers = 10

	errs := make(chan error, readers)
	for range readers {
		go func() {
			_, err := svc.ReadMatches(context.Background())
			errs <- err
		}()
	}

	time.Sleep(20 * time.Millisecond)
	svc.PublishMatches([]data.Match{{"team1": "A"}})

	for range readers {
		select {
		case err := <-errs:
			if err != nil {
				t.Errorf("reader failed: %v", err)
			}
		case <-time.After(time.Second):
			t.Fatal("not every reader was released")
		}
	}
}

func TestReadMatchesEmptyPublishIsNotFound(t *testing.T) {
	svc := newTestService(t, Options{})
	if n := svc.PublishMatches([]data.Match{}); n != 0 {
		t.Errorf("expected 0 stored, got %d", n)
	}

	_, err := svc.ReadMatches(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReadMatchesLastWriterWins(t *testing.T) {
	svc := newTestService(t, Options{})
	svc.PublishMatches([]data.Match{{"team1": "A"}})
	svc.PublishMatches([]data.Match{{"team1": "B"}, {"team1": "C"}})

	got, err := svc.ReadMatches(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0]["team1"] != "B" {
		t.Errorf("expected last snapshot, got %v", got)
	}
}

func TestReadMatchesTimeout(t *testing.T) {
	svc := newTestService(t, Options{ReadTimeout: 30 * time.Millisecond})

	_, err := svc.ReadMatches(context.Background())
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("timeout must be distinct from not found")
	}
}

func TestReadMatchesCallerCancel(t *testing.T) {
	svc := newTestService(t, Options{ReadTimeout: time.Minute})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ReadMatches(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if errors.Is(err, ErrTimeout) {
		t.Error("caller cancellation must not be reported as timeout")
	}
}

func TestReadStreamLinksImmediate(t *testing.T) {
	svc := newTestService(t, Options{})
	svc.PublishStreamLinks("xyz", data.StreamLinks(`{"url":"http://x"}`))

	got, err := svc.ReadStreamLinks(context.Background(), "xyz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"url":"http://x"}` {
		t.Errorf("unexpected payload %s", got)
	}
}

func TestReadStreamLinksWaitsForOwnKey(t *testing.T) {
	for _, mode := range []WaitMode{WaitModeShared, WaitModePerKey} {
		t.Run(string(mode), func(t *testing.T) {
			svc := newTestService(t, Options{WaitMode: mode})

			done := make(chan error, 1)
			var got data.StreamLinks
			go func() {
				var err error
				got, err = svc.ReadStreamLinks(context.Background(), "xyz")
				done <- err
			}()

			time.Sleep(20 * time.Millisecond)
			svc.PublishStreamLinks("xyz", data.StreamLinks(`{"url":"http://x"}`))

			select {
			case err := <-done:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if string(got) != `{"url":"http://x"}` {
					t.Errorf("unexpected payload %s", got)
				}
			case <-time.After(time.Second):
				t.Fatal("reader not released")
			}
		})
	}
}

func TestReadStreamLinksSharedWakeOtherKeyIsNotFound(t *testing.T) {
	svc := newTestService(t, Options{WaitMode: WaitModeShared})

	done := make(chan error, 1)
	go func() {
		_, err := svc.ReadStreamLinks(context.Background(), "b")
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	svc.PublishStreamLinks("a", data.StreamLinks(`{"url":"http://a"}`))

	select {
	case err := <-done:
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound for key b, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("read for b must resolve after any publish in shared mode")
	}
}

func TestReadStreamLinksPerKeyIgnoresOtherKeys(t *testing.T) {
	svc := newTestService(t, Options{WaitMode: WaitModePerKey, ReadTimeout: 80 * time.Millisecond})

	done := make(chan error, 1)
	go func() {
		_, err := svc.ReadStreamLinks(context.Background(), "b")
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	svc.PublishStreamLinks("a", data.StreamLinks(`{}`))

	select {
	case err := <-done:
		if !errors.Is(err, ErrTimeout) {
			t.Fatalf("expected per-key reader to keep waiting until timeout, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("reader never returned")
	}
}

func TestResetClearsState(t *testing.T) {
	svc := newTestService(t, Options{ReadTimeout: 20 * time.Millisecond})
	svc.PublishMatches([]data.Match{{"team1": "A"}})
	svc.PublishStreamLinks("a", data.StreamLinks(`{}`))

	svc.Reset()

	st := svc.Status()
	if st.MatchesAvailable || st.StreamLinks != 0 || st.MatchCount != 0 {
		t.Errorf("expected empty status after reset, got %+v", st)
	}
	if _, err := svc.ReadMatches(context.Background()); !errors.Is(err, ErrTimeout) {
		t.Errorf("expected reads to block again after reset, got %v", err)
	}
	if keys := svc.StreamLinkKeys(); len(keys) != 0 {
		t.Errorf("expected no keys, got %v", keys)
	}
}
