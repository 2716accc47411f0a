// Package relay coordinates publishers and blocking readers of match and
// stream-link snapshots.
package relay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dgnsrekt/match-relay/internal/data"
	"github.com/dgnsrekt/match-relay/internal/gate"
)

// WaitMode selects how stream-link readers wait for their key.
type WaitMode string

const (
	// WaitModeShared uses one gate for every watch id. A publish for any key
	// wakes all pending readers, who re-check their own key once.
	WaitModeShared WaitMode = "shared"
	// WaitModePerKey gives every watch id its own gate.
	WaitModePerKey WaitMode = "per_key"
)

// Options configures a Service.
type Options struct {
	WaitMode WaitMode
	// ReadTimeout bounds how long a read may wait. Zero waits until the
	// caller's context ends.
	ReadTimeout time.Duration
}

// Status is a point-in-time view of the service for health reporting.
type Status struct {
	MatchesAvailable bool     `json:"matches_available"`
	MatchCount       int      `json:"match_count"`
	StreamLinks      int      `json:"stream_links"`
	WaitMode         WaitMode `json:"stream_link_wait_mode"`
}

// Service owns the snapshot stores and their availability gates.
type Service struct {
	matches     *data.MatchStore
	matchesGate *gate.Gate

	links     *data.StreamLinkStore
	linksGate *gate.Gate
	keyed     *gate.KeyedGate

	opts   Options
	logger *zap.Logger
}

// New creates a Service with empty stores and closed gates.
func New(opts Options, logger *zap.Logger) (*Service, error) {
	switch opts.WaitMode {
	case "":
		opts.WaitMode = WaitModeShared
	case WaitModeShared, WaitModePerKey:
	default:
		return nil, fmt.Errorf("invalid wait mode: %s (must be 'shared' or 'per_key')", opts.WaitMode)
	}
	if opts.ReadTimeout < 0 {
		return nil, fmt.Errorf("read timeout must be >= 0, got %s", opts.ReadTimeout)
	}

	return &Service{
		matches:     data.NewMatchStore(),
		matchesGate: gate.New(),
		links:       data.NewStreamLinkStore(),
		linksGate:   gate.New(),
		keyed:       gate.NewKeyed(),
		opts:        opts,
		logger:      logger,
	}, nil
}

// Reset closes both gates and clears both stores. It runs at startup.
func (s *Service) Reset() {
	s.matchesGate.Reset()
	s.linksGate.Reset()
	s.keyed.Reset()
	s.matches.Clear()
	dropped := s.links.Clear()

	s.logger.Info("data availability reset", zap.Int("streamLinksDropped", dropped))
}

// PublishMatches replaces the match snapshot and wakes every waiting reader.
// It returns the number of stored matches.
func (s *Service) PublishMatches(matches []data.Match) int {
	s.matches.Publish(matches)
	// Store first, then open: released readers always see this snapshot.
	s.matchesGate.Open()

	s.logger.Info("matches stored", zap.Int("count", len(matches)))
	return len(matches)
}

// ReadMatches returns the latest snapshot, waiting for the first publish if
// none exists yet. An empty snapshot yields ErrNotFound.
func (s *Service) ReadMatches(ctx context.Context) ([]data.Match, error) {
	matches, ok := s.matches.Read()
	if !ok {
		s.logger.Debug("waiting for match data")

		ctx, cancel := s.withReadTimeout(ctx)
		defer cancel()

		if err := s.matchesGate.Wait(ctx); err != nil {
			return nil, s.waitError(ctx, err)
		}
		matches, ok = s.matches.Read()
	}

	if !ok || len(matches) == 0 {
		return nil, ErrNotFound
	}

	s.logger.Debug("returning matches", zap.Int("count", len(matches)))
	return matches, nil
}

// PublishStreamLinks stores payload for watchID and wakes waiting readers.
func (s *Service) PublishStreamLinks(watchID string, payload data.StreamLinks) {
	s.links.Publish(watchID, payload)

	if s.opts.WaitMode == WaitModePerKey {
		s.keyed.Open(watchID)
	} else {
		s.linksGate.Open()
	}

	s.logger.Info("stream links stored",
		zap.String("watchID", watchID),
		zap.Int("bytes", len(payload)),
	)
}

// ReadStreamLinks returns the payload for watchID. If absent it waits once
// for a publish and re-checks; a key that is still absent yields ErrNotFound.
func (s *Service) ReadStreamLinks(ctx context.Context, watchID string) (data.StreamLinks, error) {
	if payload, ok := s.links.Read(watchID); ok {
		s.logger.Debug("stream links found", zap.String("watchID", watchID))
		return payload, nil
	}

	s.logger.Debug("waiting for stream links", zap.String("watchID", watchID))

	ctx, cancel := s.withReadTimeout(ctx)
	defer cancel()

	var err error
	if s.opts.WaitMode == WaitModePerKey {
		err = s.keyed.Wait(ctx, watchID)
	} else {
		err = s.linksGate.Wait(ctx)
	}
	if err != nil {
		return nil, s.waitError(ctx, err)
	}

	payload, ok := s.links.Read(watchID)
	if !ok {
		return nil, ErrNotFound
	}
	return payload, nil
}

// Status reports gate and store state.
func (s *Service) Status() Status {
	return Status{
		MatchesAvailable: s.matchesGate.IsOpen(),
		MatchCount:       s.matches.Len(),
		StreamLinks:      s.links.Len(),
		WaitMode:         s.opts.WaitMode,
	}
}

// StreamLinkKeys returns the watch ids that currently have data.
func (s *Service) StreamLinkKeys() []string {
	return s.links.Keys()
}

func (s *Service) withReadTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.ReadTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeoutCause(ctx, s.opts.ReadTimeout, ErrTimeout)
}

// waitError maps a failed wait to ErrTimeout when our own deadline fired and
// passes caller cancellation through otherwise.
func (s *Service) waitError(ctx context.Context, err error) error {
	if errors.Is(context.Cause(ctx), ErrTimeout) {
		return ErrTimeout
	}
	return fmt.Errorf("waiting for data: %w", err)
}
