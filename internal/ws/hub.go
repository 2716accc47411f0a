package ws

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var (
	// ErrSendBufferFull is returned when a subscriber's send queue is full.
	ErrSendBufferFull = errors.New("send buffer full")
	// ErrClosed is returned when sending to a closed subscriber.
	ErrClosed = errors.New("subscriber closed")
)

// Subscriber is a live real-time connection the hub can push to.
type Subscriber interface {
	ID() string
	// Send queues n for delivery without blocking.
	Send(n Notification) error
	// Close releases the subscriber. It must be safe to call more than once.
	Close()
}

// IDSource supplies the current correlation id for echo replies.
type IDSource interface {
	Current() string
}

// Hub tracks connected subscribers and fans notifications out to them.
type Hub struct {
	subs   map[Subscriber]bool
	mu     sync.RWMutex
	codec  *Codec
	ids    IDSource
	logger *zap.Logger
}

// NewHub creates a new Hub.
func NewHub(codec *Codec, ids IDSource, logger *zap.Logger) *Hub {
	return &Hub{
		subs:   make(map[Subscriber]bool),
		codec:  codec,
		ids:    ids,
		logger: logger,
	}
}

// Run blocks until ctx is cancelled, then closes every subscriber.
func (h *Hub) Run(ctx context.Context) {
	<-ctx.Done()
	h.logger.Info("hub shutting down", zap.Int("subscribers", h.Count()))
	h.shutdown()
}

// shutdown closes all subscribers.
func (h *Hub) shutdown() {
	h.mu.Lock()
	subs := make([]Subscriber, 0, len(h.subs))
	for sub := range h.subs {
		subs = append(subs, sub)
	}
	h.subs = make(map[Subscriber]bool)
	h.mu.Unlock()

	for _, sub := range subs {
		sub.Close()
	}
}

// Register adds a subscriber.
func (h *Hub) Register(sub Subscriber) {
	h.mu.Lock()
	h.subs[sub] = true
	h.mu.Unlock()

	h.logger.Debug("subscriber registered", zap.String("connID", sub.ID()))
}

// Unregister removes and closes a subscriber. Unknown subscribers are ignored.
func (h *Hub) Unregister(sub Subscriber) {
	h.mu.Lock()
	_, ok := h.subs[sub]
	delete(h.subs, sub)
	h.mu.Unlock()

	if !ok {
		return
	}
	sub.Close()
	h.logger.Debug("subscriber unregistered", zap.String("connID", sub.ID()))
}

// Broadcast sends n to every current subscriber and returns how many accepted
// it. A subscriber that fails is removed; the rest still receive n.
func (h *Hub) Broadcast(n Notification) int {
	h.mu.RLock()
	// Copy subscribers to avoid holding lock during send
	subs := make([]Subscriber, 0, len(h.subs))
	for sub := range h.subs {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, sub := range subs {
		if err := sub.Send(n); err != nil {
			h.logger.Debug("dropping subscriber after send failure",
				zap.String("connID", sub.ID()),
				zap.Error(err),
			)
			h.Unregister(sub)
			continue
		}
		delivered++
	}
	return delivered
}

// Count returns the number of connected subscribers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
