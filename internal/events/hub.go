package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// DefaultBufferSize is the per-subscriber queue length used when none is given.
const DefaultBufferSize = 8

// Subscription is a registered receiver. C is closed by Hub.Unsubscribe.
type Subscription struct {
	ID uuid.UUID
	C  <-chan *Event
}

// Hub fans events out to every current subscriber.
// It is safe for concurrent use.
type Hub struct {
	mu          sync.Mutex
	subscribers map[uuid.UUID]chan *Event
	bufferSize  int
	logger      *slog.Logger
}

// Ensure Hub implements EventEmitter
var _ EventEmitter = (*Hub)(nil)

// NewHub creates a Hub whose subscribers queue up to bufferSize events.
// A non-positive bufferSize falls back to DefaultBufferSize.
func NewHub(bufferSize int, logger *slog.Logger) *Hub {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		subscribers: make(map[uuid.UUID]chan *Event),
		bufferSize:  bufferSize,
		logger:      logger.With(slog.String("component", "event_hub")),
	}
}

// Subscribe registers a new subscriber. The caller must call Unsubscribe
// with the returned ID once it stops reading.
func (h *Hub) Subscribe() *Subscription {
	ch := make(chan *Event, h.bufferSize)
	id := uuid.New()

	h.mu.Lock()
	h.subscribers[id] = ch
	count := len(h.subscribers)
	h.mu.Unlock()

	h.logger.Debug("subscriber added",
		slog.String("subscriber_id", id.String()),
		slog.Int("subscriber_count", count))

	return &Subscription{ID: id, C: ch}
}

// Unsubscribe removes a subscriber and closes its channel.
// Unknown IDs are ignored, so calling it twice is harmless.
func (h *Hub) Unsubscribe(id uuid.UUID) {
	h.mu.Lock()
	ch, ok := h.subscribers[id]
	if ok {
		delete(h.subscribers, id)
		close(ch)
	}
	count := len(h.subscribers)
	h.mu.Unlock()

	if ok {
		h.logger.Debug("subscriber removed",
			slog.String("subscriber_id", id.String()),
			slog.Int("subscriber_count", count))
	}
}

// Count returns the number of current subscribers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Publish delivers event to every subscriber without blocking and returns
// the number of subscribers it was queued for. A full queue loses its oldest
// event to make room.
func (h *Hub) Publish(event *Event) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	dropped := 0
	for _, ch := range h.subscribers {
		select {
		case ch <- event:
			continue
		default:
		}

		// Latest wins: discard the oldest queued event and retry once.
		select {
		case <-ch:
			dropped++
		default:
		}
		select {
		case ch <- event:
		default:
		}
	}

	if dropped > 0 {
		h.logger.Debug("dropped stale events for slow subscribers",
			slog.String("event_type", event.Type),
			slog.Int("dropped", dropped))
	}

	return len(h.subscribers)
}

// EmitEvent implements EventEmitter. It never fails.
func (h *Hub) EmitEvent(_ context.Context, event *Event) error {
	h.Publish(event)
	return nil
}
