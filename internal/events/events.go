package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event is a message delivered to every subscriber.
// It serializes as {"event": Type, "data": Data}.
type Event struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"-"`

	// Type names the event, e.g. "system_update"
	Type string `json:"event"`

	// Data contains the event payload serialized as JSON
	Data json.RawMessage `json:"data"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"-"`
}

// UnmarshalData decodes the event payload into the provided structure.
func (e *Event) UnmarshalData(v any) error {
	return json.Unmarshal(e.Data, v)
}

// NewEvent creates a new Event with the specified type and payload.
// The payload is serialized once so every subscriber shares the same bytes.
func NewEvent(eventType string, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		Data:      data,
		CreatedAt: time.Now(),
	}, nil
}

// EventEmitter defines an interface for components that can emit events.
// This allows producers to publish events without direct knowledge of consumers.
type EventEmitter interface {
	// EmitEvent delivers event to all current subscribers.
	// It must not block on slow subscribers.
	EmitEvent(ctx context.Context, event *Event) error
}
