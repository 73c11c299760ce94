package messaging

import (
	"encoding/json"
	"fmt"
)

// Subjects match events are published on.
const (
	SubjectTick       = "sol.match.tick"
	SubjectProduction = "sol.match.production"
	SubjectVictory    = "sol.match.victory"
)

// Bus is the publish surface the event publisher needs from the server.
type Bus interface {
	Publish(subject string, data []byte) error
}

// EventPublisher publishes JSON-encoded match events on the embedded bus.
type EventPublisher struct {
	bus Bus
}

// NewEventPublisher wraps a bus for match event delivery.
func NewEventPublisher(bus Bus) *EventPublisher {
	return &EventPublisher{bus: bus}
}

// PublishEvent encodes the event as JSON and publishes it on subject.
func (p *EventPublisher) PublishEvent(subject string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshalling event: %w", err)
	}
	if err := p.bus.Publish(subject, data); err != nil {
		return fmt.Errorf("publishing to %s: %w", subject, err)
	}
	return nil
}
