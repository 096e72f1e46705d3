// Package events carries notifications about roster changes to whoever
// listens: the websocket gateway, NATS JetStream, or the log.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Type names a kind of event
type Type string

const (
	TypeTeamCreated   Type = "team.created"
	TypePlayerCreated Type = "player.created"
)

// Event is the envelope shared by every publisher
type Event struct {
	ID        string          `json:"id"`
	Type      Type            `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// New builds an event with a fresh ID and payload encoded as JSON
func New(typ Type, at time.Time, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s payload: %w", typ, err)
	}
	return Event{
		ID:        uuid.NewString(),
		Type:      typ,
		Timestamp: at.UTC(),
		Data:      data,
	}, nil
}

// Publisher delivers events
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Emit builds and publishes an event. Failures are logged and dropped: a
// notification that cannot be delivered never undoes the change it reports.
func Emit(ctx context.Context, p Publisher, typ Type, at time.Time, payload any) {
	if p == nil {
		return
	}
	event, err := New(typ, at, payload)
	if err != nil {
		log.Error().Err(err).Str("event_type", string(typ)).Msg("failed to build event")
		return
	}
	if err := p.Publish(ctx, event); err != nil {
		log.Warn().
			Err(err).
			Str("event_id", event.ID).
			Str("event_type", string(typ)).
			Msg("failed to publish event")
	}
}

// LogPublisher writes events to the log
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, event Event) error {
	log.Info().
		Str("event_id", event.ID).
		Str("event_type", string(event.Type)).
		RawJSON("data", event.Data).
		Msg("publishing event")
	return nil
}

// Multi publishes to every publisher and joins their errors
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
