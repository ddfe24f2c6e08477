package session

import (
	"context"

	"boxoffice/entities"

	"github.com/google/uuid"
)

// Validator is what a guard needs from the store.
type Validator interface {
	Validate(ctx context.Context, token string) (string, error)
}

// EventData are the per-event fetches an aggregation run performs.
type EventData interface {
	BookingsByEvent(ctx context.Context, eventID uuid.UUID) ([]entities.Booking, error)
	TicketTypesByEvent(ctx context.Context, eventID uuid.UUID) ([]entities.TicketType, error)
}

// GuardedEventData re-checks the caller's session before every fetch, so
// a session revoked in the middle of a long aggregation run surfaces as
// ErrAuthExpired instead of returning data against a dead session.
type GuardedEventData struct {
	inner    EventData
	sessions Validator
	token    string
}

func GuardEventData(inner EventData, sessions Validator, token string) GuardedEventData {
	if inner == nil {
		panic("inner is nil")
	}
	if sessions == nil {
		panic("sessions is nil")
	}
	return GuardedEventData{
		inner:    inner,
		sessions: sessions,
		token:    token,
	}
}

func (g GuardedEventData) BookingsByEvent(ctx context.Context, eventID uuid.UUID) ([]entities.Booking, error) {
	if _, err := g.sessions.Validate(ctx, g.token); err != nil {
		return nil, err
	}
	return g.inner.BookingsByEvent(ctx, eventID)
}

func (g GuardedEventData) TicketTypesByEvent(ctx context.Context, eventID uuid.UUID) ([]entities.TicketType, error) {
	if _, err := g.sessions.Validate(ctx, g.token); err != nil {
		return nil, err
	}
	return g.inner.TicketTypesByEvent(ctx, eventID)
}
