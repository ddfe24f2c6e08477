package db

import (
	"context"

	"boxoffice/entities"

	"github.com/google/uuid"
)

// EventData bundles the per-event fetches the sales report performs.
// It is usually wrapped in a session guard before being handed to the
// report builder.
type EventData struct {
	bookings    BookingRepository
	ticketTypes TicketTypeRepository
}

func NewEventData(db *DB) EventData {
	if db == nil {
		panic("db is nil")
	}
	return EventData{
		bookings:    NewBookingRepository(db),
		ticketTypes: NewTicketTypeRepository(db),
	}
}

func (d EventData) BookingsByEvent(ctx context.Context, eventID uuid.UUID) ([]entities.Booking, error) {
	return d.bookings.ByEvent(ctx, eventID)
}

func (d EventData) TicketTypesByEvent(ctx context.Context, eventID uuid.UUID) ([]entities.TicketType, error) {
	return d.ticketTypes.ByEvent(ctx, eventID)
}
