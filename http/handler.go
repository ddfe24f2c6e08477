package http

import (
	"context"

	"boxoffice/entities"
	"boxoffice/session"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/google/uuid"
)

type Handler struct {
	cmdBus         *cqrs.CommandBus
	sessions       SessionStore
	eventData      session.EventData
	venueRepo      VenueRepository
	eventRepo      EventRepository
	ticketTypeRepo TicketTypeRepository
	bookingRepo    BookingRepository
	paymentRepo    PaymentRepository
}

type SessionStore interface {
	Start(ctx context.Context, adminID string) (string, error)
	Validate(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

type VenueRepository interface {
	Create(ctx context.Context, venue entities.Venue) (entities.VenueCreateResponse, error)
	List(ctx context.Context) ([]entities.Venue, error)
}

type EventRepository interface {
	Create(ctx context.Context, event entities.Event) (entities.EventCreateResponse, error)
	List(ctx context.Context) ([]entities.Event, error)
}

type TicketTypeRepository interface {
	Create(ctx context.Context, ticketType entities.TicketType) (entities.TicketTypeCreateResponse, error)
	ByID(ctx context.Context, ticketTypeID uuid.UUID) (entities.TicketType, error)
	List(ctx context.Context) ([]entities.TicketType, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking entities.Booking) (entities.BookingCreateResponse, error)
	Update(ctx context.Context, booking entities.Booking) error
	Cancel(ctx context.Context, bookingID uuid.UUID) error
	ByID(ctx context.Context, bookingID uuid.UUID) (entities.Booking, error)
	List(ctx context.Context) ([]entities.Booking, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment entities.Payment) error
	List(ctx context.Context) ([]entities.Payment, error)
}
