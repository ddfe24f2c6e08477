package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventHeader struct {
	ID             string    `json:"id"`
	PublishedAt    time.Time `json:"published_at"`
	IdempotencyKey string    `json:"idempotency_key"`
}

func NewEventHeader() EventHeader {
	return EventHeader{
		ID:             uuid.NewString(),
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: uuid.NewString(),
	}
}

func NewEventHeaderWithIdempotencyKey(idempotencyKey string) EventHeader {
	return EventHeader{
		ID:             uuid.NewString(),
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: idempotencyKey,
	}
}

type IEvent interface {
	IsInternal() bool
}

// BookingConfirmed_v1 is published in the same transaction as the
// pending->confirmed status update, through the outbox.
type BookingConfirmed_v1 struct {
	Header EventHeader `json:"header"`

	BookingID    uuid.UUID       `json:"booking_id"`
	EventID      uuid.UUID       `json:"event_id"`
	TicketTypeID uuid.UUID       `json:"ticket_type_id"`
	OwnerID      uuid.UUID       `json:"owner_id"`
	Quantity     int             `json:"quantity"`
	TotalAmount  decimal.Decimal `json:"total_amount"`

	PaymentID     uuid.UUID `json:"payment_id"`
	TransactionID string    `json:"transaction_id"`
}

func (e BookingConfirmed_v1) IsInternal() bool {
	return false
}

// BookingCancelled_v1 is published when an owner cancels a pending
// booking.
type BookingCancelled_v1 struct {
	Header EventHeader `json:"header"`

	BookingID uuid.UUID `json:"booking_id"`
}

func (e BookingCancelled_v1) IsInternal() bool {
	return false
}
