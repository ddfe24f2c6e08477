package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// IsTerminal reports whether the status may never change again.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingConfirmed || s == BookingCancelled
}

type Booking struct {
	BookingID    uuid.UUID       `json:"booking_id" db:"booking_id"`
	EventID      uuid.UUID       `json:"event_id" db:"event_id"`
	TicketTypeID uuid.UUID       `json:"ticket_type_id" db:"ticket_type_id"`
	OwnerID      uuid.UUID       `json:"owner_id" db:"owner_id"`
	Quantity     int             `json:"quantity" db:"quantity"`
	TotalAmount  decimal.Decimal `json:"total_amount" db:"total_amount"`
	Status       BookingStatus   `json:"status" db:"status"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

type BookingCreateResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
}
