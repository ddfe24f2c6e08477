package entities

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment is a single provider transaction referencing a booking.
// Amount is kept in integer minor units; it is divided by 100 only at
// presentation time.
type Payment struct {
	PaymentID     uuid.UUID     `json:"payment_id" db:"payment_id"`
	TransactionID string        `json:"transaction_id" db:"transaction_id"`
	BookingID     uuid.UUID     `json:"booking_id" db:"booking_id"`
	Amount        int64         `json:"amount" db:"amount"`
	Status        PaymentStatus `json:"status" db:"status"`
	Method        string        `json:"method" db:"method"`
	PaidAt        time.Time     `json:"paid_at" db:"paid_at"`
}
