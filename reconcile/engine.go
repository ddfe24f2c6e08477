package reconcile

import (
	"boxoffice/entities"

	"github.com/google/uuid"
)

// Transition is a single pending->confirmed advance derived from a
// snapshot, together with the payment that justifies it.
type Transition struct {
	BookingID     uuid.UUID
	PaymentID     uuid.UUID
	TransactionID string

	From entities.BookingStatus
	To   entities.BookingStatus
}

// Reconcile derives the transitions a (bookings, payments) snapshot pair
// implies. It is pure: inputs are never mutated and the result depends
// only on the arguments.
//
// A booking transitions only when it is still pending and at least one
// completed payment references it. Terminal bookings are never
// revisited, so re-running against a snapshot that already reflects a
// prior run yields nothing. Multiple completed payments for one booking
// produce exactly one transition, attributed to the first completed
// payment in snapshot order.
func Reconcile(bookings []entities.Booking, payments []entities.Payment) []Transition {
	completed := make(map[uuid.UUID]entities.Payment, len(payments))
	for _, p := range payments {
		if p.Status != entities.PaymentCompleted {
			continue
		}
		if _, ok := completed[p.BookingID]; ok {
			continue
		}
		completed[p.BookingID] = p
	}

	var transitions []Transition
	for _, b := range bookings {
		if b.Status != entities.BookingPending {
			continue
		}
		p, ok := completed[b.BookingID]
		if !ok {
			continue
		}
		transitions = append(transitions, Transition{
			BookingID:     b.BookingID,
			PaymentID:     p.PaymentID,
			TransactionID: p.TransactionID,
			From:          entities.BookingPending,
			To:            entities.BookingConfirmed,
		})
	}

	return transitions
}
