package reconcile_test

import (
	"testing"

	"boxoffice/entities"
	"boxoffice/reconcile"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile_PendingWithCompletedPayment(t *testing.T) {
	bookingID := uuid.New()
	paymentID := uuid.New()

	bookings := []entities.Booking{
		{BookingID: bookingID, Status: entities.BookingPending},
	}
	payments := []entities.Payment{
		{PaymentID: paymentID, BookingID: bookingID, TransactionID: "tx-1", Status: entities.PaymentCompleted},
	}

	transitions := reconcile.Reconcile(bookings, payments)

	require.Len(t, transitions, 1)
	assert.Equal(t, bookingID, transitions[0].BookingID)
	assert.Equal(t, paymentID, transitions[0].PaymentID)
	assert.Equal(t, "tx-1", transitions[0].TransactionID)
	assert.Equal(t, entities.BookingPending, transitions[0].From)
	assert.Equal(t, entities.BookingConfirmed, transitions[0].To)
}

func TestReconcile_NoCompletedPayments(t *testing.T) {
	bookingID := uuid.New()

	bookings := []entities.Booking{
		{BookingID: bookingID, Status: entities.BookingPending},
	}
	payments := []entities.Payment{
		{PaymentID: uuid.New(), BookingID: bookingID, Status: entities.PaymentPending},
		{PaymentID: uuid.New(), BookingID: bookingID, Status: entities.PaymentFailed},
	}

	assert.Empty(t, reconcile.Reconcile(bookings, payments))
}

func TestReconcile_TerminalBookingsNeverRevisited(t *testing.T) {
	confirmedID := uuid.New()
	cancelledID := uuid.New()

	bookings := []entities.Booking{
		{BookingID: confirmedID, Status: entities.BookingConfirmed},
		{BookingID: cancelledID, Status: entities.BookingCancelled},
	}
	payments := []entities.Payment{
		{PaymentID: uuid.New(), BookingID: confirmedID, Status: entities.PaymentCompleted},
		{PaymentID: uuid.New(), BookingID: cancelledID, Status: entities.PaymentCompleted},
	}

	assert.Empty(t, reconcile.Reconcile(bookings, payments))
}

func TestReconcile_MultipleCompletedPaymentsProduceOneTransition(t *testing.T) {
	bookingID := uuid.New()
	firstPaymentID := uuid.New()

	bookings := []entities.Booking{
		{BookingID: bookingID, Status: entities.BookingPending},
	}
	payments := []entities.Payment{
		{PaymentID: firstPaymentID, BookingID: bookingID, TransactionID: "tx-first", Status: entities.PaymentCompleted},
		{PaymentID: uuid.New(), BookingID: bookingID, TransactionID: "tx-second", Status: entities.PaymentCompleted},
	}

	transitions := reconcile.Reconcile(bookings, payments)

	require.Len(t, transitions, 1)
	assert.Equal(t, firstPaymentID, transitions[0].PaymentID)
	assert.Equal(t, "tx-first", transitions[0].TransactionID)
}

func TestReconcile_RerunAgainstUpdatedSnapshotIsEmpty(t *testing.T) {
	bookingID := uuid.New()

	bookings := []entities.Booking{
		{BookingID: bookingID, Status: entities.BookingPending},
	}
	payments := []entities.Payment{
		{PaymentID: uuid.New(), BookingID: bookingID, Status: entities.PaymentCompleted},
	}

	require.Len(t, reconcile.Reconcile(bookings, payments), 1)

	// the next snapshot reflects the applied transition
	bookings[0].Status = entities.BookingConfirmed

	assert.Empty(t, reconcile.Reconcile(bookings, payments))
}

func TestReconcile_PaymentForUnknownBookingIgnored(t *testing.T) {
	bookings := []entities.Booking{
		{BookingID: uuid.New(), Status: entities.BookingPending},
	}
	payments := []entities.Payment{
		{PaymentID: uuid.New(), BookingID: uuid.New(), Status: entities.PaymentCompleted},
	}

	assert.Empty(t, reconcile.Reconcile(bookings, payments))
}

func TestReconcile_DoesNotMutateInputs(t *testing.T) {
	bookingID := uuid.New()

	bookings := []entities.Booking{
		{BookingID: bookingID, Status: entities.BookingPending},
	}
	payments := []entities.Payment{
		{PaymentID: uuid.New(), BookingID: bookingID, Status: entities.PaymentCompleted},
	}

	reconcile.Reconcile(bookings, payments)

	assert.Equal(t, entities.BookingPending, bookings[0].Status)
	assert.Equal(t, entities.PaymentCompleted, payments[0].Status)
}
