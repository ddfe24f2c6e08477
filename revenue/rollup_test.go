package revenue_test

import (
	"fmt"
	"testing"
	"time"

	"boxoffice/entities"
	"boxoffice/revenue"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payment(txID string, amount int64, status entities.PaymentStatus, paidAt time.Time) entities.EnrichedPayment {
	return entities.EnrichedPayment{
		Payment: entities.Payment{
			PaymentID:     uuid.New(),
			TransactionID: txID,
			BookingID:     uuid.New(),
			Amount:        amount,
			Status:        status,
			Method:        "card",
			PaidAt:        paidAt,
		},
	}
}

func TestView_WindowsSumMinorUnits(t *testing.T) {
	now := time.Date(2026, time.March, 18, 15, 0, 0, 0, time.Local) // a Wednesday

	payments := []entities.EnrichedPayment{
		payment("tx-1", 10000, entities.PaymentCompleted, now.Add(-time.Hour)),
		payment("tx-2", 20000, entities.PaymentCompleted, now.Add(-2*time.Hour)),
		payment("tx-3", 5000, entities.PaymentCompleted, now.Add(-3*time.Hour)),
	}

	view := revenue.View(payments, revenue.Filter{}, 1, 10, now)

	assert.Equal(t, int64(35000), view.Windows.Total)
	assert.Equal(t, int64(35000), view.Windows.Today)
	assert.Equal(t, int64(35000), view.Windows.ThisWeek)
	assert.Equal(t, int64(35000), view.Windows.ThisMonth)
	assert.Equal(t, "350.00", entities.FormatMinorUnits(view.Windows.Total))
}

func TestView_WindowBoundaries(t *testing.T) {
	// Wednesday; the week began Sunday March 15 at 00:00
	now := time.Date(2026, time.March, 18, 12, 0, 0, 0, time.Local)
	startOfWeek := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.Local)

	payments := []entities.EnrichedPayment{
		payment("tx-on-boundary", 100, entities.PaymentCompleted, startOfWeek),
		payment("tx-before-boundary", 200, entities.PaymentCompleted, startOfWeek.Add(-time.Nanosecond)),
		payment("tx-yesterday", 400, entities.PaymentCompleted, now.AddDate(0, 0, -1)),
		payment("tx-last-month", 800, entities.PaymentCompleted, now.AddDate(0, -1, 0)),
	}

	view := revenue.View(payments, revenue.Filter{}, 1, 10, now)

	assert.Equal(t, int64(1500), view.Windows.Total)
	assert.Equal(t, int64(0), view.Windows.Today)
	assert.Equal(t, int64(500), view.Windows.ThisWeek, "boundary instant itself is in range")
	assert.Equal(t, int64(700), view.Windows.ThisMonth)
}

func TestView_FilterByStatus(t *testing.T) {
	now := time.Now()

	payments := []entities.EnrichedPayment{
		payment("tx-1", 100, entities.PaymentCompleted, now),
		payment("tx-2", 200, entities.PaymentFailed, now),
	}

	view := revenue.View(payments, revenue.Filter{Status: entities.PaymentFailed}, 1, 10, now)

	require.Len(t, view.Items, 1)
	assert.Equal(t, "tx-2", view.Items[0].TransactionID)
	assert.Equal(t, int64(200), view.Windows.Total)
}

func TestView_FilterByMethodSubstring(t *testing.T) {
	now := time.Now()

	credit := payment("tx-1", 100, entities.PaymentCompleted, now)
	credit.Method = "credit_card"
	debit := payment("tx-2", 200, entities.PaymentCompleted, now)
	debit.Method = "debit_card"
	wire := payment("tx-3", 300, entities.PaymentCompleted, now)
	wire.Method = "wire"

	view := revenue.View([]entities.EnrichedPayment{credit, debit, wire}, revenue.Filter{Method: "card"}, 1, 10, now)

	assert.Equal(t, 2, view.TotalCount)
}

func TestView_DateRangeInclusive(t *testing.T) {
	now := time.Now()
	from := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, time.March, 12, 23, 59, 59, 0, time.Local)

	payments := []entities.EnrichedPayment{
		payment("tx-at-from", 100, entities.PaymentCompleted, from),
		payment("tx-at-to", 200, entities.PaymentCompleted, to),
		payment("tx-before", 400, entities.PaymentCompleted, from.Add(-time.Second)),
		payment("tx-after", 800, entities.PaymentCompleted, to.Add(time.Second)),
	}

	view := revenue.View(payments, revenue.Filter{DateFrom: &from, DateTo: &to}, 1, 10, now)

	assert.Equal(t, 2, view.TotalCount)
	assert.Equal(t, int64(300), view.Windows.Total)
}

func TestView_Pagination(t *testing.T) {
	now := time.Now()

	var payments []entities.EnrichedPayment
	for i := 0; i < 23; i++ {
		payments = append(payments, payment(fmt.Sprintf("tx-%02d", i), 100, entities.PaymentCompleted, now.Add(-time.Duration(i)*time.Minute)))
	}

	view := revenue.View(payments, revenue.Filter{}, 1, 5, now)
	assert.Equal(t, 5, view.TotalPages)
	assert.Equal(t, 23, view.TotalCount)
	assert.Len(t, view.Items, 5)

	lastPage := revenue.View(payments, revenue.Filter{}, 5, 5, now)
	assert.Len(t, lastPage.Items, 3)

	clampedHigh := revenue.View(payments, revenue.Filter{}, 99, 5, now)
	assert.Equal(t, 5, clampedHigh.Page)
	assert.Len(t, clampedHigh.Items, 3)

	clampedLow := revenue.View(payments, revenue.Filter{}, -3, 5, now)
	assert.Equal(t, 1, clampedLow.Page)
}

func TestView_EmptySet(t *testing.T) {
	view := revenue.View(nil, revenue.Filter{}, 3, 10, time.Now())

	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 1, view.TotalPages)
	assert.Equal(t, 0, view.TotalCount)
	assert.Empty(t, view.Items)
}

func TestFiltered_DeterministicOrder(t *testing.T) {
	now := time.Now()
	sameInstant := now.Add(-time.Hour)

	payments := []entities.EnrichedPayment{
		payment("tx-b", 100, entities.PaymentCompleted, sameInstant),
		payment("tx-a", 200, entities.PaymentCompleted, sameInstant),
		payment("tx-c", 300, entities.PaymentCompleted, now),
	}

	filtered := revenue.Filtered(payments, revenue.Filter{})

	require.Len(t, filtered, 3)
	assert.Equal(t, "tx-c", filtered[0].TransactionID, "newest first")
	assert.Equal(t, "tx-a", filtered[1].TransactionID, "ties break on transaction id")
	assert.Equal(t, "tx-b", filtered[2].TransactionID)
}
