package tests

import (
	"context"
	"os"
	"testing"
	"time"

	"boxoffice/db"
	"boxoffice/message"
	"boxoffice/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComponent drives the whole service over HTTP: catalog setup, a
// booking, a payment webhook, then waits for reconciliation to confirm
// the booking and checks the sales report reflects it.
func TestComponent(t *testing.T) {
	postgresURL := os.Getenv("POSTGRES_URL")
	redisAddr := os.Getenv("REDIS_ADDR")
	if postgresURL == "" || redisAddr == "" {
		t.Skip("POSTGRES_URL and REDIS_ADDR must be set")
	}

	conn, err := db.NewDBConn(postgresURL)
	require.NoError(t, err)
	defer conn.Close()
	conn.MigrateSchema()

	redisClient := message.NewRedisClient(redisAddr)
	defer redisClient.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := service.New(redisClient, conn, service.Config{
		BindAddr:          ":8080",
		SessionTTL:        time.Minute,
		ReconcileInterval: time.Second,
	})

	go func() {
		assert.NoError(t, svc.Run(ctx))
	}()
	waitForHttpServer(t)

	token := startSession(t)

	venueID := createVenue(t, token, "Component Hall")
	eventID := createEvent(t, token, "Component Gala", venueID)
	ticketTypeID := createTicketType(t, token, eventID, "Standard", "25.00")

	bookingID := createBooking(t, token, ticketTypeID, 2)

	sendPaymentWebhook(t, token, paymentWebhook{
		TransactionID: "tx-component-" + bookingID,
		BookingID:     bookingID,
		Amount:        5000,
		Status:        "completed",
		Method:        "credit_card",
		PaidAt:        time.Now(),
	})

	assertBookingConfirmed(t, conn, bookingID)
	assertReportShowsSale(t, token, eventID, 2, "50")

	view := getPaymentsView(t, token, "status=completed")
	assert.GreaterOrEqual(t, view.Windows.Total, int64(5000))
}
