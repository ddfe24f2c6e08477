package db_test

import (
	"context"
	"testing"
	"time"

	"boxoffice/db"
	"boxoffice/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRepository_WebhookReplayIsIgnored(t *testing.T) {
	conn := getTestDB(t)
	ctx := context.Background()

	repo := db.NewPaymentRepository(&conn)

	payment := entities.Payment{
		PaymentID:     uuid.New(),
		TransactionID: "tx-" + uuid.NewString(),
		BookingID:     uuid.New(),
		Amount:        12500,
		Status:        entities.PaymentCompleted,
		Method:        "credit_card",
		PaidAt:        time.Now().UTC().Truncate(time.Microsecond),
	}

	require.NoError(t, repo.Create(ctx, payment))

	// same transaction id, different payment id: a provider retry
	replay := payment
	replay.PaymentID = uuid.New()
	require.NoError(t, repo.Create(ctx, replay))

	payments, err := repo.List(ctx)
	require.NoError(t, err)

	var matches int
	for _, p := range payments {
		if p.TransactionID == payment.TransactionID {
			matches++
			assert.Equal(t, payment.PaymentID, p.PaymentID)
		}
	}
	assert.Equal(t, 1, matches)
}
