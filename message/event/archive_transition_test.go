package event_test

import (
	"context"
	"encoding/json"
	"testing"

	"boxoffice/entities"
	"boxoffice/message/event"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transitionLogMock struct {
	archived []entities.TransitionRecord
}

func (m *transitionLogMock) Archive(_ context.Context, record entities.TransitionRecord) error {
	m.archived = append(m.archived, record)
	return nil
}

func TestArchiveBookingConfirmed(t *testing.T) {
	mock := &transitionLogMock{}
	handler := event.NewHandler(mock)

	confirmed := entities.BookingConfirmed_v1{
		Header:      entities.NewEventHeader(),
		BookingID:   uuid.New(),
		Quantity:    2,
		TotalAmount: decimal.RequireFromString("50.00"),
	}

	require.NoError(t, handler.ArchiveBookingConfirmed(context.Background(), &confirmed))

	require.Len(t, mock.archived, 1)
	record := mock.archived[0]
	assert.Equal(t, confirmed.Header.ID, record.EventID.String())
	assert.Equal(t, "BookingConfirmed_v1", record.EventName)

	var payload entities.BookingConfirmed_v1
	require.NoError(t, json.Unmarshal(record.Payload, &payload))
	assert.Equal(t, confirmed.BookingID, payload.BookingID)
}

func TestArchiveBookingCancelled(t *testing.T) {
	mock := &transitionLogMock{}
	handler := event.NewHandler(mock)

	cancelled := entities.BookingCancelled_v1{
		Header:    entities.NewEventHeader(),
		BookingID: uuid.New(),
	}

	require.NoError(t, handler.ArchiveBookingCancelled(context.Background(), &cancelled))

	require.Len(t, mock.archived, 1)
	assert.Equal(t, "BookingCancelled_v1", mock.archived[0].EventName)
}
