package report_test

import (
	"context"
	"errors"
	"testing"

	"boxoffice/entities"
	"boxoffice/report"
	"boxoffice/session"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dataSourceMock struct {
	bookings    map[uuid.UUID][]entities.Booking
	ticketTypes map[uuid.UUID][]entities.TicketType
	failWith    map[uuid.UUID]error
}

func (m *dataSourceMock) BookingsByEvent(_ context.Context, eventID uuid.UUID) ([]entities.Booking, error) {
	if err, ok := m.failWith[eventID]; ok {
		return nil, err
	}
	return m.bookings[eventID], nil
}

func (m *dataSourceMock) TicketTypesByEvent(_ context.Context, eventID uuid.UUID) ([]entities.TicketType, error) {
	if err, ok := m.failWith[eventID]; ok {
		return nil, err
	}
	return m.ticketTypes[eventID], nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBuild_BreakdownAndTotals(t *testing.T) {
	eventID := uuid.New()
	venueID := uuid.New()
	standardID := uuid.New()
	vipID := uuid.New()

	src := &dataSourceMock{
		bookings: map[uuid.UUID][]entities.Booking{
			eventID: {
				{BookingID: uuid.New(), TicketTypeID: standardID, Quantity: 3, Status: entities.BookingConfirmed},
				{BookingID: uuid.New(), TicketTypeID: vipID, Quantity: 2, Status: entities.BookingConfirmed},
				{BookingID: uuid.New(), TicketTypeID: standardID, Quantity: 5, Status: entities.BookingPending},
				{BookingID: uuid.New(), TicketTypeID: vipID, Quantity: 4, Status: entities.BookingCancelled},
			},
		},
		ticketTypes: map[uuid.UUID][]entities.TicketType{
			eventID: {
				{TicketTypeID: standardID, Name: "Standard", Price: price("10")},
				{TicketTypeID: vipID, Name: "VIP", Price: price("15")},
			},
		},
	}

	events := []entities.Event{{EventID: eventID, Title: "Spring Gala", VenueID: venueID}}
	venues := []entities.Venue{{VenueID: venueID, Name: "Main Hall"}}

	reports, err := report.NewBuilder(src).Build(context.Background(), events, venues)
	require.NoError(t, err)
	require.Len(t, reports, 1)

	r := reports[0]
	assert.Equal(t, "Spring Gala", r.EventName)
	assert.Equal(t, "Main Hall", r.VenueName)
	assert.True(t, r.HasBookings)
	assert.Equal(t, 5, r.TotalTickets)
	assert.True(t, r.TotalRevenue.Equal(price("60")), "got %s", r.TotalRevenue)

	require.Len(t, r.Breakdown, 2)
	assert.Equal(t, "Standard", r.Breakdown[0].TicketTypeName)
	assert.Equal(t, 3, r.Breakdown[0].Quantity)
	assert.True(t, r.Breakdown[0].Revenue.Equal(price("30")))
	assert.Equal(t, "VIP", r.Breakdown[1].TicketTypeName)
	assert.Equal(t, 2, r.Breakdown[1].Quantity)
	assert.True(t, r.Breakdown[1].Revenue.Equal(price("30")))
}

func TestBuild_ZeroSalesTicketTypeStillListed(t *testing.T) {
	eventID := uuid.New()
	soldID := uuid.New()
	unsoldID := uuid.New()

	src := &dataSourceMock{
		bookings: map[uuid.UUID][]entities.Booking{
			eventID: {
				{BookingID: uuid.New(), TicketTypeID: soldID, Quantity: 1, Status: entities.BookingConfirmed},
			},
		},
		ticketTypes: map[uuid.UUID][]entities.TicketType{
			eventID: {
				{TicketTypeID: soldID, Name: "Standard", Price: price("10")},
				{TicketTypeID: unsoldID, Name: "VIP", Price: price("50")},
			},
		},
	}

	reports, err := report.NewBuilder(src).Build(
		context.Background(),
		[]entities.Event{{EventID: eventID, Title: "Quiet Night"}},
		nil,
	)
	require.NoError(t, err)
	require.Len(t, reports, 1)

	require.Len(t, reports[0].Breakdown, 2)
	assert.Equal(t, 0, reports[0].Breakdown[1].Quantity)
	assert.True(t, reports[0].Breakdown[1].Revenue.IsZero())
}

func TestBuild_EventWithoutBookingsStillListed(t *testing.T) {
	eventID := uuid.New()

	src := &dataSourceMock{
		ticketTypes: map[uuid.UUID][]entities.TicketType{
			eventID: {
				{TicketTypeID: uuid.New(), Name: "Standard", Price: price("10")},
			},
		},
	}

	reports, err := report.NewBuilder(src).Build(
		context.Background(),
		[]entities.Event{{EventID: eventID, Title: "Empty Show"}},
		nil,
	)
	require.NoError(t, err)
	require.Len(t, reports, 1)

	r := reports[0]
	assert.False(t, r.HasBookings)
	assert.Empty(t, r.Breakdown)
	assert.NotNil(t, r.Breakdown)
	assert.Equal(t, 0, r.TotalTickets)
	assert.True(t, r.TotalRevenue.IsZero())
}

func TestBuild_UnknownVenue(t *testing.T) {
	eventID := uuid.New()

	src := &dataSourceMock{}

	reports, err := report.NewBuilder(src).Build(
		context.Background(),
		[]entities.Event{{EventID: eventID, Title: "Orphan Event", VenueID: uuid.New()}},
		[]entities.Venue{{VenueID: uuid.New(), Name: "Somewhere Else"}},
	)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, report.UnknownVenue, reports[0].VenueName)
}

func TestBuild_AuthExpiredFailsWholeRun(t *testing.T) {
	okEvent := uuid.New()
	badEvent := uuid.New()

	src := &dataSourceMock{
		failWith: map[uuid.UUID]error{
			badEvent: session.ErrAuthExpired,
		},
	}

	reports, err := report.NewBuilder(src).Build(
		context.Background(),
		[]entities.Event{
			{EventID: okEvent, Title: "First"},
			{EventID: badEvent, Title: "Second"},
		},
		nil,
	)

	require.ErrorIs(t, err, session.ErrAuthExpired)
	assert.Nil(t, reports)
}

func TestBuild_FailedEventSkippedOrderPreserved(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	third := uuid.New()

	src := &dataSourceMock{
		failWith: map[uuid.UUID]error{
			second: errors.New("upstream timeout"),
		},
	}

	reports, err := report.NewBuilder(src).Build(
		context.Background(),
		[]entities.Event{
			{EventID: first, Title: "First"},
			{EventID: second, Title: "Second"},
			{EventID: third, Title: "Third"},
		},
		nil,
	)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "First", reports[0].EventName)
	assert.Equal(t, "Third", reports[1].EventName)
}

func TestTotals(t *testing.T) {
	reports := []entities.EventReport{
		{TotalTickets: 5, TotalRevenue: price("60")},
		{TotalTickets: 2, TotalRevenue: price("80.50")},
		{TotalTickets: 0, TotalRevenue: decimal.Zero},
	}

	totals := report.Totals(reports)

	assert.Equal(t, 7, totals.TotalTickets)
	assert.True(t, totals.TotalRevenue.Equal(price("140.50")), "got %s", totals.TotalRevenue)
}
