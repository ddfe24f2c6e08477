package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"boxoffice/db"
	"boxoffice/entities"
	"boxoffice/revenue"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://localhost:8080"

type paymentWebhook struct {
	TransactionID string    `json:"transaction_id"`
	BookingID     string    `json:"booking_id"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
	Method        string    `json:"method"`
	PaidAt        time.Time `json:"paid_at"`
}

func waitForHttpServer(t *testing.T) {
	t.Helper()

	require.EventuallyWithT(
		t,
		func(t *assert.CollectT) {
			resp, err := http.Get(baseURL + "/health")
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode)
		},
		time.Second*10,
		time.Millisecond*50,
	)
}

func doJSON(t *testing.T, method, path, token string, body any, out any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, baseURL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp
}

func startSession(t *testing.T) string {
	t.Helper()

	var response struct {
		Token string `json:"token"`
	}
	resp := doJSON(t, http.MethodPost, "/sessions", "", map[string]string{"admin_id": "component-test"}, &response)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, response.Token)

	return response.Token
}

func createVenue(t *testing.T, token, name string) string {
	t.Helper()

	var response struct {
		VenueID string `json:"venue_id"`
	}
	resp := doJSON(t, http.MethodPost, "/venues", token, map[string]string{"name": name}, &response)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	return response.VenueID
}

func createEvent(t *testing.T, token, title, venueID string) string {
	t.Helper()

	var response struct {
		EventID string `json:"event_id"`
	}
	resp := doJSON(t, http.MethodPost, "/events", token, map[string]string{
		"title":    title,
		"venue_id": venueID,
	}, &response)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	return response.EventID
}

func createTicketType(t *testing.T, token, eventID, name, price string) string {
	t.Helper()

	var response struct {
		TicketTypeID string `json:"ticket_type_id"`
	}
	resp := doJSON(t, http.MethodPost, "/ticket-types", token, map[string]string{
		"event_id": eventID,
		"name":     name,
		"price":    price,
	}, &response)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	return response.TicketTypeID
}

func createBooking(t *testing.T, token, ticketTypeID string, quantity int) string {
	t.Helper()

	var response struct {
		BookingID string `json:"booking_id"`
	}
	resp := doJSON(t, http.MethodPost, "/bookings", token, map[string]any{
		"ticket_type_id": ticketTypeID,
		"owner_id":       uuid.NewString(),
		"quantity":       quantity,
	}, &response)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	return response.BookingID
}

func sendPaymentWebhook(t *testing.T, token string, webhook paymentWebhook) {
	t.Helper()

	resp := doJSON(t, http.MethodPost, "/payments", token, webhook, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func assertBookingConfirmed(t *testing.T, conn db.DB, bookingID string) {
	t.Helper()

	id, err := uuid.Parse(bookingID)
	require.NoError(t, err)

	repo := db.NewBookingRepository(&conn)

	require.EventuallyWithT(
		t,
		func(t *assert.CollectT) {
			booking, err := repo.ByID(context.Background(), id)
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, entities.BookingConfirmed, booking.Status)
		},
		time.Second*15,
		time.Millisecond*100,
	)
}

func assertReportShowsSale(t *testing.T, token, eventID string, tickets int, revenueMajor string) {
	t.Helper()

	require.EventuallyWithT(
		t,
		func(ct *assert.CollectT) {
			var response struct {
				Reports []entities.EventReport `json:"reports"`
			}
			resp := doJSON(t, http.MethodGet, "/reports/sales", token, nil, &response)
			if !assert.Equal(ct, http.StatusOK, resp.StatusCode) {
				return
			}

			for _, report := range response.Reports {
				if report.EventID.String() != eventID {
					continue
				}
				assert.Equal(ct, tickets, report.TotalTickets)
				assert.True(ct, report.TotalRevenue.Equal(decimal.RequireFromString(revenueMajor)))
				return
			}
			assert.Fail(ct, "event not in report", eventID)
		},
		time.Second*15,
		time.Millisecond*200,
	)
}

func getPaymentsView(t *testing.T, token, query string) revenue.PagedView {
	t.Helper()

	var view revenue.PagedView
	resp := doJSON(t, http.MethodGet, "/payments?"+query, token, nil, &view)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	return view
}
