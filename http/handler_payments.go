package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"boxoffice/entities"
	"boxoffice/revenue"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type paymentWebhookRequest struct {
	TransactionID string    `json:"transaction_id"`
	BookingID     uuid.UUID `json:"booking_id"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
	Method        string    `json:"method"`
	PaidAt        time.Time `json:"paid_at"`
}

// PostPayments ingests a payment notification from the payment provider.
// Replays of the same transaction id are accepted and ignored.
func (h Handler) PostPayments(c echo.Context) error {
	var request paymentWebhookRequest

	err := c.Bind(&request)
	if err != nil {
		return err
	}

	if request.TransactionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "transaction_id is required")
	}
	if request.Amount < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "amount must not be negative")
	}

	status := entities.PaymentStatus(request.Status)
	switch status {
	case entities.PaymentPending, entities.PaymentCompleted, entities.PaymentFailed:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown payment status: "+request.Status)
	}

	paidAt := request.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now()
	}

	err = h.paymentRepo.Create(c.Request().Context(), entities.Payment{
		PaymentID:     uuid.New(),
		TransactionID: request.TransactionID,
		BookingID:     request.BookingID,
		Amount:        request.Amount,
		Status:        status,
		Method:        request.Method,
		PaidAt:        paidAt,
	})
	if err != nil {
		return fmt.Errorf("could not store payment: %w", err)
	}

	cmd := entities.ReconcileBookings{
		Header: entities.NewEventHeaderWithIdempotencyKey(request.TransactionID),
	}
	if err := h.cmdBus.Send(c.Request().Context(), cmd); err != nil {
		return fmt.Errorf("could not send reconcile command: %w", err)
	}

	return c.NoContent(http.StatusCreated)
}

func (h Handler) GetPayments(c echo.Context) error {
	filter, err := paymentFilterFromQuery(c)
	if err != nil {
		return err
	}

	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid page: "+raw)
		}
	}

	pageSize := revenue.DefaultPageSize
	if raw := c.QueryParam("page_size"); raw != "" {
		pageSize, err = strconv.Atoi(raw)
		if err != nil || pageSize < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid page_size: "+raw)
		}
	}

	enriched, err := h.enrichedPayments(c)
	if err != nil {
		return err
	}

	view := revenue.View(enriched, filter, page, pageSize, time.Now())

	return c.JSON(http.StatusOK, view)
}

func (h Handler) GetPaymentsExport(c echo.Context) error {
	filter, err := paymentFilterFromQuery(c)
	if err != nil {
		return err
	}

	enriched, err := h.enrichedPayments(c)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="payments.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	return revenue.WriteCSV(c.Response(), enriched, filter)
}

func (h Handler) enrichedPayments(c echo.Context) ([]entities.EnrichedPayment, error) {
	ctx := c.Request().Context()

	payments, err := h.paymentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list payments: %w", err)
	}
	bookings, err := h.bookingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list bookings: %w", err)
	}
	events, err := h.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list events: %w", err)
	}
	ticketTypes, err := h.ticketTypeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list ticket types: %w", err)
	}

	return revenue.Decorate(payments, bookings, events, ticketTypes), nil
}

func paymentFilterFromQuery(c echo.Context) (revenue.Filter, error) {
	filter := revenue.Filter{
		Status: entities.PaymentStatus(c.QueryParam("status")),
		Method: c.QueryParam("method"),
	}

	if raw := c.QueryParam("from"); raw != "" {
		from, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return revenue.Filter{}, echo.NewHTTPError(http.StatusBadRequest, "invalid from date: "+raw)
		}
		filter.DateFrom = &from
	}

	if raw := c.QueryParam("to"); raw != "" {
		to, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return revenue.Filter{}, echo.NewHTTPError(http.StatusBadRequest, "invalid to date: "+raw)
		}
		// the whole day is in range
		to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.DateTo = &to
	}

	return filter, nil
}
