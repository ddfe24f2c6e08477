package http

import (
	"errors"
	"fmt"
	"net/http"

	"boxoffice/db"
	"boxoffice/entities"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func (h Handler) PostBookings(c echo.Context) error {
	var bookingRequest entities.Booking

	err := c.Bind(&bookingRequest)
	if err != nil {
		return err
	}

	if bookingRequest.Quantity < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "quantity must be greater than 0")
	}

	ticketType, err := h.ticketTypeRepo.ByID(c.Request().Context(), bookingRequest.TicketTypeID)
	if errors.Is(err, db.ErrTicketTypeNotFound) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown ticket type")
	}
	if err != nil {
		return err
	}

	bookingRequest.BookingID = uuid.New()
	bookingRequest.EventID = ticketType.EventID
	bookingRequest.TotalAmount = ticketType.Price.Mul(decimal.NewFromInt(int64(bookingRequest.Quantity)))

	bookingResponse, err := h.bookingRepo.Create(c.Request().Context(), bookingRequest)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, bookingResponse)
}

func (h Handler) PutBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("booking_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	var bookingRequest entities.Booking

	err = c.Bind(&bookingRequest)
	if err != nil {
		return err
	}

	if bookingRequest.Quantity < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "quantity must be greater than 0")
	}

	ticketType, err := h.ticketTypeRepo.ByID(c.Request().Context(), bookingRequest.TicketTypeID)
	if errors.Is(err, db.ErrTicketTypeNotFound) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown ticket type")
	}
	if err != nil {
		return err
	}

	bookingRequest.BookingID = bookingID
	bookingRequest.EventID = ticketType.EventID
	bookingRequest.TotalAmount = ticketType.Price.Mul(decimal.NewFromInt(int64(bookingRequest.Quantity)))

	err = h.bookingRepo.Update(c.Request().Context(), bookingRequest)
	if errors.Is(err, db.ErrBookingNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "booking not found")
	}
	if errors.Is(err, db.ErrBookingFinal) {
		return echo.NewHTTPError(http.StatusConflict, "booking already finalized")
	}
	if err != nil {
		return fmt.Errorf("could not update booking: %w", err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h Handler) DeleteBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("booking_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	err = h.bookingRepo.Cancel(c.Request().Context(), bookingID)
	if errors.Is(err, db.ErrBookingNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "booking not found")
	}
	if errors.Is(err, db.ErrBookingFinal) {
		return echo.NewHTTPError(http.StatusConflict, "booking already finalized")
	}
	if err != nil {
		return fmt.Errorf("could not cancel booking: %w", err)
	}

	return c.NoContent(http.StatusNoContent)
}
