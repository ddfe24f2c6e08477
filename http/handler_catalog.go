package http

import (
	"net/http"

	"boxoffice/entities"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func (h Handler) PostVenues(c echo.Context) error {
	var venueRequest entities.Venue

	err := c.Bind(&venueRequest)
	if err != nil {
		return err
	}

	if venueRequest.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	venueResponse, err := h.venueRepo.Create(c.Request().Context(), venueRequest)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, venueResponse)
}

func (h Handler) PostEvents(c echo.Context) error {
	var eventRequest entities.Event

	err := c.Bind(&eventRequest)
	if err != nil {
		return err
	}

	if eventRequest.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	eventResponse, err := h.eventRepo.Create(c.Request().Context(), eventRequest)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, eventResponse)
}

type ticketTypeRequest struct {
	EventID uuid.UUID `json:"event_id"`
	Name    string    `json:"name"`
	Price   string    `json:"price"`
}

func (h Handler) PostTicketTypes(c echo.Context) error {
	var request ticketTypeRequest

	err := c.Bind(&request)
	if err != nil {
		return err
	}

	if request.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	price, err := decimal.NewFromString(request.Price)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid price: "+request.Price)
	}
	if price.IsNegative() {
		return echo.NewHTTPError(http.StatusBadRequest, "price must not be negative")
	}

	response, err := h.ticketTypeRepo.Create(c.Request().Context(), entities.TicketType{
		EventID: request.EventID,
		Name:    request.Name,
		Price:   price,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, response)
}
