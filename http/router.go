package http

import (
	"net/http"

	"boxoffice/session"

	libHttp "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewHttpRouter(
	cmdBus *cqrs.CommandBus,
	sessions SessionStore,
	eventData session.EventData,
	venueRepo VenueRepository,
	eventRepo EventRepository,
	ticketTypeRepo TicketTypeRepository,
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
) *echo.Echo {
	e := libHttp.NewEcho()

	handler := Handler{
		cmdBus:         cmdBus,
		sessions:       sessions,
		eventData:      eventData,
		venueRepo:      venueRepo,
		eventRepo:      eventRepo,
		ticketTypeRepo: ticketTypeRepo,
		bookingRepo:    bookingRepo,
		paymentRepo:    paymentRepo,
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST("/sessions", handler.PostSessions)

	admin := e.Group("", handler.requireSession)

	admin.DELETE("/sessions", handler.DeleteSessions)

	admin.POST("/venues", handler.PostVenues)
	admin.POST("/events", handler.PostEvents)
	admin.POST("/ticket-types", handler.PostTicketTypes)

	admin.POST("/bookings", handler.PostBookings)
	admin.PUT("/bookings/:booking_id", handler.PutBooking)
	admin.DELETE("/bookings/:booking_id", handler.DeleteBooking)

	admin.POST("/payments", handler.PostPayments)
	admin.GET("/payments", handler.GetPayments)
	admin.GET("/payments/export", handler.GetPaymentsExport)

	admin.POST("/reconcile", handler.PostReconcile)
	admin.GET("/reports/sales", handler.GetSalesReport)
	admin.GET("/reports/sales/export", handler.GetSalesReportExport)

	return e
}
