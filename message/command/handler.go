package command

import (
	"context"

	"boxoffice/entities"
	"boxoffice/reconcile"
)

type BookingsSnapshot interface {
	List(ctx context.Context) ([]entities.Booking, error)
}

type PaymentsSnapshot interface {
	List(ctx context.Context) ([]entities.Payment, error)
}

type Handler struct {
	bookings BookingsSnapshot
	payments PaymentsSnapshot
	applier  reconcile.Applier
}

func NewHandler(bookings BookingsSnapshot, payments PaymentsSnapshot, applier reconcile.Applier) Handler {
	if bookings == nil {
		panic("bookings is required")
	}
	if payments == nil {
		panic("payments is required")
	}

	return Handler{
		bookings: bookings,
		payments: payments,
		applier:  applier,
	}
}
