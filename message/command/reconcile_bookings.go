package command

import (
	"context"
	"fmt"

	"boxoffice/entities"
	"boxoffice/reconcile"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/sirupsen/logrus"
)

// ReconcileBookings loads the current snapshot pair and applies the
// transitions it implies. If either snapshot cannot be loaded the run
// aborts before any update is attempted. Individual update failures do
// not fail the run: those bookings stay pending and the next snapshot
// picks them up again.
func (h Handler) ReconcileBookings(ctx context.Context, cmd *entities.ReconcileBookings) error {
	bookings, err := h.bookings.List(ctx)
	if err != nil {
		return fmt.Errorf("could not load bookings snapshot: %w", err)
	}
	payments, err := h.payments.List(ctx)
	if err != nil {
		return fmt.Errorf("could not load payments snapshot: %w", err)
	}

	transitions := reconcile.Reconcile(bookings, payments)
	if len(transitions) == 0 {
		return nil
	}

	applied := h.applier.Apply(ctx, transitions)

	log.FromContext(ctx).WithFields(logrus.Fields{
		"transitions": len(transitions),
		"applied":     applied,
	}).Info("Reconciled bookings snapshot")

	return nil
}
