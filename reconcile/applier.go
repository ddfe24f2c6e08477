package reconcile

import (
	"context"
	"sync"
	"sync/atomic"

	"boxoffice/metrics"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

// BookingConfirmer applies a single transition. The implementation must
// be idempotent: applying a transition whose booking already left the
// pending status is a no-op, not an error.
type BookingConfirmer interface {
	Confirm(ctx context.Context, transition Transition) error
}

type Applier struct {
	bookings BookingConfirmer
}

func NewApplier(bookings BookingConfirmer) Applier {
	if bookings == nil {
		panic("bookings is nil")
	}
	return Applier{
		bookings: bookings,
	}
}

// Apply issues the booking-update command for every transition.
// Transitions are independent, so they are dispatched concurrently with
// no ordering between them. A failed update is logged and skipped; the
// booking stays pending and is retried when the next snapshot is
// reconciled. Apply returns the number of transitions that succeeded.
func (a Applier) Apply(ctx context.Context, transitions []Transition) int {
	var applied atomic.Int64

	var wg sync.WaitGroup
	for _, transition := range transitions {
		transition := transition
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := a.bookings.Confirm(ctx, transition)
			if err != nil {
				log.FromContext(ctx).
					WithField("booking_id", transition.BookingID).
					WithField("error", err.Error()).
					Error("Could not confirm booking, leaving it pending")
				metrics.TransitionsFailed.Inc()
				return
			}

			applied.Add(1)
			metrics.TransitionsApplied.Inc()
		}()
	}
	wg.Wait()

	return int(applied.Load())
}
