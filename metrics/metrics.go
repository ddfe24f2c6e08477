package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TransitionsApplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boxoffice_booking_transitions_applied_total",
		Help: "Bookings advanced from pending to confirmed by reconciliation.",
	})

	TransitionsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boxoffice_booking_transitions_failed_total",
		Help: "Booking-update commands rejected during reconciliation; these bookings stay pending and are retried on the next snapshot.",
	})

	ReportEventsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boxoffice_report_events_skipped_total",
		Help: "Events skipped in a sales report run because their per-event fetch failed with a non-auth error.",
	})
)
