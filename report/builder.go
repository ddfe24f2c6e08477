package report

import (
	"context"
	"errors"

	"boxoffice/entities"
	"boxoffice/metrics"
	"boxoffice/session"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// UnknownVenue is used when an event references a venue that is not in
// the snapshot. A missing venue is not fatal.
const UnknownVenue = "Unknown Venue"

// DataSource provides the per-event fetches. Both fetches may fail with
// session.ErrAuthExpired, which aborts the whole run; any other error is
// scoped to its event.
type DataSource interface {
	BookingsByEvent(ctx context.Context, eventID uuid.UUID) ([]entities.Booking, error)
	TicketTypesByEvent(ctx context.Context, eventID uuid.UUID) ([]entities.TicketType, error)
}

type Builder struct {
	src DataSource
}

func NewBuilder(src DataSource) Builder {
	if src == nil {
		panic("src is nil")
	}
	return Builder{
		src: src,
	}
}

// Build produces one report per event, preserving input order. Events
// whose fetches fail with a non-auth error are logged and skipped; an
// auth failure on any event cancels the in-flight fetches of the others
// and fails the whole run with session.ErrAuthExpired; no partial list
// is returned in that case.
func (b Builder) Build(ctx context.Context, events []entities.Event, venues []entities.Venue) ([]entities.EventReport, error) {
	venueNames := make(map[uuid.UUID]string, len(venues))
	for _, v := range venues {
		venueNames[v.VenueID] = v.Name
	}

	reports := make([]*entities.EventReport, len(events))

	g, ctx := errgroup.WithContext(ctx)
	for i, ev := range events {
		i, ev := i, ev
		g.Go(func() error {
			report, err := b.buildEvent(ctx, ev, venueNames)
			if err != nil {
				if errors.Is(err, session.ErrAuthExpired) {
					return err
				}
				log.FromContext(ctx).
					WithField("event_id", ev.EventID).
					WithField("error", err.Error()).
					Warn("Skipping event in sales report")
				metrics.ReportEventsSkipped.Inc()
				return nil
			}

			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]entities.EventReport, 0, len(events))
	for _, r := range reports {
		if r != nil {
			out = append(out, *r)
		}
	}

	return out, nil
}

func (b Builder) buildEvent(ctx context.Context, event entities.Event, venueNames map[uuid.UUID]string) (*entities.EventReport, error) {
	venueName, ok := venueNames[event.VenueID]
	if !ok {
		venueName = UnknownVenue
	}

	bookings, err := b.src.BookingsByEvent(ctx, event.EventID)
	if err != nil {
		return nil, err
	}
	ticketTypes, err := b.src.TicketTypesByEvent(ctx, event.EventID)
	if err != nil {
		return nil, err
	}

	report := entities.EventReport{
		EventID:      event.EventID,
		EventName:    event.Title,
		VenueName:    venueName,
		Breakdown:    []entities.TicketBreakdown{},
		TotalRevenue: decimal.Zero,
	}

	quantities := make(map[uuid.UUID]int)
	for _, booking := range bookings {
		if booking.Status != entities.BookingConfirmed {
			continue
		}
		quantities[booking.TicketTypeID] += booking.Quantity
		report.HasBookings = true
	}

	// no confirmed bookings: the event is still listed, with an empty
	// breakdown and zero totals
	if !report.HasBookings {
		return &report, nil
	}

	for _, ticketType := range ticketTypes {
		quantity := quantities[ticketType.TicketTypeID]
		revenue := ticketType.Price.Mul(decimal.NewFromInt(int64(quantity)))

		report.Breakdown = append(report.Breakdown, entities.TicketBreakdown{
			TicketTypeName: ticketType.Name,
			Quantity:       quantity,
			Revenue:        revenue,
		})
		report.TotalTickets += quantity
		report.TotalRevenue = report.TotalRevenue.Add(revenue)
	}

	return &report, nil
}

// Totals sums tickets and revenue across the produced reports. The list
// may be partial if events were skipped.
func Totals(reports []entities.EventReport) entities.ReportTotals {
	totals := entities.ReportTotals{
		TotalRevenue: decimal.Zero,
	}
	for _, r := range reports {
		totals.TotalTickets += r.TotalTickets
		totals.TotalRevenue = totals.TotalRevenue.Add(r.TotalRevenue)
	}
	return totals
}
