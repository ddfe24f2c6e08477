package revenue

import (
	"boxoffice/entities"

	"github.com/google/uuid"
)

// JoinMiss is substituted for a display field whose join target could
// not be found. Joins are best-effort and never fail the view.
const JoinMiss = "N/A"

// Decorate joins every payment to its booking and from there to the
// booking's event and ticket type to pick up display names.
func Decorate(
	payments []entities.Payment,
	bookings []entities.Booking,
	events []entities.Event,
	ticketTypes []entities.TicketType,
) []entities.EnrichedPayment {
	bookingsByID := make(map[uuid.UUID]entities.Booking, len(bookings))
	for _, b := range bookings {
		bookingsByID[b.BookingID] = b
	}
	eventTitles := make(map[uuid.UUID]string, len(events))
	for _, e := range events {
		eventTitles[e.EventID] = e.Title
	}
	ticketTypeNames := make(map[uuid.UUID]string, len(ticketTypes))
	for _, t := range ticketTypes {
		ticketTypeNames[t.TicketTypeID] = t.Name
	}

	enriched := make([]entities.EnrichedPayment, 0, len(payments))
	for _, p := range payments {
		e := entities.EnrichedPayment{
			Payment:        p,
			EventName:      JoinMiss,
			TicketTypeName: JoinMiss,
		}

		if booking, ok := bookingsByID[p.BookingID]; ok {
			if title, ok := eventTitles[booking.EventID]; ok {
				e.EventName = title
			}
			if name, ok := ticketTypeNames[booking.TicketTypeID]; ok {
				e.TicketTypeName = name
			}
		}

		enriched = append(enriched, e)
	}

	return enriched
}
