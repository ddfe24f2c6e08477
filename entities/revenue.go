package entities

// EnrichedPayment is a payment decorated with display names joined from
// its booking, event and ticket type. Derived, never persisted. A join
// miss leaves the sentinel "N/A" in the display field.
type EnrichedPayment struct {
	Payment

	EventName      string `json:"event_name"`
	TicketTypeName string `json:"ticket_type_name"`
}
