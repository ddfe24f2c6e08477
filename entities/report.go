package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TicketBreakdown is the per-ticket-type sales line inside one event's
// report. Ticket types with zero confirmed sales are still listed.
type TicketBreakdown struct {
	TicketTypeName string          `json:"ticket_type_name"`
	Quantity       int             `json:"quantity"`
	Revenue        decimal.Decimal `json:"revenue"`
}

// EventReport is recomputed on every aggregation run and never persisted.
type EventReport struct {
	EventID      uuid.UUID         `json:"event_id"`
	EventName    string            `json:"event_name"`
	VenueName    string            `json:"venue_name"`
	Breakdown    []TicketBreakdown `json:"ticket_breakdown"`
	TotalTickets int               `json:"total_tickets"`
	TotalRevenue decimal.Decimal   `json:"total_revenue"`
	HasBookings  bool              `json:"has_bookings"`
}

// ReportTotals are the platform-wide grand totals over a (possibly
// partial) list of event reports.
type ReportTotals struct {
	TotalTickets int             `json:"total_tickets"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
