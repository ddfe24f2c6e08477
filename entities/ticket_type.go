package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TicketType is a price tier within one event. Price is in major units.
type TicketType struct {
	TicketTypeID uuid.UUID       `json:"ticket_type_id" db:"ticket_type_id"`
	EventID      uuid.UUID       `json:"event_id" db:"event_id"`
	Name         string          `json:"name" db:"name"`
	Price        decimal.Decimal `json:"price" db:"price"`
}

type TicketTypeCreateResponse struct {
	TicketTypeID uuid.UUID `json:"ticket_type_id"`
}
