package entities

import "github.com/google/uuid"

type Event struct {
	EventID uuid.UUID `json:"event_id" db:"event_id"`
	Title   string    `json:"title" db:"title"`
	VenueID uuid.UUID `json:"venue_id" db:"venue_id"`
}

type EventCreateResponse struct {
	EventID uuid.UUID `json:"event_id"`
}
