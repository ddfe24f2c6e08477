package entities

import "github.com/google/uuid"

type Venue struct {
	VenueID uuid.UUID `json:"venue_id" db:"venue_id"`
	Name    string    `json:"name" db:"name"`
}

type VenueCreateResponse struct {
	VenueID uuid.UUID `json:"venue_id"`
}
