package db

import (
	"context"
	"fmt"

	"boxoffice/entities"

	"github.com/google/uuid"
)

type IVenueRepository interface {
	Create(ctx context.Context, venue entities.Venue) (entities.VenueCreateResponse, error)
	List(ctx context.Context) ([]entities.Venue, error)
}

type VenueRepository struct {
	db *DB
}

func NewVenueRepository(db *DB) VenueRepository {
	if db == nil {
		panic("db is nil")
	}
	return VenueRepository{
		db: db,
	}
}

func (vr VenueRepository) Create(ctx context.Context, venue entities.Venue) (entities.VenueCreateResponse, error) {
	var venueID uuid.UUID

	err := vr.db.Conn.QueryRowContext(ctx, `
		INSERT INTO venues (name)
		VALUES ($1)
		RETURNING venue_id`,
		venue.Name,
	).Scan(&venueID)
	if err != nil {
		return entities.VenueCreateResponse{}, fmt.Errorf("could not save venue: %w", err)
	}

	return entities.VenueCreateResponse{VenueID: venueID}, nil
}

func (vr VenueRepository) List(ctx context.Context) ([]entities.Venue, error) {
	var venues []entities.Venue
	err := vr.db.Conn.SelectContext(ctx, &venues, `
		SELECT venue_id, name
		FROM venues
		ORDER BY name, venue_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("could not list venues: %w", err)
	}

	return venues, nil
}
