package db

import (
	"context"
	"fmt"

	"boxoffice/entities"

	"github.com/google/uuid"
)

type IEventRepository interface {
	Create(ctx context.Context, event entities.Event) (entities.EventCreateResponse, error)
	List(ctx context.Context) ([]entities.Event, error)
}

type EventRepository struct {
	db *DB
}

func NewEventRepository(db *DB) EventRepository {
	if db == nil {
		panic("db is nil")
	}
	return EventRepository{
		db: db,
	}
}

func (er EventRepository) Create(ctx context.Context, event entities.Event) (entities.EventCreateResponse, error) {
	var eventID uuid.UUID

	err := er.db.Conn.QueryRowContext(ctx, `
		INSERT INTO events (title, venue_id)
		VALUES ($1, $2)
		RETURNING event_id`,
		event.Title, event.VenueID,
	).Scan(&eventID)
	if err != nil {
		return entities.EventCreateResponse{}, fmt.Errorf("could not save event: %w", err)
	}

	return entities.EventCreateResponse{EventID: eventID}, nil
}

func (er EventRepository) List(ctx context.Context) ([]entities.Event, error) {
	var events []entities.Event
	err := er.db.Conn.SelectContext(ctx, &events, `
		SELECT event_id, title, venue_id
		FROM events
		ORDER BY title, event_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("could not list events: %w", err)
	}

	return events, nil
}
