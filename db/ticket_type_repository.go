package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"boxoffice/entities"

	"github.com/google/uuid"
)

type ITicketTypeRepository interface {
	Create(ctx context.Context, ticketType entities.TicketType) (entities.TicketTypeCreateResponse, error)
	ByID(ctx context.Context, ticketTypeID uuid.UUID) (entities.TicketType, error)
	ByEvent(ctx context.Context, eventID uuid.UUID) ([]entities.TicketType, error)
	List(ctx context.Context) ([]entities.TicketType, error)
}

type TicketTypeRepository struct {
	db *DB
}

func NewTicketTypeRepository(db *DB) TicketTypeRepository {
	if db == nil {
		panic("db is nil")
	}
	return TicketTypeRepository{
		db: db,
	}
}

func (tr TicketTypeRepository) Create(ctx context.Context, ticketType entities.TicketType) (entities.TicketTypeCreateResponse, error) {
	var ticketTypeID uuid.UUID

	err := tr.db.Conn.QueryRowContext(ctx, `
		INSERT INTO ticket_types (event_id, name, price)
		VALUES ($1, $2, $3)
		RETURNING ticket_type_id`,
		ticketType.EventID, ticketType.Name, ticketType.Price,
	).Scan(&ticketTypeID)
	if err != nil {
		return entities.TicketTypeCreateResponse{}, fmt.Errorf("could not save ticket type: %w", err)
	}

	return entities.TicketTypeCreateResponse{TicketTypeID: ticketTypeID}, nil
}

func (tr TicketTypeRepository) ByID(ctx context.Context, ticketTypeID uuid.UUID) (entities.TicketType, error) {
	var ticketType entities.TicketType
	err := tr.db.Conn.GetContext(ctx, &ticketType, `
		SELECT ticket_type_id, event_id, name, price
		FROM ticket_types
		WHERE ticket_type_id = $1`,
		ticketTypeID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.TicketType{}, ErrTicketTypeNotFound
	}
	if err != nil {
		return entities.TicketType{}, fmt.Errorf("could not get ticket type: %w", err)
	}

	return ticketType, nil
}

func (tr TicketTypeRepository) ByEvent(ctx context.Context, eventID uuid.UUID) ([]entities.TicketType, error) {
	var ticketTypes []entities.TicketType
	err := tr.db.Conn.SelectContext(ctx, &ticketTypes, `
		SELECT ticket_type_id, event_id, name, price
		FROM ticket_types
		WHERE event_id = $1
		ORDER BY name, ticket_type_id`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("could not list ticket types for event: %w", err)
	}

	return ticketTypes, nil
}

func (tr TicketTypeRepository) List(ctx context.Context) ([]entities.TicketType, error) {
	var ticketTypes []entities.TicketType
	err := tr.db.Conn.SelectContext(ctx, &ticketTypes, `
		SELECT ticket_type_id, event_id, name, price
		FROM ticket_types
		ORDER BY name, ticket_type_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("could not list ticket types: %w", err)
	}

	return ticketTypes, nil
}
