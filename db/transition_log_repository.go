package db

import (
	"context"
	"fmt"

	"boxoffice/entities"
)

type ITransitionLogRepository interface {
	Archive(ctx context.Context, record entities.TransitionRecord) error
	List(ctx context.Context) ([]entities.TransitionRecord, error)
}

// TransitionLogRepository is the audit archive of booking lifecycle
// events. Revenue is never derived from it; reports always recompute
// from the bookings themselves.
type TransitionLogRepository struct {
	db *DB
}

func NewTransitionLogRepository(db *DB) TransitionLogRepository {
	if db == nil {
		panic("db is nil")
	}
	return TransitionLogRepository{
		db: db,
	}
}

func (tr TransitionLogRepository) Archive(ctx context.Context, record entities.TransitionRecord) error {
	_, err := tr.db.Conn.ExecContext(ctx, `
		INSERT INTO
			transitions (event_id, published_at, event_name, event_payload)
		VALUES
			($1, $2, $3, $4)
		ON CONFLICT (event_id) DO NOTHING`,
		record.EventID, record.PublishedAt, record.EventName, record.Payload,
	)
	if err != nil {
		return fmt.Errorf("could not archive transition: %w", err)
	}

	return nil
}

func (tr TransitionLogRepository) List(ctx context.Context) ([]entities.TransitionRecord, error) {
	var records []entities.TransitionRecord
	err := tr.db.Conn.SelectContext(ctx, &records, `
		SELECT event_id, published_at, event_name, event_payload
		FROM transitions
		ORDER BY published_at, event_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("could not list transitions: %w", err)
	}

	return records, nil
}
