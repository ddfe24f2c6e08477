package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"boxoffice/entities"
	"boxoffice/message/event"
	"boxoffice/message/outbox"
	"boxoffice/reconcile"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type IBookingRepository interface {
	Create(ctx context.Context, booking entities.Booking) (entities.BookingCreateResponse, error)
	Update(ctx context.Context, booking entities.Booking) error
	Cancel(ctx context.Context, bookingID uuid.UUID) error
	Confirm(ctx context.Context, transition reconcile.Transition) error
	ByID(ctx context.Context, bookingID uuid.UUID) (entities.Booking, error)
	List(ctx context.Context) ([]entities.Booking, error)
	ByEvent(ctx context.Context, eventID uuid.UUID) ([]entities.Booking, error)
}

type BookingRepository struct {
	db *DB
}

func NewBookingRepository(db *DB) BookingRepository {
	if db == nil {
		panic("db is nil")
	}
	return BookingRepository{
		db: db,
	}
}

func (br BookingRepository) Create(ctx context.Context, booking entities.Booking) (entities.BookingCreateResponse, error) {
	_, err := br.db.Conn.NamedExecContext(ctx, `
		INSERT INTO
			bookings (booking_id, event_id, ticket_type_id, owner_id, quantity, total_amount, status, created_at)
		VALUES
			(:booking_id, :event_id, :ticket_type_id, :owner_id, :quantity, :total_amount, :status, :created_at)
		ON CONFLICT (booking_id) DO NOTHING`,
		booking,
	)
	if err != nil {
		return entities.BookingCreateResponse{}, fmt.Errorf("could not save booking: %w", err)
	}

	return entities.BookingCreateResponse{BookingID: booking.BookingID}, nil
}

// Update rewrites the editable fields of a pending booking. Status is
// untouched here: it only moves through Confirm, Cancel or
// reconciliation.
func (br BookingRepository) Update(ctx context.Context, booking entities.Booking) error {
	res, err := br.db.Conn.NamedExecContext(ctx, `
		UPDATE bookings SET
			event_id = :event_id,
			ticket_type_id = :ticket_type_id,
			owner_id = :owner_id,
			quantity = :quantity,
			total_amount = :total_amount
		WHERE booking_id = :booking_id AND status = 'pending'`,
		booking,
	)
	if err != nil {
		return fmt.Errorf("could not update booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not read affected rows: %w", err)
	}
	if rows == 0 {
		if _, err := br.ByID(ctx, booking.BookingID); err != nil {
			return err
		}
		return ErrBookingFinal
	}

	return nil
}

// Cancel moves a pending booking to cancelled and publishes the
// cancellation through the outbox in the same transaction.
func (br BookingRepository) Cancel(ctx context.Context, bookingID uuid.UUID) error {
	return updateInTx(ctx, br.db.Conn, sql.LevelDefault, func(ctx context.Context, tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE bookings SET status = 'cancelled'
			WHERE booking_id = $1 AND status = 'pending'`,
			bookingID,
		)
		if err != nil {
			return fmt.Errorf("could not cancel booking: %w", err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("could not read affected rows: %w", err)
		}
		if rows == 0 {
			if _, err := br.ByID(ctx, bookingID); err != nil {
				return err
			}
			return ErrBookingFinal
		}

		outboxPublisher, err := outbox.NewPublisherForDb(ctx, tx)
		if err != nil {
			return fmt.Errorf("could not create outbox publisher: %w", err)
		}

		return event.NewBus(outboxPublisher).Publish(ctx, entities.BookingCancelled_v1{
			Header:    entities.NewEventHeader(),
			BookingID: bookingID,
		})
	})
}

// Confirm applies one reconciliation transition. The WHERE status =
// 'pending' guard makes it idempotent and keeps the status monotonic:
// when the booking already left pending the update matches zero rows
// and nothing is published. Status update and BookingConfirmed_v1 share
// one transaction via the outbox, so the event is published at most
// once per booking.
func (br BookingRepository) Confirm(ctx context.Context, transition reconcile.Transition) error {
	return updateInTx(ctx, br.db.Conn, sql.LevelDefault, func(ctx context.Context, tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE bookings SET status = 'confirmed'
			WHERE booking_id = $1 AND status = 'pending'`,
			transition.BookingID,
		)
		if err != nil {
			return fmt.Errorf("could not confirm booking: %w", err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("could not read affected rows: %w", err)
		}
		if rows == 0 {
			// already confirmed or cancelled by an earlier run
			return nil
		}

		var booking entities.Booking
		err = tx.GetContext(ctx, &booking, `
			SELECT booking_id, event_id, ticket_type_id, owner_id, quantity, total_amount, status, created_at
			FROM bookings
			WHERE booking_id = $1`,
			transition.BookingID,
		)
		if err != nil {
			return fmt.Errorf("could not load confirmed booking: %w", err)
		}

		outboxPublisher, err := outbox.NewPublisherForDb(ctx, tx)
		if err != nil {
			return fmt.Errorf("could not create outbox publisher: %w", err)
		}

		return event.NewBus(outboxPublisher).Publish(ctx, entities.BookingConfirmed_v1{
			Header:        entities.NewEventHeaderWithIdempotencyKey(transition.BookingID.String()),
			BookingID:     booking.BookingID,
			EventID:       booking.EventID,
			TicketTypeID:  booking.TicketTypeID,
			OwnerID:       booking.OwnerID,
			Quantity:      booking.Quantity,
			TotalAmount:   booking.TotalAmount,
			PaymentID:     transition.PaymentID,
			TransactionID: transition.TransactionID,
		})
	})
}

func (br BookingRepository) ByID(ctx context.Context, bookingID uuid.UUID) (entities.Booking, error) {
	var booking entities.Booking
	err := br.db.Conn.GetContext(ctx, &booking, `
		SELECT booking_id, event_id, ticket_type_id, owner_id, quantity, total_amount, status, created_at
		FROM bookings
		WHERE booking_id = $1`,
		bookingID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Booking{}, ErrBookingNotFound
	}
	if err != nil {
		return entities.Booking{}, fmt.Errorf("could not get booking: %w", err)
	}

	return booking, nil
}

func (br BookingRepository) List(ctx context.Context) ([]entities.Booking, error) {
	var bookings []entities.Booking
	err := br.db.Conn.SelectContext(ctx, &bookings, `
		SELECT booking_id, event_id, ticket_type_id, owner_id, quantity, total_amount, status, created_at
		FROM bookings
		ORDER BY created_at, booking_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("could not list bookings: %w", err)
	}

	return bookings, nil
}

func (br BookingRepository) ByEvent(ctx context.Context, eventID uuid.UUID) ([]entities.Booking, error) {
	var bookings []entities.Booking
	err := br.db.Conn.SelectContext(ctx, &bookings, `
		SELECT booking_id, event_id, ticket_type_id, owner_id, quantity, total_amount, status, created_at
		FROM bookings
		WHERE event_id = $1
		ORDER BY created_at, booking_id`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("could not list bookings for event: %w", err)
	}

	return bookings, nil
}
