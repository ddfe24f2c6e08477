package db

import (
	"context"
	"fmt"

	"boxoffice/entities"
)

type IPaymentRepository interface {
	Create(ctx context.Context, payment entities.Payment) error
	List(ctx context.Context) ([]entities.Payment, error)
}

type PaymentRepository struct {
	db *DB
}

func NewPaymentRepository(db *DB) PaymentRepository {
	if db == nil {
		panic("db is nil")
	}
	return PaymentRepository{
		db: db,
	}
}

// Create stores a provider notification. The provider retries webhooks,
// so a duplicate transaction id is silently ignored.
func (pr PaymentRepository) Create(ctx context.Context, payment entities.Payment) error {
	_, err := pr.db.Conn.NamedExecContext(ctx, `
		INSERT INTO
			payments (payment_id, transaction_id, booking_id, amount, status, method, paid_at)
		VALUES
			(:payment_id, :transaction_id, :booking_id, :amount, :status, :method, :paid_at)
		ON CONFLICT (transaction_id) DO NOTHING`,
		payment,
	)
	if err != nil {
		return fmt.Errorf("could not save payment: %w", err)
	}

	return nil
}

func (pr PaymentRepository) List(ctx context.Context) ([]entities.Payment, error) {
	var payments []entities.Payment
	err := pr.db.Conn.SelectContext(ctx, &payments, `
		SELECT payment_id, transaction_id, booking_id, amount, status, method, paid_at
		FROM payments
		ORDER BY paid_at, transaction_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("could not list payments: %w", err)
	}

	return payments, nil
}
