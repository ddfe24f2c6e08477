package db

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBookingFinal means the booking is confirmed or cancelled and
	// may not be edited or cancelled again.
	ErrBookingFinal = errors.New("booking already in a terminal status")

	ErrTicketTypeNotFound = errors.New("ticket type not found")
)

const postgresUniqueValueViolationErrorCode = "23505"

func isErrorUniqueViolation(err error) bool {
	var psqlErr *pq.Error
	return errors.As(err, &psqlErr) && psqlErr.Code == postgresUniqueValueViolationErrorCode
}
