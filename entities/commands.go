package entities

// ReconcileBookings asks the reconciliation engine to evaluate the
// current (bookings, payments) snapshot pair. It is sent on every
// snapshot refresh; the handler is idempotent so duplicate sends are
// harmless.
type ReconcileBookings struct {
	Header EventHeader `json:"header"`
}
