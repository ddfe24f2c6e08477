package db

var schema = `
CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

CREATE TABLE IF NOT EXISTS venues (
	venue_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	name VARCHAR(255) NOT NULL
);

CREATE TABLE IF NOT EXISTS events (
	event_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	title VARCHAR(255) NOT NULL,
	venue_id UUID NOT NULL
);

CREATE TABLE IF NOT EXISTS ticket_types (
	ticket_type_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	event_id UUID NOT NULL,
	name VARCHAR(255) NOT NULL,
	price NUMERIC(10, 2) NOT NULL
);

CREATE TABLE IF NOT EXISTS bookings (
	booking_id UUID PRIMARY KEY,
	event_id UUID NOT NULL,
	ticket_type_id UUID NOT NULL,
	owner_id UUID NOT NULL,
	quantity INT NOT NULL CHECK (quantity >= 1),
	total_amount NUMERIC(10, 2) NOT NULL,
	status VARCHAR(16) NOT NULL DEFAULT 'pending',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS payments (
	payment_id UUID PRIMARY KEY,
	transaction_id VARCHAR(64) NOT NULL UNIQUE,
	booking_id UUID NOT NULL,
	amount BIGINT NOT NULL,
	status VARCHAR(16) NOT NULL,
	method VARCHAR(32) NOT NULL,
	paid_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS transitions (
	event_id UUID PRIMARY KEY,
	published_at TIMESTAMP NOT NULL,
	event_name VARCHAR(255) NOT NULL,
	event_payload JSONB NOT NULL
);
`
