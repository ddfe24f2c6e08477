package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TransitionRecord is the archived form of a domain event, kept for
// audit. EventID doubles as the dedup key, so re-delivered events are
// archived once.
type TransitionRecord struct {
	EventID     uuid.UUID       `json:"event_id" db:"event_id"`
	PublishedAt time.Time       `json:"published_at" db:"published_at"`
	EventName   string          `json:"event_name" db:"event_name"`
	Payload     json.RawMessage `json:"payload" db:"event_payload"`
}
