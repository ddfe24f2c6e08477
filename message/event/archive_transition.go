package event

import (
	"context"
	"encoding/json"
	"fmt"

	"boxoffice/entities"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/google/uuid"
)

func (h Handler) ArchiveBookingConfirmed(ctx context.Context, event *entities.BookingConfirmed_v1) error {
	log.FromContext(ctx).Info("Archiving booking confirmation")

	return h.archive(ctx, event.Header, "BookingConfirmed_v1", event)
}

func (h Handler) ArchiveBookingCancelled(ctx context.Context, event *entities.BookingCancelled_v1) error {
	log.FromContext(ctx).Info("Archiving booking cancellation")

	return h.archive(ctx, event.Header, "BookingCancelled_v1", event)
}

func (h Handler) archive(ctx context.Context, header entities.EventHeader, name string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal %s: %w", name, err)
	}

	eventID, err := uuid.Parse(header.ID)
	if err != nil {
		return fmt.Errorf("could not parse event id %q: %w", header.ID, err)
	}

	return h.transitionLog.Archive(ctx, entities.TransitionRecord{
		EventID:     eventID,
		PublishedAt: header.PublishedAt,
		EventName:   name,
		Payload:     payload,
	})
}
