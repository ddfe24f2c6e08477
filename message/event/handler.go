package event

import (
	"context"

	"boxoffice/entities"
)

type TransitionLog interface {
	Archive(ctx context.Context, record entities.TransitionRecord) error
}

type Handler struct {
	transitionLog TransitionLog
}

func NewHandler(transitionLog TransitionLog) Handler {
	if transitionLog == nil {
		panic("missing transitionLog")
	}
	return Handler{
		transitionLog: transitionLog,
	}
}
