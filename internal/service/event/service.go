package event

import (
	"context"

	"github.com/jwalitptl/medlink-api/pkg/logger"
	"github.com/jwalitptl/medlink-api/pkg/messaging"
)

// Emitter announces domain changes. Emit never fails the caller: a change
// that has been applied to the store stays applied even if nobody hears
// about it.
type Emitter interface {
	Emit(ctx context.Context, eventType string, payload interface{})
}

type EventService struct {
	publisher messaging.Publisher
	logger    *logger.Logger
}

func NewEventService(publisher messaging.Publisher, l *logger.Logger) *EventService {
	return &EventService{
		publisher: publisher,
		logger:    l,
	}
}

func (s *EventService) Emit(ctx context.Context, eventType string, payload interface{}) {
	if err := s.publisher.Publish(ctx, eventType, payload); err != nil {
		s.logger.WithContext(ctx).Error(err, "failed to publish event", "event_type", eventType)
	}
}

type nopEmitter struct{}

// Nop returns an Emitter that drops everything.
func Nop() Emitter { return nopEmitter{} }

func (nopEmitter) Emit(context.Context, string, interface{}) {}
