package messaging

import (
	"context"
	"time"

	"github.com/jwalitptl/medlink-api/pkg/logger"
	"github.com/jwalitptl/medlink-api/pkg/metrics"
)

// DefaultChannel carries every domain event.
const DefaultChannel = "medlink.events"

// Broker defines the interface for message brokers
type Broker interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Close() error
}

// Publisher defines the interface for publishing messages
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload interface{}) error
}

type Message struct {
	Type       string      `json:"type"`
	Payload    interface{} `json:"payload"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// EventPublisher wraps domain payloads in a Message and hands them to a
// broker on a single channel.
type EventPublisher struct {
	broker  Broker
	channel string
	metrics *metrics.Metrics
	now     func() time.Time
}

type Option func(*EventPublisher)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(p *EventPublisher) { p.now = now }
}

func WithChannel(channel string) Option {
	return func(p *EventPublisher) { p.channel = channel }
}

func NewEventPublisher(broker Broker, m *metrics.Metrics, opts ...Option) *EventPublisher {
	p := &EventPublisher{
		broker:  broker,
		channel: DefaultChannel,
		metrics: m,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *EventPublisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	msg := Message{
		Type:       eventType,
		Payload:    payload,
		OccurredAt: p.now().UTC(),
	}

	err := p.broker.Publish(ctx, p.channel, msg)
	status := "ok"
	if err != nil {
		status = "failed"
	}
	if p.metrics != nil {
		p.metrics.EventsPublished.WithLabelValues(eventType, status).Inc()
	}
	return err
}

// LogBroker writes messages to the application log. It is the broker used
// when no Redis URL is configured.
type LogBroker struct {
	logger *logger.Logger
}

func NewLogBroker(l *logger.Logger) *LogBroker {
	return &LogBroker{logger: l}
}

func (b *LogBroker) Publish(ctx context.Context, channel string, message interface{}) error {
	b.logger.WithContext(ctx).Debug("domain event", "channel", channel, "message", message)
	return nil
}

func (b *LogBroker) Close() error { return nil }
