package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/medlink-api/pkg/logger"
	"github.com/jwalitptl/medlink-api/pkg/metrics"
)

type mockBroker struct {
	mock.Mock
}

func (m *mockBroker) Publish(ctx context.Context, channel string, message interface{}) error {
	args := m.Called(ctx, channel, message)
	return args.Error(0)
}

func (m *mockBroker) Close() error { return nil }

func TestEventPublisherWrapsPayload(t *testing.T) {
	at := time.Date(2024, 7, 1, 9, 30, 0, 0, time.UTC)
	m := metrics.NewMetrics("test", prometheus.NewRegistry())
	broker := &mockBroker{}
	broker.On("Publish", mock.Anything, "portal.events", Message{
		Type:       "prescription.advanced",
		Payload:    map[string]string{"id": "rx1"},
		OccurredAt: at,
	}).Return(nil)

	p := NewEventPublisher(broker, m, WithChannel("portal.events"), WithClock(func() time.Time { return at }))
	err := p.Publish(context.Background(), "prescription.advanced", map[string]string{"id": "rx1"})

	require.NoError(t, err)
	broker.AssertExpectations(t)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues("prescription.advanced", "ok")))
}

func TestEventPublisherCountsFailures(t *testing.T) {
	m := metrics.NewMetrics("test", prometheus.NewRegistry())
	broker := &mockBroker{}
	broker.On("Publish", mock.Anything, DefaultChannel, mock.Anything).Return(errors.New("connection refused"))

	p := NewEventPublisher(broker, m)
	err := p.Publish(context.Background(), "record.deleted", nil)

	assert.EqualError(t, err, "connection refused")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues("record.deleted", "failed")))
}

func TestLogBroker(t *testing.T) {
	b := NewLogBroker(logger.NewNop())
	assert.NoError(t, b.Publish(context.Background(), DefaultChannel, Message{Type: "x"}))
	assert.NoError(t, b.Close())
}
