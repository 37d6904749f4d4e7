package worker

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/jwalitptl/medlink-api/internal/model"
	"github.com/jwalitptl/medlink-api/pkg/logger"
	"github.com/jwalitptl/medlink-api/pkg/metrics"
)

// Advancer moves prescriptions along the fulfillment path.
type Advancer interface {
	AdvanceNext(ctx context.Context, delivery func() bool) (*model.Prescription, error)
	InFulfillment(ctx context.Context) (int, error)
}

type OrderProgressConfig struct {
	Interval time.Duration
	// Seed fixes the pickup/delivery branch sequence. Zero seeds from the clock.
	Seed int64
}

// OrderProgressWorker simulates pharmacies working through orders: every
// tick it advances one prescription that is mid-fulfillment. It sleeps
// while there is nothing to do and is woken by Wake.
type OrderProgressWorker struct {
	advancer Advancer
	config   OrderProgressConfig
	logger   *logger.Logger
	metrics  *metrics.Metrics

	wake chan struct{}

	randMu sync.Mutex
	rand   *rand.Rand
}

func NewOrderProgressWorker(advancer Advancer, config OrderProgressConfig, logger *logger.Logger, metrics *metrics.Metrics) *OrderProgressWorker {
	if config.Interval <= 0 {
		panic("Interval must be greater than 0")
	}
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &OrderProgressWorker{
		advancer: advancer,
		config:   config,
		logger:   logger,
		metrics:  metrics,
		wake:     make(chan struct{}, 1),
		rand:     rand.New(rand.NewSource(seed)),
	}
}

// Wake tells an idle worker an order was placed. It never blocks.
func (w *OrderProgressWorker) Wake() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *OrderProgressWorker) Start(ctx context.Context) {
	w.logger.Info("Starting order progress worker", "interval", w.config.Interval.String())

	for {
		if !w.hasWork(ctx) {
			select {
			case <-ctx.Done():
				w.logger.Info("Shutting down order progress worker")
				return
			case <-w.wake:
			}
		}

		if !w.run(ctx) {
			w.logger.Info("Shutting down order progress worker")
			return
		}
	}
}

// run ticks until nothing is left in fulfillment. It returns false when
// ctx is done.
func (w *OrderProgressWorker) run(ctx context.Context) bool {
	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
			if !w.Tick(ctx) {
				return true
			}
		}
	}
}

// Tick advances at most one prescription and reports whether any remain
// in fulfillment.
func (w *OrderProgressWorker) Tick(ctx context.Context) bool {
	w.metrics.SimulatorTicks.Inc()

	p, err := w.advancer.AdvanceNext(ctx, w.delivery)
	if err != nil {
		w.logger.Error(err, "Failed to advance prescription")
	} else if p != nil {
		w.logger.Debug("Advanced prescription", "prescription_id", p.ID, "status", string(p.Status))
	}

	return w.hasWork(ctx)
}

func (w *OrderProgressWorker) hasWork(ctx context.Context) bool {
	n, err := w.advancer.InFulfillment(ctx)
	if err != nil {
		w.logger.Error(err, "Failed to count orders in fulfillment")
		return false
	}
	w.metrics.OrdersInFulfillment.Set(float64(n))
	return n > 0
}

// delivery picks the branch out of preparing: true for out_for_delivery.
func (w *OrderProgressWorker) delivery() bool {
	w.randMu.Lock()
	defer w.randMu.Unlock()
	return w.rand.Float64() > 0.5
}
