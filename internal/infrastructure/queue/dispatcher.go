package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/pgnest/hostel-system/internal/api/metrics"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes notifications to a fixed set of workers using consistent
// hashing on the recipient ID, guaranteeing per-recipient delivery ordering.
type Dispatcher struct {
	workers []chan ports.NotificationInput
	service ports.NotificationService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.NotificationService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.NotificationInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.NotificationInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a notification to the worker responsible for its recipient.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(n ports.NotificationInput) {
	idx := d.shardIndex(n.RecipientID)
	d.workers[idx] <- n
	metrics.NotificationsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// EnqueueBatch enqueues multiple notifications preserving per-recipient ordering.
func (d *Dispatcher) EnqueueBatch(batch []ports.NotificationInput) {
	for _, n := range batch {
		d.Enqueue(n)
	}
}

// shardIndex maps a recipient ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipientID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipientID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.NotificationInput) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			start := time.Now()
			err := d.service.Deliver(ctx, n)
			metrics.NotificationsQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err != nil {
				metrics.NotificationsErrorsTotal.WithLabelValues("deliver_failed").Inc()
				d.log.Error().Err(err).
					Str("recipient_id", n.RecipientID).
					Int("worker_id", id).
					Msg("notification delivery failed")
				continue
			}
			severity := n.Severity
			if severity == "" {
				severity = "info"
			}
			metrics.NotificationsDeliveredTotal.WithLabelValues(severity).Inc()
			metrics.NotificationDeliveryDuration.WithLabelValues(severity).Observe(time.Since(start).Seconds())
		}
	}
}
