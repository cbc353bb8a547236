package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/clinicore/user-system/internal/api/metrics"
	"github.com/clinicore/user-system/internal/core/domain"
	"github.com/clinicore/user-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// AuditDispatcher records audit events asynchronously through a fixed set of
// workers, sharded by actor email so events for one account stay ordered.
// Recording failures are logged and never surface to request handling.
type AuditDispatcher struct {
	workers []chan domain.AuditEvent
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewAuditDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewAuditDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *AuditDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &AuditDispatcher{
		workers: make([]chan domain.AuditEvent, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *AuditDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an event to the worker responsible for its email. The call
// is non-blocking up to channelBuffer capacity.
func (d *AuditDispatcher) Enqueue(event domain.AuditEvent) {
	idx := d.shardIndex(event.Email)
	d.workers[idx] <- event
	metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps an email deterministically to a worker index.
func (d *AuditDispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *AuditDispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.repo.Record(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("kind", string(event.Kind)).
					Str("email", event.Email).
					Int("worker_id", id).
					Msg("audit event recording failed")
			}
			metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}
