// Package audit persists audit records through a bounded write-behind queue.
package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"supermall/config"
	"supermall/internal/domain/entity"
	"supermall/internal/domain/lifecycle"
	"supermall/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// ErrQueueFull reports a record dropped because the queue had no room.
var ErrQueueFull = errors.New("audit queue is full")

// ErrSinkClosed reports a record submitted after shutdown began.
var ErrSinkClosed = errors.New("audit sink is closed")

// Failure describes a record that was not persisted.
type Failure struct {
	Record *entity.AuditRecord
	Err    error
}

// Sink queues audit records and writes them from a single goroutine, so
// callers never wait on storage.
type Sink struct {
	repo         repository.AuditRepository
	writeTimeout time.Duration

	queue    chan *entity.AuditRecord
	failures chan Failure
	done     chan struct{}

	mu     sync.RWMutex
	closed bool

	written prometheus.Counter
	failed  prometheus.Counter
	dropped prometheus.Counter
}

// Params holds dependencies for Sink, injected by Fx
type Params struct {
	fx.In

	Lc         fx.Lifecycle
	Config     *config.Config
	Repo       repository.AuditRepository
	Registerer prometheus.Registerer
	Logger     *slog.Logger
}

// NewSink creates the sink, starts its writer with the app and drains it on shutdown
func NewSink(params Params) *Sink {
	sink := newSink(params.Repo, params.Config.Audit.BufferSize, params.Config.Audit.WriteTimeout, params.Registerer)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go sink.run()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			params.Logger.Info("Draining audit queue", slog.Int("pending", len(sink.queue)))

			return sink.Close(ctx)
		},
	})

	return sink
}

func newSink(repo repository.AuditRepository, bufferSize int, writeTimeout time.Duration, reg prometheus.Registerer) *Sink {
	sink := &Sink{
		repo:         repo,
		writeTimeout: writeTimeout,
		queue:        make(chan *entity.AuditRecord, bufferSize),
		failures:     make(chan Failure, bufferSize),
		done:         make(chan struct{}),
		written: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "audit_records_written_total",
			Help: "Audit records persisted.",
		}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "audit_records_failed_total",
			Help: "Audit records whose write failed.",
		}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "audit_records_dropped_total",
			Help: "Audit records dropped because the queue was full or closed.",
		}),
	}
	if reg != nil {
		reg.MustRegister(sink.written, sink.failed, sink.dropped)
	}

	return sink
}

// Submit enqueues record without blocking. A full queue drops the record.
func (s *Sink) Submit(_ context.Context, record *entity.AuditRecord) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		s.dropped.Inc()
		s.report(record, ErrSinkClosed)

		return
	}

	select {
	case s.queue <- record:
	default:
		s.dropped.Inc()
		s.report(record, ErrQueueFull)
	}
}

// Failures delivers records that could not be persisted. Reports are
// discarded when nobody keeps up with the channel.
func (s *Sink) Failures() <-chan Failure {
	return s.failures
}

// Close stops accepting records and waits until the queue is drained or ctx ends.
func (s *Sink) Close(ctx context.Context) error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return errors.Wrapf(ctx.Err(), "audit queue not drained, %d records pending", len(s.queue))
	}
}

func (s *Sink) run() {
	defer close(s.done)

	for record := range s.queue {
		s.write(record)
	}
}

func (s *Sink) write(record *entity.AuditRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()

	if err := s.repo.Append(ctx, record); err != nil {
		s.failed.Inc()
		s.report(record, err)

		return
	}

	s.written.Inc()
}

func (s *Sink) report(record *entity.AuditRecord, err error) {
	select {
	case s.failures <- Failure{Record: record, Err: err}:
	default:
	}
}
