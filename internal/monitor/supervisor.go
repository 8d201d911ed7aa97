package monitor

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jobgrid/jobgrid/internal/ids"
	"github.com/jobgrid/jobgrid/internal/logging"
	"github.com/jobgrid/jobgrid/internal/records"
)

// State is the supervisor's lifecycle phase.
type State int32

const (
	StateConnecting State = iota
	StateStreaming
	StateBackoff
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateStreaming:
		return "streaming"
	case StateBackoff:
		return "backoff"
	default:
		return "stopped"
	}
}

// DefaultBackoffDelay is the fixed wait before reopening a failed channel.
const DefaultBackoffDelay = 5 * time.Second

// supervisor owns one channel's lifecycle: open, consume, back off on
// transport failure, reopen. Reconnects are unbounded; availability is
// favored over failing closed. Processing is strictly sequential, which is
// what gives the arrival-order guarantee.
type supervisor struct {
	program    string
	channel    Channel
	classifier Classifier
	correlator *correlator
	log        logging.ServiceLogger
	metrics    *Metrics
	tracer     trace.Tracer
	backoff    backoff.BackOff

	state atomic.Int32
}

// State reports the supervisor's current lifecycle phase.
func (s *supervisor) State() State {
	return State(s.state.Load())
}

func (s *supervisor) setState(st State) {
	s.state.Store(int32(st))
}

// run drives the state machine until ctx is cancelled. emit returns false
// once the consumer is gone; the notification being emitted is then lost,
// matching the stream's at-most-once delivery across stop.
func (s *supervisor) run(ctx context.Context, emit func(*Event) bool) {
	defer s.setState(StateStopped)

	for {
		s.setState(StateConnecting)
		src, err := s.channel.Open(ctx, s.program)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			s.log.Error("channel open failed", err, nil)
			s.metrics.reconnects.Inc()
			if !s.waitBackoff(ctx) {
				return
			}
			continue
		}

		s.setState(StateStreaming)
		s.backoff.Reset()
		err = s.consume(ctx, src, emit)
		_ = src.Close()
		if ctx.Err() != nil {
			return
		}

		s.log.Error("notification stream failed", err, nil)
		s.metrics.reconnects.Inc()
		if !s.waitBackoff(ctx) {
			return
		}
	}
}

func (s *supervisor) waitBackoff(ctx context.Context) bool {
	s.setState(StateBackoff)
	timer := time.NewTimer(s.backoff.NextBackOff())
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// consume processes notifications one at a time until the source fails or
// the context is cancelled. The returned error is the source's.
func (s *supervisor) consume(ctx context.Context, src Source, emit func(*Event) bool) error {
	for {
		n, err := src.Receive(ctx)
		if err != nil {
			return err
		}
		if !s.process(ctx, n, emit) {
			return ctx.Err()
		}
	}
}

// process runs one notification through classify, decode, transform, and
// correlate. Per-notification failures are logged and dropped; they never
// trigger a reconnect.
func (s *supervisor) process(ctx context.Context, n Notification, emit func(*Event) bool) bool {
	ctx, span := s.tracer.Start(ctx, "monitor.notification",
		trace.WithAttributes(attribute.String("account.address", n.Address)))
	defer span.End()

	s.metrics.notifications.Inc()

	kind := s.classifier.Identify(n.Data)
	span.SetAttributes(attribute.String("record.kind", kind.String()))
	if kind == records.KindUnknown {
		s.log.Debug("ignoring unrecognized account", logging.LogFields{"address": n.Address})
		return true
	}

	raw, err := s.classifier.Decode(kind, n.Data)
	if err != nil {
		span.RecordError(err)
		s.metrics.decodeFailures.Inc()
		s.log.Error("account decode failed, dropping notification", err, logging.LogFields{
			"address": n.Address,
			"kind":    kind.String(),
		})
		return true
	}

	view, err := records.Transform(n.Address, raw)
	if err != nil {
		span.RecordError(err)
		s.metrics.decodeFailures.Inc()
		s.log.Error("record transform failed, dropping notification", err, logging.LogFields{
			"address": n.Address,
			"kind":    kind.String(),
		})
		return true
	}

	out := s.correlator.correlate(ctx, view)
	if out == nil {
		return true
	}

	s.metrics.emitted.WithLabelValues(out.Kind.String()).Inc()
	return emit(&Event{ID: ids.New(), View: *out})
}
