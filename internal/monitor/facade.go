package monitor

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	errspkg "github.com/jobgrid/jobgrid/internal/errors"
	"github.com/jobgrid/jobgrid/internal/logging"
)

const tracerName = "github.com/jobgrid/jobgrid/internal/monitor"

// StopFunc stops a monitor stream. Idempotent and safe for concurrent use.
type StopFunc func()

// Monitor is the public entry point. Each Events or EventsDetailed call
// opens an independent channel with independent state; streams share
// nothing but the constructed collaborators.
type Monitor struct {
	program    string
	channel    Channel
	classifier Classifier
	lookup     Lookup
	log        logging.ServiceLogger
	metrics    *Metrics
	tracer     trace.Tracer
	delay      time.Duration
}

// Option adjusts Monitor construction.
type Option func(*Monitor)

// WithMetrics installs a pre-built counter set, typically one registered on
// an application registry.
func WithMetrics(m *Metrics) Option {
	return func(mon *Monitor) { mon.metrics = m }
}

// WithBackoffDelay overrides the fixed reconnect delay.
func WithBackoffDelay(d time.Duration) Option {
	return func(mon *Monitor) { mon.delay = d }
}

// WithTracerProvider sources the per-notification tracer from tp instead of
// the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(mon *Monitor) { mon.tracer = tp.Tracer(tracerName) }
}

// New constructs a Monitor for one program address.
func New(program string, channel Channel, classifier Classifier, lookup Lookup, log logging.ServiceLogger, opts ...Option) (*Monitor, error) {
	switch {
	case program == "":
		return nil, errspkg.ErrProgramRequired
	case channel == nil:
		return nil, errspkg.ErrChannelRequired
	case classifier == nil:
		return nil, errspkg.ErrClassifierRequired
	case lookup == nil:
		return nil, errspkg.ErrLookupRequired
	case log == nil:
		return nil, errspkg.ErrLoggerRequired
	}

	m := &Monitor{
		program:    program,
		channel:    channel,
		classifier: classifier,
		lookup:     lookup,
		log:        log,
		delay:      DefaultBackoffDelay,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.metrics == nil {
		m.metrics = NewMetrics(nil)
	}
	if m.tracer == nil {
		m.tracer = otel.Tracer(tracerName)
	}
	return m, nil
}

// Events opens a simple-mode stream: jobs and markets only, with claims
// folded into their owning jobs. Events arrive in notification order and
// the stream stays open until stop is called or ctx is cancelled; the
// channel is closed once the supervisor has fully wound down.
func (m *Monitor) Events(ctx context.Context) (<-chan SimpleEvent, StopFunc) {
	runCtx, cancel := context.WithCancel(ctx)
	out := make(chan SimpleEvent)
	sup := m.newSupervisor(ModeSimple)

	go func() {
		defer close(out)
		sup.run(runCtx, func(ev *Event) bool {
			select {
			case out <- ev.simple():
				return true
			case <-runCtx.Done():
				return false
			}
		})
	}()

	return out, StopFunc(cancel)
}

// EventsDetailed opens a detailed-mode stream: jobs, markets, and runs as
// separate events. Same lifecycle guarantees as Events.
func (m *Monitor) EventsDetailed(ctx context.Context) (<-chan Event, StopFunc) {
	runCtx, cancel := context.WithCancel(ctx)
	out := make(chan Event)
	sup := m.newSupervisor(ModeDetailed)

	go func() {
		defer close(out)
		sup.run(runCtx, func(ev *Event) bool {
			select {
			case out <- *ev:
				return true
			case <-runCtx.Done():
				return false
			}
		})
	}()

	return out, StopFunc(cancel)
}

func (m *Monitor) newSupervisor(mode Mode) *supervisor {
	return &supervisor{
		program:    m.program,
		channel:    m.channel,
		classifier: m.classifier,
		correlator: newCorrelator(mode, m.lookup, m.log.With(logging.LogFields{"mode": mode.String()}), m.metrics),
		log:        m.log.With(logging.LogFields{"program": m.program, "mode": mode.String()}),
		metrics:    m.metrics,
		tracer:     m.tracer,
		backoff:    backoff.NewConstantBackOff(m.delay),
	}
}
