package monitor

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the monitor's Prometheus counters.
type Metrics struct {
	notifications  prometheus.Counter
	decodeFailures prometheus.Counter
	lookupFailures prometheus.Counter
	reconnects     prometheus.Counter
	emitted        *prometheus.CounterVec
}

// NewMetrics builds the counter set. A nil registerer leaves the counters
// unregistered, which embedded and test uses rely on.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		notifications: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "jobgrid",
			Subsystem: "monitor",
			Name:      "notifications_total",
			Help:      "Account notifications received from the channel.",
		}),
		decodeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "jobgrid",
			Subsystem: "monitor",
			Name:      "decode_failures_total",
			Help:      "Notifications dropped because classify or decode failed.",
		}),
		lookupFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "jobgrid",
			Subsystem: "monitor",
			Name:      "lookup_failures_total",
			Help:      "On-demand record lookups that failed during correlation.",
		}),
		reconnects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "jobgrid",
			Subsystem: "monitor",
			Name:      "reconnects_total",
			Help:      "Channel reopen attempts after transport failure.",
		}),
		emitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jobgrid",
			Subsystem: "monitor",
			Name:      "events_emitted_total",
			Help:      "Events emitted to consumers, by record kind.",
		}, []string{"kind"}),
	}
	if reg != nil {
		reg.MustRegister(m.notifications, m.decodeFailures, m.lookupFailures, m.reconnects, m.emitted)
	}
	return m
}
