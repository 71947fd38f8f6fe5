package transport

import "github.com/prometheus/client_golang/prometheus"

// Metrics instruments a Reassembler; the raycast Renderer's draw
// duration is a separate histogram in the root ldi package's Metrics.
// Unlike a typical standalone
// service, this module is embedded into a host application, so
// metrics are registered explicitly against a caller-supplied
// prometheus.Registerer rather than promauto's global registry —
// registering globally on import would surprise an embedding app that
// already owns its own registry.
type Metrics struct {
	ChunksReceived  prometheus.Counter
	SessionsStarted prometheus.Counter
	SessionsFailed  prometheus.Counter
}

// NewMetrics creates and registers the transport's counters against
// reg, which must not be nil. To leave metrics disabled, skip this
// call and hand NewReassembler a nil *Metrics (Reassembler treats a
// nil *Metrics as a no-op).
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		ChunksReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ldi",
			Subsystem: "transport",
			Name:      "chunks_received_total",
			Help:      "Total number of chunk frames delivered to the reassembler.",
		}),
		SessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ldi",
			Subsystem: "transport",
			Name:      "sessions_started_total",
			Help:      "Total number of chunked-transfer sessions started.",
		}),
		SessionsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ldi",
			Subsystem: "transport",
			Name:      "sessions_failed_total",
			Help:      "Total number of chunked-transfer sessions that timed out.",
		}),
	}

	for _, c := range []prometheus.Collector{m.ChunksReceived, m.SessionsStarted, m.SessionsFailed} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}
