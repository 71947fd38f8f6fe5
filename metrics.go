package ldi

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gogpu/ldi/raycast"
	"github.com/gogpu/ldi/transport"
)

// Metrics bundles the embedding-app-facing instrumentation for both
// halves of the module a typical host drives each frame: the chunked
// transport channel (transport.Metrics) and the raycaster's per-draw
// latency.
type Metrics struct {
	Transport    *transport.Metrics
	DrawDuration prometheus.Histogram
}

// MetricsRegisterer creates and registers a Metrics against reg. By
// default the module produces no metrics at all (mirroring SetLogger's
// silent-by-default behavior); call this once at startup only if the
// embedding app wants them.
func MetricsRegisterer(reg prometheus.Registerer) (*Metrics, error) {
	transportMetrics, err := transport.NewMetrics(reg)
	if err != nil {
		return nil, err
	}

	drawDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ldi",
		Subsystem: "raycast",
		Name:      "draw_duration_seconds",
		Help:      "Wall-clock time spent in Renderer.Draw per call.",
		Buckets:   prometheus.DefBuckets,
	})
	if err := reg.Register(drawDuration); err != nil {
		return nil, err
	}

	return &Metrics{Transport: transportMetrics, DrawDuration: drawDuration}, nil
}

// WithMetrics wires m's draw-duration histogram into a Renderer built
// by NewRenderer. Pass nil to disable (the default).
func WithMetrics(m *Metrics) RendererOption {
	if m == nil {
		return func(*raycast.Renderer) {}
	}
	return raycast.WithDrawDurationObserver(m.DrawDuration.Observe)
}
