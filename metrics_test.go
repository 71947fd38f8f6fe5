package ldi

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/gogpu/ldi/camera"
	"github.com/gogpu/ldi/capture"
	"github.com/gogpu/ldi/render"
)

func TestMetricsRegisterer_WiresDrawDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := MetricsRegisterer(reg)
	if err != nil {
		t.Fatalf("MetricsRegisterer: %v", err)
	}

	cap := singleLayerCapture(t)
	r, err := NewRenderer(cap, WithMetrics(m))
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	defer r.Close()

	target := render.NewPixmapTarget(4, 4)
	camL := capture.RenderCamera{Position: camera.V3(0, 0, 0), FocalPx: 4}
	if err := r.Draw(target, &camL, nil, 1.0); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if got := testutil.ToFloat64(m.Transport.ChunksReceived); got != 0 {
		t.Fatalf("ChunksReceived = %v, want 0 (no chunks delivered)", got)
	}

	count, err := testutil.GatherAndCount(reg, "ldi_raycast_draw_duration_seconds")
	if err != nil {
		t.Fatalf("GatherAndCount: %v", err)
	}
	if count != 1 {
		t.Fatalf("draw_duration_seconds registered metric count = %d, want 1", count)
	}
}

func TestWithMetrics_NilIsNoop(t *testing.T) {
	cap := singleLayerCapture(t)
	r, err := NewRenderer(cap, WithMetrics(nil))
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	defer r.Close()

	target := render.NewPixmapTarget(4, 4)
	camL := capture.RenderCamera{Position: camera.V3(0, 0, 0), FocalPx: 4}
	if err := r.Draw(target, &camL, nil, 1.0); err != nil {
		t.Fatalf("Draw: %v", err)
	}
}
