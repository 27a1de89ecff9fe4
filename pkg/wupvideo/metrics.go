// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package wupvideo

import (
	dto "github.com/prometheus/client_model/go"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the host-visible counters and gauges §7 recommends a host
// expose: completed frames, evicted-stale frames, completion-fatal frames,
// and peak concurrent accumulators.
//
// Unlike github.com/kstaniek/go-ampio-server's internal/metrics package
// (package-level promauto vars shared process-wide), these are built
// per-instance and only registered with a Registerer the caller supplies,
// because spec §5 requires independent engine instances not to interact --
// two engines must not silently share counters.
type Metrics struct {
	completedFrames       prometheus.Counter
	evictedStaleFrames    prometheus.Counter
	completionFatalFrames prometheus.Counter
	peakAccumulators      prometheus.Gauge
}

// NewMetrics constructs a Metrics instance. If reg is non-nil, the
// collectors are registered with it; a nil Registerer is a valid no-op,
// useful when a caller only wants Stats() and not a Prometheus export.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		completedFrames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wupvideo_completed_frames_total",
			Help: "Total video frames successfully reassembled.",
		}),
		evictedStaleFrames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wupvideo_evicted_stale_frames_total",
			Help: "Total partial frames evicted for falling behind the staleness threshold.",
		}),
		completionFatalFrames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wupvideo_completion_fatal_frames_total",
			Help: "Total frames dropped due to unrecoverable completion states (TooManyPackets, Corrupt).",
		}),
		peakAccumulators: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wupvideo_peak_accumulators",
			Help: "Highest number of concurrently in-flight frame accumulators observed.",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.completedFrames,
			m.evictedStaleFrames,
			m.completionFatalFrames,
			m.peakAccumulators,
		)
	}

	return m
}

func (m *Metrics) incCompleted()       { m.completedFrames.Inc() }
func (m *Metrics) incEvictedStale()    { m.evictedStaleFrames.Inc() }
func (m *Metrics) incCompletionFatal() { m.completionFatalFrames.Inc() }
func (m *Metrics) setPeakAccumulators(n int) {
	m.peakAccumulators.Set(float64(n))
}

// Stats is a point-in-time snapshot of Metrics, for callers that want plain
// numbers without scraping Prometheus.
type Stats struct {
	CompletedFrames       float64
	EvictedStaleFrames    float64
	CompletionFatalFrames float64
	PeakAccumulators      float64
}

// Snapshot reads the current values of m.
func (m *Metrics) Snapshot() Stats {
	return Stats{
		CompletedFrames:       readCounter(m.completedFrames),
		EvictedStaleFrames:    readCounter(m.evictedStaleFrames),
		CompletionFatalFrames: readCounter(m.completionFatalFrames),
		PeakAccumulators:      readGauge(m.peakAccumulators),
	}
}

func readCounter(c prometheus.Counter) float64 {
	var metric dto.Metric
	if err := c.Write(&metric); err != nil {
		return 0
	}
	return metric.GetCounter().GetValue()
}

func readGauge(g prometheus.Gauge) float64 {
	var metric dto.Metric
	if err := g.Write(&metric); err != nil {
		return 0
	}
	return metric.GetGauge().GetValue()
}
