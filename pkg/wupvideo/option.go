// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package wupvideo

import (
	"github.com/pion/logging"
	"github.com/prometheus/client_golang/prometheus"
)

// EngineOption configures a ReassemblyEngine at construction time, mirroring
// the functional-options pattern the teacher package uses for
// ReceiverInterceptorOption.
type EngineOption func(e *ReassemblyEngine) error

// WithStaleFrameThreshold sets the timestamp-domain distance after which a
// partial frame is evicted (§4.E stale_frame_threshold config knob). thresholdMicros is in the same microsecond units as
// VideoPacket.Timestamp.
func WithStaleFrameThreshold(thresholdMicros uint32) EngineOption {
	return func(e *ReassemblyEngine) error {
		e.staleFrameThreshold = thresholdMicros
		return nil
	}
}

// WithLog sets a logger for the engine.
func WithLog(log logging.LeveledLogger) EngineOption {
	return func(e *ReassemblyEngine) error {
		e.log = log
		return nil
	}
}

// WithLoggerFactory sets a logger factory the engine uses to build its
// default logger, if WithLog was not also given.
func WithLoggerFactory(loggerFactory logging.LoggerFactory) EngineOption {
	return func(e *ReassemblyEngine) error {
		e.loggerFactory = loggerFactory
		return nil
	}
}

// WithMetrics attaches a pre-built Metrics instance, letting the caller
// control registration (see NewMetrics).
func WithMetrics(m *Metrics) EngineOption {
	return func(e *ReassemblyEngine) error {
		e.metrics = m
		return nil
	}
}

// WithPrometheusRegisterer is a convenience option that builds a Metrics
// instance registered with reg.
func WithPrometheusRegisterer(reg prometheus.Registerer) EngineOption {
	return func(e *ReassemblyEngine) error {
		e.metrics = NewMetrics(reg)
		return nil
	}
}
