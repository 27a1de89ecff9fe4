// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package wupvideo

import (
	"errors"

	"github.com/pion/logging"
)

// DefaultStaleFrameThreshold is the recommended staleness window from §4.D:
// five frame-times at the ~60Hz target frame rate (5 * 16683us).
const DefaultStaleFrameThreshold uint32 = 5 * 16683

// ReassemblyEngine routes decoded packets to per-timestamp accumulators,
// evicts accumulators that have fallen behind the staleness threshold, and
// emits completed frames to a Sink (§4.D). All state belongs to one engine
// instance; nothing is global, and independent engine instances never
// interact (§5).
//
// ReassemblyEngine is not safe for concurrent use: it is built for a
// single-threaded, input-driven scheduling model where Ingest runs to
// completion before the next datagram is processed.
type ReassemblyEngine struct {
	accumulators map[uint32]*FrameAccumulator

	hasHighWaterMark bool
	highWaterMark    uint32

	staleFrameThreshold uint32
	peakAccumulators    int

	sink Sink

	log           logging.LeveledLogger
	loggerFactory logging.LoggerFactory
	metrics       *Metrics
}

// NewReassemblyEngine constructs a ReassemblyEngine that emits completed
// frames to sink. sink must not be nil.
func NewReassemblyEngine(sink Sink, opts ...EngineOption) (*ReassemblyEngine, error) {
	if sink == nil {
		return nil, errors.New("wupvideo: NewReassemblyEngine requires a non-nil sink")
	}

	e := &ReassemblyEngine{
		accumulators:        make(map[uint32]*FrameAccumulator),
		staleFrameThreshold: DefaultStaleFrameThreshold,
		sink:                sink,
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	if e.loggerFactory == nil {
		e.loggerFactory = logging.NewDefaultLoggerFactory()
	}
	if e.log == nil {
		e.log = e.loggerFactory.NewLogger("wupvideo")
	}
	if e.metrics == nil {
		e.metrics = NewMetrics(nil)
	}

	return e, nil
}

// AccumulatorCount returns the number of accumulators currently in flight.
func (e *ReassemblyEngine) AccumulatorCount() int {
	return len(e.accumulators)
}

// PeakAccumulatorCount returns the highest AccumulatorCount observed over
// the engine's lifetime.
func (e *ReassemblyEngine) PeakAccumulatorCount() int {
	return e.peakAccumulators
}

// Stats returns a snapshot of the engine's metrics.
func (e *ReassemblyEngine) Stats() Stats {
	return e.metrics.Snapshot()
}

// Ingest processes one decoded packet (§4.D). Per-datagram and
// per-accumulator rejections are logged and never propagate out of Ingest;
// the only fatal failures are I/O failures at the adapter boundary, which
// Ingest never sees.
func (e *ReassemblyEngine) Ingest(p *VideoPacket) {
	e.updateHighWaterMark(p.Timestamp)
	e.evictStaleAccumulators()

	acc, ok := e.accumulators[p.Timestamp]
	if !ok {
		acc = NewFrameAccumulator(p.Timestamp)
		e.accumulators[p.Timestamp] = acc
		e.trackPeakAccumulators()
	}

	if err := acc.AddPacket(p); err != nil {
		e.log.Warnf("wupvideo: dropping fragment seq_id=%d timestamp=%d: %v", p.SeqID, p.Timestamp, err)
		return
	}

	fragments, err := acc.Complete()
	switch {
	case err == nil:
		e.metrics.incCompleted()
		e.sink.HandleFrame(acc.Timestamp(), fragments)
		delete(e.accumulators, p.Timestamp)

	case errors.Is(err, ErrTooManyPackets), errors.Is(err, ErrCorrupt):
		e.log.Warnf("wupvideo: dropping unrecoverable frame timestamp=%d: %v", p.Timestamp, err)
		e.metrics.incCompletionFatal()
		delete(e.accumulators, p.Timestamp)

	default:
		// ErrNoBeginEndPacket, ErrNoBeginPacket, ErrNoEndPacket,
		// ErrTooFewPackets: keep waiting. Stale eviction will retire
		// this accumulator eventually if it never completes.
	}
}

// updateHighWaterMark implements §4.D step 1.
func (e *ReassemblyEngine) updateHighWaterMark(timestamp uint32) {
	if !e.hasHighWaterMark {
		e.highWaterMark = timestamp
		e.hasHighWaterMark = true
		return
	}
	if CompareTimestamps(timestamp, e.highWaterMark) == OrderingGreater {
		e.highWaterMark = timestamp
	}
}

// evictStaleAccumulators implements §4.D step 2: destroy every accumulator
// whose timestamp is older than high_water_mark - stale_frame_threshold.
func (e *ReassemblyEngine) evictStaleAccumulators() {
	if !e.hasHighWaterMark {
		return
	}
	threshold := e.highWaterMark - e.staleFrameThreshold

	for k := range e.accumulators {
		if CompareTimestamps(k, threshold) == OrderingLess {
			e.log.Tracef("wupvideo: evicting stale accumulator timestamp=%d", k)
			e.metrics.incEvictedStale()
			delete(e.accumulators, k)
		}
	}
}

func (e *ReassemblyEngine) trackPeakAccumulators() {
	n := len(e.accumulators)
	if n > e.peakAccumulators {
		e.peakAccumulators = n
		e.metrics.setPeakAccumulators(n)
	}
}
