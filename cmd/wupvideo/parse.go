// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/pion/logging"

	"github.com/pion-community/wupvideo/pkg/wupvideo"
	"github.com/pion-community/wupvideo/pkg/wupvideo/adapter"
)

// runParse replays cfg.Path (a capture file written by "record") through the
// decoder and reassembly engine, logging each completed frame. Exit code 0
// on clean EOF, non-zero on I/O error.
func runParse(cfg *adapter.Config, loggerFactory logging.LoggerFactory, log logging.LeveledLogger) error {
	src, err := adapter.NewFileSource(cfg.Path, cfg.BufferCapacity)
	if err != nil {
		return fmt.Errorf("open capture file %s: %w", cfg.Path, err)
	}
	defer src.Close()

	sink := adapter.NewLoggingSink(log)
	engine, err := wupvideo.NewReassemblyEngine(
		sink,
		wupvideo.WithStaleFrameThreshold(cfg.StaleFrameThreshold),
		wupvideo.WithLoggerFactory(loggerFactory),
	)
	if err != nil {
		return fmt.Errorf("construct engine: %w", err)
	}

	buf := make([]byte, cfg.BufferCapacity)
	for {
		n, err := src.ReadDatagram(buf)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read datagram: %w", err)
		}

		p, err := wupvideo.Decode(buf[:n])
		if err != nil {
			log.Warnf("wupvideo: rejecting malformed datagram: %v", err)
			continue
		}
		engine.Ingest(p)
	}

	stats := engine.Stats()
	log.Infof(
		"wupvideo: parse complete: completed=%d evicted_stale=%d completion_fatal=%d peak_accumulators=%d",
		stats.CompletedFrames, stats.EvictedStaleFrames, stats.CompletionFatalFrames, stats.PeakAccumulators,
	)
	return nil
}
