// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package adapter

import (
	"io"

	"github.com/pion/logging"

	"github.com/pion-community/wupvideo/pkg/wupvideo"
)

// ChannelSink forwards completed frames onto a Go channel for a downstream
// consumer (e.g. a video decode pipeline, explicitly out of scope per
// spec.md §4). Fragment payloads are copied before being sent, since the
// Sink contract does not let a sink assume they outlive HandleFrame.
type ChannelSink struct {
	frames chan Frame
}

// Frame is a completed frame as handed off across a ChannelSink: a
// timestamp and its ordered, independently-owned fragment payloads.
type Frame struct {
	Timestamp uint32
	Payloads  [][]byte
}

// NewChannelSink creates a ChannelSink with the given channel capacity.
func NewChannelSink(capacity int) *ChannelSink {
	return &ChannelSink{frames: make(chan Frame, capacity)}
}

// Frames returns the channel completed frames are published to.
func (s *ChannelSink) Frames() <-chan Frame {
	return s.frames
}

// HandleFrame implements wupvideo.Sink.
func (s *ChannelSink) HandleFrame(timestamp uint32, fragments []*wupvideo.VideoPacket) {
	payloads := make([][]byte, len(fragments))
	for i, f := range fragments {
		payloads[i] = append([]byte(nil), f.Payload...)
	}
	s.frames <- Frame{Timestamp: timestamp, Payloads: payloads}
}

// Close closes the underlying channel. It must only be called once no
// further HandleFrame calls will occur.
func (s *ChannelSink) Close() {
	close(s.frames)
}

// WriterSink writes each completed frame's concatenated fragment payloads
// to w, in order, with no framing of its own -- useful for piping raw
// encoded video into a downstream decoder process.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink wraps w as a Sink.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// HandleFrame implements wupvideo.Sink.
func (s *WriterSink) HandleFrame(_ uint32, fragments []*wupvideo.VideoPacket) {
	for _, f := range fragments {
		_, _ = s.w.Write(f.Payload)
	}
}

// LoggingSink logs a one-line summary of every completed frame, matching
// the teacher's habit of a log-only Sink for debugging and the parse CLI
// mode.
type LoggingSink struct {
	log logging.LeveledLogger
}

// NewLoggingSink creates a LoggingSink that logs through log.
func NewLoggingSink(log logging.LeveledLogger) *LoggingSink {
	return &LoggingSink{log: log}
}

// HandleFrame implements wupvideo.Sink.
func (s *LoggingSink) HandleFrame(timestamp uint32, fragments []*wupvideo.VideoPacket) {
	total := 0
	for _, f := range fragments {
		total += len(f.Payload)
	}
	s.log.Infof("wupvideo: frame timestamp=%d fragments=%d bytes=%d", timestamp, len(fragments), total)
}
