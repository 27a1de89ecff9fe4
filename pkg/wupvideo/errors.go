// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package wupvideo

import "errors"

// Decoder rejections (§4.B, §7). These are returned by Decode and are
// per-datagram and recoverable: the caller should drop the datagram and
// continue reading the stream.
var (
	// ErrShortBuffer means the buffer was smaller than the 17-byte
	// minimum (16-byte fixed header plus at least one payload byte).
	ErrShortBuffer = errors.New("wupvideo: buffer shorter than minimum datagram size")
	// ErrBadMagic means the 4-bit magic nibble was not 0xF.
	ErrBadMagic = errors.New("wupvideo: bad magic nibble")
	// ErrBadType means the 2-bit packet_type field was not 0.
	ErrBadType = errors.New("wupvideo: unsupported packet type")
	// ErrMissingTimestamp means has_timestamp was false.
	ErrMissingTimestamp = errors.New("wupvideo: packet has no timestamp")
	// ErrTruncatedPayload means the buffer was shorter than
	// 16+payload_size.
	ErrTruncatedPayload = errors.New("wupvideo: payload truncated")
)

// Accumulator insertion rejections (§4.C, §7). Returned by
// FrameAccumulator.AddPacket. All are per-datagram and recoverable; the
// fragment is dropped and the accumulator is retained.
var (
	// ErrNoTimestamp means the packet claims not to carry a timestamp.
	// The wire decoder already rejects such packets, so this only fires
	// on packets constructed by hand; it exists as a defensive check
	// per spec §4.C.
	ErrNoTimestamp = errors.New("wupvideo: packet has no timestamp")
	// ErrWrongTimestamp means the packet's timestamp does not match the
	// accumulator's timestamp.
	ErrWrongTimestamp = errors.New("wupvideo: packet timestamp does not match accumulator")
	// ErrAlreadyHaveBegin means a frame_begin fragment is already held.
	ErrAlreadyHaveBegin = errors.New("wupvideo: accumulator already has a frame_begin fragment")
	// ErrAlreadyHaveEnd means a frame_end fragment is already held.
	ErrAlreadyHaveEnd = errors.New("wupvideo: accumulator already has a frame_end fragment")
	// ErrAlreadyHaveSeq means a fragment with this seq_id is already
	// held.
	ErrAlreadyHaveSeq = errors.New("wupvideo: accumulator already has a fragment with this seq_id")
)

// Accumulator completion states (§4.C, §7). Returned by
// FrameAccumulator.Complete. The first four are retryable: the frame should
// keep waiting for more fragments. The last two are fatal: the frame can
// never complete and the accumulator must be dropped.
var (
	// ErrNoBeginEndPacket means neither a begin nor an end fragment has
	// been seen yet.
	ErrNoBeginEndPacket = errors.New("wupvideo: no frame_begin or frame_end fragment seen yet")
	// ErrNoBeginPacket means an end fragment was seen but no begin
	// fragment.
	ErrNoBeginPacket = errors.New("wupvideo: no frame_begin fragment seen yet")
	// ErrNoEndPacket means a begin fragment was seen but no end
	// fragment.
	ErrNoEndPacket = errors.New("wupvideo: no frame_end fragment seen yet")
	// ErrTooFewPackets means begin and end are both known but fewer
	// fragments are held than the arc between them requires.
	ErrTooFewPackets = errors.New("wupvideo: fewer fragments held than the begin..end arc requires")
	// ErrTooManyPackets means more fragments are held than the arc
	// between begin and end requires. This is unrecoverable; some
	// fragment outside the arc was accepted.
	ErrTooManyPackets = errors.New("wupvideo: more fragments held than the begin..end arc requires")
	// ErrCorrupt means the fragment count matches the expected arc
	// length but one or more sequence IDs within the arc are missing
	// (so a fragment outside the arc was accepted in their place).
	// This is unrecoverable.
	ErrCorrupt = errors.New("wupvideo: fragment count matches but an intermediate seq_id is missing")
)
