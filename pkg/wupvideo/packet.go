// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package wupvideo decodes the WUP GamePad video datagram protocol and
// reassembles fragmented video frames from it. It implements bit-exact
// big-endian parsing and an RFC 1323 PAWS-style reassembly engine, similar
// in shape to libwebrtc's PacketBuffer and RtpFrameObject.
package wupvideo

import (
	"encoding/binary"
)

// Wire constants (§6).
const (
	// ProtocolMagic is the required value of the 4-bit magic field.
	ProtocolMagic uint8 = 0xF
	// ProtocolPacketType is the required value of the 2-bit
	// packet_type field.
	ProtocolPacketType uint8 = 0

	// FixedHeaderSize is the size in bytes of the fixed portion of a
	// datagram, before the payload.
	FixedHeaderSize = 16
	// MinDatagramSize is the smallest a valid datagram buffer may be:
	// the fixed header plus at least one payload byte.
	MinDatagramSize = FixedHeaderSize + 1
	// MaxPayloadSize is the largest payload_size the 11-bit field can
	// represent.
	MaxPayloadSize = (1 << 11) - 1
	// MaxDatagramSize is the theoretical maximum datagram length:
	// 16-byte header plus the largest possible payload.
	MaxDatagramSize = FixedHeaderSize + MaxPayloadSize

	seqIDBits  = 10
	seqIDMask  = (1 << seqIDBits) - 1
	magicShift = 12
	typeShift  = 10

	payloadSizeBits = 11
	payloadSizeMask = (1 << payloadSizeBits) - 1
)

// VideoPacket is the decoded form of one datagram (§3). It is immutable
// once produced by Decode.
type VideoPacket struct {
	Magic        uint8
	PacketType   uint8
	SeqID        uint16 // 10-bit, wraps at 1024
	Init         bool
	FrameBegin   bool
	ChunkEnd     bool
	FrameEnd     bool
	HasTimestamp bool
	PayloadSize  uint16 // 11-bit, byte length of Payload
	Timestamp    uint32 // microseconds, wraps every ~1.19h
	ExtendedHeader [8]byte
	Payload      []byte
}

// Decode parses a raw datagram buffer into a VideoPacket (§4.B). It returns
// one of the decoder rejection sentinels on malformed input; decoding never
// panics and performs no I/O.
//
// Reject conditions, checked in this order: buf shorter than
// MinDatagramSize, magic != ProtocolMagic, packet_type != ProtocolPacketType,
// has_timestamp == false, buf shorter than 16+payload_size.
func Decode(buf []byte) (*VideoPacket, error) {
	if len(buf) < MinDatagramSize {
		return nil, ErrShortBuffer
	}

	header1 := binary.BigEndian.Uint16(buf[0:2])
	magic := uint8(header1>>magicShift) & 0xF
	if magic != ProtocolMagic {
		return nil, ErrBadMagic
	}
	packetType := uint8(header1>>typeShift) & 0x3
	if packetType != ProtocolPacketType {
		return nil, ErrBadType
	}
	seqID := header1 & seqIDMask

	header2 := binary.BigEndian.Uint16(buf[2:4])
	init := header2&0x8000 != 0
	frameBegin := header2&0x4000 != 0
	chunkEnd := header2&0x2000 != 0
	frameEnd := header2&0x1000 != 0
	hasTimestamp := header2&0x0800 != 0
	if !hasTimestamp {
		return nil, ErrMissingTimestamp
	}
	payloadSize := header2 & payloadSizeMask

	timestamp := binary.BigEndian.Uint32(buf[4:8])

	var extendedHeader [8]byte
	copy(extendedHeader[:], buf[8:16])

	needed := FixedHeaderSize + int(payloadSize)
	if len(buf) < needed {
		return nil, ErrTruncatedPayload
	}

	payload := make([]byte, payloadSize)
	copy(payload, buf[FixedHeaderSize:needed])

	return &VideoPacket{
		Magic:          magic,
		PacketType:     packetType,
		SeqID:          seqID,
		Init:           init,
		FrameBegin:     frameBegin,
		ChunkEnd:       chunkEnd,
		FrameEnd:       frameEnd,
		HasTimestamp:   hasTimestamp,
		PayloadSize:    payloadSize,
		Timestamp:      timestamp,
		ExtendedHeader: extendedHeader,
		Payload:        payload,
	}, nil
}

// Marshal encodes p back into a raw datagram buffer. It is the inverse of
// Decode and exists primarily to exercise the round-trip property of §8;
// PayloadSize is recomputed from len(p.Payload) rather than trusted, so a
// packet built by hand with a stale PayloadSize still encodes to a decodable
// datagram, whose decoded PayloadSize is len(p.Payload).
func (p *VideoPacket) Marshal() []byte {
	payloadSize := len(p.Payload)
	buf := make([]byte, FixedHeaderSize+payloadSize)

	header1 := uint16(p.Magic&0xF)<<magicShift | uint16(p.PacketType&0x3)<<typeShift | (p.SeqID & seqIDMask)
	binary.BigEndian.PutUint16(buf[0:2], header1)

	var header2 uint16
	if p.Init {
		header2 |= 0x8000
	}
	if p.FrameBegin {
		header2 |= 0x4000
	}
	if p.ChunkEnd {
		header2 |= 0x2000
	}
	if p.FrameEnd {
		header2 |= 0x1000
	}
	if p.HasTimestamp {
		header2 |= 0x0800
	}
	header2 |= uint16(payloadSize) & payloadSizeMask
	binary.BigEndian.PutUint16(buf[2:4], header2)

	binary.BigEndian.PutUint32(buf[4:8], p.Timestamp)
	copy(buf[8:16], p.ExtendedHeader[:])
	copy(buf[FixedHeaderSize:], p.Payload)

	return buf
}
