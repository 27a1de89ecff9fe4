// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package adapter

import (
	"fmt"
	"os"
)

// RawRecorder writes raw datagrams to a capture file in the fixed-width,
// zero-padded record layout §6 describes, so they can later be replayed
// through FileSource.
type RawRecorder struct {
	f          *os.File
	recordSize int
}

// NewRawRecorder creates (or truncates) path for recording. recordSize
// should match the source's buffer_capacity.
func NewRawRecorder(path string, recordSize int) (*RawRecorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("wupvideo/adapter: create %q: %w", path, err)
	}
	return &RawRecorder{f: f, recordSize: recordSize}, nil
}

// RecordDatagram appends one zero-padded, fixed-width record containing the
// first n bytes of buf.
func (r *RawRecorder) RecordDatagram(buf []byte, n int) error {
	record := make([]byte, r.recordSize)
	copy(record, buf[:n])

	if _, err := r.f.Write(record); err != nil {
		return fmt.Errorf("wupvideo/adapter: write record: %w", err)
	}
	return nil
}

// Close flushes and closes the capture file.
func (r *RawRecorder) Close() error {
	return r.f.Close()
}
