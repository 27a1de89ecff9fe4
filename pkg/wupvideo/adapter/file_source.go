// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package adapter

import (
	"fmt"
	"io"
	"os"
)

// FileSource replays a capture file written by RawRecorder: a flat
// concatenation of fixed-width records, each recordSize bytes (§6). Short
// datagrams were zero-padded on write; the decoder relies only on
// payload_size within the header to know how much of each record is real,
// so FileSource itself does no trimming.
type FileSource struct {
	f          *os.File
	recordSize int
}

// NewFileSource opens path for replay. recordSize must match the
// buffer_capacity the file was recorded with.
func NewFileSource(path string, recordSize int) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wupvideo/adapter: open %q: %w", path, err)
	}
	return &FileSource{f: f, recordSize: recordSize}, nil
}

// ReadDatagram reads the next fixed-width record into buf, which must be at
// least recordSize bytes. It returns io.EOF once every record has been
// consumed.
func (s *FileSource) ReadDatagram(buf []byte) (int, error) {
	if len(buf) < s.recordSize {
		return 0, fmt.Errorf("wupvideo/adapter: buffer of %d bytes too small for record size %d", len(buf), s.recordSize)
	}

	n, err := io.ReadFull(s.f, buf[:s.recordSize])
	if err == io.ErrUnexpectedEOF {
		return 0, io.EOF
	}
	return n, err
}

// Close releases the underlying file.
func (s *FileSource) Close() error {
	return s.f.Close()
}
