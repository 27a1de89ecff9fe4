// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pion-community/wupvideo/pkg/wupvideo/adapter"
)

func TestRun_ParseReplaysCaptureFile(t *testing.T) {
	const bufferCapacity = 64
	path := filepath.Join(t.TempDir(), "capture.bin")

	rec, err := adapter.NewRawRecorder(path, bufferCapacity)
	require.NoError(t, err)

	// One minimum single-fragment frame: seq_id=1, timestamp=1,
	// frame_begin=frame_end=has_timestamp=true, payload_size=1.
	buf := []byte{
		0xF0, 0x01, 0x58, 0x01,
		0x00, 0x00, 0x00, 0x01,
		0, 0, 0, 0, 0, 0, 0, 0,
		0x2A,
	}
	require.NoError(t, rec.RecordDatagram(buf, len(buf)))
	require.NoError(t, rec.Close())

	code := run([]string{"--mode", "parse", "--path", path, "--buffer-capacity", "64"})
	require.Equal(t, 0, code)
}

func TestRun_RequiresPath(t *testing.T) {
	code := run([]string{"--mode", "parse"})
	require.Equal(t, 1, code)
}

func TestRun_RequiresValidMode(t *testing.T) {
	code := run([]string{"--mode", "bogus", "--path", "/dev/null"})
	require.Equal(t, 1, code)
}
