// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_port: 60000\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultBufferCapacity, cfg.BufferCapacity)
	assert.EqualValues(t, DefaultStaleFrameThreshold, cfg.StaleFrameThreshold)
	assert.Equal(t, 60000, cfg.ListenPort)
}

func TestLoadConfig_RejectsSmallBufferCapacity(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("buffer_capacity: 10\n"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

// TestLoadConfig_AcceptsSpecPracticalDefault guards against reintroducing a
// hard >= 2063 check: §4.E's own "practical value is 2048" example must
// load cleanly even though 2048 < 2063.
func TestLoadConfig_AcceptsSpecPracticalDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("buffer_capacity: 2048\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2048, cfg.BufferCapacity)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
