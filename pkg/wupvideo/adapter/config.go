// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package adapter provides the external collaborators spec.md §4.E and §6
// deliberately keep out of the core: UDP and capture-file sources, raw-file
// recording, Sink implementations, and file-backed configuration. None of it
// carries reassembly logic; everything here calls down into pkg/wupvideo.
package adapter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pion-community/wupvideo/pkg/wupvideo"
)

// DefaultBufferCapacity is the practical datagram buffer size recommended by
// §4.E. It is 15 bytes smaller than the maximum theoretical WUP datagram
// (16B header + 2047B payload = 2063B, wupvideo.MaxDatagramSize), so a
// datagram of that maximum size does not fit whole in a buffer of this size.
const DefaultBufferCapacity = 2048

// DefaultStaleFrameThreshold has the same value as
// wupvideo.DefaultStaleFrameThreshold, so that a Config loaded with zero
// values still has a sane default.
const DefaultStaleFrameThreshold = 5 * 16683

// DefaultListenPort is the informational default video port from §4.E.
const DefaultListenPort = 50120

// Config carries the recognised knobs of spec.md §4.E plus the CLI-only
// settings sketched in §6. Zero-valued fields are filled in by
// ApplyDefaults.
type Config struct {
	BufferCapacity      int    `yaml:"buffer_capacity"`
	StaleFrameThreshold uint32 `yaml:"stale_frame_threshold"`
	ListenPort          int    `yaml:"listen_port"`

	BindAddress string `yaml:"bind_address"`
	Path        string `yaml:"path"`
}

// ApplyDefaults fills in any zero-valued field with its documented default.
func (c *Config) ApplyDefaults() {
	if c.BufferCapacity == 0 {
		c.BufferCapacity = DefaultBufferCapacity
	}
	if c.StaleFrameThreshold == 0 {
		c.StaleFrameThreshold = DefaultStaleFrameThreshold
	}
	if c.ListenPort == 0 {
		c.ListenPort = DefaultListenPort
	}
}

// Validate rejects a buffer capacity too small to hold even the fixed
// header and one payload byte (see DESIGN.md: §4.E's own "2048 is a
// practical value" example is smaller than the 2063-byte bound it also
// states, so that bound is not enforced as a hard minimum here).
func (c *Config) Validate() error {
	if c.BufferCapacity < wupvideo.MinDatagramSize {
		return fmt.Errorf("wupvideo/adapter: buffer_capacity must be >= %d, got %d", wupvideo.MinDatagramSize, c.BufferCapacity)
	}
	return nil
}

// LoadConfig reads a YAML configuration file, applies defaults for any
// knob it leaves unset, and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wupvideo/adapter: read config %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("wupvideo/adapter: parse config %q: %w", path, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
