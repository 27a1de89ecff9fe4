// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package wupvideo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCompareTimestamps_Equal(t *testing.T) {
	assert.Equal(t, OrderingEqual, CompareTimestamps(42, 42))
}

func TestCompareTimestamps_KnownCases(t *testing.T) {
	tests := []struct {
		name string
		s, t uint32
		want Ordering
	}{
		{"simple less", 10, 20, OrderingLess},
		{"simple greater", 20, 10, OrderingGreater},
		{"wraps forward across boundary", 0xFFFFFFFE, 1, OrderingLess},
		{"wraps backward across boundary", 1, 0xFFFFFFFE, OrderingGreater},
		{"exact half is indeterminate", 0, 1 << 31, OrderingIndeterminate},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CompareTimestamps(tc.s, tc.t))
		})
	}
}

func TestCompareSeqIDs_KnownCases(t *testing.T) {
	tests := []struct {
		name string
		s, t uint16
		want Ordering
	}{
		{"simple less", 5, 6, OrderingLess},
		{"wraps forward across boundary", 1023, 0, OrderingLess},
		{"wraps backward across boundary", 0, 1023, OrderingGreater},
		{"exact half is indeterminate", 0, 512, OrderingIndeterminate},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CompareSeqIDs(tc.s, tc.t))
		})
	}
}

// TestPAWSTotality_32 checks §8's "PAWS totality" property: for all (s, t)
// in the 32-bit domain, CompareTimestamps returns one of the four defined
// orderings, Indeterminate iff the values are exactly half the domain
// apart, and the relation is antisymmetric.
func TestPAWSTotality_32(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := uint32(rapid.Uint32().Draw(t, "s"))
		tt := uint32(rapid.Uint32().Draw(t, "t"))

		forward := CompareTimestamps(s, tt)
		backward := CompareTimestamps(tt, s)

		assert.Contains(t, []Ordering{OrderingLess, OrderingEqual, OrderingGreater, OrderingIndeterminate}, forward)
		assert.Equal(t, forward.reverse(), backward, "compare(s,t) must equal reverse(compare(t,s))")

		diff := uint64(tt-s) % (1 << 32)
		if diff == 1<<31 {
			assert.Equal(t, OrderingIndeterminate, forward)
		} else {
			assert.NotEqual(t, OrderingIndeterminate, forward)
		}
	})
}

// TestPAWSTotality_10 is the same property at the 10-bit sequence-ID width,
// with halfspace 2^9 as §8 specifies.
func TestPAWSTotality_10(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := uint16(rapid.IntRange(0, 1023).Draw(t, "s"))
		tt := uint16(rapid.IntRange(0, 1023).Draw(t, "t"))

		forward := CompareSeqIDs(s, tt)
		backward := CompareSeqIDs(tt, s)

		assert.Contains(t, []Ordering{OrderingLess, OrderingEqual, OrderingGreater, OrderingIndeterminate}, forward)
		assert.Equal(t, forward.reverse(), backward)

		diff := (uint32(tt) - uint32(s) + 1024) % 1024
		if diff == 512 {
			assert.Equal(t, OrderingIndeterminate, forward)
		} else {
			assert.NotEqual(t, OrderingIndeterminate, forward)
		}
	})
}
