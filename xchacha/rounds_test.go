// rounds_test.go - round network tests
//
// Copyright (c) 2014-2026, Secworks Sweden AB
// All rights reserved. See LICENSE for the full license text.

package xchacha

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// RFC 8439 section 2.1.1 quarter round example. The quarter round is
// shared with standard ChaCha, so the published example applies
// unchanged.
func TestQuarterRoundKnownAnswer(t *testing.T) {
	var x state
	x[0] = 0x11111111
	x[1] = 0x01020304
	x[2] = 0x9b8d6f43
	x[3] = 0x01234567

	quarterRound(&x, 0, 1, 2, 3)

	assert.Equal(t, uint32(0xea2a92f4), x[0])
	assert.Equal(t, uint32(0xcb1cf8ce), x[1])
	assert.Equal(t, uint32(0x4581472e), x[2])
	assert.Equal(t, uint32(0x5881c4bb), x[3])
}

// The quarter round is a pure function of the four selected words:
// the same inputs produce the same outputs regardless of position or
// surrounding state.
func TestQuarterRoundPurity(t *testing.T) {
	inputs := [4]uint32{0xdeadbeef, 0x01234567, 0x89abcdef, 0xfeedface}

	var a, b state
	a[0], a[4], a[8], a[12] = inputs[0], inputs[1], inputs[2], inputs[3]
	for i := range b {
		b[i] = 0xa5a5a5a5
	}
	b[3], b[7], b[11], b[15] = inputs[0], inputs[1], inputs[2], inputs[3]

	quarterRound(&a, 0, 4, 8, 12)
	quarterRound(&b, 3, 7, 11, 15)

	assert.Equal(t, a[0], b[3])
	assert.Equal(t, a[4], b[7])
	assert.Equal(t, a[8], b[11])
	assert.Equal(t, a[12], b[15])
}

// Only the four selected positions may change.
func TestQuarterRoundTouchesSelectedWordsOnly(t *testing.T) {
	var x state
	for i := range x {
		x[i] = uint32(i) * 0x01010101
	}
	before := x

	quarterRound(&x, 1, 6, 11, 12)

	for i := range x {
		switch i {
		case 1, 6, 11, 12:
		default:
			assert.Equal(t, before[i], x[i], "word %d", i)
		}
	}
}

// The column/diagonal ordering of the double round is load bearing.
// Applying the eight quarter rounds in the specified order by hand
// must match doubleRound exactly.
func TestDoubleRoundOrdering(t *testing.T) {
	var x, y state
	for i := range x {
		x[i] = uint32(i)*0x9e3779b9 + 1
	}
	y = x

	doubleRound(&x)

	for _, q := range [][4]int{
		{0, 4, 8, 12}, {1, 5, 9, 13}, {2, 6, 10, 14}, {3, 7, 11, 15},
		{0, 5, 10, 15}, {1, 6, 11, 12}, {2, 7, 8, 13}, {3, 4, 9, 14},
	} {
		quarterRound(&y, q[0], q[1], q[2], q[3])
	}

	assert.Equal(t, y, x)
}
