// rounds.go - ARX round network
//
// Copyright (c) 2014-2026, Secworks Sweden AB
// All rights reserved. See LICENSE for the full license text.

package xchacha

import "math/bits"

// quarterRound mixes the four state words at positions a, b, c, d in
// place. The operation ordering and the rotation amounts 16, 12, 8, 7
// must match the hardware datapath exactly; changing either breaks
// every downstream test vector.
func quarterRound(x *state, a, b, c, d int) {
	x[a] += x[b]
	x[d] = bits.RotateLeft32(x[d]^x[a], 16)
	x[c] += x[d]
	x[b] = bits.RotateLeft32(x[b]^x[c], 12)
	x[a] += x[b]
	x[d] = bits.RotateLeft32(x[d]^x[a], 8)
	x[c] += x[d]
	x[b] = bits.RotateLeft32(x[b]^x[c], 7)
}

// doubleRound applies eight quarter rounds, first over the columns of
// the 4x4 state matrix and then over its diagonals.
func doubleRound(x *state) {
	quarterRound(x, 0, 4, 8, 12)
	quarterRound(x, 1, 5, 9, 13)
	quarterRound(x, 2, 6, 10, 14)
	quarterRound(x, 3, 7, 11, 15)

	quarterRound(x, 0, 5, 10, 15)
	quarterRound(x, 1, 6, 11, 12)
	quarterRound(x, 2, 7, 8, 13)
	quarterRound(x, 3, 4, 9, 14)
}
