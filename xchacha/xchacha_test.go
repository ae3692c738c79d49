// xchacha_test.go - keystream core tests
//
// Copyright (c) 2014-2026, Secworks Sweden AB
// All rights reserved. See LICENSE for the full license text.

package xchacha

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/chacha20"

	"github.com/secworks/trng/internal/vectors"
)

func TestKnownAnswerVectors(t *testing.T) {
	for _, v := range vectors.All() {
		v := v
		t.Run(v.Name, func(t *testing.T) {
			c, err := New(v.Key, v.IV, WithRounds(v.Rounds))
			require.NoError(t, err)

			var in, out [BlockSize]byte
			require.NoError(t, c.NextBlock(out[:], in[:]))
			assert.Equal(t, v.Expected, out[:])
		})
	}
}

// With a 256-bit key, 20 rounds and an all-zero IV the construction is
// bit-identical to IETF ChaCha20 under a zero nonce for counter values
// below 2^32. Cross-check several consecutive blocks against the
// x/crypto implementation.
func TestCrossCheckChaCha20(t *testing.T) {
	key := make([]byte, KeySize256)
	for i := range key {
		key[i] = byte(i)
	}
	iv := make([]byte, IVSize)

	c, err := New(key, iv, WithRounds(20))
	require.NoError(t, err)

	const nrBlocks = 4
	want := make([]byte, nrBlocks*BlockSize)
	ref, err := chacha20.NewUnauthenticatedCipher(key, make([]byte, chacha20.NonceSize))
	require.NoError(t, err)
	ref.XORKeyStream(want, make([]byte, len(want)))

	got := make([]byte, nrBlocks*BlockSize)
	zero := make([]byte, BlockSize)
	for i := 0; i < nrBlocks; i++ {
		require.NoError(t, c.NextBlock(got[i*BlockSize:(i+1)*BlockSize], zero))
	}
	assert.Equal(t, want, got)
}

func TestDeterminism(t *testing.T) {
	key := make([]byte, KeySize128)
	iv := make([]byte, IVSize)
	key[3] = 0x5a
	iv[7] = 0xa5

	a, err := New(key, iv)
	require.NoError(t, err)
	b, err := New(key, iv)
	require.NoError(t, err)

	zero := make([]byte, BlockSize)
	var outA, outB [BlockSize]byte
	for i := 0; i < 3; i++ {
		require.NoError(t, a.NextBlock(outA[:], zero))
		require.NoError(t, b.NextBlock(outB[:], zero))
		assert.Equal(t, outA, outB, "block %d", i)
	}
}

func TestInvolution(t *testing.T) {
	key := make([]byte, KeySize256)
	iv := make([]byte, IVSize)
	copy(key, "involution test key material....")
	copy(iv, "iviviviv")

	plaintext := make([]byte, BlockSize)
	for i := range plaintext {
		plaintext[i] = byte(i * 3)
	}

	enc, err := New(key, iv)
	require.NoError(t, err)
	dec, err := New(key, iv)
	require.NoError(t, err)

	var ciphertext, recovered [BlockSize]byte
	require.NoError(t, enc.NextBlock(ciphertext[:], plaintext))
	require.NotEqual(t, plaintext, ciphertext[:])
	require.NoError(t, dec.NextBlock(recovered[:], ciphertext[:]))
	assert.Equal(t, plaintext, recovered[:])
}

func TestNextBlockInPlace(t *testing.T) {
	key := make([]byte, KeySize128)
	iv := make([]byte, IVSize)

	buf := make([]byte, BlockSize)
	c, err := New(key, iv)
	require.NoError(t, err)
	require.NoError(t, c.NextBlock(buf, buf))

	assert.Equal(t, vectors.All()[0].Expected, buf)
}

func TestCounterMonotonicity(t *testing.T) {
	c, err := New(make([]byte, KeySize128), make([]byte, IVSize))
	require.NoError(t, err)

	var in, out [BlockSize]byte
	const n = 17
	for i := 0; i < n; i++ {
		require.NoError(t, c.NextBlock(out[:], in[:]))
	}
	assert.Equal(t, uint64(n), c.Counter())
}

func TestCounterCarry(t *testing.T) {
	c, err := New(make([]byte, KeySize128), make([]byte, IVSize))
	require.NoError(t, err)

	// Seed the counter just below the low word wrap boundary.
	c.state[12] = 0xffffffff

	var in, out [BlockSize]byte
	require.NoError(t, c.NextBlock(out[:], in[:]))
	assert.Equal(t, uint64(1)<<32, c.Counter())
	assert.Equal(t, uint32(0), c.state[12])
	assert.Equal(t, uint32(1), c.state[13])
}

func TestCounterUntouchedOnError(t *testing.T) {
	c, err := New(make([]byte, KeySize128), make([]byte, IVSize))
	require.NoError(t, err)

	short := make([]byte, BlockSize-1)
	var out [BlockSize]byte
	assert.ErrorIs(t, c.NextBlock(out[:], short), ErrInvalidBlockLength)
	assert.ErrorIs(t, c.NextBlock(short, out[:]), ErrInvalidBlockLength)
	assert.Equal(t, uint64(0), c.Counter())
}

// A failed New leaves no usable state behind; a zero-value Cipher must
// not produce blocks either.
func TestZeroValueCipherRejected(t *testing.T) {
	var c Cipher
	var in, out [BlockSize]byte
	assert.ErrorIs(t, c.NextBlock(out[:], in[:]), ErrInvalidRounds)
}

func TestKeyLengthRejection(t *testing.T) {
	iv := make([]byte, IVSize)
	for _, n := range []int{0, 1, 8, 15, 17, 24, 31, 33, 64} {
		_, err := New(make([]byte, n), iv)
		assert.ErrorIs(t, err, ErrUnsupportedKeyLength, "key length %d", n)
	}
}

func TestIVLengthRejection(t *testing.T) {
	key := make([]byte, KeySize256)
	for _, n := range []int{0, 7, 9, 12, 24} {
		_, err := New(key, make([]byte, n))
		assert.ErrorIs(t, err, ErrUnsupportedIVLength, "iv length %d", n)
	}
}

func TestRoundsValidation(t *testing.T) {
	key := make([]byte, KeySize128)
	iv := make([]byte, IVSize)

	for _, n := range []int{0, -2} {
		_, err := New(key, iv, WithRounds(n))
		assert.ErrorIs(t, err, ErrInvalidRounds, "rounds %d", n)
	}
}

// An odd round count truncates to rounds/2 double rounds instead of
// failing.
func TestOddRoundsTruncate(t *testing.T) {
	key := make([]byte, KeySize128)
	iv := make([]byte, IVSize)

	odd, err := New(key, iv, WithRounds(9))
	require.NoError(t, err)
	even, err := New(key, iv, WithRounds(8))
	require.NoError(t, err)

	zero := make([]byte, BlockSize)
	var outOdd, outEven [BlockSize]byte
	require.NoError(t, odd.NextBlock(outOdd[:], zero))
	require.NoError(t, even.NextBlock(outEven[:], zero))
	assert.Equal(t, outEven, outOdd)
}

func TestRekeyResetsCounter(t *testing.T) {
	key := make([]byte, KeySize256)
	iv := make([]byte, IVSize)

	c, err := New(key, iv)
	require.NoError(t, err)

	var in, out1, out2 [BlockSize]byte
	require.NoError(t, c.NextBlock(out1[:], in[:]))
	require.NoError(t, c.NextBlock(out2[:], in[:]))
	require.Equal(t, uint64(2), c.Counter())

	require.NoError(t, c.Rekey(key, iv))
	assert.Equal(t, uint64(0), c.Counter())

	var again [BlockSize]byte
	require.NoError(t, c.NextBlock(again[:], in[:]))
	assert.Equal(t, out1, again)
}

func TestRekeyRejectsBadKeyWithoutStateDamage(t *testing.T) {
	key := make([]byte, KeySize128)
	iv := make([]byte, IVSize)

	c, err := New(key, iv)
	require.NoError(t, err)

	require.ErrorIs(t, c.Rekey(make([]byte, 20), iv), ErrUnsupportedKeyLength)

	// The failed rekey must not have disturbed the running state.
	var in, out [BlockSize]byte
	require.NoError(t, c.NextBlock(out[:], in[:]))
	assert.Equal(t, vectors.All()[0].Expected, out[:])
}

func TestTraceCallbackSequence(t *testing.T) {
	type event struct {
		ev    TraceEvent
		round int
	}
	var seen []event
	var final [16]uint32

	key := make([]byte, KeySize128)
	iv := make([]byte, IVSize)
	c, err := New(key, iv, WithTrace(func(ev TraceEvent, round int, words [16]uint32) {
		seen = append(seen, event{ev, round})
		final = words
	}))
	require.NoError(t, err)

	var in, out [BlockSize]byte
	require.NoError(t, c.NextBlock(out[:], in[:]))

	want := []event{
		{TraceInit, 0},
		{TraceDoubleRound, 0},
		{TraceDoubleRound, 1},
		{TraceDoubleRound, 2},
		{TraceDoubleRound, 3},
		{TraceBlock, 0},
	}
	assert.Equal(t, want, seen)

	// The block event reports the persistent state, post-increment.
	assert.Equal(t, uint32(1), final[12])
}
