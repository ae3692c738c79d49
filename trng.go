// trng.go - TRNG reference model composition
//
// Copyright (c) 2014-2026, Secworks Sweden AB
// All rights reserved. See LICENSE for the full license text.

// Package trng composes the CSPRNG core with the SHA-512 entropy mixer
// the way the TRNG hardware chains them. The entropy providers
// themselves are physical silicon and have no software model; Reseed
// accepts whatever raw entropy the caller collected (for instance via
// the coreframe device client) and folds it into a fresh cipher
// key/IV through the mixer.
package trng

import (
	"crypto/sha512"

	"github.com/secworks/trng/xchacha"
)

const (
	// CSPRNGRounds is the round count the TRNG runs its cipher core
	// with. Deliberately higher than the cipher default.
	CSPRNGRounds = 24

	keySize = xchacha.KeySize256
	ivSize  = xchacha.IVSize
)

// TRNG is the software model of the full generator chain. It starts
// from an all-zero key and IV, matching hardware reset state; callers
// wanting unpredictable output must Reseed with real entropy first.
type TRNG struct {
	csprng *xchacha.Cipher

	buf  [xchacha.BlockSize]byte
	used int
}

// New creates a TRNG model in hardware reset state.
func New() *TRNG {
	csprng, err := xchacha.New(make([]byte, keySize), make([]byte, ivSize),
		xchacha.WithRounds(CSPRNGRounds))
	if err != nil {
		// Fixed-size zero key and IV cannot fail validation.
		panic("trng: csprng init: " + err.Error())
	}
	return &TRNG{csprng: csprng, used: xchacha.BlockSize}
}

// Reseed hashes the supplied entropy through the SHA-512 mixer and
// re-keys the cipher core with the digest: the first 32 bytes become
// the key, the next 8 the IV. The block counter resets and any
// buffered keystream is discarded.
func (t *TRNG) Reseed(entropy []byte) {
	digest := sha512.Sum512(entropy)
	if err := t.csprng.Rekey(digest[:keySize], digest[keySize:keySize+ivSize]); err != nil {
		panic("trng: rekey: " + err.Error())
	}
	t.used = xchacha.BlockSize
}

// Read fills p with generator output. It implements io.Reader and
// never returns an error or a short read.
func (t *TRNG) Read(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		if t.used == xchacha.BlockSize {
			var zero [xchacha.BlockSize]byte
			if err := t.csprng.NextBlock(t.buf[:], zero[:]); err != nil {
				panic("trng: next block: " + err.Error())
			}
			t.used = 0
		}
		c := copy(p, t.buf[t.used:])
		t.used += c
		p = p[c:]
	}
	return n, nil
}

// Blocks returns the number of keystream blocks produced so far.
func (t *TRNG) Blocks() uint64 {
	return t.csprng.Counter()
}
