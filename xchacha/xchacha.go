// xchacha.go - ChaCha-family CSPRNG keystream core
//
// Copyright (c) 2014-2026, Secworks Sweden AB
// All rights reserved. See LICENSE for the full license text.

// Package xchacha is a bit-exact software model of the ChaCha-family
// stream cipher used as the CSPRNG core of the Secworks TRNG hardware.
//
// The construction differs from RFC 7539 ChaCha20 and from the
// conventional extended-nonce XChaCha: it keeps the original 8-byte IV,
// supports both 128-bit and 256-bit keys (128-bit keys are duplicated
// into the lower and upper key rows), and takes a configurable round
// count defaulting to 8. This is intentional; the model validates the
// hardware as built, not as the name suggests. The published Secworks
// test vectors pin every bit of this behavior.
package xchacha

import (
	"encoding/binary"
	"errors"
)

const (
	// KeySize128 is the size of a 128-bit key in bytes.
	KeySize128 = 16

	// KeySize256 is the size of a 256-bit key in bytes.
	KeySize256 = 32

	// IVSize is the size of the initialization vector in bytes.
	IVSize = 8

	// BlockSize is the size of a keystream block in bytes.
	BlockSize = 64

	// DefaultRounds is the round count used when none is given.
	DefaultRounds = 8

	stateSize = 16
)

var (
	// ErrUnsupportedKeyLength is returned when a key is neither 16 nor
	// 32 bytes long.
	ErrUnsupportedKeyLength = errors.New("xchacha: key must be 16 or 32 bytes")

	// ErrUnsupportedIVLength is returned when an IV is not exactly
	// 8 bytes long.
	ErrUnsupportedIVLength = errors.New("xchacha: iv must be 8 bytes")

	// ErrInvalidBlockLength is returned by NextBlock when the input or
	// output slice is not exactly BlockSize bytes long.
	ErrInvalidBlockLength = errors.New("xchacha: block must be exactly 64 bytes")

	// ErrInvalidRounds is returned when the configured round count is
	// not a positive integer.
	ErrInvalidRounds = errors.New("xchacha: rounds must be positive")
)

// Constant tables selecting the state layout by key size. TAU is used
// with 128-bit keys, SIGMA with 256-bit keys. Public constants, not
// secrets.
var (
	tau   = [4]uint32{0x61707865, 0x3120646e, 0x79622d36, 0x6b206574}
	sigma = [4]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}
)

type state [stateSize]uint32

// Cipher is a keystream generator instance. The state words hold, in
// order: 4 constant words, 8 key words, the 64-bit block counter split
// across words 12 (low) and 13 (high), and the IV in words 14 and 15.
// Only the counter words mutate after initialization.
//
// A Cipher is purely sequential: each block depends on the counter
// left by the previous call, so calls on the same instance must be
// serialized by the caller. Independent instances share nothing.
type Cipher struct {
	state  state
	rounds int
	trace  TraceFunc
}

// Option configures a Cipher at construction time.
type Option func(*Cipher)

// WithRounds sets the round count. Rounds are applied as rounds/2
// double rounds; an odd count silently truncates.
func WithRounds(n int) Option {
	return func(c *Cipher) { c.rounds = n }
}

// WithTrace installs a trace callback. See TraceFunc.
func WithTrace(fn TraceFunc) Option {
	return func(c *Cipher) { c.trace = fn }
}

// New creates a Cipher from a 16 or 32 byte key and an 8 byte IV.
// The block counter starts at zero.
func New(key, iv []byte, opts ...Option) (*Cipher, error) {
	c := &Cipher{rounds: DefaultRounds}
	for _, opt := range opts {
		opt(c)
	}
	if c.rounds < 1 {
		return nil, ErrInvalidRounds
	}
	if err := c.setKeyIV(key, iv); err != nil {
		return nil, err
	}
	return c, nil
}

// Rekey reinitializes the cipher with a new key and IV and resets the
// block counter to zero. On error the previous state is untouched.
func (c *Cipher) Rekey(key, iv []byte) error {
	return c.setKeyIV(key, iv)
}

func (c *Cipher) setKeyIV(key, iv []byte) error {
	// Validate before touching the state so a failed call never leaves
	// a partially built matrix behind.
	switch len(key) {
	case KeySize128, KeySize256:
	default:
		return ErrUnsupportedKeyLength
	}
	if len(iv) != IVSize {
		return ErrUnsupportedIVLength
	}

	if len(key) == KeySize128 {
		copy(c.state[0:4], tau[:])
		for i := 0; i < 4; i++ {
			w := binary.LittleEndian.Uint32(key[4*i:])
			c.state[4+i] = w
			c.state[8+i] = w
		}
	} else {
		copy(c.state[0:4], sigma[:])
		for i := 0; i < 8; i++ {
			c.state[4+i] = binary.LittleEndian.Uint32(key[4*i:])
		}
	}

	c.state[12] = 0
	c.state[13] = 0
	c.state[14] = binary.LittleEndian.Uint32(iv[0:4])
	c.state[15] = binary.LittleEndian.Uint32(iv[4:8])

	if c.trace != nil {
		c.trace(TraceInit, 0, [stateSize]uint32(c.state))
	}
	return nil
}

// NextBlock derives one 64-byte keystream block from the current state,
// XORs it into src, writes the result to dst and advances the block
// counter by one. dst and src must both be exactly BlockSize bytes and
// may alias. Encryption and decryption are the same operation.
func (c *Cipher) NextBlock(dst, src []byte) error {
	if c.rounds < 1 {
		// Zero-value Cipher, never went through New.
		return ErrInvalidRounds
	}
	if len(src) != BlockSize || len(dst) != BlockSize {
		return ErrInvalidBlockLength
	}

	x := c.state
	for i := 0; i < c.rounds/2; i++ {
		doubleRound(&x)
		if c.trace != nil {
			c.trace(TraceDoubleRound, i, [stateSize]uint32(x))
		}
	}

	// Feed-forward: the serialized output word is the sum of the round
	// output and the pre-round state. The sum is not stored back; the
	// persistent state changes only through the counter words.
	_, _ = src[BlockSize-1], dst[BlockSize-1] // Bounds check elimination.
	for i := 0; i < stateSize; i++ {
		binary.LittleEndian.PutUint32(dst[4*i:], binary.LittleEndian.Uint32(src[4*i:])^(x[i]+c.state[i]))
	}

	c.advanceCounter()

	if c.trace != nil {
		c.trace(TraceBlock, 0, [stateSize]uint32(c.state))
	}
	return nil
}

// advanceCounter increments the 64-bit block counter by one, carrying
// from the low word into the high word on wraparound.
func (c *Cipher) advanceCounter() {
	c.state[12]++
	if c.state[12] == 0 {
		c.state[13]++
	}
}

// Counter returns the current 64-bit block counter, i.e. the value
// that will be used to derive the next block.
func (c *Cipher) Counter() uint64 {
	return uint64(c.state[13])<<32 | uint64(c.state[12])
}

// Rounds returns the configured round count.
func (c *Cipher) Rounds() int {
	return c.rounds
}

// Reset purges the key material from the state. The cipher is unusable
// until Rekey is called.
func (c *Cipher) Reset() {
	burnUint32s(c.state[:])
}

func burnUint32s(b []uint32) {
	for i := range b {
		b[i] = 0
	}
}
