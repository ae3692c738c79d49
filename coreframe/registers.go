// registers.go - TRNG board register map
//
// Copyright (c) 2014-2026, Secworks Sweden AB
// All rights reserved. See LICENSE for the full license text.

package coreframe

// Register addresses common to all cores.
const (
	AddrName0   byte = 0x00
	AddrName1   byte = 0x01
	AddrVersion byte = 0x02
	AddrCtrl    byte = 0x08
	AddrStatus  byte = 0x09
	AddrData    byte = 0x20
)

// Control register commands.
const (
	CtrlInit uint32 = 1
	CtrlNext uint32 = 2
)

// Status register bits.
const (
	StatusReady uint32 = 1 << 0
	StatusValid uint32 = 1 << 1
)

// Address prefixes selecting a core on the board.
const (
	PrefixTRNG      byte = 0x00
	PrefixEntropy1  byte = 0x05 // avalanche noise provider
	PrefixEntropy2  byte = 0x06 // ring oscillator provider
	PrefixCSPRNG    byte = 0x0b
	PrefixAvalanche byte = 0x20 // standalone avalanche test core
)
