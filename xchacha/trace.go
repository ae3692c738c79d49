// trace.go - observation hooks for the round network
//
// Copyright (c) 2014-2026, Secworks Sweden AB
// All rights reserved. See LICENSE for the full license text.

package xchacha

// TraceEvent identifies the point at which a trace callback fires.
type TraceEvent int

const (
	// TraceInit fires after the state matrix has been (re)initialized
	// from a key and IV.
	TraceInit TraceEvent = iota

	// TraceDoubleRound fires after each double round, with the working
	// buffer contents and the zero-based double round index.
	TraceDoubleRound

	// TraceBlock fires after a block has been produced and the counter
	// advanced, with the persistent state.
	TraceBlock
)

// TraceFunc observes intermediate state during block production. It
// replaces the ad hoc verbosity printing of earlier models: the
// callback receives a copy of the relevant 16-word state and has no
// way to influence the computation. round is meaningful only for
// TraceDoubleRound.
//
// Useful when diffing the model against hardware simulation dumps one
// double round at a time.
type TraceFunc func(event TraceEvent, round int, words [16]uint32)
