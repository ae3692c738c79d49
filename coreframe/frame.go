// frame.go - framed command/response codec
//
// Copyright (c) 2014-2026, Secworks Sweden AB
// All rights reserved. See LICENSE for the full license text.

// Package coreframe implements the framed register access protocol the
// TRNG test boards speak over their byte-stream interfaces (I2C or
// UART bridges). Commands and responses are short frames with start
// and end markers, a one-byte code, a two-byte register address and an
// optional big-endian 32-bit data word.
//
// The cipher core in package xchacha shares the same word width and
// register granularity but none of this framing; the protocol exists
// purely to exercise physical silicon.
package coreframe

import (
	"errors"
	"fmt"
	"io"
)

// Frame markers and command codes.
const (
	SOC byte = 0x55 // start of command
	EOC byte = 0xaa // end of command
	SOR byte = 0xaa // start of response
	EOR byte = 0x55 // end of response

	CmdRead  byte = 0x10
	CmdWrite byte = 0x11
	CmdReset byte = 0x01
)

// Response codes.
const (
	RespReadOK  byte = 0x7f
	RespWriteOK byte = 0x7e
	RespResetOK byte = 0x7d
	RespUnknown byte = 0xfe
	RespError   byte = 0xfd
)

var (
	// ErrDesync is returned when a response does not start with SOR or
	// carries an unknown response code. Once the byte stream is out of
	// sync there is no recovery short of resetting the board.
	ErrDesync = errors.New("coreframe: response stream out of sync")

	// ErrBadFrame is returned when a response frame is internally
	// inconsistent (missing EOR, address echo mismatch).
	ErrBadFrame = errors.New("coreframe: malformed response frame")

	// ErrDeviceError is returned when the board answers with an ERROR
	// or UNKNOWN response code.
	ErrDeviceError = errors.New("coreframe: device reported command failure")
)

// Response frame length per response code, markers included.
func respLen(code byte) (int, bool) {
	switch code {
	case RespReadOK:
		return 9, true
	case RespWriteOK:
		return 5, true
	case RespResetOK:
		return 3, true
	case RespError, RespUnknown:
		return 4, true
	default:
		return 0, false
	}
}

// Response is one parsed response frame.
type Response struct {
	Code  byte
	Addr0 byte
	Addr1 byte
	Data  uint32 // read responses only
}

// ReadCmd frames a register read: SOC, CmdRead, prefix, addr, EOC.
func ReadCmd(prefix, addr byte) []byte {
	return []byte{SOC, CmdRead, prefix, addr, EOC}
}

// WriteCmd frames a register write. The data word goes on the wire
// most significant byte first.
func WriteCmd(prefix, addr byte, data uint32) []byte {
	return []byte{
		SOC, CmdWrite, prefix, addr,
		byte(data >> 24), byte(data >> 16), byte(data >> 8), byte(data),
		EOC,
	}
}

// ResetCmd frames a board reset.
func ResetCmd() []byte {
	return []byte{SOC, CmdReset, EOC}
}

// ReadResponse parses one response frame off r. The board interfaces
// deliver one byte per read, so the frame is consumed byte by byte:
// first the SOR marker, then the code which fixes the frame length,
// then the remainder.
func ReadResponse(r io.Reader) (*Response, error) {
	var buf [9]byte

	if err := readByte(r, buf[:1]); err != nil {
		return nil, err
	}
	if buf[0] != SOR {
		return nil, fmt.Errorf("%w: expected SOR 0x%02x, got 0x%02x", ErrDesync, SOR, buf[0])
	}

	if err := readByte(r, buf[1:2]); err != nil {
		return nil, err
	}
	n, ok := respLen(buf[1])
	if !ok {
		return nil, fmt.Errorf("%w: unknown response code 0x%02x", ErrDesync, buf[1])
	}
	for i := 2; i < n; i++ {
		if err := readByte(r, buf[i:i+1]); err != nil {
			return nil, err
		}
	}
	if buf[n-1] != EOR {
		return nil, fmt.Errorf("%w: expected EOR 0x%02x, got 0x%02x", ErrBadFrame, EOR, buf[n-1])
	}

	resp := &Response{Code: buf[1]}
	switch resp.Code {
	case RespReadOK:
		resp.Addr0, resp.Addr1 = buf[2], buf[3]
		resp.Data = uint32(buf[4])<<24 | uint32(buf[5])<<16 | uint32(buf[6])<<8 | uint32(buf[7])
	case RespWriteOK:
		resp.Addr0, resp.Addr1 = buf[2], buf[3]
	}
	return resp, nil
}

func readByte(r io.Reader, b []byte) error {
	if _, err := io.ReadFull(r, b); err != nil {
		// A response is always expected when this runs, so a bare EOF
		// still means the frame was cut short.
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return fmt.Errorf("coreframe: reading response: %w", err)
	}
	return nil
}
