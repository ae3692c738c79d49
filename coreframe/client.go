// client.go - register-level device client
//
// Copyright (c) 2014-2026, Secworks Sweden AB
// All rights reserved. See LICENSE for the full license text.

package coreframe

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrPollLimit is returned when a status poll gives up before the
// requested bits come up.
var ErrPollLimit = errors.New("coreframe: status poll limit exceeded")

// DefaultPollLimit bounds WaitReady/WaitValid polling. The hardware
// scripts polled forever; a bound keeps a wedged board from hanging
// the tool.
const DefaultPollLimit = 10000

// Client drives the framed protocol over a byte stream, typically an
// opened character device. Not safe for concurrent use.
type Client struct {
	rw        io.ReadWriter
	pollLimit int
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithPollLimit overrides the maximum number of status reads per wait
// operation. A limit of 0 polls forever.
func WithPollLimit(n int) ClientOption {
	return func(c *Client) { c.pollLimit = n }
}

// NewClient wraps a byte stream in a register-level client.
func NewClient(rw io.ReadWriter, opts ...ClientOption) *Client {
	c := &Client{rw: rw, pollLimit: DefaultPollLimit}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) roundTrip(cmd []byte) (*Response, error) {
	if _, err := c.rw.Write(cmd); err != nil {
		return nil, fmt.Errorf("coreframe: writing command: %w", err)
	}
	return ReadResponse(c.rw)
}

// ReadReg reads the 32-bit register at (prefix, addr).
func (c *Client) ReadReg(prefix, addr byte) (uint32, error) {
	resp, err := c.roundTrip(ReadCmd(prefix, addr))
	if err != nil {
		return 0, err
	}
	switch resp.Code {
	case RespReadOK:
	case RespError, RespUnknown:
		return 0, fmt.Errorf("%w: read 0x%02x:0x%02x code 0x%02x", ErrDeviceError, prefix, addr, resp.Code)
	default:
		return 0, fmt.Errorf("%w: read answered with code 0x%02x", ErrBadFrame, resp.Code)
	}
	if resp.Addr0 != prefix || resp.Addr1 != addr {
		return 0, fmt.Errorf("%w: address echo 0x%02x:0x%02x for read of 0x%02x:0x%02x",
			ErrBadFrame, resp.Addr0, resp.Addr1, prefix, addr)
	}
	return resp.Data, nil
}

// WriteReg writes the 32-bit register at (prefix, addr).
func (c *Client) WriteReg(prefix, addr byte, data uint32) error {
	resp, err := c.roundTrip(WriteCmd(prefix, addr, data))
	if err != nil {
		return err
	}
	switch resp.Code {
	case RespWriteOK:
	case RespError, RespUnknown:
		return fmt.Errorf("%w: write 0x%02x:0x%02x code 0x%02x", ErrDeviceError, prefix, addr, resp.Code)
	default:
		return fmt.Errorf("%w: write answered with code 0x%02x", ErrBadFrame, resp.Code)
	}
	if resp.Addr0 != prefix || resp.Addr1 != addr {
		return fmt.Errorf("%w: address echo 0x%02x:0x%02x for write of 0x%02x:0x%02x",
			ErrBadFrame, resp.Addr0, resp.Addr1, prefix, addr)
	}
	return nil
}

// Reset resets the board.
func (c *Client) Reset() error {
	resp, err := c.roundTrip(ResetCmd())
	if err != nil {
		return err
	}
	if resp.Code != RespResetOK {
		return fmt.Errorf("%w: reset answered with code 0x%02x", ErrDeviceError, resp.Code)
	}
	return nil
}

// Init pulses the init command in a core's control register.
func (c *Client) Init(prefix byte) error {
	return c.WriteReg(prefix, AddrCtrl, CtrlInit)
}

// Next pulses the next command in a core's control register.
func (c *Client) Next(prefix byte) error {
	return c.WriteReg(prefix, AddrCtrl, CtrlNext)
}

// WaitStatus polls a core's status register until all bits in mask are
// set, up to the configured poll limit.
func (c *Client) WaitStatus(prefix byte, mask uint32) error {
	for i := 0; c.pollLimit == 0 || i < c.pollLimit; i++ {
		status, err := c.ReadReg(prefix, AddrStatus)
		if err != nil {
			return err
		}
		if status&mask == mask {
			return nil
		}
	}
	return fmt.Errorf("%w: mask 0x%08x on core 0x%02x", ErrPollLimit, mask, prefix)
}

// WaitReady blocks until the core reports ready.
func (c *Client) WaitReady(prefix byte) error {
	return c.WaitStatus(prefix, StatusReady)
}

// WaitValid blocks until the core reports valid output.
func (c *Client) WaitValid(prefix byte) error {
	return c.WaitStatus(prefix, StatusValid)
}

// CoreName reads the two name registers and decodes them as the ASCII
// core identifier, for example "trng    ".
func (c *Client) CoreName(prefix byte) (string, error) {
	var raw [8]byte
	for i, addr := range []byte{AddrName0, AddrName1} {
		w, err := c.ReadReg(prefix, addr)
		if err != nil {
			return "", err
		}
		binary.BigEndian.PutUint32(raw[4*i:], w)
	}
	return string(raw[:]), nil
}

// CoreVersion reads the version register and decodes it as ASCII, for
// example "0.50".
func (c *Client) CoreVersion(prefix byte) (string, error) {
	w, err := c.ReadReg(prefix, AddrVersion)
	if err != nil {
		return "", err
	}
	var raw [4]byte
	binary.BigEndian.PutUint32(raw[:], w)
	return string(raw[:]), nil
}

// ReadWords pulls n words from a core's data register, waiting for
// valid output before each read.
func (c *Client) ReadWords(prefix byte, n int) ([]uint32, error) {
	out := make([]uint32, 0, n)
	for i := 0; i < n; i++ {
		if err := c.WaitValid(prefix); err != nil {
			return out, err
		}
		w, err := c.ReadReg(prefix, AddrData)
		if err != nil {
			return out, err
		}
		out = append(out, w)
	}
	return out, nil
}
