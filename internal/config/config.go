// config.go - extract tool configuration
//
// Copyright (c) 2014-2026, Secworks Sweden AB
// All rights reserved. See LICENSE for the full license text.

// Package config loads the TOML configuration for the device tooling.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/secworks/trng/coreframe"
)

// Source names map onto board address prefixes.
const (
	SourceCSPRNG   = "csprng"
	SourceEntropy1 = "entropy1"
	SourceEntropy2 = "entropy2"
)

// Config is the device tooling configuration.
type Config struct {
	// Device is the path to the character device bridging to the board.
	Device string `toml:"device"`

	// Source selects which core's data register to read.
	Source string `toml:"source"`

	// Words is the number of 32-bit words to extract.
	Words int `toml:"words"`

	// Binary emits raw big-endian words instead of hex text.
	Binary bool `toml:"binary"`

	// PollLimit bounds status polling; 0 polls forever.
	PollLimit int `toml:"poll_limit"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Device:    "/dev/i2c-2",
		Source:    SourceCSPRNG,
		Words:     20,
		PollLimit: coreframe.DefaultPollLimit,
	}
}

// Load reads a TOML configuration file on top of the defaults. An
// empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("config file %q not found: %w", path, err)
		}
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for inconsistencies.
func (c Config) Validate() error {
	if c.Device == "" {
		return fmt.Errorf("config: device path must not be empty")
	}
	if c.Words < 1 {
		return fmt.Errorf("config: words must be positive, got %d", c.Words)
	}
	if _, err := c.SourcePrefix(); err != nil {
		return err
	}
	return nil
}

// SourcePrefix resolves the configured source name to its board
// address prefix.
func (c Config) SourcePrefix() (byte, error) {
	switch c.Source {
	case SourceCSPRNG:
		return coreframe.PrefixCSPRNG, nil
	case SourceEntropy1:
		return coreframe.PrefixEntropy1, nil
	case SourceEntropy2:
		return coreframe.PrefixEntropy2, nil
	default:
		return 0, fmt.Errorf("config: unknown source %q", c.Source)
	}
}
