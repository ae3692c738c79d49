// selftest.go - known-answer self test command
//
// Copyright (c) 2014-2026, Secworks Sweden AB
// All rights reserved. See LICENSE for the full license text.

package commands

import (
	"bytes"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/secworks/trng/internal/vectors"
	"github.com/secworks/trng/xchacha"
)

// NewSelftestCommand creates the self test command. The vectors run
// concurrently; cipher instances share no state, so one goroutine per
// vector is safe.
func NewSelftestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the published known-answer vectors against the model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var g errgroup.Group
			for _, v := range vectors.All() {
				v := v
				g.Go(func() error {
					if err := runVector(v); err != nil {
						return err
					}
					log.Debug().Str("vector", v.Name).Msg("ok")
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			log.Info().Int("vectors", len(vectors.All())).Msg("self test passed")
			return nil
		},
	}
}

func runVector(v vectors.Vector) error {
	c, err := xchacha.New(v.Key, v.IV, xchacha.WithRounds(v.Rounds))
	if err != nil {
		return fmt.Errorf("%s: %w", v.Name, err)
	}
	var in, out [xchacha.BlockSize]byte
	if err := c.NextBlock(out[:], in[:]); err != nil {
		return fmt.Errorf("%s: %w", v.Name, err)
	}
	if !bytes.Equal(out[:], v.Expected) {
		return fmt.Errorf("%s: output mismatch:\n  expected %x\n  got      %x",
			v.Name, v.Expected, out[:])
	}
	return nil
}
