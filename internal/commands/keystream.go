// keystream.go - keystream generation command
//
// Copyright (c) 2014-2026, Secworks Sweden AB
// All rights reserved. See LICENSE for the full license text.

package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/secworks/trng/xchacha"
)

// NewKeystreamCommand creates the keystream generation command.
func NewKeystreamCommand() *cobra.Command {
	var (
		keyHex string
		ivHex  string
		rounds int
		blocks int
		binary bool
	)

	cmd := &cobra.Command{
		Use:   "keystream",
		Short: "Generate keystream blocks from the software model",
		Long: `Generate keystream blocks from the cipher core for a given key, IV
and round count. Useful for producing reference data to diff against
hardware simulation output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := hex.DecodeString(keyHex)
			if err != nil {
				return fmt.Errorf("decoding key: %w", err)
			}
			iv, err := hex.DecodeString(ivHex)
			if err != nil {
				return fmt.Errorf("decoding iv: %w", err)
			}
			if blocks < 1 {
				return fmt.Errorf("blocks must be positive, got %d", blocks)
			}

			c, err := xchacha.New(key, iv, xchacha.WithRounds(rounds))
			if err != nil {
				return err
			}
			log.Debug().Int("rounds", rounds).Int("blocks", blocks).
				Int("key_bits", len(key)*8).Msg("generating keystream")

			out := cmd.OutOrStdout()
			zero := make([]byte, xchacha.BlockSize)
			var block [xchacha.BlockSize]byte
			for i := 0; i < blocks; i++ {
				if err := c.NextBlock(block[:], zero); err != nil {
					return err
				}
				if binary {
					if _, err := out.Write(block[:]); err != nil {
						return err
					}
					continue
				}
				for off := 0; off < xchacha.BlockSize; off += 16 {
					fmt.Fprintf(out, "%x\n", block[off:off+16])
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&keyHex, "key", "k", hex.EncodeToString(make([]byte, xchacha.KeySize256)),
		"Key, hex encoded (16 or 32 bytes)")
	cmd.Flags().StringVarP(&ivHex, "iv", "i", hex.EncodeToString(make([]byte, xchacha.IVSize)),
		"IV, hex encoded (8 bytes)")
	cmd.Flags().IntVarP(&rounds, "rounds", "r", xchacha.DefaultRounds, "Round count")
	cmd.Flags().IntVarP(&blocks, "blocks", "n", 1, "Number of 64-byte blocks to generate")
	cmd.Flags().BoolVarP(&binary, "binary", "b", false, "Emit raw bytes instead of hex text")

	return cmd
}
