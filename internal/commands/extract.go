// extract.go - board data extraction command
//
// Copyright (c) 2014-2026, Secworks Sweden AB
// All rights reserved. See LICENSE for the full license text.

package commands

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/secworks/trng/coreframe"
	"github.com/secworks/trng/internal/config"
)

// NewExtractCommand creates the extraction command. It pulls data
// words from a board's CSPRNG or entropy provider data registers over
// the framed protocol.
func NewExtractCommand() *cobra.Command {
	var (
		configPath string
		device     string
		source     string
		words      int
		binary     bool
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract random or entropy words from a board",
		Long: `Read 32-bit data words from a TRNG board over the framed register
protocol. The source selects the CSPRNG output or one of the raw
entropy providers. Flags override values from the configuration file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("device") {
				cfg.Device = device
			}
			if cmd.Flags().Changed("source") {
				cfg.Source = source
			}
			if cmd.Flags().Changed("words") {
				cfg.Words = words
			}
			if cmd.Flags().Changed("binary") {
				cfg.Binary = binary
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runExtract(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to TOML configuration file")
	cmd.Flags().StringVarP(&device, "device", "d", "", "Device path")
	cmd.Flags().StringVarP(&source, "source", "s", "",
		"Data source: csprng, entropy1 or entropy2")
	cmd.Flags().IntVarP(&words, "words", "w", 0, "Number of 32-bit words to extract")
	cmd.Flags().BoolVarP(&binary, "binary", "b", false, "Emit raw big-endian words instead of hex text")

	return cmd
}

func runExtract(cmd *cobra.Command, cfg config.Config) error {
	prefix, err := cfg.SourcePrefix()
	if err != nil {
		return err
	}

	dev, err := os.OpenFile(cfg.Device, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("opening device %q: %w", cfg.Device, err)
	}
	defer dev.Close()

	client := coreframe.NewClient(dev, coreframe.WithPollLimit(cfg.PollLimit))

	name, err := client.CoreName(coreframe.PrefixTRNG)
	if err != nil {
		return fmt.Errorf("identifying board: %w", err)
	}
	version, err := client.CoreVersion(coreframe.PrefixTRNG)
	if err != nil {
		return fmt.Errorf("identifying board: %w", err)
	}
	log.Info().Str("core", name).Str("version", version).
		Str("source", cfg.Source).Int("words", cfg.Words).Msg("extracting")

	data, err := client.ReadWords(prefix, cfg.Words)
	if err != nil {
		return fmt.Errorf("extracted %d of %d words: %w", len(data), cfg.Words, err)
	}

	out := cmd.OutOrStdout()
	if cfg.Binary {
		raw := make([]byte, 4)
		for _, w := range data {
			binary.BigEndian.PutUint32(raw, w)
			if _, err := out.Write(raw); err != nil {
				return err
			}
		}
		return nil
	}
	for _, w := range data {
		fmt.Fprintf(out, "0x%08x\n", w)
	}
	return nil
}
