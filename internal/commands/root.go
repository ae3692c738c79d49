// root.go - trng tool root command
//
// Copyright (c) 2014-2026, Secworks Sweden AB
// All rights reserved. See LICENSE for the full license text.

// Package commands implements the trng command line tool: keystream
// generation from the software model, the published-vector self test,
// and data extraction from real boards.
package commands

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the trng command tree.
func NewRootCommand(version string) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:     "trng",
		Short:   "Secworks TRNG reference model and board tooling",
		Version: version,
		Long: `Bit-exact software model of the Secworks TRNG CSPRNG core plus the
tooling used to exercise the hardware: keystream generation, the
published known-answer self test, and data extraction over the framed
board protocol.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: time.TimeOnly,
			}).Level(level).With().Timestamp().Logger()
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(NewKeystreamCommand(), NewSelftestCommand(), NewExtractCommand())

	return root
}
