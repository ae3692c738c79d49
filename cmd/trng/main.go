// main.go - trng tool entrypoint
//
// Copyright (c) 2014-2026, Secworks Sweden AB
// All rights reserved. See LICENSE for the full license text.

package main

import (
	"fmt"
	"os"

	"github.com/secworks/trng/internal/commands"
)

var version = "0.10"

func main() {
	if err := commands.NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "trng:", err)
		os.Exit(1)
	}
}
