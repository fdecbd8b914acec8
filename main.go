// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/solfleet/captain/internal/cmd"
	"github.com/solfleet/captain/internal/runner"
)

// Build-time variable injected via -ldflags.
var version = "dev"

func main() {
	cmd.Version = version

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		// Child-process failures propagate the child's own exit code.
		var exitErr *runner.ExitError
		if stderrors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
