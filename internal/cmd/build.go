// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/solfleet/captain/internal/config"
	"github.com/solfleet/captain/internal/runner"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build all programs (uses Anchor when available)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		_, _, root, err := config.Discover(cwd)
		if err != nil {
			return err
		}

		if _, err := os.Stat(filepath.Join(root, "Anchor.toml")); err == nil {
			color.Green("Anchor found! Running `anchor build -v`.")
			return runner.Exec{}.Run(cmd.Context(), runner.New("anchor", "build", "-v"))
		}

		color.Yellow("Anchor.toml not found in workspace root. Running `cargo build-bpf`.")
		return runner.Exec{}.Run(cmd.Context(), runner.New("cargo", "build-bpf"))
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
