// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/solfleet/captain/internal/telemetry"
	"github.com/solfleet/captain/internal/updater"
)

var telemetryShutdown = func() {}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "captain",
	Short: "Version-aware deployer for Solana programs",
	Long: `Captain deploys and upgrades Solana programs from a versioned workspace.

It resolves the program version from Cargo.toml, locates per-network deployer
keys from Captain.toml, drives the solana and anchor CLIs through the deploy
or upgrade sequence, and archives the built artifacts by version.

Examples:
  captain init                          Scaffold Captain.toml in this workspace
  captain deploy -p my_token            Deploy my_token to devnet
  captain deploy -p my_token -n mainnet Deploy my_token to mainnet
  captain upgrade -p my_token           Upgrade an already-deployed program
  captain history -p my_token           Show recorded deployments

Get started with 'captain init' at your Cargo workspace root.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		shutdown, err := telemetry.Init(context.Background(), telemetry.FromEnv())
		if err != nil {
			return err
		}
		telemetryShutdown = shutdown

		checkForUpdatesAsync()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		telemetryShutdown()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

// checkForUpdatesAsync runs the update check in a goroutine to not block CLI startup
func checkForUpdatesAsync() {
	go func() {
		checker := updater.NewChecker(Version)
		checker.CheckForUpdates()
	}()
}
