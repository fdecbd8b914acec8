// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/solfleet/captain/internal/deployer"
	"github.com/solfleet/captain/internal/errors"
	"github.com/solfleet/captain/internal/runner"
	"github.com/solfleet/captain/internal/workspace"
)

var (
	upgradeVersionFlag string
	upgradeProgramFlag string
	upgradeNetworkFlag string
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade a program",
	Long: `Upgrade an already-deployed program in place.

Writes the new binary into a one-time buffer account, hands the buffer to the
configured upgrade authority, and finalizes the deployment signed by the key
named in the UPGRADE_AUTHORITY_KEYPAIR environment variable. The archive must
not already hold this version; bump the program's Cargo.toml first.`,
	Example: `  # Upgrade on devnet
  UPGRADE_AUTHORITY_KEYPAIR=~/.config/solana/id.json captain upgrade -p my_token`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		authorityKeypair := os.Getenv("UPGRADE_AUTHORITY_KEYPAIR")
		if authorityKeypair == "" {
			return errors.ErrMissingAuthority
		}

		network, explicit, err := parseTargetFlags(upgradeNetworkFlag, upgradeVersionFlag)
		if err != nil {
			return err
		}

		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		ws, err := workspace.Load(upgradeProgramFlag, explicit, network, cwd)
		if err != nil {
			return err
		}

		rec, done := openHistory(ws)
		defer done()

		return deployer.Upgrade(cmd.Context(), ws, runner.Exec{}, rec, authorityKeypair)
	},
}

func init() {
	upgradeCmd.Flags().StringVarP(&upgradeProgramFlag, "program", "p", "", "Name of the program in target/deploy/<id>.so")
	upgradeCmd.Flags().StringVarP(&upgradeVersionFlag, "version", "v", "", "Version to upgrade to (defaults to the program's Cargo.toml)")
	upgradeCmd.Flags().StringVarP(&upgradeNetworkFlag, "network", "n", "devnet", "Network to deploy to")
	_ = upgradeCmd.MarkFlagRequired("program")

	rootCmd.AddCommand(upgradeCmd)
}
