// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/solfleet/captain/internal/deployer"
	"github.com/solfleet/captain/internal/runner"
	"github.com/solfleet/captain/internal/workspace"
)

var (
	deployVersionFlag string
	deployProgramFlag string
	deployNetworkFlag string
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy a program",
	Long: `Deploy a program for the first time.

Resolves the program version, verifies the build artifacts and identity key,
then drives the solana (and, in Anchor workspaces, anchor) CLI through the
deployment sequence. Already-deployed programs are left untouched; use
'captain upgrade' for those.`,
	Example: `  # Deploy to devnet at the version declared in Cargo.toml
  captain deploy -p my_token

  # Deploy an explicit version to mainnet
  captain deploy -p my_token -v 1.2.0 -n mainnet`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		network, explicit, err := parseTargetFlags(deployNetworkFlag, deployVersionFlag)
		if err != nil {
			return err
		}

		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		ws, err := workspace.Load(deployProgramFlag, explicit, network, cwd)
		if err != nil {
			return err
		}

		rec, done := openHistory(ws)
		defer done()

		return deployer.Deploy(cmd.Context(), ws, runner.Exec{}, rec)
	},
}

func init() {
	deployCmd.Flags().StringVarP(&deployProgramFlag, "program", "p", "", "Name of the program in target/deploy/<id>.so")
	deployCmd.Flags().StringVarP(&deployVersionFlag, "version", "v", "", "Version to deploy (defaults to the program's Cargo.toml)")
	deployCmd.Flags().StringVarP(&deployNetworkFlag, "network", "n", "devnet", "Network to deploy to")
	_ = deployCmd.MarkFlagRequired("program")

	rootCmd.AddCommand(deployCmd)
}
