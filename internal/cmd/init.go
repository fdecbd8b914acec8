// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/solfleet/captain/internal/config"
	"github.com/solfleet/captain/internal/keypair"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Captain workspace",
	Long: `Create Captain.toml at the current Cargo workspace root.

Generates a fresh deployer keypair for each network under
./.captain/deployers/<network>/deployer.json and writes a default
configuration pointing at them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(config.ConfigFileName); err == nil {
			color.Red("Captain.toml has already been initialized in this directory.")
			os.Exit(1)
		}
		if _, err := os.Stat("Cargo.toml"); err != nil {
			color.Red("Cargo.toml does not exist in the current working directory. Ensure that you are at the Cargo workspace root.")
			os.Exit(1)
		}

		cfg := config.Config{
			Paths: config.Paths{
				Artifacts:       "./.captain/artifacts",
				Deployments:     "./.captain/deployments",
				ProgramKeypairs: "./.captain/program-keys",
			},
			Networks: map[config.Network]config.NetworkConfig{},
		}

		for _, network := range []config.Network{
			config.NetworkMainnet,
			config.NetworkDevnet,
			config.NetworkTestnet,
			config.NetworkLocalnet,
		} {
			deployerDir := filepath.Join(".captain", "deployers", network.String())
			if err := os.MkdirAll(deployerDir, 0755); err != nil {
				return err
			}

			deployer, err := keypair.Generate()
			if err != nil {
				return err
			}
			deployerPath := filepath.Join(deployerDir, "deployer.json")
			if err := deployer.Write(deployerPath); err != nil {
				return fmt.Errorf("could not write deployer keypair: %w", err)
			}

			cfg.Networks[network] = config.NetworkConfig{
				Deployer:         config.Path(deployerPath),
				URL:              network.URL(),
				WSURL:            network.WSURL(),
				UpgradeAuthority: "~/.config/solana/id.json",
			}
		}

		data, err := toml.Marshal(cfg)
		if err != nil {
			return err
		}
		if err := os.WriteFile(config.ConfigFileName, data, 0644); err != nil {
			return err
		}

		color.Green("Initialized Captain workspace.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
