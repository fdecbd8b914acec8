// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/solfleet/captain/internal/config"
	"github.com/solfleet/captain/internal/history"
)

var (
	historyProgramFlag string
	historyNetworkFlag string
	historyLimitFlag   int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded deployments",
	Long: `Show the deployments and upgrades recorded in this workspace,
newest first. Records live in a SQLite database under the configured
deployments path.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg, _, _, err := config.Discover(cwd)
		if err != nil {
			return err
		}

		if historyNetworkFlag != "" {
			if _, err := config.ParseNetwork(historyNetworkFlag); err != nil {
				return err
			}
		}

		store, err := history.Open(cfg.Paths.Deployments.String())
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.List(history.SearchParams{
			Program: historyProgramFlag,
			Network: historyNetworkFlag,
			Limit:   historyLimitFlag,
		})
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Println("No deployments recorded yet.")
			return nil
		}

		for _, rec := range records {
			fmt.Printf("%s  %-8s %s %s  %s  %s\n",
				rec.Timestamp.Format("2006-01-02 15:04:05"),
				rec.Kind, rec.Program, rec.Version, rec.Network, rec.Address)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVarP(&historyProgramFlag, "program", "p", "", "Only show deployments of this program")
	historyCmd.Flags().StringVarP(&historyNetworkFlag, "network", "n", "", "Only show deployments to this network")
	historyCmd.Flags().IntVar(&historyLimitFlag, "limit", 0, "Maximum number of records to show")

	rootCmd.AddCommand(historyCmd)
}
