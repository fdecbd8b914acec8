// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is set by the main package at startup.
	Version = "dev"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of captain",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("captain version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
