// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var programsCmd = &cobra.Command{
	Use:   "programs",
	Short: "List all available programs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := os.ReadDir(filepath.Join("target", "deploy"))
		if err != nil {
			return fmt.Errorf("cannot read target/deploy: %w", err)
		}
		for _, entry := range entries {
			name := entry.Name()
			if !strings.HasSuffix(name, ".so") {
				continue
			}
			fmt.Printf("Program: %s\n", strings.TrimSuffix(name, ".so"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(programsCmd)
}
