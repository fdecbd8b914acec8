// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type DependencyStatus struct {
	Name      string
	Installed bool
	Version   string
	Path      string
	FixHint   string
}

var doctorVerboseFlag bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose deployment environment setup",
	Long: `Check the status of the external tools captain orchestrates.

This command verifies:
  - solana CLI
  - anchor CLI (only needed for Anchor workspaces)
  - cargo (for cargo build-bpf)

Use this to troubleshoot installation issues or verify your setup.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	fmt.Println("Captain Environment Diagnostics")
	fmt.Println("===============================")
	fmt.Println()

	dependencies := []DependencyStatus{
		checkTool("solana", "Install the Solana CLI from https://docs.solanalabs.com/cli/install"),
		checkTool("anchor", "Install Anchor from https://www.anchor-lang.com/docs/installation (Anchor workspaces only)"),
		checkTool("cargo", "Install the Rust toolchain from https://rustup.rs"),
	}

	allOK := true
	for _, dep := range dependencies {
		if dep.Installed {
			color.Green("[OK] %s (%s)", dep.Name, dep.Version)
			if doctorVerboseFlag {
				fmt.Printf("  Path: %s\n", dep.Path)
			}
			continue
		}

		allOK = false
		color.Red("[FAIL] %s", dep.Name)
		color.Yellow("  -> %s", dep.FixHint)
	}

	fmt.Println()
	if allOK {
		color.Green("[OK] All dependencies are installed and ready!")
		return nil
	}
	color.Yellow("Some dependencies are missing. Follow the hints above to fix.")
	return nil
}

func checkTool(name, fixHint string) DependencyStatus {
	dep := DependencyStatus{Name: name, FixHint: fixHint}

	path, err := exec.LookPath(name)
	if err != nil {
		return dep
	}
	dep.Installed = true
	dep.Path = path

	out, err := exec.Command(name, "--version").Output()
	if err == nil {
		dep.Version = strings.TrimSpace(string(out))
	}
	return dep
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorVerboseFlag, "verbose", false, "Show tool paths")
	rootCmd.AddCommand(doctorCmd)
}
