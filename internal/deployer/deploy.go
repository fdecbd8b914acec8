// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

package deployer

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/solfleet/captain/internal/history"
	"github.com/solfleet/captain/internal/runner"
	"github.com/solfleet/captain/internal/telemetry"
	"github.com/solfleet/captain/internal/workspace"
)

// Deploy runs the first-time deployment pipeline. When the program identity
// already exists on chain it prints a notice and returns nil: re-running
// deploy is not an error.
func Deploy(ctx context.Context, ws *workspace.Workspace, r runner.Runner, rec Recorder) error {
	ctx, span := telemetry.GetTracer().Start(ctx, "deploy")
	defer span.End()

	fmt.Printf("Deploying program %s with version %s\n", ws.Program, ws.DeployVersion)
	fmt.Printf("Address: %s\n", ws.ProgramKey)

	deployed, err := ws.ShowProgram(ctx, r)
	if err != nil {
		return err
	}
	if deployed {
		color.Yellow("Program already deployed. Use `captain upgrade` if you want to upgrade the program.")
		return nil
	}

	header("Deploying program")
	err = r.Run(ctx, ws.SolanaCmd(
		"program", "deploy", ws.ProgramPaths.Bin,
		"--program-id", ws.ProgramPaths.ID,
	))
	if err != nil {
		return err
	}

	header("Setting upgrade authority")
	err = r.Run(ctx, ws.SolanaCmd(
		"program", "set-upgrade-authority", ws.ProgramKey,
		"--new-upgrade-authority", ws.NetworkConfig.UpgradeAuthority,
	))
	if err != nil {
		return err
	}

	// Best-effort readback so the operator sees the final on-chain state.
	if _, err := ws.ShowProgram(ctx, r); err != nil {
		return err
	}

	if ws.HasAnchor() {
		header("Initializing IDL")
		err = r.Run(ctx, ws.AnchorCmd("idl",
			"init", ws.ProgramKey,
			"--filepath", ws.ProgramPaths.IDL,
		))
		if err != nil {
			return err
		}

		header("Setting IDL authority")
		err = r.Run(ctx, ws.AnchorCmd("idl",
			"set-authority",
			"--program-id", ws.ProgramKey,
			"--new-authority", ws.NetworkConfig.UpgradeAuthority,
		))
		if err != nil {
			return err
		}
	}

	header("Copying artifacts")
	if err := ws.CopyArtifacts(); err != nil {
		return err
	}

	record(rec, ws, history.KindDeploy)
	color.Green("Deployment success!")
	return nil
}
