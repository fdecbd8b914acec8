// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

package deployer

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/solfleet/captain/internal/errors"
	"github.com/solfleet/captain/internal/history"
	"github.com/solfleet/captain/internal/keypair"
	"github.com/solfleet/captain/internal/runner"
	"github.com/solfleet/captain/internal/telemetry"
	"github.com/solfleet/captain/internal/workspace"
)

// Upgrade runs the in-place upgrade pipeline. authorityKeypair is the path
// to the upgrade-authority signing key, supplied out of band via
// UPGRADE_AUTHORITY_KEYPAIR. All preconditions are checked before any
// subprocess is spawned.
func Upgrade(ctx context.Context, ws *workspace.Workspace, r runner.Runner, rec Recorder, authorityKeypair string) error {
	ctx, span := telemetry.GetTracer().Start(ctx, "upgrade")
	defer span.End()

	if authorityKeypair == "" {
		return errors.ErrMissingAuthority
	}

	fmt.Printf("Upgrading program %s with version %s\n", ws.Program, ws.DeployVersion)

	if ws.ArtifactPaths.Exist() {
		return fmt.Errorf("%w. Make sure to bump your Cargo.toml", errors.ErrAlreadyArchived)
	}

	deployed, err := ws.ShowProgram(ctx, r)
	if err != nil {
		return err
	}
	if !deployed {
		return fmt.Errorf("program does not exist. Use `captain deploy` if you want to deploy the program for the first time")
	}

	header("Writing buffer")

	buffer, err := keypair.Generate()
	if err != nil {
		return err
	}
	fmt.Printf("Buffer Pubkey: %s\n", buffer.Pubkey())

	bufferPath, cleanup, err := buffer.WriteTemp()
	if err != nil {
		return err
	}
	defer cleanup()

	err = r.Run(ctx, ws.SolanaCmd(
		"program", "write-buffer", ws.ProgramPaths.Bin,
		"--output", "json",
		"--buffer", bufferPath,
	))
	if err != nil {
		return err
	}

	header("Setting buffer authority")
	err = r.Run(ctx, ws.SolanaCmd(
		"program", "set-buffer-authority", buffer.Pubkey(),
		"--new-buffer-authority", ws.NetworkConfig.UpgradeAuthority,
	))
	if err != nil {
		return err
	}

	header("Switching to new buffer (please connect your wallet)")
	err = r.Run(ctx, runner.New("solana",
		"--url", ws.NetworkURL(),
		"--keypair", authorityKeypair,
		"program", "deploy",
		"--buffer", buffer.Pubkey(),
		"--program-id", ws.ProgramKey,
	))
	if err != nil {
		return err
	}

	if _, err := ws.ShowProgram(ctx, r); err != nil {
		return err
	}

	if ws.HasAnchor() {
		header("Uploading new IDL")
		err = r.Run(ctx, ws.AnchorCmd("idl",
			"write-buffer", ws.ProgramKey,
			"--filepath", ws.ProgramPaths.IDL,
		))
		if err != nil {
			return err
		}

		// Finalizing the IDL switch needs an interactive signer, so it is
		// left to the operator.
		color.Yellow("WARNING: please manually run `anchor idl set-buffer %s --buffer <BUFFER>`", ws.ProgramKey)
	}

	header("Copying artifacts")
	if err := ws.CopyArtifacts(); err != nil {
		return err
	}

	record(rec, ws, history.KindUpgrade)
	color.Green("Deployment success!")
	return nil
}
