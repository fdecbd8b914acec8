// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

// Package deployer sequences the external-process steps behind captain
// deploy and captain upgrade. Both pipelines are strictly linear: steps run
// one at a time and the first nonzero child exit aborts the whole run.
package deployer

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/solfleet/captain/internal/history"
	"github.com/solfleet/captain/internal/logger"
	"github.com/solfleet/captain/internal/workspace"
)

// Recorder persists a completed deployment. history.Store implements it; a
// nil Recorder disables recording.
type Recorder interface {
	Save(*history.Record) error
}

func header(text string) {
	bold := color.New(color.Bold)
	fmt.Println()
	bold.Println("===================================")
	fmt.Println()
	bold.Printf("    %s\n", text)
	fmt.Println()
	bold.Println("===================================")
	fmt.Println()
}

func record(rec Recorder, ws *workspace.Workspace, kind string) {
	if rec == nil {
		return
	}
	err := rec.Save(&history.Record{
		Program: ws.Program,
		Version: ws.DeployVersion.String(),
		Network: ws.Network.String(),
		Address: ws.ProgramKey,
		Kind:    kind,
	})
	if err != nil {
		// History is advisory; never fail a finished deployment over it.
		logger.Logger.Warn("could not record deployment", "error", err)
	}
}
