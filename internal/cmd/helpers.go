// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	version "github.com/hashicorp/go-version"

	"github.com/solfleet/captain/internal/config"
	"github.com/solfleet/captain/internal/deployer"
	"github.com/solfleet/captain/internal/errors"
	"github.com/solfleet/captain/internal/history"
	"github.com/solfleet/captain/internal/logger"
	"github.com/solfleet/captain/internal/workspace"
)

// parseTargetFlags validates the shared --network and --version flags.
// An empty version string means "resolve from the manifest".
func parseTargetFlags(networkFlag, versionFlag string) (config.Network, *version.Version, error) {
	network, err := config.ParseNetwork(networkFlag)
	if err != nil {
		return "", nil, err
	}

	var explicit *version.Version
	if versionFlag != "" {
		explicit, err = version.NewVersion(versionFlag)
		if err != nil {
			return "", nil, errors.WrapInvalidVersion(versionFlag, err)
		}
	}
	return network, explicit, nil
}

// openHistory opens the deployment history store under the configured
// deployments path. A store that cannot be opened disables recording rather
// than failing the run.
func openHistory(ws *workspace.Workspace) (deployer.Recorder, func()) {
	store, err := history.Open(ws.Config.Paths.Deployments.String())
	if err != nil {
		logger.Logger.Warn("deployment history unavailable", "error", err)
		return nil, func() {}
	}
	return store, func() { _ = store.Close() }
}
