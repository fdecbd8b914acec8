// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

// Package manifest reads the subset of Cargo.toml that Captain needs.
package manifest

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Manifest is a Cargo.toml document. Package is nil for workspace-only
// manifests (a bare [workspace] section at the repository root).
type Manifest struct {
	Package   *Package   `toml:"package"`
	Workspace *Workspace `toml:"workspace"`
}

// Package is the [package] section of a Cargo manifest.
type Package struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Workspace is the [workspace] section of a Cargo manifest.
type Workspace struct {
	Members []string `toml:"members"`
}

// Load reads and decodes a Cargo.toml file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read manifest %s: %w", path, err)
	}
	var mf Manifest
	if err := toml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("cannot parse manifest %s: %w", path, err)
	}
	return &mf, nil
}
