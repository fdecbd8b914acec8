// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads and resolves the Captain.toml workspace configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	version "github.com/hashicorp/go-version"
	"github.com/pelletier/go-toml/v2"

	"github.com/solfleet/captain/internal/errors"
	"github.com/solfleet/captain/internal/logger"
	"github.com/solfleet/captain/internal/manifest"
)

// ConfigFileName is the marker file that identifies a Captain workspace root.
const ConfigFileName = "Captain.toml"

// Config is the root Captain.toml record. It is read once per invocation and
// immutable thereafter.
type Config struct {
	Paths    Paths                     `toml:"paths"`
	Networks map[Network]NetworkConfig `toml:"networks"`
}

// Paths holds the base directories Captain reads and writes.
type Paths struct {
	// Where archived program binaries are stored
	Artifacts Path `toml:"artifacts"`
	// Where deployment history is stored
	Deployments Path `toml:"deployments"`
	// Where program address keypairs are stored
	ProgramKeypairs Path `toml:"program_keypairs"`
}

// NetworkConfig is the per-network deployment configuration.
type NetworkConfig struct {
	Deployer Path `toml:"deployer"`
	// The upgrade authority. Can be a ledger via usb://ledger?key=n
	UpgradeAuthority string `toml:"upgrade_authority"`
	URL              string `toml:"url,omitempty"`
	WSURL            string `toml:"ws_url,omitempty"`
}

// ArtifactPaths locates the archive destination for one program version.
type ArtifactPaths struct {
	Root string
	Bin  string
	IDL  string
}

// Exist reports whether either destination file is already archived.
func (a ArtifactPaths) Exist() bool {
	if _, err := os.Stat(a.Bin); err == nil {
		return true
	}
	if _, err := os.Stat(a.IDL); err == nil {
		return true
	}
	return false
}

// NetworkConfig returns the configuration for the given network, failing if
// Captain.toml has no entry for it.
func (c *Config) NetworkConfig(network Network) (NetworkConfig, error) {
	nc, ok := c.Networks[network]
	if !ok {
		return NetworkConfig{}, fmt.Errorf("%w: network %s not found in %s", errors.ErrUnknownNetwork, network, ConfigFileName)
	}
	return nc, nil
}

// ProgramKeypairPath returns the path to the identity keypair of a program.
// Keypairs are shared across minor and patch releases of the same major.
func (c *Config) ProgramKeypairPath(program string, v *version.Version) string {
	return c.Paths.ProgramKeypairs.Join(fmt.Sprintf("%s-%d.x.json", program, v.Segments()[0]))
}

// ArtifactPaths returns where archived binaries for a program version live.
// It does not touch the filesystem.
func (c *Config) ArtifactPaths(program string, v *version.Version) ArtifactPaths {
	root := c.Paths.Artifacts.Join(program, v.String())
	return ArtifactPaths{
		Root: root,
		Bin:  filepath.Join(root, "program.so"),
		IDL:  filepath.Join(root, "idl.json"),
	}
}

// Parse decodes a Captain.toml document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapConfigParse(err)
	}
	for network := range cfg.Networks {
		if _, err := ParseNetwork(string(network)); err != nil {
			return nil, errors.WrapConfigParse(err)
		}
	}
	return &cfg, nil
}

// Discover searches start and each ancestor directory for Captain.toml.
// On success it returns the decoded config, the workspace Cargo manifest
// found next to it, and the directory containing both.
func Discover(start string) (*Config, *manifest.Manifest, string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, nil, "", err
	}

	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			logger.Logger.Debug("found workspace config", "path", candidate)

			data, err := os.ReadFile(candidate)
			if err != nil {
				return nil, nil, "", err
			}
			cfg, err := Parse(data)
			if err != nil {
				return nil, nil, "", err
			}
			mf, err := manifest.Load(filepath.Join(dir, "Cargo.toml"))
			if err != nil {
				return nil, nil, "", err
			}
			return cfg, mf, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil, "", errors.ErrConfigNotFound
		}
		dir = parent
	}
}
