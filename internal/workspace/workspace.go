// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

// Package workspace resolves everything a deploy or upgrade needs up front:
// the workspace root, the program version, the on-disk artifacts, the network
// configuration, and the program's identity.
package workspace

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	version "github.com/hashicorp/go-version"

	"github.com/solfleet/captain/internal/config"
	"github.com/solfleet/captain/internal/errors"
	"github.com/solfleet/captain/internal/keypair"
	"github.com/solfleet/captain/internal/logger"
	"github.com/solfleet/captain/internal/manifest"
	"github.com/solfleet/captain/internal/runner"
)

// ProgramPaths locates a program's build outputs and identity key.
type ProgramPaths struct {
	// Compiled program binary under target/deploy
	Bin string
	// Anchor IDL under target/idl
	IDL string
	// Identity keypair under the configured program_keypairs directory
	ID string
}

// Workspace is the per-invocation aggregate the pipelines run against.
// Construction validates every precondition; the pipelines take it as given.
type Workspace struct {
	Root          string
	Program       string
	Network       config.Network
	DeployerPath  string
	DeployVersion *version.Version
	ProgramPaths  ProgramPaths
	Config        *config.Config
	NetworkConfig config.NetworkConfig
	ArtifactPaths config.ArtifactPaths
	// Base58 public key of the program identity
	ProgramKey string
}

// ResolveVersion returns the explicit version untouched when given, otherwise
// the version declared in the program's own Cargo.toml.
func ResolveVersion(explicit *version.Version, program, root string) (*version.Version, error) {
	if explicit != nil {
		return explicit, nil
	}
	return manifestVersion(program, root)
}

func manifestVersion(program, root string) (*version.Version, error) {
	primary := filepath.Join(root, "programs", program, "Cargo.toml")
	mfPath := primary
	if _, err := os.Stat(primary); err != nil {
		// Crate directories conventionally use hyphens even when the
		// program binary name uses underscores.
		mfPath = filepath.Join(root, "programs", strings.ReplaceAll(program, "_", "-"), "Cargo.toml")
		if _, err := os.Stat(mfPath); err != nil {
			return nil, errors.WrapManifestNotFound(primary, mfPath)
		}
	}

	mf, err := manifest.Load(mfPath)
	if err != nil {
		return nil, err
	}
	if mf.Package == nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrInvalidPackage, mfPath)
	}

	v, err := version.NewVersion(mf.Package.Version)
	if err != nil {
		return nil, errors.WrapInvalidVersion(mf.Package.Version, err)
	}
	return v, nil
}

// resolveProgramPaths computes the three expected paths and verifies each
// exists, naming the missing one.
func resolveProgramPaths(cfg *config.Config, program, root string, v *version.Version) (ProgramPaths, error) {
	paths := ProgramPaths{
		Bin: filepath.Join(root, "target", "deploy", program+".so"),
		IDL: filepath.Join(root, "target", "idl", program+".json"),
		ID:  cfg.ProgramKeypairPath(program, v),
	}

	if _, err := os.Stat(paths.Bin); err != nil {
		return ProgramPaths{}, errors.WrapPathMissing("program bin", paths.Bin)
	}
	if _, err := os.Stat(paths.IDL); err != nil {
		return ProgramPaths{}, errors.WrapPathMissing("program idl", paths.IDL)
	}
	if _, err := os.Stat(paths.ID); err != nil {
		return ProgramPaths{}, errors.WrapPathMissing("program id", paths.ID)
	}
	return paths, nil
}

// Load assembles a Workspace for one command invocation, failing fast at the
// first unmet precondition. Creating the artifact archive directory is its
// only filesystem mutation.
func Load(program string, explicit *version.Version, network config.Network, start string) (*Workspace, error) {
	cfg, _, root, err := config.Discover(start)
	if err != nil {
		return nil, err
	}

	deployVersion, err := ResolveVersion(explicit, program, root)
	if err != nil {
		return nil, err
	}

	programPaths, err := resolveProgramPaths(cfg, program, root, deployVersion)
	if err != nil {
		return nil, err
	}

	networkConfig, err := cfg.NetworkConfig(network)
	if err != nil {
		return nil, err
	}
	deployerPath := networkConfig.Deployer.String()
	if _, err := os.Stat(deployerPath); err != nil {
		return nil, errors.WrapPathMissing("deployer", deployerPath)
	}

	artifactPaths := cfg.ArtifactPaths(program, deployVersion)
	if err := os.MkdirAll(artifactPaths.Root, 0755); err != nil {
		return nil, err
	}

	id, err := keypair.Read(programPaths.ID)
	if err != nil {
		return nil, err
	}

	logger.Logger.Debug("workspace loaded",
		"program", program, "version", deployVersion.String(),
		"network", network, "root", root)

	return &Workspace{
		Root:          root,
		Program:       program,
		Network:       network,
		DeployerPath:  deployerPath,
		DeployVersion: deployVersion,
		ProgramPaths:  programPaths,
		Config:        cfg,
		NetworkConfig: networkConfig,
		ArtifactPaths: artifactPaths,
		ProgramKey:    id.Pubkey(),
	}, nil
}

// NetworkURL returns the configured RPC override, or the network default.
func (w *Workspace) NetworkURL() string {
	if w.NetworkConfig.URL != "" {
		return w.NetworkConfig.URL
	}
	return w.Network.URL()
}

// HasAnchor reports whether this is also an Anchor workspace.
func (w *Workspace) HasAnchor() bool {
	_, err := os.Stat(filepath.Join(w.Root, "Anchor.toml"))
	return err == nil
}

// SolanaCmd starts a solana CLI invocation against the resolved network,
// signed by the network deployer.
func (w *Workspace) SolanaCmd(args ...string) runner.Command {
	return runner.New("solana",
		"--url", w.NetworkURL(),
		"--keypair", w.DeployerPath,
	).WithArgs(args...)
}

// AnchorCmd starts an anchor CLI invocation with the provider flags pointed
// at the resolved network and deployer wallet.
func (w *Workspace) AnchorCmd(sub string, args ...string) runner.Command {
	return runner.New("anchor", sub,
		"--provider.cluster", w.Network.String(),
		"--provider.wallet", w.DeployerPath,
	).WithArgs(args...)
}

// ShowProgram probes the chain for the program identity. A nonzero exit from
// `solana program show` means the program is not deployed.
func (w *Workspace) ShowProgram(ctx context.Context, r runner.Runner) (bool, error) {
	return r.Check(ctx, w.SolanaCmd("program", "show", w.ProgramKey))
}

// CopyArtifacts copies the built binary and IDL into the version-addressed
// archive.
func (w *Workspace) CopyArtifacts() error {
	if err := copyFile(w.ProgramPaths.Bin, w.ArtifactPaths.Bin); err != nil {
		return err
	}
	return copyFile(w.ProgramPaths.IDL, w.ArtifactPaths.IDL)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
