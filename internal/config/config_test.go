// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	version "github.com/hashicorp/go-version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	captainerrors "github.com/solfleet/captain/internal/errors"
)

const sampleConfig = `
[paths]
artifacts = "./.archive"
deployments = "./.captain/deployments"
program_keypairs = "./keys"

[networks.devnet]
deployer = "./deployers/devnet.json"
upgrade_authority = "~/.config/solana/id.json"

[networks.mainnet]
deployer = "./deployers/mainnet.json"
upgrade_authority = "usb://ledger?key=0"
url = "https://rpc.example.com"
ws_url = "wss://rpc.example.com"
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "./.archive", cfg.Paths.Artifacts.String())
	assert.Equal(t, "./keys", cfg.Paths.ProgramKeypairs.String())

	devnet, err := cfg.NetworkConfig(NetworkDevnet)
	require.NoError(t, err)
	assert.Equal(t, "./deployers/devnet.json", devnet.Deployer.String())
	assert.Empty(t, devnet.URL)

	mainnet, err := cfg.NetworkConfig(NetworkMainnet)
	require.NoError(t, err)
	assert.Equal(t, "usb://ledger?key=0", mainnet.UpgradeAuthority)
	assert.Equal(t, "https://rpc.example.com", mainnet.URL)
}

func TestParseRejectsMalformedTOML(t *testing.T) {
	_, err := Parse([]byte("[paths\nartifacts = 1"))
	assert.Error(t, err)
}

func TestParseRejectsUnknownNetwork(t *testing.T) {
	_, err := Parse([]byte(`
[networks.betanet]
deployer = "./deployer.json"
upgrade_authority = "x"
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, captainerrors.ErrUnknownNetwork)
}

func TestPathTildeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Parse([]byte(`
[paths]
artifacts = "~/artifacts"
`))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "artifacts"), cfg.Paths.Artifacts.String())
}

func TestNetworkConfigUnknown(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	_, err = cfg.NetworkConfig(NetworkLocalnet)
	assert.ErrorIs(t, err, captainerrors.ErrUnknownNetwork)
}

func TestArtifactPaths(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	v := version.Must(version.NewVersion("1.2.0"))
	paths := cfg.ArtifactPaths("token", v)

	assert.Equal(t, filepath.Join(".archive", "token", "1.2.0"), paths.Root)
	assert.Equal(t, filepath.Join(".archive", "token", "1.2.0", "program.so"), paths.Bin)
	assert.Equal(t, filepath.Join(".archive", "token", "1.2.0", "idl.json"), paths.IDL)
}

func TestArtifactPathsExist(t *testing.T) {
	dir := t.TempDir()
	paths := ArtifactPaths{
		Root: dir,
		Bin:  filepath.Join(dir, "program.so"),
		IDL:  filepath.Join(dir, "idl.json"),
	}
	assert.False(t, paths.Exist())

	require.NoError(t, os.WriteFile(paths.IDL, []byte("{}"), 0644))
	assert.True(t, paths.Exist(), "a single archived file marks the version as archived")
}

func TestProgramKeypairPath(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	v := version.Must(version.NewVersion("2.5.1"))
	assert.Equal(t, filepath.Join("keys", "token-2.x.json"), cfg.ProgramKeypairPath("token", v))
}

func writeWorkspaceFixture(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(sampleConfig), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[workspace]\nmembers = [\"programs/*\"]\n"), 0644))
}

func TestDiscoverWalksAncestors(t *testing.T) {
	root := t.TempDir()
	writeWorkspaceFixture(t, root)

	nested := filepath.Join(root, "programs", "token", "src")
	require.NoError(t, os.MkdirAll(nested, 0755))

	cfg, mf, foundRoot, err := Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, root, foundRoot)
	assert.Equal(t, "./.archive", cfg.Paths.Artifacts.String())
	assert.Nil(t, mf.Package)
	require.NotNil(t, mf.Workspace)
}

func TestDiscoverNotFound(t *testing.T) {
	_, _, _, err := Discover(t.TempDir())
	assert.ErrorIs(t, err, captainerrors.ErrConfigNotFound)
}
