// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for comparison with errors.Is
var (
	ErrConfigNotFound   = errors.New("Captain.toml not found in any parent directory")
	ErrManifestNotFound = errors.New("program manifest not found")
	ErrInvalidVersion   = errors.New("invalid version")
	ErrInvalidPackage   = errors.New("manifest has no package section")
	ErrUnknownNetwork   = errors.New("unknown network")
	ErrMissingAuthority = errors.New("UPGRADE_AUTHORITY_KEYPAIR environment variable not set")
	ErrAlreadyArchived  = errors.New("program artifacts already exist for this version")
	ErrPathMissing      = errors.New("required path does not exist")
	ErrKeypairInvalid   = errors.New("invalid keypair file")
)

// Wrap functions for consistent error wrapping
func WrapConfigParse(err error) error {
	return fmt.Errorf("unable to deserialize config: %w", err)
}

func WrapManifestNotFound(paths ...string) error {
	if len(paths) == 2 {
		return fmt.Errorf("%w: looked at %s and %s", ErrManifestNotFound, paths[0], paths[1])
	}
	return fmt.Errorf("%w: %s", ErrManifestNotFound, paths[0])
}

func WrapInvalidVersion(raw string, err error) error {
	return fmt.Errorf("%w: %q: %w", ErrInvalidVersion, raw, err)
}

func WrapUnknownNetwork(network string) error {
	return fmt.Errorf("%w: %s. Must be one of: mainnet, testnet, devnet, localnet, debug", ErrUnknownNetwork, network)
}

func WrapPathMissing(what, path string) error {
	return fmt.Errorf("%w: %s path %s", ErrPathMissing, what, path)
}

func WrapKeypairInvalid(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrKeypairInvalid, path, err)
}
