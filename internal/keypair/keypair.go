// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

// Package keypair reads and writes Solana JSON keypair files: a JSON array of
// 64 bytes holding an ed25519 seed followed by the public key.
package keypair

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mr-tron/base58"

	captainerrors "github.com/solfleet/captain/internal/errors"
)

// Keypair is an ed25519 signing key in Solana's on-disk layout.
type Keypair struct {
	priv ed25519.PrivateKey
}

// Generate creates a fresh random keypair.
func Generate() (*Keypair, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate keypair: %w", err)
	}
	return &Keypair{priv: priv}, nil
}

// Pubkey returns the base58-encoded public key, the program address form
// used by the solana CLI.
func (k *Keypair) Pubkey() string {
	return base58.Encode(k.priv.Public().(ed25519.PublicKey))
}

// Read loads a keypair file and validates that the embedded public key
// matches the seed.
func Read(path string) (*Keypair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, captainerrors.WrapKeypairInvalid(path, err)
	}

	// The file is a JSON array of byte values, not a base64 string.
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return nil, captainerrors.WrapKeypairInvalid(path, err)
	}
	if len(ints) != ed25519.PrivateKeySize {
		return nil, captainerrors.WrapKeypairInvalid(path, fmt.Errorf("expected %d bytes, got %d", ed25519.PrivateKeySize, len(ints)))
	}
	raw := make([]byte, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return nil, captainerrors.WrapKeypairInvalid(path, fmt.Errorf("byte %d out of range: %d", i, v))
		}
		raw[i] = byte(v)
	}

	priv := ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
	if !bytes.Equal(priv[ed25519.SeedSize:], raw[ed25519.SeedSize:]) {
		return nil, captainerrors.WrapKeypairInvalid(path, fmt.Errorf("public key does not match seed"))
	}
	return &Keypair{priv: priv}, nil
}

func (k *Keypair) marshal() ([]byte, error) {
	ints := make([]int, len(k.priv))
	for i, b := range k.priv {
		ints[i] = int(b)
	}
	return json.Marshal(ints)
}

// Write stores the keypair at path with owner-only permissions.
func (k *Keypair) Write(path string) error {
	data, err := k.marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// WriteTemp writes the keypair to an ephemeral file. The returned cleanup
// must run on every exit path so key material never outlives the invocation.
func (k *Keypair) WriteTemp() (string, func(), error) {
	f, err := os.CreateTemp("", "captain-buffer-*.json")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }

	data, err := k.marshal()
	if err != nil {
		f.Close()
		cleanup()
		return "", nil, err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}
