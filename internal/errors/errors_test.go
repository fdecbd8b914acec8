// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestWrappedErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"manifest not found", WrapManifestNotFound("/a/Cargo.toml", "/b/Cargo.toml"), ErrManifestNotFound},
		{"invalid version", WrapInvalidVersion("abc", fmt.Errorf("parse")), ErrInvalidVersion},
		{"unknown network", WrapUnknownNetwork("betanet"), ErrUnknownNetwork},
		{"path missing", WrapPathMissing("program bin", "/target/deploy/x.so"), ErrPathMissing},
		{"keypair invalid", WrapKeypairInvalid("/keys/id.json", fmt.Errorf("bad json")), ErrKeypairInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !stderrors.Is(tt.err, tt.sentinel) {
				t.Errorf("expected %v to match sentinel %v", tt.err, tt.sentinel)
			}
		})
	}
}

func TestMessagesCarryContext(t *testing.T) {
	err := WrapPathMissing("program idl", "/ws/target/idl/token.json")
	if got := err.Error(); !strings.Contains(got, "/ws/target/idl/token.json") {
		t.Errorf("expected path in message, got %q", got)
	}
}
