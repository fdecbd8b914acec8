// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

package updater

import (
	"testing"
)

func TestCompareVersions(t *testing.T) {
	c := NewChecker("1.0.0")

	tests := []struct {
		name    string
		current string
		latest  string
		want    bool
		wantErr bool
	}{
		{"newer available", "1.0.0", "1.1.0", true, false},
		{"same version", "1.0.0", "1.0.0", false, false},
		{"older latest", "1.2.0", "1.1.0", false, false},
		{"v prefixes stripped", "v1.0.0", "v2.0.0", true, false},
		{"dev build never updates", "dev", "9.0.0", false, false},
		{"empty current never updates", "", "1.0.0", false, false},
		{"garbage latest", "1.0.0", "not-a-version", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.compareVersions(tt.current, tt.latest)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error=%v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCheckDisabledByEnv(t *testing.T) {
	t.Setenv("CAPTAIN_NO_UPDATE_CHECK", "1")

	c := NewChecker("1.0.0")
	c.cacheDir = t.TempDir()

	// Must return without touching the network or the cache.
	c.CheckForUpdates()
}
