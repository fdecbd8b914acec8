// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
)

func TestParseNetwork(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Network
		wantErr bool
	}{
		{"mainnet", "mainnet", NetworkMainnet, false},
		{"testnet", "testnet", NetworkTestnet, false},
		{"devnet", "devnet", NetworkDevnet, false},
		{"localnet", "localnet", NetworkLocalnet, false},
		{"debug", "debug", NetworkDebug, false},
		{"uppercase is accepted", "Devnet", NetworkDevnet, false},
		{"unknown", "betanet", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNetwork(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error=%v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNetworkDefaultEndpoints(t *testing.T) {
	for _, network := range AllNetworks() {
		if network.URL() == "" {
			t.Errorf("network %s has no default URL", network)
		}
		if network.WSURL() == "" {
			t.Errorf("network %s has no default websocket URL", network)
		}
	}

	if got := NetworkMainnet.URL(); got != "https://api.mainnet-beta.solana.com" {
		t.Errorf("unexpected mainnet URL %q", got)
	}
	if got := NetworkLocalnet.WSURL(); got != "ws://127.0.0.1:8900" {
		t.Errorf("unexpected localnet websocket URL %q", got)
	}
}
