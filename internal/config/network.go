// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"

	"github.com/solfleet/captain/internal/errors"
)

// Network identifies a Solana cluster that programs can be deployed to.
type Network string

const (
	NetworkMainnet  Network = "mainnet"
	NetworkTestnet  Network = "testnet"
	NetworkDevnet   Network = "devnet"
	NetworkLocalnet Network = "localnet"
	NetworkDebug    Network = "debug"
)

type networkEndpoints struct {
	url   string
	wsURL string
}

// Default RPC and websocket endpoints per cluster. Overridable per-network
// in Captain.toml via the url and ws_url fields.
var defaultEndpoints = map[Network]networkEndpoints{
	NetworkMainnet:  {"https://api.mainnet-beta.solana.com", "wss://api.mainnet-beta.solana.com"},
	NetworkTestnet:  {"https://api.testnet.solana.com", "wss://api.testnet.solana.com"},
	NetworkDevnet:   {"https://api.devnet.solana.com", "wss://api.devnet.solana.com"},
	NetworkLocalnet: {"http://127.0.0.1:8899", "ws://127.0.0.1:8900"},
	NetworkDebug:    {"http://127.0.0.1:8899", "ws://127.0.0.1:8900"},
}

// AllNetworks returns every known network, in a stable order.
func AllNetworks() []Network {
	return []Network{NetworkMainnet, NetworkTestnet, NetworkDevnet, NetworkLocalnet, NetworkDebug}
}

// ParseNetwork validates a user-supplied network name.
func ParseNetwork(s string) (Network, error) {
	n := Network(strings.ToLower(s))
	if _, ok := defaultEndpoints[n]; !ok {
		return "", errors.WrapUnknownNetwork(s)
	}
	return n, nil
}

func (n Network) String() string {
	return string(n)
}

// URL returns the default RPC endpoint for the network.
func (n Network) URL() string {
	return defaultEndpoints[n].url
}

// WSURL returns the default websocket endpoint for the network.
func (n Network) WSURL() string {
	return defaultEndpoints[n].wsURL
}
