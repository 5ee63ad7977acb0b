// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package networks

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/imdario/mergo"
	"github.com/mitchellh/mapstructure"
)

type Network struct {
	ChainID uint64
	Name    string
	// DApp and ERC721 are optional contract addresses, resolved from
	// deployment files when empty
	DApp   string
	ERC721 string
}

type RawNetwork struct {
	ChainID uint64 `mapstructure:"chainId"`
	Name    string `mapstructure:"name"`
	DApp    string `mapstructure:"dapp"`
	ERC721  string `mapstructure:"erc721"`
}

func (c *RawNetwork) Validate() error {
	if c.ChainID == 0 {
		return fmt.Errorf("required field network.chainId empty")
	}
	if c.DApp != "" && !common.IsHexAddress(c.DApp) {
		return fmt.Errorf("invalid dapp address %s for chain %d", c.DApp, c.ChainID)
	}
	if c.ERC721 != "" && !common.IsHexAddress(c.ERC721) {
		return fmt.Errorf("invalid erc721 address %s for chain %d", c.ERC721, c.ChainID)
	}
	return nil
}

// NewNetwork decodes and validates a Network from a raw network config
func NewNetwork(networkConfig map[string]interface{}) (*Network, error) {
	var c RawNetwork
	err := mapstructure.Decode(networkConfig, &c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	return &Network{
		ChainID: c.ChainID,
		Name:    c.Name,
		DApp:    c.DApp,
		ERC721:  c.ERC721,
	}, nil
}

var builtin = []Network{
	{ChainID: 31337, Name: "localhost"},
	{ChainID: 1, Name: "mainnet"},
	{ChainID: 5, Name: "goerli"},
	{ChainID: 11155111, Name: "sepolia"},
	{ChainID: 10, Name: "optimism"},
	{ChainID: 420, Name: "optimism_goerli"},
	{ChainID: 137, Name: "polygon"},
	{ChainID: 80001, Name: "polygon_mumbai"},
	{ChainID: 42161, Name: "arbitrum"},
	{ChainID: 421613, Name: "arbitrum_goerli"},
	{ChainID: 100, Name: "gnosis"},
	{ChainID: 10200, Name: "chiado"},
}

type Registry struct {
	networks map[uint64]Network
}

// NewRegistry returns a registry of the well known networks
func NewRegistry() *Registry {
	r := &Registry{networks: make(map[uint64]Network)}
	for _, n := range builtin {
		r.networks[n.ChainID] = n
	}
	return r
}

// NewRegistryFromConfig returns the well known networks extended and
// overridden by the configured ones
func NewRegistryFromConfig(networkConfigs []map[string]interface{}) (*Registry, error) {
	r := NewRegistry()
	for _, nc := range networkConfigs {
		n, err := NewNetwork(nc)
		if err != nil {
			return nil, err
		}
		err = r.Merge(*n)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Merge adds n to the registry. Non-empty fields of n override the ones of a
// network already registered under the same chain id.
func (r *Registry) Merge(n Network) error {
	existing, ok := r.networks[n.ChainID]
	if !ok {
		r.networks[n.ChainID] = n
		return nil
	}

	err := mergo.Merge(&existing, n, mergo.WithOverride)
	if err != nil {
		return err
	}
	r.networks[n.ChainID] = existing
	return nil
}

func (r *Registry) Get(chainID uint64) (Network, bool) {
	n, ok := r.networks[chainID]
	return n, ok
}
