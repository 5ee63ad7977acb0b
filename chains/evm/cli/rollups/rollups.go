// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package rollups

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/juztamau5/rollups-examples/chains/evm/cli/flags"
	"github.com/juztamau5/rollups-examples/deployments"
	"github.com/juztamau5/rollups-examples/networks"
)

// ResolveDAppAddress finds the DApp contract address, trying in order the
// address flag, the address file, the network config and the network's
// deployment files
func ResolveDAppAddress(chainID uint64, registry *networks.Registry, values *flags.RollupsFlags) (common.Address, error) {
	if values.Address != "" {
		if !common.IsHexAddress(values.Address) {
			return common.Address{}, fmt.Errorf("invalid DApp address %s", values.Address)
		}
		return common.HexToAddress(values.Address), nil
	}
	if values.AddressFile != "" {
		return deployments.ReadAddressFile(values.AddressFile)
	}

	network, ok := registry.Get(chainID)
	if ok {
		if network.DApp != "" {
			return common.HexToAddress(network.DApp), nil
		}
		address, err := deployments.Address(values.Deployments, network.Name, values.DApp)
		if err == nil {
			return address, nil
		}
		log.Debug().Err(err).Msgf("no %s deployment for network %s", values.DApp, network.Name)
	}
	return common.Address{}, fmt.Errorf("cannot resolve DApp address for chain %d", chainID)
}

// ResolveERC721Address finds the ERC-721 token address from the flag value,
// the network config or the network's deployment files
func ResolveERC721Address(chainID uint64, registry *networks.Registry, erc721 string, deploymentsDir string, deployment string) (common.Address, error) {
	if erc721 != "" {
		if !common.IsHexAddress(erc721) {
			return common.Address{}, fmt.Errorf("invalid ERC-721 address %s", erc721)
		}
		return common.HexToAddress(erc721), nil
	}

	network, ok := registry.Get(chainID)
	if ok {
		if network.ERC721 != "" {
			return common.HexToAddress(network.ERC721), nil
		}
		address, err := deployments.Address(deploymentsDir, network.Name, deployment)
		if err == nil {
			return address, nil
		}
		log.Debug().Err(err).Msgf("no %s deployment for network %s", deployment, network.Name)
	}
	return common.Address{}, fmt.Errorf("cannot resolve ERC-721 address for chain %d", chainID)
}

// ValidateRollupsFlags checks the resolved rollups values before any network access.
// Values may come from the environment as well as from flags.
func ValidateRollupsFlags(values *flags.RollupsFlags) error {
	if values.Address != "" && !common.IsHexAddress(values.Address) {
		return fmt.Errorf("invalid DApp address %s", values.Address)
	}
	return nil
}
