// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package erc721

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/juztamau5/rollups-examples/chains/evm/calls"
	"github.com/juztamau5/rollups-examples/chains/evm/calls/consts"
	"github.com/juztamau5/rollups-examples/chains/evm/calls/contracts"
	"github.com/juztamau5/rollups-examples/chains/evm/calls/transactor"
)

type ERC721Contract struct {
	contracts.Contract
}

func NewErc721Contract(
	client calls.ContractCallerDispatcher,
	erc721ContractAddress common.Address,
	t transactor.Transactor,
) *ERC721Contract {
	a := consts.MustParseABI(consts.ERC721ABI)
	return &ERC721Contract{contracts.NewContract(erc721ContractAddress, a, client, t)}
}

func (c *ERC721Contract) IsApprovedForAll(owner common.Address, operator common.Address) (bool, error) {
	res, err := c.CallContract("isApprovedForAll", owner, operator)
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(res[0], new(bool)).(*bool), nil
}

func (c *ERC721Contract) SetApprovalForAll(
	operator common.Address, approved bool, opts transactor.TransactOptions,
) (*common.Hash, error) {
	log.Debug().Msgf("Setting approval of %s for all tokens to %t", operator.String(), approved)
	return c.ExecuteTransaction("setApprovalForAll", opts, operator, approved)
}

func (c *ERC721Contract) OwnerOf(tokenId *big.Int) (common.Address, error) {
	res, err := c.CallContract("ownerOf", tokenId)
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(res[0], new(common.Address)).(*common.Address), nil
}
