// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package erc1155

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

type ERC1155Contract struct {
	contracts.Contract
}

func NewErc1155Contract(
	client calls.ContractCallerDispatcher,
	erc1155ContractAddress common.Address,
	t transactor.Transactor,
) *ERC1155Contract {
	a := consts.MustParseABI(consts.ERC1155ABI)
	return &ERC1155Contract{contracts.NewContract(erc1155ContractAddress, a, client, t)}
}

func (c *ERC1155Contract) IsApprovedForAll(owner common.Address, operator common.Address) (bool, error) {
	res, err := c.CallContract("isApprovedForAll", owner, operator)
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(res[0], new(bool)).(*bool), nil
}

func (c *ERC1155Contract) SetApprovalForAll(
	operator common.Address, approved bool, opts transactor.TransactOptions,
) (*common.Hash, error) {
	log.Debug().Msgf("Setting approval of %s for all tokens to %t", operator.String(), approved)
	return c.ExecuteTransaction("setApprovalForAll", opts, operator, approved)
}

func (c *ERC1155Contract) BalanceOf(account common.Address, id *big.Int) (*big.Int, error) {
	res, err := c.CallContract("balanceOf", account, id)
	if err != nil {
		return nil, err
	}
	return abi.ConvertType(res[0], new(big.Int)).(*big.Int), nil
}
