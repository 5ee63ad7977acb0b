// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package portal

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/juztamau5/rollups-examples/chains/evm/calls"
	"github.com/juztamau5/rollups-examples/chains/evm/calls/consts"
	"github.com/juztamau5/rollups-examples/chains/evm/calls/contracts"
	"github.com/juztamau5/rollups-examples/chains/evm/calls/transactor"
)

// PortalContract is the token portal facet of a rollups DApp. Deposits made
// through it are recorded as inputs of the DApp.
type PortalContract struct {
	contracts.Contract
}

func NewPortalContract(
	client calls.ContractCallerDispatcher,
	dappAddress common.Address,
	t transactor.Transactor,
) *PortalContract {
	a := consts.MustParseABI(consts.PortalABI)
	return &PortalContract{contracts.NewContract(dappAddress, a, client, t)}
}

func (c *PortalContract) Erc1155Deposit(
	token common.Address,
	tokenId *big.Int,
	amount *big.Int,
	data []byte,
	opts transactor.TransactOptions,
) (*common.Hash, error) {
	log.Debug().
		Str("token", token.String()).
		Str("tokenID", tokenId.String()).
		Str("amount", amount.String()).
		Msg("Depositing ERC1155 tokens")
	return c.ExecuteTransaction("erc1155Deposit", opts, token, tokenId, amount, data)
}

func (c *PortalContract) Erc721Deposit(
	token common.Address,
	tokenId *big.Int,
	data []byte,
	opts transactor.TransactOptions,
) (*common.Hash, error) {
	log.Debug().
		Str("token", token.String()).
		Str("tokenID", tokenId.String()).
		Msg("Depositing ERC721 token")
	return c.ExecuteTransaction("erc721Deposit", opts, token, tokenId, data)
}
