// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package transactor

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type TransactOptions struct {
	// GasLimit of zero means the limit is estimated by the node
	GasLimit uint64
	// GasPrice forces a legacy transaction at the given price
	GasPrice *big.Int
	Value    *big.Int
	Nonce    *big.Int
	ChainID  *big.Int
}

var DefaultTransactionOptions = TransactOptions{
	GasLimit: 0,
	GasPrice: nil,
	Value:    big.NewInt(0),
}

// MergeTransactionOptions fills unset fields of primary from additional
func MergeTransactionOptions(primary TransactOptions, additional TransactOptions) TransactOptions {
	if primary.GasLimit == 0 {
		primary.GasLimit = additional.GasLimit
	}
	if primary.GasPrice == nil {
		primary.GasPrice = additional.GasPrice
	}
	if primary.Value == nil {
		primary.Value = additional.Value
	}
	if primary.Nonce == nil {
		primary.Nonce = additional.Nonce
	}
	if primary.ChainID == nil {
		primary.ChainID = additional.ChainID
	}
	return primary
}

type TxFabric func(chainID *big.Int, nonce uint64, to *common.Address, amount *big.Int, gasLimit uint64, gasPrices []*big.Int, data []byte) (*types.Transaction, error)

type GasPricer interface {
	GasPrice() ([]*big.Int, error)
}

type Transactor interface {
	Transact(to *common.Address, data []byte, opts TransactOptions) (*common.Hash, error)
}
