// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package signAndSend

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/juztamau5/rollups-examples/chains/evm/calls"
	"github.com/juztamau5/rollups-examples/chains/evm/calls/transactor"
)

type signAndSendTransactor struct {
	TxFabric       transactor.TxFabric
	gasPriceClient transactor.GasPricer
	client         calls.ClientDispatcher
}

func NewSignAndSendTransactor(txFabric transactor.TxFabric, gasPriceClient transactor.GasPricer, client calls.ClientDispatcher) transactor.Transactor {
	return &signAndSendTransactor{
		TxFabric:       txFabric,
		gasPriceClient: gasPriceClient,
		client:         client,
	}
}

func (t *signAndSendTransactor) Transact(to *common.Address, data []byte, opts transactor.TransactOptions) (*common.Hash, error) {
	ctx := context.TODO()
	opts = transactor.MergeTransactionOptions(opts, transactor.DefaultTransactionOptions)

	if opts.ChainID == nil {
		chainID, err := t.client.ChainID(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed fetching chain id")
		}
		opts.ChainID = chainID
	}

	if opts.Nonce == nil {
		nonce, err := t.client.PendingNonceAt(ctx, t.client.From())
		if err != nil {
			return nil, errors.Wrap(err, "failed fetching nonce")
		}
		opts.Nonce = new(big.Int).SetUint64(nonce)
	}

	if opts.GasLimit == 0 {
		gas, err := t.client.EstimateGas(ctx, ethereum.CallMsg{
			From:  t.client.From(),
			To:    to,
			Value: opts.Value,
			Data:  data,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed estimating gas")
		}
		opts.GasLimit = gas
	}

	gasPrices := []*big.Int{opts.GasPrice}
	if opts.GasPrice == nil {
		var err error
		gasPrices, err = t.gasPriceClient.GasPrice()
		if err != nil {
			return nil, errors.Wrap(err, "failed fetching gas price")
		}
	}

	tx, err := t.TxFabric(opts.ChainID, opts.Nonce.Uint64(), to, opts.Value, opts.GasLimit, gasPrices, data)
	if err != nil {
		return nil, err
	}
	signed, err := t.client.SignTx(tx, opts.ChainID)
	if err != nil {
		return nil, errors.Wrap(err, "failed signing transaction")
	}
	err = t.client.SendTransaction(ctx, signed)
	if err != nil {
		return nil, errors.Wrap(err, "failed sending transaction")
	}

	h := signed.Hash()
	log.Debug().Str("txHash", h.Hex()).Uint64("nonce", opts.Nonce.Uint64()).Uint64("gasLimit", opts.GasLimit).Msg("transaction sent")
	return &h, nil
}
