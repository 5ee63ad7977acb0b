// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package initialize

import (
	"math/big"

	"github.com/rs/zerolog/log"

	"github.com/juztamau5/rollups-examples/chains/evm/calls/evmclient"
	"github.com/juztamau5/rollups-examples/chains/evm/calls/evmgaspricer"
	"github.com/juztamau5/rollups-examples/chains/evm/calls/transactor"
	"github.com/juztamau5/rollups-examples/chains/evm/calls/transactor/prepare"
	"github.com/juztamau5/rollups-examples/chains/evm/calls/transactor/signAndSend"
	"github.com/juztamau5/rollups-examples/chains/evm/cli/flags"
)

func InitializeClient(values *flags.GlobalFlags) (*evmclient.EVMClient, error) {
	log.Info().Msgf("connecting to %s", values.RPC)
	client, err := evmclient.NewEVMClient(values.RPC, values.Keypair)
	if err != nil {
		log.Error().Err(err).Msg("eth client initialization error")
		return nil, err
	}
	return client, nil
}

// InitializeTransactor returns a transactor printing call data in prepare
// mode and signing and sending transactions otherwise
func InitializeTransactor(values *flags.GlobalFlags, txFabric transactor.TxFabric, client *evmclient.EVMClient) transactor.Transactor {
	if values.Prepare {
		return prepare.NewPrepareTransactor()
	}

	gasPricer := evmgaspricer.NewLondonGasPriceClient(client, &evmgaspricer.GasPricerOpts{
		UpperLimitFeePerGas: values.MaxGasPrice,
		GasPriceFactor:      values.GasMultiplier,
	})
	return signAndSend.NewSignAndSendTransactor(txFabric, gasPricer, client)
}

// TransactOptions are the options shared by every transaction of a command
func TransactOptions(values *flags.GlobalFlags, chainID *big.Int) transactor.TransactOptions {
	return transactor.TransactOptions{
		GasLimit: values.GasLimit,
		GasPrice: values.GasPrice,
		ChainID:  chainID,
	}
}
