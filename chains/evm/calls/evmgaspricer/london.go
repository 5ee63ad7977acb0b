// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evmgaspricer

import (
	"context"
	"math/big"

	"github.com/rs/zerolog/log"

	"github.com/juztamau5/rollups-examples/chains/evm/calls"
)

type LondonGasPriceDeterminant struct {
	client calls.GasPriceClient
	opts   *GasPricerOpts
}

func NewLondonGasPriceClient(client calls.GasPriceClient, opts *GasPricerOpts) *LondonGasPriceDeterminant {
	if opts == nil {
		opts = &GasPricerOpts{}
	}
	return &LondonGasPriceDeterminant{client: client, opts: opts}
}

// GasPrice returns [maxPriorityFeePerGas, maxFeePerGas], or a single legacy
// price when the chain has no base fee
func (gasPricer *LondonGasPriceDeterminant) GasPrice() ([]*big.Int, error) {
	header, err := gasPricer.client.HeaderByNumber(context.TODO(), nil)
	if err != nil {
		return nil, err
	}
	if header.BaseFee == nil {
		log.Debug().Msg("chain has no base fee, falling back to legacy gas price")
		return NewStaticGasPriceDeterminant(gasPricer.client, gasPricer.opts).GasPrice()
	}

	tip, err := gasPricer.client.SuggestGasTipCap(context.TODO())
	if err != nil {
		return nil, err
	}
	tip = multiplyGasPrice(tip, gasPricer.opts.GasPriceFactor)

	maxFee := new(big.Int).Mul(header.BaseFee, big.NewInt(2))
	maxFee = capFee(maxFee.Add(maxFee, tip), gasPricer.opts.UpperLimitFeePerGas)
	if tip.Cmp(maxFee) > 0 {
		tip = new(big.Int).Set(maxFee)
	}
	return []*big.Int{tip, maxFee}, nil
}
