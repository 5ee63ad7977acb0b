// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evmgaspricer

import (
	"context"
	"math/big"

	"github.com/juztamau5/rollups-examples/chains/evm/calls"
)

type StaticGasPriceDeterminant struct {
	client calls.GasPriceClient
	opts   *GasPricerOpts
}

func NewStaticGasPriceDeterminant(client calls.GasPriceClient, opts *GasPricerOpts) *StaticGasPriceDeterminant {
	if opts == nil {
		opts = &GasPricerOpts{}
	}
	return &StaticGasPriceDeterminant{client: client, opts: opts}
}

// GasPrice returns a single legacy gas price
func (gasPricer *StaticGasPriceDeterminant) GasPrice() ([]*big.Int, error) {
	gp, err := gasPricer.client.SuggestGasPrice(context.TODO())
	if err != nil {
		return nil, err
	}
	gp = capFee(multiplyGasPrice(gp, gasPricer.opts.GasPriceFactor), gasPricer.opts.UpperLimitFeePerGas)
	return []*big.Int{gp}, nil
}
