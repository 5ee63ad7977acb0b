// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evmgaspricer

import (
	"math/big"
)

type GasPricerOpts struct {
	UpperLimitFeePerGas *big.Int
	GasPriceFactor      *big.Float
}

func multiplyGasPrice(gasEstimate *big.Int, gasMultiplier *big.Float) *big.Int {
	if gasMultiplier == nil {
		return gasEstimate
	}
	gasEstimateFloat := new(big.Float).SetInt(gasEstimate)
	result := gasEstimateFloat.Mul(gasEstimateFloat, gasMultiplier)
	gasPrice := new(big.Int)
	result.Int(gasPrice)
	return gasPrice
}

func capFee(fee *big.Int, upperLimit *big.Int) *big.Int {
	if upperLimit != nil && upperLimit.Sign() > 0 && fee.Cmp(upperLimit) > 0 {
		return new(big.Int).Set(upperLimit)
	}
	return fee
}
