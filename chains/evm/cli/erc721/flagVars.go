// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package erc721

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// flag vars
var (
	Erc721Address string
	Id            string
	Data          string
)

// processed flag vars
var (
	TokenId     *big.Int
	DepositData []byte
)

// resolved once connected
var (
	Erc721Addr common.Address
)
