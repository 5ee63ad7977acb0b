// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package erc1155

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// flag vars
var (
	Erc1155Address string
	Id             string
	Amount         string
	Data           string
)

// processed flag vars
var (
	Erc1155Addr common.Address
	TokenId     *big.Int
	TokenAmount *big.Int
	DepositData []byte
)
