// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type EventSig string

func (es EventSig) GetTopic() common.Hash {
	return crypto.Keccak256Hash([]byte(es))
}

const InputAddedSig EventSig = "InputAdded(uint256,uint256,address,uint256,bytes)"

const (
	InputAddedEvent = "InputAdded"

	EpochNumberArg = "epochNumber"
	InputIndexArg  = "inputIndex"
)

// DecodedEvent is a log entry interpreted against a contract ABI.
// Indexed and non-indexed arguments are merged by name.
type DecodedEvent struct {
	Name string
	Args map[string]interface{}
}

// InputKeys identify where an input was recorded in the rollup's input sequence
type InputKeys struct {
	EpochIndex uint64
	InputIndex uint64
}

// NotFoundError is returned when a receipt holds no InputAdded event
type NotFoundError struct {
	TxHash common.Hash
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s event not found in receipt of transaction %s", InputAddedEvent, e.TxHash.Hex())
}
