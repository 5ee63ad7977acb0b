// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"

	"github.com/juztamau5/rollups-examples/chains/evm/calls/consts"
)

type EventDecoder interface {
	// TryDecode reports false for logs that do not belong to the decoder's schema.
	TryDecode(l *ethTypes.Log) (*DecodedEvent, bool)
}

type ABIDecoder struct {
	abi abi.ABI
}

func NewABIDecoder(contractABI abi.ABI) *ABIDecoder {
	return &ABIDecoder{
		abi: contractABI,
	}
}

// NewInputDecoder returns a decoder bound to the rollups input facet ABI
func NewInputDecoder() *ABIDecoder {
	a := consts.MustParseABI(consts.InputABI)
	event, ok := a.Events[InputAddedEvent]
	if !ok || event.ID != InputAddedSig.GetTopic() {
		panic(fmt.Sprintf("input ABI does not declare %s", InputAddedSig))
	}
	return NewABIDecoder(a)
}

func (d *ABIDecoder) TryDecode(l *ethTypes.Log) (*DecodedEvent, bool) {
	if l == nil || len(l.Topics) == 0 {
		return nil, false
	}

	event, err := d.abi.EventByID(l.Topics[0])
	if err != nil {
		return nil, false
	}

	args := make(map[string]interface{})
	err = d.abi.UnpackIntoMap(args, event.Name, l.Data)
	if err != nil {
		log.Debug().Msgf("failed unpacking %s event data in tx %s: %v", event.Name, l.TxHash.Hex(), err)
		return nil, false
	}

	var indexed abi.Arguments
	for _, arg := range event.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	if len(indexed) != len(l.Topics)-1 {
		return nil, false
	}
	err = abi.ParseTopicsIntoMap(args, indexed, l.Topics[1:])
	if err != nil {
		log.Debug().Msgf("failed parsing %s event topics in tx %s: %v", event.Name, l.TxHash.Hex(), err)
		return nil, false
	}

	return &DecodedEvent{
		Name: event.Name,
		Args: args,
	}, true
}
