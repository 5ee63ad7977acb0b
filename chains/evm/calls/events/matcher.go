// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"math/big"

	ethTypes "github.com/ethereum/go-ethereum/core/types"
)

// FindInputKeys scans receipt logs in order and returns the indices of the first
// InputAdded event. Logs the decoder cannot interpret are skipped.
func FindInputKeys(receipt *ethTypes.Receipt, decoder EventDecoder) (InputKeys, error) {
	for _, l := range receipt.Logs {
		event, ok := decoder.TryDecode(l)
		if !ok || event.Name != InputAddedEvent {
			continue
		}

		epoch, ok := uintArg(event.Args, EpochNumberArg)
		if !ok {
			continue
		}
		input, ok := uintArg(event.Args, InputIndexArg)
		if !ok {
			continue
		}

		return InputKeys{
			EpochIndex: epoch,
			InputIndex: input,
		}, nil
	}

	return InputKeys{}, &NotFoundError{TxHash: receipt.TxHash}
}

func uintArg(args map[string]interface{}, name string) (uint64, bool) {
	v, ok := args[name].(*big.Int)
	if !ok || v == nil || v.Sign() < 0 || !v.IsUint64() {
		return 0, false
	}
	return v.Uint64(), true
}
