// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package prepare

import (
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/juztamau5/rollups-examples/chains/evm/calls/transactor"
)

type prepareTransactor struct {
	out io.Writer
}

// NewPrepareTransactor returns a transactor that prints calldata instead of sending it
func NewPrepareTransactor() transactor.Transactor {
	return NewPrepareTransactorWithWriter(os.Stdout)
}

func NewPrepareTransactorWithWriter(out io.Writer) transactor.Transactor {
	return &prepareTransactor{out: out}
}

func (t *prepareTransactor) Transact(to *common.Address, data []byte, opts transactor.TransactOptions) (*common.Hash, error) {
	_, err := fmt.Fprintf(t.out, "to: %s\ndata: %s\n", to.Hex(), hexutil.Encode(data))
	if err != nil {
		return nil, err
	}
	return &common.Hash{}, nil
}
