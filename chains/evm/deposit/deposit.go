// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package deposit

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"

	"github.com/juztamau5/rollups-examples/chains/evm/calls/events"
	"github.com/juztamau5/rollups-examples/chains/evm/calls/transactor"
)

type ReceiptWaiter interface {
	WaitAndReturnTxReceipt(ctx context.Context, h common.Hash) (*types.Receipt, error)
}

type ApprovalContract interface {
	IsApprovedForAll(owner common.Address, operator common.Address) (bool, error)
	SetApprovalForAll(operator common.Address, approved bool, opts transactor.TransactOptions) (*common.Hash, error)
}

type BalanceContract interface {
	BalanceOf(account common.Address, id *big.Int) (*big.Int, error)
}

type OwnerContract interface {
	OwnerOf(tokenId *big.Int) (common.Address, error)
}

type SendFunc func() (*common.Hash, error)

type Executor struct {
	waiter  ReceiptWaiter
	decoder events.EventDecoder
	timeout time.Duration
	prepare bool
}

// NewExecutor creates a deposit executor. In prepare mode transactions are
// only printed, so nothing is awaited and no input is reported.
func NewExecutor(waiter ReceiptWaiter, decoder events.EventDecoder, timeout time.Duration, prepare bool) *Executor {
	return &Executor{
		waiter:  waiter,
		decoder: decoder,
		timeout: timeout,
		prepare: prepare,
	}
}

// EnsureApproval grants operator approval over all tokens of owner unless it is already granted
func (e *Executor) EnsureApproval(token ApprovalContract, owner common.Address, operator common.Address, opts transactor.TransactOptions) error {
	if !e.prepare {
		approved, err := token.IsApprovedForAll(owner, operator)
		if err != nil {
			return fmt.Errorf("failed checking approval: %w", err)
		}
		if approved {
			log.Debug().Str("operator", operator.Hex()).Msg("tokens already approved")
			return nil
		}
	}

	log.Info().Msg("approving tokens...")
	h, err := token.SetApprovalForAll(operator, true, opts)
	if err != nil {
		return fmt.Errorf("failed approving tokens: %w", err)
	}
	if e.prepare {
		return nil
	}
	_, err = e.waitSuccess(*h)
	return err
}

// Execute sends the deposit transaction and returns the keys of the input it added
func (e *Executor) Execute(send SendFunc) (*events.InputKeys, error) {
	h, err := send()
	if err != nil {
		return nil, fmt.Errorf("failed sending deposit: %w", err)
	}
	if e.prepare {
		return nil, nil
	}

	log.Info().Msgf("transaction: %s", h.Hex())
	log.Info().Msg("waiting for confirmation...")
	receipt, err := e.waitSuccess(*h)
	if err != nil {
		return nil, err
	}

	keys, err := events.FindInputKeys(receipt, e.decoder)
	if err != nil {
		return nil, err
	}
	return &keys, nil
}

func (e *Executor) waitSuccess(h common.Hash) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	receipt, err := e.waiter.WaitAndReturnTxReceipt(ctx, h)
	if err != nil {
		return nil, err
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return nil, fmt.Errorf("transaction %s reverted", h.Hex())
	}
	return receipt, nil
}

// CheckERC1155Balance fails when owner holds less than amount of token id
func CheckERC1155Balance(token BalanceContract, owner common.Address, id *big.Int, amount *big.Int) error {
	balance, err := token.BalanceOf(owner, id)
	if err != nil {
		return fmt.Errorf("failed fetching balance: %w", err)
	}
	if balance.Cmp(amount) < 0 {
		return fmt.Errorf("insufficient balance of token ID %s: have %s, want %s", id, balance, amount)
	}
	return nil
}

func CheckERC721Owner(token OwnerContract, owner common.Address, id *big.Int) error {
	current, err := token.OwnerOf(id)
	if err != nil {
		return fmt.Errorf("failed fetching owner of token ID %s: %w", id, err)
	}
	if current != owner {
		return fmt.Errorf("token ID %s is owned by %s, not %s", id, current.Hex(), owner.Hex())
	}
	return nil
}
