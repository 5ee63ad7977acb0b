// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evmclient

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/juztamau5/rollups-examples/crypto/secp256k1"
)

const DefaultReceiptPollInterval = time.Second

type EVMClient struct {
	*ethclient.Client
	rpClient            *rpc.Client
	kp                  *secp256k1.Keypair
	receiptPollInterval time.Duration
}

// NewEVMClient dials the node at url; transactions are signed with kp
func NewEVMClient(url string, kp *secp256k1.Keypair) (*EVMClient, error) {
	rpcClient, err := rpc.DialContext(context.TODO(), url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed connecting to %s", url)
	}

	return &EVMClient{
		Client:              ethclient.NewClient(rpcClient),
		rpClient:            rpcClient,
		kp:                  kp,
		receiptPollInterval: DefaultReceiptPollInterval,
	}, nil
}

func (c *EVMClient) From() common.Address {
	if c.kp == nil {
		return common.Address{}
	}
	return c.kp.CommonAddress()
}

func (c *EVMClient) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	if c.kp == nil {
		return nil, errors.New("no signing key configured")
	}
	return types.SignTx(tx, types.LatestSignerForChainID(chainID), c.kp.PrivateKey())
}

// WaitAndReturnTxReceipt polls the node until the transaction is mined or ctx is done
func (c *EVMClient) WaitAndReturnTxReceipt(ctx context.Context, h common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(c.receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.TransactionReceipt(ctx, h)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, errors.Wrapf(err, "failed fetching receipt of transaction %s", h.Hex())
		}
		log.Trace().Msgf("transaction %s not yet mined", h.Hex())

		select {
		case <-ctx.Done():
			return nil, errors.Wrapf(ctx.Err(), "transaction %s not mined", h.Hex())
		case <-ticker.C:
		}
	}
}
