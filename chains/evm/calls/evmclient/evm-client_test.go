// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evmclient

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/suite"

	"github.com/juztamau5/rollups-examples/crypto/secp256k1"
)

var txHash = common.HexToHash("0xf25ed4a14bf7ad20354b46fe38d7d4525f2ea3042db9a9954ef8d73c558b500c")

type rpcRequest struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
}

type EvmClientTestSuite struct {
	suite.Suite
	server        *httptest.Server
	receiptCalls  int32
	minedAfter    int32
	receiptResult []byte
	client        *EVMClient
}

func TestRunEvmClientTestSuite(t *testing.T) {
	suite.Run(t, new(EvmClientTestSuite))
}

func (s *EvmClientTestSuite) SetupTest() {
	atomic.StoreInt32(&s.receiptCalls, 0)
	atomic.StoreInt32(&s.minedAfter, 2)

	receipt := &types.Receipt{
		Status:            types.ReceiptStatusSuccessful,
		CumulativeGasUsed: 21000,
		GasUsed:           21000,
		TxHash:            txHash,
		BlockNumber:       big.NewInt(10),
		Logs:              []*types.Log{},
	}
	var err error
	s.receiptResult, err = json.Marshal(receipt)
	s.Nil(err)

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		result := json.RawMessage("null")
		if req.Method == "eth_getTransactionReceipt" {
			if atomic.AddInt32(&s.receiptCalls, 1) > atomic.LoadInt32(&s.minedAfter) {
				result = s.receiptResult
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  result,
		})
	}))

	kp, err := secp256k1.NewKeypairFromString("ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	s.Nil(err)
	s.client, err = NewEVMClient(s.server.URL, kp)
	s.Nil(err)
	s.client.receiptPollInterval = time.Millisecond
}

func (s *EvmClientTestSuite) TearDownTest() {
	s.client.Close()
	s.server.Close()
}

func (s *EvmClientTestSuite) Test_From() {
	s.Equal(common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), s.client.From())
}

func (s *EvmClientTestSuite) Test_WaitAndReturnTxReceipt_PollsUntilMined() {
	receipt, err := s.client.WaitAndReturnTxReceipt(context.Background(), txHash)

	s.Nil(err)
	s.Equal(txHash, receipt.TxHash)
	s.Equal(types.ReceiptStatusSuccessful, receipt.Status)
	s.Equal(int32(3), atomic.LoadInt32(&s.receiptCalls))
}

func (s *EvmClientTestSuite) Test_WaitAndReturnTxReceipt_Timeout() {
	atomic.StoreInt32(&s.minedAfter, 1<<30)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := s.client.WaitAndReturnTxReceipt(ctx, txHash)

	s.NotNil(err)
	s.ErrorIs(err, context.DeadlineExceeded)
}

func (s *EvmClientTestSuite) Test_SignTx_WithoutKey() {
	c := &EVMClient{}
	tx := types.NewTransaction(0, common.Address{}, big.NewInt(0), 21000, big.NewInt(1), nil)

	_, err := c.SignTx(tx, big.NewInt(1))

	s.NotNil(err)
}

func (s *EvmClientTestSuite) Test_SignTx_RecoversSender() {
	tx := types.NewTransaction(0, common.Address{}, big.NewInt(0), 21000, big.NewInt(1), nil)

	signed, err := s.client.SignTx(tx, big.NewInt(31337))
	s.Nil(err)

	from, err := types.Sender(types.LatestSignerForChainID(big.NewInt(31337)), signed)
	s.Nil(err)
	s.Equal(s.client.From(), from)
}
