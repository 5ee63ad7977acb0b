// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package signAndSend

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	mock_calls "github.com/juztamau5/rollups-examples/chains/evm/calls/mock"
	"github.com/juztamau5/rollups-examples/chains/evm/calls/transactor"
	mock_transactor "github.com/juztamau5/rollups-examples/chains/evm/calls/transactor/mock"
	"github.com/stretchr/testify/suite"
)

type SignAndSendTestSuite struct {
	suite.Suite
	clientMock    *mock_calls.MockClientDispatcher
	gasPricerMock *mock_transactor.MockGasPricer
	from          common.Address
	to            common.Address
	built         []*types.Transaction
	transactor    transactor.Transactor
}

func TestRunSignAndSendTestSuite(t *testing.T) {
	suite.Run(t, new(SignAndSendTestSuite))
}

func (s *SignAndSendTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.clientMock = mock_calls.NewMockClientDispatcher(ctrl)
	s.gasPricerMock = mock_transactor.NewMockGasPricer(ctrl)
	s.from = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	s.to = common.HexToAddress("0x9A676e781A523b5d0C0e43731313A708CB607508")
	s.built = nil
	s.transactor = NewSignAndSendTransactor(s.fabric, s.gasPricerMock, s.clientMock)
	s.clientMock.EXPECT().From().Return(s.from).AnyTimes()
}

func (s *SignAndSendTestSuite) fabric(chainID *big.Int, nonce uint64, to *common.Address, amount *big.Int, gasLimit uint64, gasPrices []*big.Int, data []byte) (*types.Transaction, error) {
	tx := types.NewTx(&types.LegacyTx{Nonce: nonce, To: to, Value: amount, Gas: gasLimit, GasPrice: gasPrices[0], Data: data})
	s.built = append(s.built, tx)
	return tx, nil
}

func (s *SignAndSendTestSuite) TestTransact_FetchesMissingOptions() {
	s.clientMock.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(31337), nil)
	s.clientMock.EXPECT().PendingNonceAt(gomock.Any(), s.from).Return(uint64(4), nil)
	s.clientMock.EXPECT().EstimateGas(gomock.Any(), ethereum.CallMsg{
		From:  s.from,
		To:    &s.to,
		Value: big.NewInt(0),
		Data:  []byte{0x01},
	}).Return(uint64(50000), nil)
	s.gasPricerMock.EXPECT().GasPrice().Return([]*big.Int{big.NewInt(3)}, nil)
	s.clientMock.EXPECT().SignTx(gomock.Any(), big.NewInt(31337)).DoAndReturn(func(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
		return tx, nil
	})
	s.clientMock.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(nil)

	h, err := s.transactor.Transact(&s.to, []byte{0x01}, transactor.TransactOptions{})

	s.Nil(err)
	s.Len(s.built, 1)
	s.Equal(s.built[0].Hash(), *h)
	s.Equal(uint64(4), s.built[0].Nonce())
	s.Equal(uint64(50000), s.built[0].Gas())
	s.Equal(0, s.built[0].GasPrice().Cmp(big.NewInt(3)))
}

func (s *SignAndSendTestSuite) TestTransact_UsesProvidedOptions() {
	s.clientMock.EXPECT().SignTx(gomock.Any(), big.NewInt(1)).DoAndReturn(func(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
		return tx, nil
	})
	s.clientMock.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.transactor.Transact(&s.to, nil, transactor.TransactOptions{
		GasLimit: 100000,
		GasPrice: big.NewInt(20),
		Nonce:    big.NewInt(9),
		ChainID:  big.NewInt(1),
	})

	s.Nil(err)
	s.Equal(uint64(9), s.built[0].Nonce())
	s.Equal(uint64(100000), s.built[0].Gas())
	s.Equal(0, s.built[0].GasPrice().Cmp(big.NewInt(20)))
}

func (s *SignAndSendTestSuite) TestTransact_EstimateGasFails() {
	s.clientMock.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(1), nil)
	s.clientMock.EXPECT().PendingNonceAt(gomock.Any(), s.from).Return(uint64(0), nil)
	s.clientMock.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(uint64(0), errors.New("execution reverted"))

	_, err := s.transactor.Transact(&s.to, nil, transactor.TransactOptions{})

	s.NotNil(err)
	s.Contains(err.Error(), "failed estimating gas")
	s.Len(s.built, 0)
}

func (s *SignAndSendTestSuite) TestTransact_SendFails() {
	s.clientMock.EXPECT().SignTx(gomock.Any(), gomock.Any()).DoAndReturn(func(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
		return tx, nil
	})
	s.clientMock.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(errors.New("nonce too low"))

	_, err := s.transactor.Transact(&s.to, nil, transactor.TransactOptions{
		GasLimit: 21000,
		GasPrice: big.NewInt(1),
		Nonce:    big.NewInt(0),
		ChainID:  big.NewInt(1),
	})

	s.NotNil(err)
	s.Contains(err.Error(), "failed sending transaction")
}
