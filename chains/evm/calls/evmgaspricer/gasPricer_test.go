// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evmgaspricer

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	mock_calls "github.com/juztamau5/rollups-examples/chains/evm/calls/mock"
	"github.com/stretchr/testify/suite"
)

type StaticGasPricerTestSuite struct {
	suite.Suite
	gasPriceClientMock *mock_calls.MockGasPriceClient
}

func TestRunStaticGasPricerTestSuite(t *testing.T) {
	suite.Run(t, new(StaticGasPricerTestSuite))
}

func (s *StaticGasPricerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.gasPriceClientMock = mock_calls.NewMockGasPriceClient(ctrl)
}

func (s *StaticGasPricerTestSuite) TestStaticGasPricer_SuggestedPrice() {
	s.gasPriceClientMock.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(10), nil)
	gasPricer := NewStaticGasPriceDeterminant(s.gasPriceClientMock, nil)

	res, err := gasPricer.GasPrice()

	s.Nil(err)
	s.Equal([]*big.Int{big.NewInt(10)}, res)
}

func (s *StaticGasPricerTestSuite) TestStaticGasPricer_Multiplied() {
	s.gasPriceClientMock.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(10), nil)
	gasPricer := NewStaticGasPriceDeterminant(s.gasPriceClientMock, &GasPricerOpts{GasPriceFactor: big.NewFloat(1.5)})

	res, err := gasPricer.GasPrice()

	s.Nil(err)
	s.Equal(0, res[0].Cmp(big.NewInt(15)))
}

func (s *StaticGasPricerTestSuite) TestStaticGasPricer_CappedByUpperLimit() {
	s.gasPriceClientMock.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(100), nil)
	gasPricer := NewStaticGasPriceDeterminant(s.gasPriceClientMock, &GasPricerOpts{UpperLimitFeePerGas: big.NewInt(50)})

	res, err := gasPricer.GasPrice()

	s.Nil(err)
	s.Equal(0, res[0].Cmp(big.NewInt(50)))
}

func (s *StaticGasPricerTestSuite) TestStaticGasPricer_ClientError() {
	s.gasPriceClientMock.EXPECT().SuggestGasPrice(gomock.Any()).Return(nil, errors.New("rpc down"))
	gasPricer := NewStaticGasPriceDeterminant(s.gasPriceClientMock, nil)

	_, err := gasPricer.GasPrice()

	s.NotNil(err)
}

type LondonGasPricerTestSuite struct {
	suite.Suite
	gasPriceClientMock *mock_calls.MockGasPriceClient
}

func TestRunLondonGasPricerTestSuite(t *testing.T) {
	suite.Run(t, new(LondonGasPricerTestSuite))
}

func (s *LondonGasPricerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.gasPriceClientMock = mock_calls.NewMockGasPriceClient(ctrl)
}

func (s *LondonGasPricerTestSuite) TestLondonGasPricer_NoBaseFeeFallsBackToStatic() {
	s.gasPriceClientMock.EXPECT().HeaderByNumber(gomock.Any(), gomock.Nil()).Return(&types.Header{}, nil)
	s.gasPriceClientMock.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(7), nil)
	gasPricer := NewLondonGasPriceClient(s.gasPriceClientMock, nil)

	res, err := gasPricer.GasPrice()

	s.Nil(err)
	s.Len(res, 1)
	s.Equal(0, res[0].Cmp(big.NewInt(7)))
}

func (s *LondonGasPricerTestSuite) TestLondonGasPricer_DynamicFee() {
	s.gasPriceClientMock.EXPECT().HeaderByNumber(gomock.Any(), gomock.Nil()).Return(&types.Header{BaseFee: big.NewInt(100)}, nil)
	s.gasPriceClientMock.EXPECT().SuggestGasTipCap(gomock.Any()).Return(big.NewInt(2), nil)
	gasPricer := NewLondonGasPriceClient(s.gasPriceClientMock, nil)

	res, err := gasPricer.GasPrice()

	s.Nil(err)
	s.Len(res, 2)
	s.Equal(0, res[0].Cmp(big.NewInt(2)))
	s.Equal(0, res[1].Cmp(big.NewInt(202)))
}

func (s *LondonGasPricerTestSuite) TestLondonGasPricer_TipClampedToCappedFee() {
	s.gasPriceClientMock.EXPECT().HeaderByNumber(gomock.Any(), gomock.Nil()).Return(&types.Header{BaseFee: big.NewInt(100)}, nil)
	s.gasPriceClientMock.EXPECT().SuggestGasTipCap(gomock.Any()).Return(big.NewInt(80), nil)
	gasPricer := NewLondonGasPriceClient(s.gasPriceClientMock, &GasPricerOpts{UpperLimitFeePerGas: big.NewInt(50)})

	res, err := gasPricer.GasPrice()

	s.Nil(err)
	s.Equal(0, res[0].Cmp(big.NewInt(50)))
	s.Equal(0, res[1].Cmp(big.NewInt(50)))
}

func (s *LondonGasPricerTestSuite) TestLondonGasPricer_HeaderError() {
	s.gasPriceClientMock.EXPECT().HeaderByNumber(gomock.Any(), gomock.Nil()).Return(nil, errors.New("rpc down"))
	gasPricer := NewLondonGasPriceClient(s.gasPriceClientMock, nil)

	_, err := gasPricer.GasPrice()

	s.NotNil(err)
}
