// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package erc1155

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/juztamau5/rollups-examples/chains/evm/calls/consts"
	mock_calls "github.com/juztamau5/rollups-examples/chains/evm/calls/mock"
	"github.com/juztamau5/rollups-examples/chains/evm/calls/transactor"
	mock_transactor "github.com/juztamau5/rollups-examples/chains/evm/calls/transactor/mock"
	"github.com/stretchr/testify/suite"
)

type ERC1155ContractTestSuite struct {
	suite.Suite
	clientMock     *mock_calls.MockContractCallerDispatcher
	transactorMock *mock_transactor.MockTransactor
	abi            abi.ABI
	tokenAddress   common.Address
	owner          common.Address
	operator       common.Address
	contract       *ERC1155Contract
}

func TestRunERC1155ContractTestSuite(t *testing.T) {
	suite.Run(t, new(ERC1155ContractTestSuite))
}

func (s *ERC1155ContractTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.clientMock = mock_calls.NewMockContractCallerDispatcher(ctrl)
	s.transactorMock = mock_transactor.NewMockTransactor(ctrl)
	s.abi, _ = abi.JSON(strings.NewReader(consts.ERC1155ABI))
	s.tokenAddress = common.HexToAddress("0x2279B7A0a67DB372996a5FaB50D91eAA73d2eBe6")
	s.owner = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	s.operator = common.HexToAddress("0x9A676e781A523b5d0C0e43731313A708CB607508")
	s.contract = NewErc1155Contract(s.clientMock, s.tokenAddress, s.transactorMock)
	s.clientMock.EXPECT().From().Return(s.owner).AnyTimes()
}

func (s *ERC1155ContractTestSuite) TestIsApprovedForAll() {
	output, _ := s.abi.Methods["isApprovedForAll"].Outputs.Pack(true)
	s.clientMock.EXPECT().CallContract(gomock.Any(), gomock.Any(), nil).Return(output, nil)

	approved, err := s.contract.IsApprovedForAll(s.owner, s.operator)

	s.Nil(err)
	s.True(approved)
}

func (s *ERC1155ContractTestSuite) TestSetApprovalForAll() {
	expected, _ := s.abi.Pack("setApprovalForAll", s.operator, true)
	h := common.HexToHash("0xabc")
	s.transactorMock.EXPECT().Transact(&s.tokenAddress, expected, transactor.TransactOptions{}).Return(&h, nil)

	res, err := s.contract.SetApprovalForAll(s.operator, true, transactor.TransactOptions{})

	s.Nil(err)
	s.Equal(&h, res)
}

func (s *ERC1155ContractTestSuite) TestBalanceOf() {
	output, _ := s.abi.Methods["balanceOf"].Outputs.Pack(big.NewInt(100))
	s.clientMock.EXPECT().CallContract(gomock.Any(), gomock.Any(), nil).Return(output, nil)

	balance, err := s.contract.BalanceOf(s.owner, big.NewInt(1))

	s.Nil(err)
	s.Equal(0, balance.Cmp(big.NewInt(100)))
}
