// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package deposit_test

import (
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/juztamau5/rollups-examples/chains/evm/calls/consts"
	"github.com/juztamau5/rollups-examples/chains/evm/calls/events"
	"github.com/juztamau5/rollups-examples/chains/evm/calls/transactor"
	"github.com/juztamau5/rollups-examples/chains/evm/deposit"
	mock_deposit "github.com/juztamau5/rollups-examples/chains/evm/deposit/mock"
)

var (
	owner    = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	dapp     = common.HexToAddress("0xa513E6E4b8f2a923D98304ec87F64353C4D5C853")
	txHash   = common.HexToHash("0x9d2a7b8c4e2f1f0b6e5d3c2a1b0f9e8d7c6b5a4938271605f4e3d2c1b0a99887")
	approval = common.HexToHash("0x01")
)

type ExecutorTestSuite struct {
	suite.Suite
	waiterMock   *mock_deposit.MockReceiptWaiter
	approvalMock *mock_deposit.MockApprovalContract
	executor     *deposit.Executor
	inputABI     abi.ABI
}

func TestRunExecutorTestSuite(t *testing.T) {
	suite.Run(t, new(ExecutorTestSuite))
}

func (s *ExecutorTestSuite) SetupSuite() {
	a, err := abi.JSON(strings.NewReader(consts.InputABI))
	s.Nil(err)
	s.inputABI = a
}

func (s *ExecutorTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.waiterMock = mock_deposit.NewMockReceiptWaiter(ctrl)
	s.approvalMock = mock_deposit.NewMockApprovalContract(ctrl)
	s.executor = deposit.NewExecutor(s.waiterMock, events.NewInputDecoder(), time.Second, false)
}

func (s *ExecutorTestSuite) inputAddedLog(epoch, input int64) *types.Log {
	data, err := s.inputABI.Events[events.InputAddedEvent].Inputs.NonIndexed().Pack(
		owner, big.NewInt(1660000000), []byte{},
	)
	s.Nil(err)
	return &types.Log{
		Address: dapp,
		TxHash:  txHash,
		Topics: []common.Hash{
			events.InputAddedSig.GetTopic(),
			common.BigToHash(big.NewInt(epoch)),
			common.BigToHash(big.NewInt(input)),
		},
		Data: data,
	}
}

func sendReturning(h common.Hash) deposit.SendFunc {
	return func() (*common.Hash, error) {
		return &h, nil
	}
}

func (s *ExecutorTestSuite) TestEnsureApproval_AlreadyApproved() {
	s.approvalMock.EXPECT().IsApprovedForAll(owner, dapp).Return(true, nil)

	err := s.executor.EnsureApproval(s.approvalMock, owner, dapp, transactor.TransactOptions{})

	s.Nil(err)
}

func (s *ExecutorTestSuite) TestEnsureApproval_ApprovesAndWaits() {
	s.approvalMock.EXPECT().IsApprovedForAll(owner, dapp).Return(false, nil)
	s.approvalMock.EXPECT().SetApprovalForAll(dapp, true, transactor.TransactOptions{}).Return(&approval, nil)
	s.waiterMock.EXPECT().WaitAndReturnTxReceipt(gomock.Any(), approval).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

	err := s.executor.EnsureApproval(s.approvalMock, owner, dapp, transactor.TransactOptions{})

	s.Nil(err)
}

func (s *ExecutorTestSuite) TestEnsureApproval_ApprovalReverted() {
	s.approvalMock.EXPECT().IsApprovedForAll(owner, dapp).Return(false, nil)
	s.approvalMock.EXPECT().SetApprovalForAll(dapp, true, gomock.Any()).Return(&approval, nil)
	s.waiterMock.EXPECT().WaitAndReturnTxReceipt(gomock.Any(), approval).Return(&types.Receipt{Status: types.ReceiptStatusFailed}, nil)

	err := s.executor.EnsureApproval(s.approvalMock, owner, dapp, transactor.TransactOptions{})

	s.NotNil(err)
	s.Contains(err.Error(), "reverted")
}

func (s *ExecutorTestSuite) TestEnsureApproval_CheckFails() {
	s.approvalMock.EXPECT().IsApprovedForAll(owner, dapp).Return(false, errors.New("no code at provided address"))

	err := s.executor.EnsureApproval(s.approvalMock, owner, dapp, transactor.TransactOptions{})

	s.NotNil(err)
}

func (s *ExecutorTestSuite) TestExecute_ReturnsInputKeys() {
	s.waiterMock.EXPECT().WaitAndReturnTxReceipt(gomock.Any(), txHash).Return(&types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		TxHash: txHash,
		Logs:   []*types.Log{{Address: owner, Topics: []common.Hash{common.HexToHash("0xff")}}, s.inputAddedLog(2, 11)},
	}, nil)

	keys, err := s.executor.Execute(sendReturning(txHash))

	s.Nil(err)
	s.Equal(&events.InputKeys{EpochIndex: 2, InputIndex: 11}, keys)
}

func (s *ExecutorTestSuite) TestExecute_Reverted() {
	s.waiterMock.EXPECT().WaitAndReturnTxReceipt(gomock.Any(), txHash).Return(&types.Receipt{Status: types.ReceiptStatusFailed, TxHash: txHash}, nil)

	_, err := s.executor.Execute(sendReturning(txHash))

	s.NotNil(err)
	s.Equal("transaction "+txHash.Hex()+" reverted", err.Error())
}

func (s *ExecutorTestSuite) TestExecute_NoInputAdded() {
	s.waiterMock.EXPECT().WaitAndReturnTxReceipt(gomock.Any(), txHash).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: txHash}, nil)

	_, err := s.executor.Execute(sendReturning(txHash))

	var notFound *events.NotFoundError
	s.True(errors.As(err, &notFound))
	s.Equal(txHash, notFound.TxHash)
}

func (s *ExecutorTestSuite) TestExecute_SendFails() {
	_, err := s.executor.Execute(func() (*common.Hash, error) {
		return nil, errors.New("insufficient funds")
	})

	s.NotNil(err)
}

func (s *ExecutorTestSuite) TestExecute_WaitFails() {
	s.waiterMock.EXPECT().WaitAndReturnTxReceipt(gomock.Any(), txHash).Return(nil, errors.New("context deadline exceeded"))

	_, err := s.executor.Execute(sendReturning(txHash))

	s.NotNil(err)
}

func (s *ExecutorTestSuite) TestPrepare_SkipsChecksAndWaits() {
	executor := deposit.NewExecutor(s.waiterMock, events.NewInputDecoder(), time.Second, true)
	s.approvalMock.EXPECT().SetApprovalForAll(dapp, true, gomock.Any()).Return(&common.Hash{}, nil)

	err := executor.EnsureApproval(s.approvalMock, owner, dapp, transactor.TransactOptions{})
	s.Nil(err)

	keys, err := executor.Execute(sendReturning(common.Hash{}))
	s.Nil(err)
	s.Nil(keys)
}

type PreCheckTestSuite struct {
	suite.Suite
	balanceMock *mock_deposit.MockBalanceContract
	ownerMock   *mock_deposit.MockOwnerContract
}

func TestRunPreCheckTestSuite(t *testing.T) {
	suite.Run(t, new(PreCheckTestSuite))
}

func (s *PreCheckTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.balanceMock = mock_deposit.NewMockBalanceContract(ctrl)
	s.ownerMock = mock_deposit.NewMockOwnerContract(ctrl)
}

func (s *PreCheckTestSuite) TestERC1155Balance_Sufficient() {
	s.balanceMock.EXPECT().BalanceOf(owner, big.NewInt(1)).Return(big.NewInt(10), nil)

	s.Nil(deposit.CheckERC1155Balance(s.balanceMock, owner, big.NewInt(1), big.NewInt(10)))
}

func (s *PreCheckTestSuite) TestERC1155Balance_Insufficient() {
	s.balanceMock.EXPECT().BalanceOf(owner, big.NewInt(1)).Return(big.NewInt(9), nil)

	err := deposit.CheckERC1155Balance(s.balanceMock, owner, big.NewInt(1), big.NewInt(10))

	s.NotNil(err)
	s.Contains(err.Error(), "insufficient balance")
}

func (s *PreCheckTestSuite) TestERC721Owner_Matches() {
	s.ownerMock.EXPECT().OwnerOf(big.NewInt(3)).Return(owner, nil)

	s.Nil(deposit.CheckERC721Owner(s.ownerMock, owner, big.NewInt(3)))
}

func (s *PreCheckTestSuite) TestERC721Owner_Differs() {
	s.ownerMock.EXPECT().OwnerOf(big.NewInt(3)).Return(dapp, nil)

	err := deposit.CheckERC721Owner(s.ownerMock, owner, big.NewInt(3))

	s.NotNil(err)
}
