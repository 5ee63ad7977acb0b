// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package erc721

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"
)

type DepositFlagsTestSuite struct {
	suite.Suite
}

func TestRunDepositFlagsTestSuite(t *testing.T) {
	suite.Run(t, new(DepositFlagsTestSuite))
}

func (s *DepositFlagsTestSuite) SetupTest() {
	Erc721Address = ""
	Id = ""
	Data = "0x"
	_ = depositCmd.Flags().Set("address", "")
}

func (s *DepositFlagsTestSuite) parseAndRunArgs(args ...string) error {
	err := depositCmd.ParseFlags(args)
	s.Nil(err)
	return depositCmd.Args(depositCmd, []string{})
}

func (s *DepositFlagsTestSuite) TestTokenAddressIsOptional() {
	err := s.parseAndRunArgs("--id", "7")

	s.Nil(err)
	s.Equal(0, TokenId.Cmp(big.NewInt(7)))
	s.Equal([]byte{}, DepositData)
}

func (s *DepositFlagsTestSuite) TestValidTokenAddress() {
	err := s.parseAndRunArgs("--erc721", "0x5FbDB2315678afecb367f032d93F642f64180aa3", "--id", "0x07", "--data", "0x01")

	s.Nil(err)
	s.Equal(0, TokenId.Cmp(big.NewInt(7)))
	s.Equal([]byte{0x01}, DepositData)
}

func (s *DepositFlagsTestSuite) TestInvalidTokenAddress() {
	err := s.parseAndRunArgs("--erc721", "CartesiToken", "--id", "7")

	s.NotNil(err)
}

func (s *DepositFlagsTestSuite) TestInvalidId() {
	err := s.parseAndRunArgs("--id", "7.5")

	s.NotNil(err)
}
