// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package secp256k1_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/juztamau5/rollups-examples/crypto/secp256k1"
)

const testMnemonic = "test test test test test test test test test test test junk"

type KeypairTestSuite struct {
	suite.Suite
}

func TestRunKeypairTestSuite(t *testing.T) {
	suite.Run(t, new(KeypairTestSuite))
}

func (s *KeypairTestSuite) Test_FromMnemonic_FirstAccount() {
	kp, err := secp256k1.NewKeypairFromMnemonic(testMnemonic, 0)

	s.Nil(err)
	s.Equal("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", kp.Address())
}

func (s *KeypairTestSuite) Test_FromMnemonic_SecondAccount() {
	kp, err := secp256k1.NewKeypairFromMnemonic(testMnemonic, 1)

	s.Nil(err)
	s.Equal("0x70997970C51812dc3A010C7d01b50e0d17dc79C8", kp.CommonAddress().Hex())
}

func (s *KeypairTestSuite) Test_FromMnemonic_Invalid() {
	_, err := secp256k1.NewKeypairFromMnemonic("not a mnemonic", 0)

	s.NotNil(err)
}

func (s *KeypairTestSuite) Test_FromString_MatchesMnemonic() {
	kp, err := secp256k1.NewKeypairFromString("0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")

	s.Nil(err)
	s.Equal("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", kp.Address())
}

func (s *KeypairTestSuite) Test_FromString_Invalid() {
	_, err := secp256k1.NewKeypairFromString("0xinvalid")

	s.NotNil(err)
}

func (s *KeypairTestSuite) Test_EncodeRoundTrip() {
	kp, err := secp256k1.NewKeypairFromMnemonic(testMnemonic, 0)
	s.Nil(err)

	decoded, err := secp256k1.NewKeypairFromPrivateKey(kp.Encode())

	s.Nil(err)
	s.Equal(kp.Address(), decoded.Address())
	s.Equal(kp.PublicKey(), decoded.PublicKey())
}
