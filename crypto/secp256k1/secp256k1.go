// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package secp256k1

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	hdwallet "github.com/ethereum-optimism/go-ethereum-hdwallet"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// DerivationPathFormat is the BIP-44 path used for Ethereum accounts
const DerivationPathFormat = "m/44'/60'/0'/0/%d"

type Keypair struct {
	public  *ecdsa.PublicKey
	private *ecdsa.PrivateKey
}

func NewKeypairFromPrivateKey(priv []byte) (*Keypair, error) {
	pk, err := crypto.ToECDSA(priv)
	if err != nil {
		return nil, err
	}

	return &Keypair{
		public:  pk.Public().(*ecdsa.PublicKey),
		private: pk,
	}, nil
}

// NewKeypairFromString parses a hex encoded private key, with or without 0x prefix
func NewKeypairFromString(priv string) (*Keypair, error) {
	pk, err := crypto.HexToECDSA(strings.TrimPrefix(priv, "0x"))
	if err != nil {
		return nil, err
	}

	return &Keypair{
		public:  pk.Public().(*ecdsa.PublicKey),
		private: pk,
	}, nil
}

// NewKeypairFromMnemonic derives the account at the given index of the mnemonic's HD wallet
func NewKeypairFromMnemonic(mnemonic string, index uint32) (*Keypair, error) {
	w, err := hdwallet.NewFromMnemonic(strings.TrimSpace(mnemonic))
	if err != nil {
		return nil, fmt.Errorf("invalid mnemonic: %w", err)
	}

	path, err := hdwallet.ParseDerivationPath(fmt.Sprintf(DerivationPathFormat, index))
	if err != nil {
		return nil, err
	}
	account, err := w.Derive(path, false)
	if err != nil {
		return nil, fmt.Errorf("failed to derive account %d: %w", index, err)
	}
	pk, err := w.PrivateKey(account)
	if err != nil {
		return nil, err
	}

	return &Keypair{
		public:  pk.Public().(*ecdsa.PublicKey),
		private: pk,
	}, nil
}

// Encode dumps the private key as bytes
func (kp *Keypair) Encode() []byte {
	return crypto.FromECDSA(kp.private)
}

// PrivateKey returns the keypair's private key
func (kp *Keypair) PrivateKey() *ecdsa.PrivateKey {
	return kp.private
}

// PublicKey returns the public key hex encoded
func (kp *Keypair) PublicKey() string {
	return hexutil.Encode(crypto.CompressPubkey(kp.public))
}

// Address returns the Ethereum address format
func (kp *Keypair) Address() string {
	return crypto.PubkeyToAddress(*kp.public).String()
}

// CommonAddress returns the Ethereum address in the common.Address Format
func (kp *Keypair) CommonAddress() common.Address {
	return crypto.PubkeyToAddress(*kp.public)
}
