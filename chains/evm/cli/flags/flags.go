// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package flags

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/juztamau5/rollups-examples/crypto/secp256k1"
)

const (
	ConfigFlagName   = "config"
	LogLevelFlagName = "log-level"

	RPCFlagName           = "rpc"
	MnemonicFlagName      = "mnemonic"
	AccountIndexFlagName  = "account-index"
	PrivateKeyFlagName    = "private-key"
	GasLimitFlagName      = "gas-limit"
	GasPriceFlagName      = "gas-price"
	MaxGasPriceFlagName   = "max-gas-price"
	GasMultiplierFlagName = "gas-multiplier"
	PrepareFlagName       = "prepare"
	TimeoutFlagName       = "timeout"

	AddressFlagName     = "address"
	AddressFileFlagName = "address-file"
	DAppFlagName        = "dapp"
	DeploymentsFlagName = "deployments"
)

var ErrNoSigner = errors.New("a mnemonic or private key is required to sign deposits")

// BindFlags adds the flags shared by every command to the root command
func BindFlags(rootCMD *cobra.Command) {
	rootCMD.PersistentFlags().String(ConfigFlagName, "", "Path to JSON, YAML or TOML configuration file, or \"env\" to read CRT_ prefixed environment variables")
	_ = viper.BindPFlag(ConfigFlagName, rootCMD.PersistentFlags().Lookup(ConfigFlagName))

	rootCMD.PersistentFlags().String(LogLevelFlagName, "info", "Log level (trace, debug, info, warn, error)")
	_ = viper.BindPFlag(LogLevelFlagName, rootCMD.PersistentFlags().Lookup(LogLevelFlagName))
}

// BindEVMCLIFlags adds node connection and transaction flags to a command group
func BindEVMCLIFlags(cli *cobra.Command) {
	cli.PersistentFlags().String(RPCFlagName, "http://localhost:8545", "JSON-RPC URL of the node")
	cli.PersistentFlags().String(MnemonicFlagName, "", "Wallet mnemonic, prompted for when omitted on a terminal")
	cli.PersistentFlags().Uint32(AccountIndexFlagName, 0, "Account index of the mnemonic")
	cli.PersistentFlags().String(PrivateKeyFlagName, "", "Hex encoded private key, used instead of the mnemonic")
	cli.PersistentFlags().Uint64(GasLimitFlagName, 0, "Gas limit of transactions, estimated by the node when 0")
	cli.PersistentFlags().String(GasPriceFlagName, "", "Gas price in wei, forces legacy transactions")
	cli.PersistentFlags().String(MaxGasPriceFlagName, "", "Upper limit of the fee per gas in wei")
	cli.PersistentFlags().Float64(GasMultiplierFlagName, 1, "Multiplier applied to the suggested gas price")
	cli.PersistentFlags().Bool(PrepareFlagName, false, "Print call data instead of sending transactions")
	cli.PersistentFlags().Duration(TimeoutFlagName, 5*time.Minute, "Time to wait for a transaction to be mined")
}

// BindRollupsFlags adds the flags locating the DApp contract
func BindRollupsFlags(cli *cobra.Command) {
	cli.PersistentFlags().String(AddressFlagName, "", "DApp contract address")
	cli.PersistentFlags().String(AddressFileFlagName, "", "File with the DApp contract address")
	cli.PersistentFlags().String(DAppFlagName, "dapp", "DApp deployment name")
	cli.PersistentFlags().String(DeploymentsFlagName, "./deployments", "Directory of network deployments")
}

type GlobalFlags struct {
	RPC           string
	Keypair       *secp256k1.Keypair
	GasLimit      uint64
	GasPrice      *big.Int
	MaxGasPrice   *big.Int
	GasMultiplier *big.Float
	Prepare       bool
	Timeout       time.Duration
}

type RollupsFlags struct {
	Address     string
	AddressFile string
	DApp        string
	Deployments string
}

// GlobalFlagValues reads connection flags of the executed command. Values not
// set on the command line fall back to the environment and the configuration.
func GlobalFlagValues(cmd *cobra.Command) (*GlobalFlags, error) {
	err := viper.BindPFlags(cmd.Flags())
	if err != nil {
		return nil, err
	}

	gasPrice, err := ProcessWei(viper.GetString(GasPriceFlagName))
	if err != nil {
		return nil, fmt.Errorf("invalid gas price: %w", err)
	}
	maxGasPrice, err := ProcessWei(viper.GetString(MaxGasPriceFlagName))
	if err != nil {
		return nil, fmt.Errorf("invalid max gas price: %w", err)
	}
	multiplier := viper.GetFloat64(GasMultiplierFlagName)
	if multiplier <= 0 {
		return nil, fmt.Errorf("gas multiplier must be positive")
	}
	timeout := viper.GetDuration(TimeoutFlagName)
	if timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive")
	}

	kp, err := ProcessKeypair(
		viper.GetString(PrivateKeyFlagName),
		viper.GetString(MnemonicFlagName),
		viper.GetUint32(AccountIndexFlagName),
		PromptMnemonic,
	)
	if err != nil {
		return nil, err
	}

	return &GlobalFlags{
		RPC:           viper.GetString(RPCFlagName),
		Keypair:       kp,
		GasLimit:      viper.GetUint64(GasLimitFlagName),
		GasPrice:      gasPrice,
		MaxGasPrice:   maxGasPrice,
		GasMultiplier: big.NewFloat(multiplier),
		Prepare:       viper.GetBool(PrepareFlagName),
		Timeout:       timeout,
	}, nil
}

func RollupsFlagValues(cmd *cobra.Command) (*RollupsFlags, error) {
	err := viper.BindPFlags(cmd.Flags())
	if err != nil {
		return nil, err
	}
	return &RollupsFlags{
		Address:     viper.GetString(AddressFlagName),
		AddressFile: viper.GetString(AddressFileFlagName),
		DApp:        viper.GetString(DAppFlagName),
		Deployments: viper.GetString(DeploymentsFlagName),
	}, nil
}

// ProcessKeypair builds the signing keypair. A private key wins over a
// mnemonic; with neither, prompt is asked for the mnemonic.
func ProcessKeypair(privateKey string, mnemonic string, index uint32, prompt func() (string, error)) (*secp256k1.Keypair, error) {
	if privateKey != "" {
		kp, err := secp256k1.NewKeypairFromString(privateKey)
		if err != nil {
			return nil, fmt.Errorf("invalid private key: %w", err)
		}
		return kp, nil
	}

	if mnemonic == "" && prompt != nil {
		var err error
		mnemonic, err = prompt()
		if err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(mnemonic) == "" {
		return nil, ErrNoSigner
	}
	return secp256k1.NewKeypairFromMnemonic(mnemonic, index)
}

// PromptMnemonic reads the mnemonic from the terminal without echo
func PromptMnemonic() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNoSigner
	}

	fmt.Fprint(os.Stderr, "Mnemonic: ")
	mnemonic, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed reading mnemonic: %w", err)
	}
	return string(mnemonic), nil
}

// ProcessWei parses a decimal or 0x prefixed amount of wei. An empty
// string yields nil.
func ProcessWei(value string) (*big.Int, error) {
	if value == "" {
		return nil, nil
	}
	return ProcessUint256(value)
}

// ProcessUint256 parses a non-negative decimal or 0x prefixed integer that fits in 256 bits
func ProcessUint256(value string) (*big.Int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("empty integer value")
	}
	n, ok := math.ParseBig256(value)
	if !ok {
		return nil, fmt.Errorf("invalid integer value %q", value)
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("negative integer value %q", value)
	}
	return n, nil
}

// ProcessData decodes 0x prefixed hex call data. An empty string yields empty data.
func ProcessData(value string) ([]byte, error) {
	if value == "" || value == "0x" {
		return []byte{}, nil
	}
	data, err := hexutil.Decode(value)
	if err != nil {
		return nil, fmt.Errorf("invalid data %q: %w", value, err)
	}
	return data, nil
}

func MarkFlagsAsRequired(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		err := cmd.MarkFlagRequired(flag)
		if err != nil {
			panic(err)
		}
	}
}
