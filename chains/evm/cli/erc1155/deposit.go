// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package erc1155

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/juztamau5/rollups-examples/chains/evm/calls/contracts/erc1155"
	"github.com/juztamau5/rollups-examples/chains/evm/calls/contracts/portal"
	"github.com/juztamau5/rollups-examples/chains/evm/calls/events"
	"github.com/juztamau5/rollups-examples/chains/evm/calls/evmclient"
	"github.com/juztamau5/rollups-examples/chains/evm/calls/evmtransaction"
	"github.com/juztamau5/rollups-examples/chains/evm/cli/flags"
	"github.com/juztamau5/rollups-examples/chains/evm/cli/initialize"
	"github.com/juztamau5/rollups-examples/chains/evm/cli/logger"
	"github.com/juztamau5/rollups-examples/chains/evm/cli/rollups"
	"github.com/juztamau5/rollups-examples/chains/evm/cli/util"
	"github.com/juztamau5/rollups-examples/chains/evm/deposit"
)

var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "Deposit ERC-1155 tokens in DApp",
	Long:  "The deposit subcommand approves the DApp portal and deposits ERC-1155 tokens, reporting the input the deposit was recorded as",
	PreRun: func(cmd *cobra.Command, args []string) {
		logger.LoggerMetadata(cmd.Name(), cmd.Flags())
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return util.CallPersistentPreRun(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := flags.GlobalFlagValues(cmd)
		if err != nil {
			return err
		}
		rollupsValues, err := flags.RollupsFlagValues(cmd)
		if err != nil {
			return err
		}
		err = rollups.ValidateRollupsFlags(rollupsValues)
		if err != nil {
			return err
		}

		c, err := initialize.InitializeClient(values)
		if err != nil {
			return err
		}
		defer c.Close()

		return DepositCmd(cmd, args, c, values, rollupsValues)
	},
	Args: func(cmd *cobra.Command, args []string) error {
		err := ValidateDepositFlags(cmd, args)
		if err != nil {
			return err
		}

		err = ProcessDepositFlags(cmd, args)
		return err
	},
}

func BindDepositFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&Erc1155Address, "erc1155", "", "ERC-1155 contract address")
	cmd.Flags().StringVar(&Id, "id", "", "Token ID of ERC-1155 token to deposit")
	cmd.Flags().StringVar(&Amount, "amount", "", "Amount of ERC-1155 tokens to deposit")
	cmd.Flags().StringVar(&Data, "data", "0x", "Hex encoded data passed along with the deposit")
	flags.MarkFlagsAsRequired(cmd, "erc1155", "id", "amount")
}

func init() {
	BindDepositFlags(depositCmd)
}

func ValidateDepositFlags(cmd *cobra.Command, args []string) error {
	if !common.IsHexAddress(Erc1155Address) {
		return fmt.Errorf("invalid ERC-1155 address %s", Erc1155Address)
	}
	address, err := cmd.Flags().GetString(flags.AddressFlagName)
	if err != nil {
		return err
	}
	return rollups.ValidateRollupsFlags(&flags.RollupsFlags{Address: address})
}

func ProcessDepositFlags(cmd *cobra.Command, args []string) error {
	var err error
	Erc1155Addr = common.HexToAddress(Erc1155Address)

	TokenId, err = flags.ProcessUint256(Id)
	if err != nil {
		return fmt.Errorf("invalid token id: %w", err)
	}
	TokenAmount, err = flags.ProcessUint256(Amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	DepositData, err = flags.ProcessData(Data)
	return err
}

func DepositCmd(cmd *cobra.Command, args []string, c *evmclient.EVMClient, values *flags.GlobalFlags, rollupsValues *flags.RollupsFlags) error {
	chainID, err := c.ChainID(context.TODO())
	if err != nil {
		return fmt.Errorf("failed fetching chain id: %w", err)
	}
	log.Info().Msgf("connected to chain %s", chainID)

	dappAddress, err := rollups.ResolveDAppAddress(chainID.Uint64(), initialize.Networks(), rollupsValues)
	if err != nil {
		return err
	}
	log.Debug().Msgf("using DApp at address %q", dappAddress.Hex())

	t := initialize.InitializeTransactor(values, evmtransaction.NewTransaction, c)
	opts := initialize.TransactOptions(values, chainID)
	tokenContract := erc1155.NewErc1155Contract(c, Erc1155Addr, t)
	portalContract := portal.NewPortalContract(c, dappAddress, t)

	log.Info().Msgf("using ERC-1155 token contract at address %q", Erc1155Addr.Hex())
	log.Info().Msgf("using account %q", c.From().Hex())

	err = deposit.CheckERC1155Balance(tokenContract, c.From(), TokenId, TokenAmount)
	if err != nil {
		return err
	}

	executor := deposit.NewExecutor(c, events.NewInputDecoder(), values.Timeout, values.Prepare)
	err = executor.EnsureApproval(tokenContract, c.From(), dappAddress, opts)
	if err != nil {
		return err
	}

	log.Info().Msgf("depositing %s of token ID %s...", TokenAmount, TokenId)
	keys, err := executor.Execute(func() (*common.Hash, error) {
		return portalContract.Erc1155Deposit(Erc1155Addr, TokenId, TokenAmount, DepositData, opts)
	})
	if err != nil {
		return err
	}
	if keys == nil {
		return nil
	}

	log.Info().Msgf("deposit successfully executed as input %d of epoch %d", keys.InputIndex, keys.EpochIndex)
	return nil
}
