// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package erc1155

import (
	"github.com/spf13/cobra"

	"github.com/juztamau5/rollups-examples/chains/evm/cli/flags"
	"github.com/juztamau5/rollups-examples/chains/evm/cli/logger"
)

var ERC1155CLI = &cobra.Command{
	Use:   "erc1155",
	Short: "ERC-1155 related commands",
	Long:  "ERC-1155 related commands",
	PreRun: func(cmd *cobra.Command, args []string) {
		logger.LoggerMetadata(cmd.Name(), cmd.Flags())
	},
	// empty Run function to enable cobra PreRun - without this PreRun is never executed
	Run: func(cmd *cobra.Command, args []string) {},
}

func init() {
	flags.BindEVMCLIFlags(ERC1155CLI)
	flags.BindRollupsFlags(ERC1155CLI)
	ERC1155CLI.AddCommand(depositCmd)
}
