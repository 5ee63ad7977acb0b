// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"github.com/spf13/cobra"

	"github.com/juztamau5/rollups-examples/chains/evm/cli/erc1155"
	"github.com/juztamau5/rollups-examples/chains/evm/cli/erc721"
)

// BindCLI adds the token deposit commands to cli
func BindCLI(cli *cobra.Command) {
	cli.AddCommand(erc1155.ERC1155CLI, erc721.ERC721CLI)
}
