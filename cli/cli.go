// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	evmCLI "github.com/juztamau5/rollups-examples/chains/evm/cli"
	"github.com/juztamau5/rollups-examples/chains/evm/cli/flags"
	"github.com/juztamau5/rollups-examples/config"
)

var (
	rootCMD = &cobra.Command{
		Use:               "rollups-console",
		Short:             "Rollups DApp console",
		Long:              "Command line console for depositing tokens in rollups DApps",
		PersistentPreRunE: loadConfig,
		SilenceUsage:      true,
	}
)

func init() {
	flags.BindFlags(rootCMD)

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func Execute() {
	evmCLI.BindCLI(rootCMD)
	if err := rootCMD.Execute(); err != nil {
		log.Fatal().Err(err).Msg("failed to execute root cmd")
	}
}
