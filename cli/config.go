// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/juztamau5/rollups-examples/chains/evm/cli/flags"
	"github.com/juztamau5/rollups-examples/chains/evm/cli/initialize"
	"github.com/juztamau5/rollups-examples/config"
	"github.com/juztamau5/rollups-examples/logger"
)

const envConfig = "env"

// loadConfig reads the configuration selected by the config flag, sets up
// logging and makes configured values the defaults of the matching flags
func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := readConfig(viper.GetString(flags.ConfigFlagName))
	if err != nil {
		return fmt.Errorf("failed loading configuration: %w", err)
	}

	viper.SetDefault(flags.LogLevelFlagName, cfg.ConsoleConfig.LogLevel.String())
	lvl, err := zerolog.ParseLevel(viper.GetString(flags.LogLevelFlagName))
	if err != nil {
		return fmt.Errorf("unknown log level: %s", viper.GetString(flags.LogLevelFlagName))
	}
	logger.ConfigureLogger(lvl, os.Stdout)

	viper.SetDefault(flags.RPCFlagName, cfg.ConsoleConfig.RPC)
	viper.SetDefault(flags.DAppFlagName, cfg.ConsoleConfig.DApp)
	viper.SetDefault(flags.DeploymentsFlagName, cfg.ConsoleConfig.Deployments)
	viper.SetDefault(flags.TimeoutFlagName, cfg.ConsoleConfig.Timeout)

	return initialize.SetConfig(cfg)
}

func readConfig(path string) (*config.Config, error) {
	switch path {
	case "":
		return config.GetDefaultConfig()
	case envConfig:
		return config.GetConfigFromENV()
	default:
		return config.GetConfigFromFile(path)
	}
}
