// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: BUSL-1.1

package console

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type ConsoleConfig struct {
	LogLevel         zerolog.Level
	RPC              string
	Deployments      string
	DApp             string
	ERC721Deployment string
	Timeout          time.Duration
}

type RawConsoleConfig struct {
	LogLevel         string `mapstructure:"LogLevel" json:"logLevel" default:"info"`
	RPC              string `mapstructure:"RPC" json:"rpc" default:"http://localhost:8545"`
	Deployments      string `mapstructure:"Deployments" json:"deployments" default:"./deployments"`
	DApp             string `mapstructure:"DApp" json:"dapp" default:"dapp"`
	ERC721Deployment string `mapstructure:"ERC721Deployment" json:"erc721Deployment" default:"CartesiToken"`
	Timeout          string `mapstructure:"Timeout" json:"timeout" default:"5m"`
}

func (c *RawConsoleConfig) Validate() error {
	if c.RPC == "" {
		return fmt.Errorf("required field console.RPC empty")
	}
	if c.DApp == "" {
		return fmt.Errorf("required field console.DApp empty")
	}
	return nil
}

// NewConsoleConfig parses RawConsoleConfig into ConsoleConfig
func NewConsoleConfig(rawConfig RawConsoleConfig) (ConsoleConfig, error) {
	config := ConsoleConfig{}
	err := rawConfig.Validate()
	if err != nil {
		return config, err
	}

	logLevel, err := zerolog.ParseLevel(rawConfig.LogLevel)
	if err != nil {
		return config, fmt.Errorf("unknown log level: %s", rawConfig.LogLevel)
	}
	config.LogLevel = logLevel

	timeout, err := time.ParseDuration(rawConfig.Timeout)
	if err != nil {
		return config, fmt.Errorf("unable to parse timeout: %w", err)
	}
	if timeout <= 0 {
		return config, fmt.Errorf("timeout must be positive")
	}
	config.Timeout = timeout

	config.RPC = rawConfig.RPC
	config.Deployments = rawConfig.Deployments
	config.DApp = rawConfig.DApp
	config.ERC721Deployment = rawConfig.ERC721Deployment
	return config, nil
}
