// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/spf13/viper"

	"github.com/juztamau5/rollups-examples/config/console"
)

type Config struct {
	ConsoleConfig  console.ConsoleConfig
	NetworkConfigs []map[string]interface{}
}

type RawConfig struct {
	ConsoleConfig  console.RawConsoleConfig `mapstructure:"console" json:"console"`
	NetworkConfigs []map[string]interface{} `mapstructure:"networks" json:"networks"`
}

// GetConfigFromENV reads config from Env variables, validates it and parses
// it into config suitable for application
//
// Properties of ConsoleConfig are expected to be defined as separate Env variables
// where Env variable name reflects properties position in structure. Each Env variable needs to be prefixed with CRT.
//
// For example, if you want to set Config.ConsoleConfig.LogLevel this would
// translate to Env variable named CRT_CONSOLE_LOGLEVEL.
// Networks are JSON objects in CRT_NET_1, CRT_NET_2 and so on.
func GetConfigFromENV() (*Config, error) {
	rawConfig, err := loadFromEnv()
	if err != nil {
		return nil, err
	}

	return processRawConfig(rawConfig)
}

// GetConfigFromFile reads config from a JSON, YAML or TOML file, validates it
// and parses it into config suitable for application
func GetConfigFromFile(path string) (*Config, error) {
	rawConfig := RawConfig{}

	v := viper.New()
	v.SetConfigFile(path)

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&rawConfig)
	if err != nil {
		return nil, err
	}

	return processRawConfig(rawConfig)
}

// GetDefaultConfig returns the configuration used when none is provided
func GetDefaultConfig() (*Config, error) {
	return processRawConfig(RawConfig{})
}

func processRawConfig(rawConfig RawConfig) (*Config, error) {
	if err := defaults.Set(&rawConfig); err != nil {
		return nil, err
	}

	consoleConfig, err := console.NewConsoleConfig(rawConfig.ConsoleConfig)
	if err != nil {
		return nil, err
	}

	networkConfigs := make([]map[string]interface{}, 0, len(rawConfig.NetworkConfigs))
	for _, network := range rawConfig.NetworkConfigs {
		network = lowercaseKeys(network)
		if network["chainid"] == "" || network["chainid"] == nil {
			return nil, fmt.Errorf("network 'chainId' must be provided for every configured network")
		}
		networkConfigs = append(networkConfigs, network)
	}

	return &Config{
		ConsoleConfig:  consoleConfig,
		NetworkConfigs: networkConfigs,
	}, nil
}

// lowercaseKeys normalizes network keys the way viper does for config files
func lowercaseKeys(m map[string]interface{}) map[string]interface{} {
	res := make(map[string]interface{}, len(m))
	for k, v := range m {
		res[strings.ToLower(k)] = v
	}
	return res
}
