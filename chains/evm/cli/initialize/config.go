// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package initialize

import (
	"github.com/juztamau5/rollups-examples/config"
	"github.com/juztamau5/rollups-examples/networks"
)

var (
	loadedConfig *config.Config
	registry     *networks.Registry
)

// SetConfig stores the configuration loaded by the root command
func SetConfig(cfg *config.Config) error {
	r, err := networks.NewRegistryFromConfig(cfg.NetworkConfigs)
	if err != nil {
		return err
	}
	loadedConfig = cfg
	registry = r
	return nil
}

// Config returns the loaded configuration, or the default one when none was loaded
func Config() (*config.Config, error) {
	if loadedConfig == nil {
		return config.GetDefaultConfig()
	}
	return loadedConfig, nil
}

func Networks() *networks.Registry {
	if registry == nil {
		return networks.NewRegistry()
	}
	return registry
}
