// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

const EnvPrefix = "CRT"

var consoleEnvPrefix = EnvPrefix + "_CONSOLE_"

func loadFromEnv() (RawConfig, error) {
	rawConfig := RawConfig{}
	err := mapstructure.Decode(consoleEnv(), &rawConfig.ConsoleConfig)
	if err != nil {
		return RawConfig{}, err
	}

	for index := 1; ; index++ {
		name := fmt.Sprintf("%s_NET_%d", EnvPrefix, index)
		rawNetworkConfig := os.Getenv(name)
		if rawNetworkConfig == "" {
			break
		}

		var nc map[string]interface{}
		err = json.Unmarshal([]byte(rawNetworkConfig), &nc)
		if err != nil {
			return RawConfig{}, fmt.Errorf("invalid network config in %s: %w", name, err)
		}
		rawConfig.NetworkConfigs = append(rawConfig.NetworkConfigs, nc)
	}

	return rawConfig, nil
}

// consoleEnv collects CRT_CONSOLE_<FIELD> variables keyed by field name.
// Field names are matched case-insensitively when decoded.
func consoleEnv() map[string]interface{} {
	values := map[string]interface{}{}
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) != 2 || !strings.HasPrefix(pair[0], consoleEnvPrefix) {
			continue
		}
		values[strings.TrimPrefix(pair[0], consoleEnvPrefix)] = pair[1]
	}
	return values
}
