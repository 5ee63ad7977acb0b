// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package deployments

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
)

const addressKey = "address"

// Address reads the address of contract name deployed on network from
// <dir>/<network>/<name>.json
func Address(dir string, network string, name string) (common.Address, error) {
	return readDeployment(filepath.Join(dir, network, name+".json"))
}

// ReadAddressFile reads an address from a deployment JSON file or from a
// file holding just the hex address
func ReadAddressFile(path string) (common.Address, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return readDeployment(path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return common.Address{}, err
	}
	address := strings.TrimSpace(string(content))
	if !common.IsHexAddress(address) {
		return common.Address{}, fmt.Errorf("invalid address in %s", path)
	}
	return common.HexToAddress(address), nil
}

func readDeployment(path string) (common.Address, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	err := v.ReadInConfig()
	if err != nil {
		return common.Address{}, err
	}

	address := v.GetString(addressKey)
	if !common.IsHexAddress(address) {
		return common.Address{}, fmt.Errorf("invalid address %q in %s", address, path)
	}
	return common.HexToAddress(address), nil
}
