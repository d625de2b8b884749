// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"code.hybscloud.com/ghost"
)

const (
	configFileName = "ghostlist"
	configFileType = "yaml"

	cfgKeyPoolSize = "pool_size"
	cfgKeyRetag    = "retag"
	cfgKeyDump     = "dump"

	defaultPoolSize = 64
)

// loadConfig reads ghostlist.yaml from path, or from the working
// directory when path is empty. A missing file in the working directory
// is not an error; a missing explicit path is.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyPoolSize, defaultPoolSize)
	v.SetDefault(cfgKeyRetag, true)
	v.SetDefault(cfgKeyDump, false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// listOptions maps the loaded configuration to list options.
func listOptions(v *viper.Viper) []ghost.Option {
	opts := []ghost.Option{ghost.WithPoolSize(v.GetInt(cfgKeyPoolSize))}
	if !v.GetBool(cfgKeyRetag) {
		opts = append(opts, ghost.WithoutRetag())
	}
	return opts
}
