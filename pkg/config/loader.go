// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package config

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config package should avoid importing any dusk-inventory packages in order
// to prevent any cyclic-dependancy issues

const (
	// current working dir
	searchPath1 = "."
	// home datadir
	searchPath2 = "$HOME/.dusk/"

	// name for the config file. Does not include extension.
	configFileName = "dusk"
)

var r *Registry

// Registry stores all loaded configurations according to the config order
// NB It should be cheap to be copied by value
type Registry struct {
	UsedConfigFile string

	// All configuration groups
	General  generalConfiguration
	Logger   loggerConfiguration
	Network  networkConfiguration
	Mempool  mempoolConfiguration
	Protocol protocolConfiguration
}

// Load makes an attempt to read and unmarshal any configs from flag, env and
// dusk config file.
//
// It uses the following precedence order. Each item takes precedence over the item below it:
//  - flag
//  - env
//  - config
//  - default
//
// An explicit confFile must exist. Without one, a missing dusk.toml in the
// search paths is not an error and the defaults are used.
func Load(confFile string, flags *pflag.FlagSet) error {
	v := viper.New()
	setDefaults(v)

	reg := new(Registry)
	if err := reg.init(v, confFile, flags); err != nil {
		return err
	}

	r = reg
	return nil
}

// Get returns registry by value in order to avoid further modifications after
// initial configuration loading
func Get() Registry {
	return *r
}

func (r *Registry) init(v *viper.Viper, confFile string, flags *pflag.FlagSet) error {
	// Make an attempt to find dusk.toml/dusk.json/dusk.yaml in any of the
	// provided paths below
	v.SetConfigName(configFileName)

	// search paths
	v.AddConfigPath(searchPath1)
	v.AddConfigPath(searchPath2)

	// confPath is overwritten by the one from command line
	if len(confFile) > 0 {
		v.SetConfigFile(confFile)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || len(confFile) > 0 {
			return errors.Wrap(err, "error reading config file")
		}
	}

	// Bind all command line parameters to their corresponding file configs
	//
	// e.g CLI argument `--logger.level="warn"` will overwrite the value from
	// `[logger] level = "info"` in the loaded config file
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return errors.Wrap(err, "unable to bind pflags")
		}
	}

	defineENV(v)

	// Unmarshal all configurations from all conf levels to the registry struct
	if err := v.Unmarshal(r); err != nil {
		return errors.Wrap(err, "unable to decode into struct")
	}

	r.UsedConfigFile = v.ConfigFileUsed()

	return nil
}

// DefineFlags adds the flags that override config file settings to fs.
// The settings that are needed to be passed frequently by CLI should be added here
func DefineFlags(fs *pflag.FlagSet) {
	_ = fs.StringP("logger.level", "l", "", "override logger.level settings in config file")
	_ = fs.StringP("logger.output", "o", "stdout", "specifies the log output")
	_ = fs.StringP("general.network", "n", "testnet", "override general.network settings in config file")
	_ = fs.Uint32("protocol.version", ProtocolVersion, "wire protocol version")
	_ = fs.Uint32("mempool.maxinvitems", MaxInvItems, "maximum number of inventory vectors per inv message")
}

// define a set of environment variables as bindings to config file settings
func defineENV(v *viper.Viper) {
	// Bind config key general.network to ENV var DUSK_GENERAL_NETWORK
	if err := v.BindEnv("general.network", "DUSK_GENERAL_NETWORK"); err != nil {
		fmt.Printf("defineENV %v", err)
	}

	if err := v.BindEnv("logger.level", "DUSK_LOGGER_LEVEL"); err != nil {
		fmt.Printf("defineENV %v", err)
	}

	if err := v.BindEnv("protocol.version", "DUSK_PROTOCOL_VERSION"); err != nil {
		fmt.Printf("defineENV %v", err)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("general.network", "testnet")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.format", "text")
	v.SetDefault("network.maxdupemapitems", DefaultDupeMapItems)
	v.SetDefault("network.maxdupemapexpire", DefaultDupeMapExpire)
	v.SetDefault("network.dupemaptolerance", DefaultDupeMapTolerance)
	v.SetDefault("mempool.maxinvitems", MaxInvItems)
	v.SetDefault("protocol.version", ProtocolVersion)
}

// Mock should be used only in test packages. It could be useful when a unit
// test needs to be rerun with configs different from the default ones.
func Mock(m *Registry) {
	r = m
}

func init() {
	// By default Registry should be populated with the defaults. In that way,
	// consumers (packages) can run unit tests without a config file
	r = new(Registry)
	r.General.Network = "testnet"
	r.Logger.Level = "info"
	r.Logger.Output = "stdout"
	r.Logger.Format = "text"
	r.Network.MaxDupeMapItems = DefaultDupeMapItems
	r.Network.MaxDupeMapExpire = DefaultDupeMapExpire
	r.Network.DupeMapTolerance = DefaultDupeMapTolerance
	r.Mempool.MaxInvItems = MaxInvItems
	r.Protocol.Version = ProtocolVersion
}
