// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"github.com/urfave/cli"
)

var (
	// ConfigFlag flag to use configuration file.
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "dusk.toml configuration file",
	}
	// LogLevelFlag flag to set log level.
	LogLevelFlag = cli.StringFlag{
		Name:  "loglevel",
		Usage: "log level, eg: (warn, error, fatal, panic)",
	}

	// TypeFlag selects the inventory type to encode.
	TypeFlag = cli.StringFlag{
		Name:  "type, t",
		Value: "block",
		Usage: "inventory type: transaction, block, filtered_block, compact_block, none, error",
	}
	// HashFlag is the hex encoded 32 byte hash to encode.
	HashFlag = cli.StringFlag{
		Name:  "hash",
		Usage: "hex encoded 32 byte hash",
	}
	// PayloadFlag is hashed with SHA3-256 when no hash is given.
	PayloadFlag = cli.StringFlag{
		Name:  "payload",
		Usage: "data to hash when --hash is not set",
	}
)

var (
	// GlobalFlags flags usable in a global context.
	GlobalFlags = []cli.Flag{
		ConfigFlag,
		LogLevelFlag,
	}
	// EncodeFlags flags of the encode command.
	EncodeFlags = []cli.Flag{
		TypeFlag,
		HashFlag,
		PayloadFlag,
	}
)
