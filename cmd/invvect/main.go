// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver"
	cfg "github.com/dusk-network/dusk-inventory/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var (
	app = cli.NewApp()
	log *logrus.Entry
)

func initLog() {
	log = logrus.WithFields(logrus.Fields{
		"app":    "invvect",
		"prefix": "main",
	})
}

func init() {
	initLog()

	app.Copyright = "Copyright (c) 2020 DUSK"
	app.Name = "invvect"
	app.Usage = "encode and decode inventory vectors"
	app.Author = "DUSK 2020"
	app.Version = semver.MustParse(cfg.NodeVersion).String()
	app.Before = before
	app.Writer = os.Stdout
	app.Commands = []cli.Command{
		{
			Name:      "encode",
			Aliases:   []string{"e"},
			Usage:     "prints the hex wire encoding of an inventory vector",
			Flags:     EncodeFlags,
			Action:    encodeAction,
			ArgsUsage: " ",
		},
		{
			Name:      "decode",
			Aliases:   []string{"d"},
			Usage:     "decodes a hex encoded inventory vector",
			Action:    decodeAction,
			ArgsUsage: "<hex>",
		},
		{
			Name:      "dedupe",
			Usage:     "prints each hex encoded inventory vector the first time it is seen",
			Action:    dedupeAction,
			ArgsUsage: "<hex> [<hex>...]",
		},
		{
			Name:   "size",
			Usage:  "prints the serialized size of an inventory vector",
			Action: sizeAction,
		},
	}
	app.Flags = append(app.Flags, GlobalFlags...)
}

func main() {
	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
