// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	cfg "github.com/dusk-network/dusk-inventory/pkg/config"
	"github.com/dusk-network/dusk-inventory/pkg/crypto/hash"
	"github.com/dusk-network/dusk-inventory/pkg/p2p/peer/dupemap"
	"github.com/dusk-network/dusk-inventory/pkg/p2p/wire/message"
	"github.com/dusk-network/dusk-inventory/pkg/util/nativeutils/logging"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// before loads the configuration and sets up logging. Logs go to stderr so
// that stdout only carries command output.
func before(ctx *cli.Context) error {
	if err := cfg.Load(ctx.GlobalString(ConfigFlag.Name), nil); err != nil {
		return errors.Wrap(err, "could not load config")
	}

	logging.InitLog(os.Stderr)

	if logLevel := ctx.GlobalString(LogLevelFlag.Name); logLevel != "" {
		log.WithField("logLevel", logLevel).Debug("will configure log level")
		logging.SetToLevel(logLevel)
	}

	if used := cfg.Get().UsedConfigFile; used != "" {
		log.WithField("file", used).Debug("Loaded config file")
	}

	return nil
}

func encodeAction(ctx *cli.Context) error {
	if arguments := ctx.Args(); len(arguments) > 0 {
		return fmt.Errorf("failed to read command argument: %q", arguments[0])
	}

	t, err := message.ParseInvType(ctx.String("type"))
	if err != nil {
		return err
	}

	var h hash.Digest
	switch {
	case ctx.IsSet(HashFlag.Name):
		h, err = hash.FromHex(ctx.String(HashFlag.Name))
	case ctx.IsSet(PayloadFlag.Name):
		h, err = hash.Sum([]byte(ctx.String(PayloadFlag.Name)))
	}

	if err != nil {
		return err
	}

	iv := message.NewInvVect(t, h)
	if !iv.IsValid() {
		log.WithField("vect", iv).Warn("encoding an invalid inventory vector")
	}

	_, err = fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(iv.ToData(cfg.Get().Protocol.Version)))
	return err
}

func decodeAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("expected exactly one hex encoded inventory vector")
	}

	data, err := hex.DecodeString(strings.TrimSpace(ctx.Args().First()))
	if err != nil {
		return errors.Wrap(err, "could not decode hex")
	}

	if len(data) > message.InvVectSize {
		log.WithField("extra", len(data)-message.InvVectSize).Warn("ignoring trailing bytes")
	}

	iv, err := message.InvVectFromData(cfg.Get().Protocol.Version, data)
	if err != nil {
		return err
	}

	// the raw code, which differs from ToNumber(iv.Type()) for unknown kinds
	code := binary.LittleEndian.Uint32(data[:4])

	w := ctx.App.Writer
	_, _ = fmt.Fprintf(w, "type:  %s\n", iv.Type())
	_, _ = fmt.Fprintf(w, "code:  %d\n", code)
	_, _ = fmt.Fprintf(w, "hash:  %s\n", iv.Hash())
	_, _ = fmt.Fprintf(w, "valid: %t\n", iv.IsValid())
	return nil
}

// dedupeAction runs the given vectors through a dupemap sized by the
// network configuration, as a node does with the items of an incoming inv.
func dedupeAction(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errors.New("expected at least one hex encoded inventory vector")
	}

	version := cfg.Get().Protocol.Version

	inv := message.Inv{}
	for i, arg := range ctx.Args() {
		data, err := hex.DecodeString(strings.TrimSpace(arg))
		if err != nil {
			return errors.Wrapf(err, "argument %d", i)
		}

		iv, err := message.InvVectFromData(version, data)
		if err != nil {
			return errors.Wrapf(err, "argument %d", i)
		}

		inv.InvList = append(inv.InvList, iv)
	}

	fresh := dupemap.NewDupeMapFromConfig().Filter(inv)
	for _, iv := range fresh.InvList {
		if _, err := fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(iv.ToData(version))); err != nil {
			return err
		}
	}

	return nil
}

func sizeAction(ctx *cli.Context) error {
	_, err := fmt.Fprintln(ctx.App.Writer, message.InvVectFixedSize(cfg.Get().Protocol.Version))
	return err
}
