// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package message

import (
	"bytes"

	"github.com/dusk-network/dusk-inventory/pkg/config"
	"github.com/dusk-network/dusk-inventory/pkg/crypto/hash"
	"github.com/dusk-network/dusk-inventory/pkg/p2p/wire/encoding"
	"github.com/dusk-network/dusk-inventory/pkg/p2p/wire/message/payload"
	"github.com/pkg/errors"
)

// ErrInvTooLarge is returned when an inv message holds more vectors than
// the configured maximum.
var ErrInvTooLarge = errors.New("inv message is too large")

// Inv contains a list of Inventory vector.
type Inv struct {
	InvList []InvVect
}

// Copy an Inv.
// Implements the payload.Safe interface.
func (inv Inv) Copy() payload.Safe {
	list := make([]InvVect, len(inv.InvList))
	copy(list, inv.InvList)
	return Inv{list}
}

// AddItem to an Inventory.
func (inv *Inv) AddItem(t InvType, h hash.Digest) {
	inv.InvList = append(inv.InvList, NewInvVect(t, h))
}

// SerializedSize returns the encoded size of the inv message.
func (inv Inv) SerializedSize(version uint32) uint64 {
	n := uint64(len(inv.InvList))
	return encoding.VarIntEncodeSize(n) + n*InvVectFixedSize(version)
}

// Encode an Inventory request into a buffer.
func (inv *Inv) Encode(version uint32, w *bytes.Buffer) error {
	maxItems := config.Get().Mempool.MaxInvItems
	if uint32(len(inv.InvList)) > maxItems {
		return errors.Wrapf(ErrInvTooLarge, "%d items, limit is %d", len(inv.InvList), maxItems)
	}

	if len(inv.InvList) > 10 {
		log.WithField("list_size", len(inv.InvList)).Trace("encode inv message")
	}

	sink := encoding.NewWriter(w)
	sink.WriteVarInt(uint64(len(inv.InvList)))

	for _, vect := range inv.InvList {
		vect.Encode(version, sink)
	}

	return errors.Wrap(sink.Err(), "could not encode inv message")
}

// Decode an Inventory from a buffer. Vectors of unknown kinds are kept with
// InvTypeNone. A truncated vector fails the whole message, and any failure
// leaves inv empty.
func (inv *Inv) Decode(version uint32, r *bytes.Buffer) error {
	inv.InvList = nil

	lenVect, err := encoding.ReadVarInt(r)
	if err != nil {
		return errors.Wrap(err, "could not read inv list size")
	}

	maxItems := config.Get().Mempool.MaxInvItems
	if lenVect > uint64(maxItems) {
		return errors.Wrapf(ErrInvTooLarge, "%d items, limit is %d", lenVect, maxItems)
	}

	if lenVect > 10 {
		log.WithField("list_size", lenVect).Trace("decode inv message")
	}

	source := encoding.NewReader(r)
	list := make([]InvVect, lenVect)

	for i := range list {
		if err := list[i].Decode(version, source); err != nil {
			return errors.Wrapf(err, "inventory vector %d of %d", i, lenVect)
		}

		if list[i].Type() == InvTypeNone {
			log.WithField("vect", list[i]).Debug("unknown inventory type")
		}
	}

	inv.InvList = list
	return nil
}
