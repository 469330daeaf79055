// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package dupemap

import (
	"github.com/dusk-network/dusk-inventory/pkg/config"
	"github.com/dusk-network/dusk-inventory/pkg/p2p/wire/message"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("process", "dupemap")

// DupeMap tells whether an advertised inventory vector was already seen in
// the last few rounds.
type DupeMap struct {
	tmpMap *TmpMap
}

// NewDupeMap returns a DupeMap remembering vectors for tolerance rounds, with
// room for capacity vectors per round.
func NewDupeMap(tolerance uint64, capacity uint32) *DupeMap {
	expire := int64(config.Get().Network.MaxDupeMapExpire)
	return &DupeMap{NewTmpMap(tolerance, capacity, expire)}
}

// NewDupeMapFromConfig builds a DupeMap sized by the network configuration.
func NewDupeMapFromConfig() *DupeMap {
	c := config.Get().Network
	return NewDupeMap(c.DupeMapTolerance, c.MaxDupeMapItems)
}

// UpdateHeight moves the map to round, forgetting rounds that fall out of
// the tolerance window.
func (d *DupeMap) UpdateHeight(round uint64) {
	d.tmpMap.UpdateHeight(round)
}

// SetTolerance changes the number of rounds vectors are remembered for.
func (d *DupeMap) SetTolerance(roundNr uint64) {
	d.tmpMap.SetTolerance(roundNr)
}

// CanFwd returns true if iv was not seen before, and records it. Invalid
// vectors are never forwarded, and neither are vectors that could not be
// recorded, since they would be forwarded again on every sighting.
func (d *DupeMap) CanFwd(iv message.InvVect) bool {
	if !iv.IsValid() {
		log.WithField("vect", iv).Trace("dropping invalid inventory vector")
		return false
	}

	fwd, err := d.tmpMap.CheckAndAdd(iv)
	if err != nil {
		log.WithError(err).WithField("vect", iv).Warn("could not record inventory vector")
		return false
	}

	return fwd
}

// Filter returns the vectors of inv that can be forwarded, recording them.
// Duplicates within inv are dropped as well.
func (d *DupeMap) Filter(inv message.Inv) message.Inv {
	fresh := message.Inv{}
	for _, iv := range inv.InvList {
		if d.CanFwd(iv) {
			fresh.InvList = append(fresh.InvList, iv)
		}
	}

	if dropped := len(inv.InvList) - len(fresh.InvList); dropped > 0 {
		log.WithField("dropped", dropped).Debug("filtered inv message")
	}

	return fresh
}

// Size returns the byte size of the underlying filters.
func (d *DupeMap) Size() int {
	return d.tmpMap.Size()
}

// CleanExpired drops round filters older than the configured expiry.
func (d *DupeMap) CleanExpired() {
	d.tmpMap.CleanExpired()
}
