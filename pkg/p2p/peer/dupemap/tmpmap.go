// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package dupemap

import (
	"sync"
	"time"

	"github.com/dusk-network/dusk-inventory/pkg/p2p/wire/message"
	"github.com/pkg/errors"
	cuckoo "github.com/seiflotfy/cuckoofilter"
)

// ErrFilterFull is returned when a round filter has no room left for a new
// inventory vector.
var ErrFilterFull = errors.New("dupemap filter is full")

type cache struct {
	*cuckoo.Filter
	TTL int64
}

type (
	// TmpMap remembers inventory vectors per round, one cuckoo filter per
	// round. Vectors are keyed by their wire encoding.
	TmpMap struct {
		lock sync.RWMutex
		// current height
		height    uint64
		tolerance uint64

		// expire number of seconds for a cache before being reset
		expire int64

		// map round to cuckoo filter
		msgFilter map[uint64]*cache
		capacity  uint32
	}
)

// NewTmpMap creates a TmpMap instance.
func NewTmpMap(tolerance uint64, capacity uint32, expire int64) *TmpMap {
	return &TmpMap{
		msgFilter: make(map[uint64]*cache),
		capacity:  capacity,
		height:    0,
		tolerance: tolerance,
		expire:    expire,
	}
}

func key(iv message.InvVect) []byte {
	return iv.ToData(0)
}

// UpdateHeight for a round.
func (t *TmpMap) UpdateHeight(round uint64) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.height > round {
		return
	}

	_, found := t.msgFilter[round]
	if !found {
		t.msgFilter[round] = t.newCache()
		t.height = round
		t.clean()
	}
}

// Height returns the current round.
func (t *TmpMap) Height() uint64 {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.height
}

// Has checks if iv was seen at the current height.
func (t *TmpMap) Has(iv message.InvVect) bool {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.has(key(iv), t.height)
}

// HasAnywhere checks if the TmpMap contains iv at any height.
func (t *TmpMap) HasAnywhere(iv message.InvVect) bool {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.hasAnywhere(key(iv))
}

// HasAt checks if the TmpMap contains iv at a specified height.
func (t *TmpMap) HasAt(iv message.InvVect, height uint64) bool {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.has(key(iv), height)
}

// DeleteBefore clears a Map of items stored before the given height.
func (t *TmpMap) DeleteBefore(height uint64) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.deleteBefore(height)
}

func (t *TmpMap) deleteBefore(height uint64) {
	for level := range t.msgFilter {
		if level < height {
			t.msgFilter[level].Reset()
			delete(t.msgFilter, level)
		}
	}
}

// SetTolerance adjusts how many rounds vectors stay in the TmpMap until they
// are deleted.
func (t *TmpMap) SetTolerance(tolerance uint64) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.tolerance = tolerance
	t.clean()
}

// Add iv at the current height.
// Returns true if the element was added. False otherwise.
func (t *TmpMap) Add(iv message.InvVect) bool {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.add(key(iv), t.height)
}

// AddAt adds iv at a specific height.
func (t *TmpMap) AddAt(iv message.InvVect, height uint64) bool {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.add(key(iv), height)
}

// CheckAndAdd records iv at the current height unless it was already seen at
// any height. It returns true only if iv was new and got recorded. A new
// vector that does not fit in the filter of the current round yields
// ErrFilterFull.
func (t *TmpMap) CheckAndAdd(iv message.InvVect) (bool, error) {
	k := key(iv)

	t.lock.Lock()
	defer t.lock.Unlock()

	if t.hasAnywhere(k) {
		return false, nil
	}

	if !t.add(k, t.height) {
		return false, errors.Wrapf(ErrFilterFull, "round %d", t.height)
	}

	return true, nil
}

// Size returns overall size of all filters.
func (t *TmpMap) Size() int {
	t.lock.RLock()
	defer t.lock.RUnlock()

	var fullSize int
	for _, f := range t.msgFilter {
		fullSize += len(f.Encode())
	}

	return fullSize
}

// CleanExpired resets all cache instances that has expired.
func (t *TmpMap) CleanExpired() {
	t.lock.Lock()
	defer t.lock.Unlock()

	now := time.Now().Unix()
	for height, f := range t.msgFilter {
		if now >= f.TTL {
			f.Reset()
			delete(t.msgFilter, height)
		}
	}
}

func (t *TmpMap) newCache() *cache {
	return &cache{
		Filter: cuckoo.NewFilter(uint(t.capacity)),
		TTL:    time.Now().Unix() + t.expire,
	}
}

// clean drops every round older than the tolerance window.
func (t *TmpMap) clean() {
	if t.height <= t.tolerance {
		// don't clean
		return
	}

	t.deleteBefore(t.height - t.tolerance + 1)
}

func (t *TmpMap) has(k []byte, height uint64) bool {
	f := t.msgFilter[height]
	if f == nil {
		return false
	}

	return f.Lookup(k)
}

func (t *TmpMap) hasAnywhere(k []byte) bool {
	for h := range t.msgFilter {
		if t.has(k, h) {
			return true
		}
	}

	return false
}

// add an entry to the set at the given height. Returns false if the element
// could not be added.
func (t *TmpMap) add(k []byte, round uint64) bool {
	f, found := t.msgFilter[round]
	if !found {
		f = t.newCache()
		t.msgFilter[round] = f
	}

	return f.Insert(k)
}
