// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package dupemap_test

import (
	"encoding/binary"
	"testing"

	"github.com/dusk-network/dusk-inventory/pkg/crypto/hash"
	"github.com/dusk-network/dusk-inventory/pkg/p2p/peer/dupemap"
	"github.com/dusk-network/dusk-inventory/pkg/p2p/wire/message"
	"github.com/stretchr/testify/assert"
)

func vect(t message.InvType, n uint32) message.InvVect {
	var h hash.Digest
	binary.BigEndian.PutUint32(h[:], n)
	h[31] = 0xff
	return message.NewInvVect(t, h)
}

var dupeFilterTests = []struct {
	data   uint32
	canFwd bool
}{
	{1, true},
	{1, false},
	{2, true},
	{4, true},
	{4, false},
	{5, true},
	{7, true},
	{7, false},
	{7, false},
	{7, false},
	{9, true},
}

func TestCanFwd(t *testing.T) {
	dupeMap := dupemap.NewDupeMap(5, 1000)

	for i, tt := range dupeFilterTests {
		res := dupeMap.CanFwd(vect(message.InvTypeBlock, tt.data))
		if !assert.Equal(t, tt.canFwd, res) {
			assert.FailNowf(t, "failure", "DupeMap.CanFwd: expected %t, got %t, index %d", tt.canFwd, res, i)
		}
	}
}

// Same hash, different kind: a distinct advertisement.
func TestCanFwdDistinguishesKinds(t *testing.T) {
	dupeMap := dupemap.NewDupeMap(5, 1000)

	assert.True(t, dupeMap.CanFwd(vect(message.InvTypeBlock, 1)))
	assert.True(t, dupeMap.CanFwd(vect(message.InvTypeTx, 1)))
	assert.False(t, dupeMap.CanFwd(vect(message.InvTypeTx, 1)))
}

func TestInvalidNeverForwarded(t *testing.T) {
	dupeMap := dupemap.NewDupeMap(5, 1000)
	assert.False(t, dupeMap.CanFwd(message.InvVect{}))
}

func TestToleranceWindow(t *testing.T) {
	dupeMap := dupemap.NewDupeMap(2, 1000)
	iv := vect(message.InvTypeTx, 42)

	dupeMap.UpdateHeight(1)
	assert.True(t, dupeMap.CanFwd(iv))

	dupeMap.UpdateHeight(2)
	assert.False(t, dupeMap.CanFwd(iv))

	// round 1 drops out of the window
	dupeMap.UpdateHeight(3)
	assert.True(t, dupeMap.CanFwd(iv))
}

func TestCanFwdBigData(t *testing.T) {
	const items = 50 * 1000

	// Initialize a dupemap with 200K capacity per round-filter
	dupeMap := dupemap.NewDupeMap(10, 200*1000)

	falsePositiveCount := 0
	for i := uint32(0); i < items; i++ {
		// underlying filter structure is a probabilistic data structure
		// That's said, Few false positive are possible.
		if !dupeMap.CanFwd(vect(message.InvTypeBlock, i)) {
			falsePositiveCount++
		}
	}

	// Ensure false positive rate is less than 1.0%
	falsePositiveRate := float64(100*falsePositiveCount) / float64(items)
	if falsePositiveRate > 1.0 {
		assert.Failf(t, "failure", "false positive are too many %f", falsePositiveRate)
	}

	// Ensure that the underlying filter structure supports "definitely
	// no" a.k.a no false negative
	for i := uint32(0); i < items; i++ {
		if dupeMap.CanFwd(vect(message.InvTypeBlock, i)) {
			t.FailNow()
		}
	}

	assert.LessOrEqual(t, dupeMap.Size(), 1024*1024)
}

func BenchmarkCanFwd(b *testing.B) {
	b.StopTimer()

	testData := make([]message.InvVect, 0, 100*1000)
	for i := uint32(0); i < 100*1000; i++ {
		testData = append(testData, vect(message.InvTypeTx, i))
	}

	for i := 0; i < b.N; i++ {
		b.StopTimer()

		dupeMap := dupemap.NewDupeMap(5, 1000000)

		b.StartTimer()

		for _, iv := range testData {
			_ = dupeMap.CanFwd(iv)
		}
	}
}

// A full round filter must not turn into a forward-everything filter.
func TestFullFilterDoesNotRefwd(t *testing.T) {
	dupeMap := dupemap.NewDupeMap(5, 1)

	forwarded, refwd := 0, 0
	for i := uint32(0); i < 2000; i++ {
		iv := vect(message.InvTypeTx, i)
		if dupeMap.CanFwd(iv) {
			forwarded++
		}

		if dupeMap.CanFwd(iv) {
			refwd++
		}
	}

	assert.Equal(t, 0, refwd)
	// a single bucket of four fingerprints
	assert.LessOrEqual(t, forwarded, 4)
	assert.Greater(t, forwarded, 0)
}

func TestFilterInv(t *testing.T) {
	dupeMap := dupemap.NewDupeMap(5, 1000)
	assert.True(t, dupeMap.CanFwd(vect(message.InvTypeBlock, 1)))

	inv := message.Inv{}
	inv.InvList = append(inv.InvList,
		vect(message.InvTypeBlock, 1),
		vect(message.InvTypeBlock, 2),
		vect(message.InvTypeBlock, 2),
		message.InvVect{},
		vect(message.InvTypeTx, 3),
	)

	fresh := dupeMap.Filter(inv)
	assert.Equal(t, []message.InvVect{
		vect(message.InvTypeBlock, 2),
		vect(message.InvTypeTx, 3),
	}, fresh.InvList)
	assert.Len(t, inv.InvList, 5)
}
