// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package encoding

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCompactSize(t *testing.T) {
	a := uint64(1)
	b := uint64(1<<16 - 1)
	c := uint64(1<<32 - 1)
	d := uint64(1<<64 - 1)

	// Serialize
	buf := new(bytes.Buffer)
	for _, v := range []uint64{a, b, c, d} {
		if err := WriteVarInt(buf, v); err != nil {
			t.Fatal(err)
		}
	}

	assert.Equal(t, int(VarIntEncodeSize(a)+VarIntEncodeSize(b)+VarIntEncodeSize(c)+VarIntEncodeSize(d)), buf.Len())

	// Deserialize
	for _, v := range []uint64{a, b, c, d} {
		rv, err := ReadVarInt(buf)
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, v, rv)
	}
}

func TestNonCanonicalVarInt(t *testing.T) {
	// 0x10 encoded with a 0xfd discriminator
	buf := bytes.NewBuffer([]byte{0xfd, 0x10, 0x00})
	_, err := ReadVarInt(buf)
	assert.True(t, errors.Is(err, ErrNonCanonical))
}

func TestVarIntTruncated(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0xfe, 0x01})
	_, err := ReadVarInt(buf)
	assert.Error(t, err)
}
