// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package encoding

import (
	"bytes"
	"io"
)

// Reader is a byte source with a sticky failure state. Once a read fails,
// every following read is a no-op returning the zero value, and Err reports
// the first failure. This lets fixed layouts be read field by field with a
// single check at the end.
type Reader struct {
	r   io.Reader
	err error
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// FromBytes returns a Reader over an in-memory buffer.
func FromBytes(b []byte) *Reader {
	return NewReader(bytes.NewReader(b))
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() uint8 {
	if r.err != nil {
		return 0
	}

	v, err := ReadUint8(r.r)
	r.err = err
	return v
}

// ReadUint32LE reads a little-endian uint32.
func (r *Reader) ReadUint32LE() uint32 {
	if r.err != nil {
		return 0
	}

	v, err := ReadUint32LE(r.r)
	r.err = err
	return v
}

// ReadUint64LE reads a little-endian uint64.
func (r *Reader) ReadUint64LE() uint64 {
	if r.err != nil {
		return 0
	}

	v, err := ReadUint64LE(r.r)
	r.err = err
	return v
}

// Read256 reads 32 raw bytes.
func (r *Reader) Read256() [32]byte {
	if r.err != nil {
		return [32]byte{}
	}

	v, err := Read256(r.r)
	r.err = err
	return v
}

// ReadVarInt reads a CompactSize integer.
func (r *Reader) ReadVarInt() uint64 {
	if r.err != nil {
		return 0
	}

	v, err := ReadVarInt(r.r)
	r.err = err
	return v
}

// Err returns the first error encountered, if any.
func (r *Reader) Err() error {
	return r.err
}

// Ok reports whether every read so far succeeded.
func (r *Reader) Ok() bool {
	return r.err == nil
}
