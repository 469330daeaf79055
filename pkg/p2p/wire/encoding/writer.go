// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package encoding

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Writer is the sink counterpart of Reader. It counts the bytes that reached
// the underlying io.Writer and stops writing after the first failure.
type Writer struct {
	w   io.Writer
	n   int
	err error
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// NewBufferWriter returns a Writer backed by a fresh bytes.Buffer, along with
// the buffer itself.
func NewBufferWriter() (*Writer, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return NewWriter(buf), buf
}

func (w *Writer) write(b []byte) {
	if w.err != nil {
		return
	}

	n, err := w.w.Write(b)
	w.n += n
	if err == nil && n != len(b) {
		err = io.ErrShortWrite
	}
	w.err = err
}

// WriteUint8 writes a single byte.
func (w *Writer) WriteUint8(v uint8) {
	w.write([]byte{v})
}

// WriteUint32LE writes v as four little-endian bytes.
func (w *Writer) WriteUint32LE(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.write(b[:])
}

// WriteUint64LE writes v as eight little-endian bytes.
func (w *Writer) WriteUint64LE(v uint64) {
	if w.err != nil {
		return
	}

	cw := &countingWriter{w: w.w}
	w.err = WriteUint64LE(cw, v)
	w.n += cw.n
}

// Write256 writes 32 raw bytes.
func (w *Writer) Write256(b [32]byte) {
	w.write(b[:])
}

// WriteVarInt writes v as a CompactSize integer.
func (w *Writer) WriteVarInt(v uint64) {
	if w.err != nil {
		return
	}

	cw := &countingWriter{w: w.w}
	w.err = WriteVarInt(cw, v)
	w.n += cw.n
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.n
}

// Err returns the first error encountered, if any.
func (w *Writer) Err() error {
	return w.err
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
