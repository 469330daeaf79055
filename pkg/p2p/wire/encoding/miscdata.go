// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

// Serialization functions for fixed-size byte arrays such as hashes.

package encoding

import (
	"io"
)

// Read256 will read 32 bytes from r and return them as an array.
func Read256(r io.Reader) ([32]byte, error) {
	var b [32]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return [32]byte{}, err
	}
	return b, nil
}

// Write256 will write the 32 bytes of b to w.
func Write256(w io.Writer, b [32]byte) error {
	_, err := w.Write(b[:])
	return err
}
