// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package hash

import (
	"encoding/hex"
	"hash"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// Size is the length in bytes of a Digest.
const Size = 32

// Digest is a fixed-length content identifier. The inventory layer treats it
// as opaque bytes.
type Digest [Size]byte

// Null is the all-zero Digest.
var Null Digest

// ErrInvalidLength is returned when a byte slice cannot be turned into a
// Digest.
var ErrInvalidLength = errors.New("invalid digest length")

// IsNull reports whether every byte of d is zero.
func (d Digest) IsNull() bool {
	return d == Null
}

// Bytes returns a copy of the digest as a slice.
func (d Digest) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, d[:])
	return b
}

// String returns the hex encoding of the digest.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// FromSlice copies b into a Digest. b must be exactly Size bytes long.
func FromSlice(b []byte) (Digest, error) {
	var d Digest
	if len(b) != Size {
		return d, errors.Wrapf(ErrInvalidLength, "expected %d bytes, got %d", Size, len(b))
	}

	copy(d[:], b)
	return d, nil
}

// FromHex decodes a hex string into a Digest.
func FromHex(s string) (Digest, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Null, errors.Wrap(err, "could not decode digest hex")
	}

	return FromSlice(b)
}

// Sum returns the SHA3-256 Digest of data.
func Sum(data []byte) (Digest, error) {
	b, err := Sha3256(data)
	if err != nil {
		return Null, err
	}

	return FromSlice(b)
}

// Sha3256 takes a byte slice
// and returns the SHA3-256 hash
func Sha3256(bs []byte) ([]byte, error) {
	return PerformHash(sha3.New256(), bs)
}

// PerformHash takes a generic hash.Hash and returns the hashed payload
func PerformHash(H hash.Hash, bs []byte) ([]byte, error) {
	_, err := H.Write(bs)
	if err != nil {
		return nil, err
	}
	return H.Sum(nil), err
}
