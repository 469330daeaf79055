// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package message

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dusk-network/dusk-inventory/pkg/crypto/hash"
	"github.com/dusk-network/dusk-inventory/pkg/p2p/wire/encoding"
	"github.com/dusk-network/dusk-inventory/pkg/p2p/wire/message/payload"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("process", "inventory")

// InvType is the symbolic kind of the object an inventory vector refers to.
type InvType uint8

// Inventory kinds. InvTypeError is the zero value and marks an uninitialized
// vector. InvTypeNone is what an unrecognized wire code decodes to.
const (
	InvTypeError InvType = iota
	InvTypeTx
	InvTypeBlock
	InvTypeFilteredBlock
	InvTypeCompactBlock
	InvTypeNone
)

// InvVectSize is the size of an inventory vector on the wire: a 4 byte kind
// code followed by the hash.
const InvVectSize = 4 + hash.Size

// ErrShortInvVect is returned when the source runs out of bytes (or fails)
// before a whole inventory vector is read.
var ErrShortInvVect = errors.New("short inventory vector")

// shortInvVectError carries the source failure behind ErrShortInvVect, so
// that both match with errors.Is.
type shortInvVectError struct {
	cause error
}

func (e *shortInvVectError) Error() string {
	return ErrShortInvVect.Error() + ": " + e.cause.Error()
}

func (e *shortInvVectError) Unwrap() error {
	return e.cause
}

func (e *shortInvVectError) Is(target error) bool {
	return target == ErrShortInvVect
}

var invTypeNames = [...]string{
	InvTypeError:         "error",
	InvTypeTx:            "transaction",
	InvTypeBlock:         "block",
	InvTypeFilteredBlock: "filtered_block",
	InvTypeCompactBlock:  "compact_block",
	InvTypeNone:          "none",
}

func (t InvType) String() string {
	if int(t) < len(invTypeNames) {
		return invTypeNames[t]
	}

	return fmt.Sprintf("InvType(%d)", uint8(t))
}

// ParseInvType returns the InvType named s, as printed by String.
func ParseInvType(s string) (InvType, error) {
	for i, name := range invTypeNames {
		if name == s {
			return InvType(i), nil
		}
	}

	return InvTypeError, errors.Errorf("unknown inventory type %q", s)
}

// ToNumber maps an InvType to its wire code. Kinds without an assigned code,
// including InvTypeError, InvTypeNone and InvTypeFilteredBlock, map to 0.
func ToNumber(t InvType) uint32 {
	switch t {
	case InvTypeCompactBlock:
		return 4
	case InvTypeBlock:
		return 2
	case InvTypeTx:
		return 1
	default:
		return 0
	}
}

// ToType maps a wire code to its InvType. Every code maps to some kind:
// unassigned codes become InvTypeNone so that vectors of kinds introduced by
// newer peers still decode.
func ToType(code uint32) InvType {
	switch code {
	case 0:
		return InvTypeError
	case 1:
		return InvTypeTx
	case 2:
		return InvTypeBlock
	case 4:
		return InvTypeCompactBlock
	default:
		return InvTypeNone
	}
}

// InvVect advertises an object by kind and hash. The zero value is the
// invalid sentinel (InvTypeError, null hash).
type InvVect struct {
	typ  InvType
	hash hash.Digest
}

// NewInvVect returns an InvVect of type t referring to h.
func NewInvVect(t InvType, h hash.Digest) InvVect {
	return InvVect{typ: t, hash: h}
}

// InvVectFromData decodes an InvVect from the start of data. On failure the
// returned InvVect is the invalid sentinel.
func InvVectFromData(version uint32, data []byte) (InvVect, error) {
	var iv InvVect
	err := iv.FromData(version, data)
	return iv, err
}

// InvVectFromReader decodes an InvVect from r.
func InvVectFromReader(version uint32, r io.Reader) (InvVect, error) {
	var iv InvVect
	err := iv.FromReader(version, r)
	return iv, err
}

// ReadInvVect decodes an InvVect from source.
func ReadInvVect(version uint32, source *encoding.Reader) (InvVect, error) {
	var iv InvVect
	err := iv.Decode(version, source)
	return iv, err
}

// InvVectFixedSize returns the serialized size of any InvVect. The version
// has no effect.
func InvVectFixedSize(version uint32) uint64 {
	return InvVectSize
}

// IsValid reports whether iv differs from the invalid sentinel.
func (iv InvVect) IsValid() bool {
	return iv.typ != InvTypeError || !iv.hash.IsNull()
}

// Reset turns iv back into the invalid sentinel.
func (iv *InvVect) Reset() {
	iv.typ = InvTypeError
	iv.hash = hash.Null
}

// FromData decodes iv from the first InvVectSize bytes of data. Trailing
// bytes are left unread.
func (iv *InvVect) FromData(version uint32, data []byte) error {
	return iv.Decode(version, encoding.FromBytes(data))
}

// FromReader decodes iv from r.
func (iv *InvVect) FromReader(version uint32, r io.Reader) error {
	return iv.Decode(version, encoding.NewReader(r))
}

// Decode reads the kind code and hash from source. If source fails at any
// point iv is reset and an error wrapping ErrShortInvVect is returned.
// The version is ignored.
func (iv *InvVect) Decode(version uint32, source *encoding.Reader) error {
	iv.Reset()

	iv.typ = ToType(source.ReadUint32LE())
	iv.hash = source.Read256()

	if err := source.Err(); err != nil {
		iv.Reset()
		return errors.WithStack(&shortInvVectError{cause: err})
	}

	return nil
}

// ToData returns the InvVectSize byte encoding of iv.
func (iv InvVect) ToData(version uint32) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, InvVectSize))
	sink := encoding.NewWriter(buf)
	iv.Encode(version, sink)

	// a bytes.Buffer never fails, so anything but an exact fit is a bug
	if sink.Err() != nil || uint64(buf.Len()) != iv.SerializedSize(version) {
		log.WithError(sink.Err()).
			WithField("size", buf.Len()).
			Panic("inventory vector encoded to unexpected size")
	}

	return buf.Bytes()
}

// ToWriter encodes iv into w.
func (iv InvVect) ToWriter(version uint32, w io.Writer) error {
	sink := encoding.NewWriter(w)
	iv.Encode(version, sink)
	return errors.Wrap(sink.Err(), "could not write inventory vector")
}

// Encode writes the wire code of the kind followed by the hash into sink.
// Failures are recorded by sink. The version is ignored.
func (iv InvVect) Encode(version uint32, sink *encoding.Writer) {
	sink.WriteUint32LE(ToNumber(iv.typ))
	sink.Write256(iv.hash)
}

// SerializedSize returns InvVectSize regardless of version.
func (iv InvVect) SerializedSize(version uint32) uint64 {
	return InvVectFixedSize(version)
}

// IsBlockType reports whether iv refers to a block of any flavour.
func (iv InvVect) IsBlockType() bool {
	return iv.typ == InvTypeBlock ||
		iv.typ == InvTypeCompactBlock ||
		iv.typ == InvTypeFilteredBlock
}

// IsTransactionType reports whether iv refers to a transaction.
func (iv InvVect) IsTransactionType() bool {
	return iv.typ == InvTypeTx
}

// Type returns the kind of iv.
func (iv InvVect) Type() InvType {
	return iv.typ
}

// SetType sets the kind of iv.
func (iv *InvVect) SetType(t InvType) {
	iv.typ = t
}

// Hash returns a copy of the hash of iv.
func (iv InvVect) Hash() hash.Digest {
	return iv.hash
}

// HashRef gives in-place access to the hash of iv.
func (iv *InvVect) HashRef() *hash.Digest {
	return &iv.hash
}

// SetHash sets the hash of iv.
func (iv *InvVect) SetHash(h hash.Digest) {
	iv.hash = h
}

// Equal reports whether iv and other have the same kind and hash.
func (iv InvVect) Equal(other InvVect) bool {
	return iv == other
}

// Copy an InvVect.
// Implements the payload.Safe interface.
func (iv InvVect) Copy() payload.Safe {
	return iv
}

func (iv InvVect) String() string {
	return fmt.Sprintf("%s:%s", iv.typ, iv.hash)
}
