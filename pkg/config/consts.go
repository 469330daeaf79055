// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package config

// A single point of constants definition.
const (
	// NodeVersion is the semantic version of the inventory tooling.
	NodeVersion = "0.4.0"

	// ProtocolVersion is the default wire protocol version.
	ProtocolVersion = uint32(70015)

	// MaxInvItems bounds the number of inventory vectors in a single inv
	// message when no configuration overrides it.
	MaxInvItems = uint32(10000)

	// DefaultDupeMapItems is the default capacity of a dupemap round filter.
	DefaultDupeMapItems = uint32(300000)

	// DefaultDupeMapExpire is the default lifetime of a round filter in seconds.
	DefaultDupeMapExpire = uint32(5)

	// DefaultDupeMapTolerance is the default number of rounds kept.
	DefaultDupeMapTolerance = uint64(3)
)
