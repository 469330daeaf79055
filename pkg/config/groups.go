// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package config

type generalConfiguration struct {
	Network string
}

type loggerConfiguration struct {
	Level  string
	Output string
	Format string
}

type networkConfiguration struct {
	// Capacity of a single round filter of the inventory dupemap.
	MaxDupeMapItems uint32
	// Number of seconds after which a round filter is dropped.
	MaxDupeMapExpire uint32
	// Number of rounds a seen inventory vector is remembered for.
	DupeMapTolerance uint64
}

type mempoolConfiguration struct {
	MaxInvItems uint32
}

// Wire protocol parameters.
type protocolConfiguration struct {
	// Version threaded through the codecs. Fixed-size records such as the
	// inventory vector ignore it.
	Version uint32
}
