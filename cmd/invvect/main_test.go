// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	out := new(bytes.Buffer)
	prev := app.Writer
	app.Writer = out
	defer func() { app.Writer = prev }()

	err := app.Run(append([]string{"invvect"}, args...))
	return out.String(), err
}

func TestEncodeCommand(t *testing.T) {
	out, err := run(t, "encode", "--type", "block", "--hash", strings.Repeat("11", 32))
	require.NoError(t, err)
	assert.Equal(t, "02000000"+strings.Repeat("11", 32)+"\n", out)
}

func TestEncodePayload(t *testing.T) {
	out, err := run(t, "encode", "--type", "transaction", "--payload", "hello")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "01000000"))
	assert.Len(t, strings.TrimSpace(out), 72)
}

func TestEncodeUnknownType(t *testing.T) {
	_, err := run(t, "encode", "--type", "witness", "--hash", strings.Repeat("11", 32))
	assert.Error(t, err)
}

func TestDecodeCommand(t *testing.T) {
	out, err := run(t, "decode", "03000000"+strings.Repeat("ab", 32))
	require.NoError(t, err)
	assert.Contains(t, out, "type:  none")
	assert.Contains(t, out, "code:  3")
	assert.Contains(t, out, "hash:  "+strings.Repeat("ab", 32))
	assert.Contains(t, out, "valid: true")
}

func TestDecodeShort(t *testing.T) {
	_, err := run(t, "decode", "02000000"+strings.Repeat("11", 31))
	assert.Error(t, err)

	_, err = run(t, "decode", "0200")
	assert.Error(t, err)
}

func TestSizeCommand(t *testing.T) {
	out, err := run(t, "size")
	require.NoError(t, err)
	assert.Equal(t, "36\n", out)
}

func TestDedupeCommand(t *testing.T) {
	block := "02000000" + strings.Repeat("11", 32)
	tx := "01000000" + strings.Repeat("22", 32)
	invalid := "00000000" + strings.Repeat("00", 32)

	out, err := run(t, "dedupe", block, tx, block, invalid, tx)
	require.NoError(t, err)
	assert.Equal(t, block+"\n"+tx+"\n", out)
}

func TestDedupeBadInput(t *testing.T) {
	_, err := run(t, "dedupe")
	assert.Error(t, err)

	_, err = run(t, "dedupe", "02000000"+strings.Repeat("11", 32), "0200")
	assert.Error(t, err)
}
