// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	cfg "github.com/dusk-network/dusk-inventory/pkg/config"
	"github.com/dusk-network/dusk-inventory/pkg/util/nativeutils/logging"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetToLevel(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	logging.SetToLevel("warn")
	assert.Equal(t, log.WarnLevel, log.GetLevel())

	logging.SetToLevel("not-a-level")
	assert.Equal(t, log.TraceLevel, log.GetLevel())
}

func TestInitLogJSON(t *testing.T) {
	prev := cfg.Get()
	defer cfg.Mock(&prev)
	defer log.SetFormatter(&log.TextFormatter{})
	defer log.SetLevel(log.InfoLevel)
	defer log.SetOutput(os.Stderr)

	r := cfg.Get()
	r.Logger.Level = "debug"
	r.Logger.Format = "json"
	cfg.Mock(&r)

	buf := new(bytes.Buffer)
	logging.InitLog(buf)
	log.WithField("process", "test").Debug("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "test", entry["process"])
}
