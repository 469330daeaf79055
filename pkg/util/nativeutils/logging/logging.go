// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package logging

import (
	"io"

	cfg "github.com/dusk-network/dusk-inventory/pkg/config"
	log "github.com/sirupsen/logrus"
)

// InitLog applies the logger settings from the loaded configuration and
// directs the output to w.
func InitLog(w io.Writer) {
	// apply logger level from configurations
	SetToLevel(cfg.Get().Logger.Level)
	SetFormat(cfg.Get().Logger.Format)
	log.SetOutput(w)
}

// SetToLevel parses l and sets it as the global log level. An unparsable
// level falls back to trace.
func SetToLevel(l string) {
	level, err := log.ParseLevel(l)
	if err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(log.TraceLevel)
		log.Warnf("Parse logger level from config err: %v", err)
	}
}

// SetFormat switches to the JSON formatter when format is "json".
func SetFormat(format string) {
	if format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
		return
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
