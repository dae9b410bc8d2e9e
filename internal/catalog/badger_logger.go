// BuildMyRig - PC Build Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/buildmyrig

package catalog

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/buildmyrig/internal/logging"
)

// badgerLogger routes Badger's printf-style logging into zerolog.
// Info and debug output is demoted to debug; Badger is chatty at info.
type badgerLogger struct {
	logger zerolog.Logger
}

func newBadgerLogger() *badgerLogger {
	return &badgerLogger{logger: logging.WithComponent("badger")}
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error().Msg(trimLine(format, args))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn().Msg(trimLine(format, args))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug().Msg(trimLine(format, args))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msg(trimLine(format, args))
}

func trimLine(format string, args []interface{}) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}
