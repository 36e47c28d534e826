// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package logger

import (
	"github.com/juju/loggo/v2"
)

// Logger is the interface the charm components log through.
type Logger interface {
	// Criticalf logs a message at the critical level.
	Criticalf(msg string, args ...any)

	// Errorf logs a message at the error level.
	Errorf(msg string, args ...any)

	// Warningf logs a message at the warning level.
	Warningf(msg string, args ...any)

	// Infof logs a message at the info level.
	Infof(msg string, args ...any)

	// Debugf logs a message at the debug level.
	Debugf(msg string, args ...any)

	// Tracef logs a message at the trace level.
	Tracef(msg string, args ...any)

	// IsDebugEnabled returns true if debug messages would be emitted.
	IsDebugEnabled() bool

	// Child returns a logger whose module name is this logger's name with
	// the given name appended.
	Child(name string) Logger
}

// Root is the module name all charm loggers live under.
const Root = "fastapi-demo"

// GetLogger returns a loggo backed Logger for the given module name.
func GetLogger(name string) Logger {
	return loggoLogger{logger: loggo.GetLogger(name)}
}

type loggoLogger struct {
	logger loggo.Logger
}

func (l loggoLogger) Criticalf(msg string, args ...any) {
	l.logger.Criticalf(msg, args...)
}

func (l loggoLogger) Errorf(msg string, args ...any) {
	l.logger.Errorf(msg, args...)
}

func (l loggoLogger) Warningf(msg string, args ...any) {
	l.logger.Warningf(msg, args...)
}

func (l loggoLogger) Infof(msg string, args ...any) {
	l.logger.Infof(msg, args...)
}

func (l loggoLogger) Debugf(msg string, args ...any) {
	l.logger.Debugf(msg, args...)
}

func (l loggoLogger) Tracef(msg string, args ...any) {
	l.logger.Tracef(msg, args...)
}

func (l loggoLogger) IsDebugEnabled() bool {
	return l.logger.IsDebugEnabled()
}

func (l loggoLogger) Child(name string) Logger {
	return loggoLogger{logger: l.logger.Child(name)}
}
