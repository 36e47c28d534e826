// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package testing

import (
	"fmt"

	"github.com/canonical/fastapi-demo-operator/internal/logger"
)

// CheckLog is an interface that can be used to log messages to a
// *testing.T or *check.C.
type CheckLog interface {
	Logf(string, ...any)
}

// WrapCheckLog returns a logger.Logger that writes to the given CheckLog.
func WrapCheckLog(log CheckLog) logger.Logger {
	return checkLogger{log: log, name: logger.Root}
}

type checkLogger struct {
	log  CheckLog
	name string
}

func (c checkLogger) Criticalf(msg string, args ...any) {
	c.logf("CRITICAL", msg, args...)
}

func (c checkLogger) Errorf(msg string, args ...any) {
	c.logf("ERROR", msg, args...)
}

func (c checkLogger) Warningf(msg string, args ...any) {
	c.logf("WARNING", msg, args...)
}

func (c checkLogger) Infof(msg string, args ...any) {
	c.logf("INFO", msg, args...)
}

func (c checkLogger) Debugf(msg string, args ...any) {
	c.logf("DEBUG", msg, args...)
}

func (c checkLogger) Tracef(msg string, args ...any) {
	c.logf("TRACE", msg, args...)
}

func (c checkLogger) IsDebugEnabled() bool {
	return true
}

func (c checkLogger) Child(name string) logger.Logger {
	return checkLogger{log: c.log, name: c.name + "." + name}
}

func (c checkLogger) logf(level, msg string, args ...any) {
	c.log.Logf(fmt.Sprintf("%s %s: %s", level, c.name, msg), args...)
}
