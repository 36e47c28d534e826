// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package logger

import (
	"context"
	"fmt"
	"io"

	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
)

// JujuLogger sends a log message to the controller, as the juju-log hook
// tool does.
type JujuLogger interface {
	JujuLog(ctx context.Context, level, message string) error
}

// JujuLogWriter is a loggo.Writer that forwards log entries to juju-log so
// they show up in `juju debug-log`. Entries that cannot be forwarded are
// written to the fallback writer instead.
type JujuLogWriter struct {
	sender   JujuLogger
	fallback loggo.Writer
}

// NewJujuLogWriter returns a writer sending entries through sender and
// falling back to w.
func NewJujuLogWriter(sender JujuLogger, w io.Writer) *JujuLogWriter {
	return &JujuLogWriter{
		sender:   sender,
		fallback: loggo.NewSimpleWriter(w, loggo.DefaultFormatter),
	}
}

// Write is part of the loggo.Writer interface.
func (w *JujuLogWriter) Write(entry loggo.Entry) {
	message := fmt.Sprintf("%s: %s", entry.Module, entry.Message)
	if err := w.sender.JujuLog(context.Background(), entry.Level.String(), message); err != nil {
		w.fallback.Write(entry)
	}
}

// ConfigureJujuLog installs a JujuLogWriter as the default loggo writer and
// applies the logging config.
func ConfigureJujuLog(sender JujuLogger, fallback io.Writer, config string) error {
	if config != "" {
		if err := loggo.ConfigureLoggers(config); err != nil {
			return errors.Annotatef(err, "configuring loggers with %q", config)
		}
	}
	if _, err := loggo.ReplaceDefaultWriter(NewJujuLogWriter(sender, fallback)); err != nil {
		return errors.Trace(err)
	}
	return nil
}
