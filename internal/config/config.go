// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package config

import (
	"github.com/juju/errors"
	"github.com/juju/schema"
	"gopkg.in/juju/environschema.v1"
)

const (
	// ServerPortKey is the config key of the port the demo server
	// listens on.
	ServerPortKey = "server-port"

	// DefaultServerPort is used when server-port is not set.
	DefaultServerPort = 8000

	// ReservedPort is kept for administrative (SSH) access and is never
	// handed to the workload.
	ReservedPort = 22
)

const (
	// ErrReservedPort is returned when the configured port is reserved.
	ErrReservedPort = errors.ConstError("port is reserved")

	// ErrPortOutOfRange is returned when the configured port is not a
	// valid TCP port.
	ErrPortOutOfRange = errors.ConstError("port out of range")
)

// Config is the validated charm configuration.
type Config struct {
	ServerPort int
}

var configSchema = environschema.Fields{
	ServerPortKey: {
		Description: "Default port on which FastAPI is available.",
		Type:        environschema.Tint,
	},
}

var configDefaults = schema.Defaults{
	ServerPortKey: DefaultServerPort,
}

var configChecker = func() schema.Checker {
	fields, _, err := configSchema.ValidationSchema()
	if err != nil {
		panic(err)
	}
	return schema.FieldMap(fields, configDefaults)
}()

// Schema returns the charm config options the charm understands.
func Schema() environschema.Fields {
	return configSchema
}

// Parse coerces the raw config reported by config-get. Unknown keys are
// ignored. The result is not validated; see Validate.
func Parse(raw map[string]any) (Config, error) {
	coerced, err := configChecker.Coerce(raw, nil)
	if err != nil {
		return Config{}, errors.Annotate(err, "parsing charm config")
	}
	values := coerced.(map[string]any)
	return Config{
		ServerPort: values[ServerPortKey].(int),
	}, nil
}

// Validate checks the config can be applied to the workload.
func (c Config) Validate() error {
	if c.ServerPort == ReservedPort {
		return errors.Annotatef(ErrReservedPort, "server-port %d", c.ServerPort)
	}
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return errors.Annotatef(ErrPortOutOfRange, "server-port %d", c.ServerPort)
	}
	return nil
}
