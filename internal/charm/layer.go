// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package charm

import (
	"fmt"

	"github.com/canonical/fastapi-demo-operator/domain/database"
	"github.com/canonical/fastapi-demo-operator/internal/workload"
)

// Environment variables the demo server reads its database from.
const (
	EnvDBHost     = "DEMO_SERVER_DB_HOST"
	EnvDBPort     = "DEMO_SERVER_DB_PORT"
	EnvDBUser     = "DEMO_SERVER_DB_USER"
	EnvDBPassword = "DEMO_SERVER_DB_PASSWORD"
)

// desiredLayer returns the Pebble layer running the demo server on port,
// connected to the given database. Zero connection info leaves the
// database variables empty.
func desiredLayer(port int, info database.ConnectionInfo) workload.Layer {
	return workload.Layer{
		Summary:     "FastAPI demo service",
		Description: "pebble config layer for FastAPI demo server",
		Services: map[string]workload.Service{
			ServiceName: {
				Override: "replace",
				Summary:  "fastapi demo",
				Command:  fmt.Sprintf("uvicorn api_demo_server.app:app --host=0.0.0.0 --port=%d", port),
				Startup:  "enabled",
				Environment: map[string]string{
					EnvDBHost:     info.Host,
					EnvDBPort:     info.Port,
					EnvDBUser:     info.Username,
					EnvDBPassword: info.Password,
				},
			},
		},
	}
}
