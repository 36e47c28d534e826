// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package database

import "github.com/juju/errors"

const (
	// RelationName is the endpoint the charm requires a database on.
	RelationName = "database"

	// DatabaseName is the database the charm asks the provider for.
	DatabaseName = "names_db"
)

// ErrNoRelationData is returned when no database relation carries
// connection data yet.
const ErrNoRelationData = errors.ConstError("no database relation data available")

// ConnectionInfo holds what the workload needs to reach the database.
type ConnectionInfo struct {
	Host     string
	Port     string
	Username string
	Password string
}
