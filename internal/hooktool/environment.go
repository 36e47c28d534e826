// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package hooktool

import (
	"github.com/juju/errors"
	"github.com/juju/names/v5"
)

// Environment holds the hook context Juju passes to the charm through
// environment variables.
type Environment struct {
	// UnitName is the name of the unit running the hook, e.g.
	// "fastapi-demo/0".
	UnitName string

	// ApplicationName is the application the unit belongs to.
	ApplicationName string

	// ModelName is the model the unit is deployed in.
	ModelName string

	// DispatchPath is the hook or action being run, e.g.
	// "hooks/config-changed" or "actions/get-db-info".
	DispatchPath string

	// RelationID is the relation the hook was fired for, if any.
	RelationID string

	// RemoteApplication is the application on the other side of
	// RelationID, if any.
	RemoteApplication string

	// WorkloadName is the container a pebble-ready hook was fired for.
	WorkloadName string

	// ActionName is set when running an action.
	ActionName string

	// CharmDir is the directory the charm was unpacked to.
	CharmDir string
}

// EnvironmentFromLookup builds an Environment from the given lookup
// function, typically os.Getenv.
func EnvironmentFromLookup(getenv func(string) string) (Environment, error) {
	unitName := getenv("JUJU_UNIT_NAME")
	if unitName == "" {
		return Environment{}, errors.NotFoundf("JUJU_UNIT_NAME")
	}
	if !names.IsValidUnit(unitName) {
		return Environment{}, errors.NotValidf("unit name %q", unitName)
	}
	appName, err := names.UnitApplication(unitName)
	if err != nil {
		return Environment{}, errors.Trace(err)
	}
	return Environment{
		UnitName:          unitName,
		ApplicationName:   appName,
		ModelName:         getenv("JUJU_MODEL_NAME"),
		DispatchPath:      getenv("JUJU_DISPATCH_PATH"),
		RelationID:        getenv("JUJU_RELATION_ID"),
		RemoteApplication: getenv("JUJU_REMOTE_APP"),
		WorkloadName:      getenv("JUJU_WORKLOAD_NAME"),
		ActionName:        getenv("JUJU_ACTION_NAME"),
		CharmDir:          getenv("JUJU_CHARM_DIR"),
	}, nil
}
