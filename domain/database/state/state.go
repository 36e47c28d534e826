// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package state

import (
	"context"

	"github.com/juju/errors"

	"github.com/canonical/fastapi-demo-operator/internal/logger"
)

// HookContext is the subset of hook tools used to read and write database
// relation data.
type HookContext interface {
	RelationIDs(ctx context.Context, endpoint string) ([]string, error)
	RemoteApplication(ctx context.Context, relationID string) (string, error)
	ApplicationRelationData(ctx context.Context, relationID, application string) (map[string]string, error)
	SetApplicationRelationData(ctx context.Context, relationID string, values map[string]string) error
	IsLeader(ctx context.Context) (bool, error)
}

// State represents a type for interacting with the database relation data.
type State struct {
	hook     HookContext
	endpoint string
	logger   logger.Logger
}

// NewState returns a new State for the relations on the given endpoint.
func NewState(hook HookContext, endpoint string, logger logger.Logger) *State {
	return &State{
		hook:     hook,
		endpoint: endpoint,
		logger:   logger,
	}
}

// RelationIDs returns the ids of the established database relations.
func (st *State) RelationIDs(ctx context.Context) ([]string, error) {
	ids, err := st.hook.RelationIDs(ctx, st.endpoint)
	if err != nil {
		return nil, errors.Annotatef(err, "getting %q relations", st.endpoint)
	}
	return ids, nil
}

// ProviderData returns the application data the database provider
// published on the relation.
func (st *State) ProviderData(ctx context.Context, relationID string) (map[string]string, error) {
	app, err := st.hook.RemoteApplication(ctx, relationID)
	if err != nil {
		return nil, errors.Annotatef(err, "getting remote application of relation %q", relationID)
	}
	if app == "" {
		st.logger.Debugf("relation %q has no remote application yet", relationID)
		return nil, nil
	}
	data, err := st.hook.ApplicationRelationData(ctx, relationID, app)
	if err != nil {
		return nil, errors.Annotatef(err, "getting data of %q on relation %q", app, relationID)
	}
	return data, nil
}

// SetRequirerData writes the given keys into this application's data bag
// on the relation.
func (st *State) SetRequirerData(ctx context.Context, relationID string, values map[string]string) error {
	if err := st.hook.SetApplicationRelationData(ctx, relationID, values); err != nil {
		return errors.Annotatef(err, "setting data on relation %q", relationID)
	}
	return nil
}

// IsLeader reports whether this unit may write application data.
func (st *State) IsLeader(ctx context.Context) (bool, error) {
	leader, err := st.hook.IsLeader(ctx)
	return leader, errors.Trace(err)
}
