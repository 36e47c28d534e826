// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package state

import (
	"context"

	"github.com/juju/errors"

	"github.com/canonical/fastapi-demo-operator/domain/peer"
)

// HookContext is the subset of hook tools used to reach the peer relation.
type HookContext interface {
	RelationIDs(ctx context.Context, endpoint string) ([]string, error)
	ApplicationRelationData(ctx context.Context, relationID, application string) (map[string]string, error)
	SetApplicationRelationData(ctx context.Context, relationID string, values map[string]string) error
	IsLeader(ctx context.Context) (bool, error)
}

// State stores values in the application data bag of the peer relation.
type State struct {
	hook        HookContext
	endpoint    string
	application string
}

// NewState returns a new State for the peer relation on endpoint, owned by
// the given application.
func NewState(hook HookContext, endpoint, application string) *State {
	return &State{
		hook:        hook,
		endpoint:    endpoint,
		application: application,
	}
}

// Get returns the raw value stored under key. The boolean is false when
// the key is not set. peer.ErrNoPeerRelation is returned when the relation
// does not exist.
func (st *State) Get(ctx context.Context, key string) (string, bool, error) {
	id, err := st.relationID(ctx)
	if err != nil {
		return "", false, errors.Trace(err)
	}
	data, err := st.hook.ApplicationRelationData(ctx, id, st.application)
	if err != nil {
		return "", false, errors.Annotatef(err, "reading peer data on relation %q", id)
	}
	value, ok := data[key]
	return value, ok && value != "", nil
}

// Set stores value under key, overwriting any existing value.
func (st *State) Set(ctx context.Context, key, value string) error {
	id, err := st.relationID(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	if err := st.hook.SetApplicationRelationData(ctx, id, map[string]string{key: value}); err != nil {
		return errors.Annotatef(err, "writing peer data on relation %q", id)
	}
	return nil
}

// IsLeader reports whether this unit may write application data.
func (st *State) IsLeader(ctx context.Context) (bool, error) {
	leader, err := st.hook.IsLeader(ctx)
	return leader, errors.Trace(err)
}

func (st *State) relationID(ctx context.Context) (string, error) {
	ids, err := st.hook.RelationIDs(ctx, st.endpoint)
	if err != nil {
		return "", errors.Annotatef(err, "getting %q relation", st.endpoint)
	}
	if len(ids) == 0 {
		return "", peer.ErrNoPeerRelation
	}
	return ids[0], nil
}
