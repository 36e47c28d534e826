// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package state

import (
	"context"

	"github.com/juju/errors"

	"github.com/canonical/fastapi-demo-operator/core/network"
)

// HookContext is the subset of hook tools that manage unit ports.
type HookContext interface {
	OpenedPorts(ctx context.Context) ([]network.PortRange, error)
	OpenPort(ctx context.Context, portRange network.PortRange) error
	ClosePort(ctx context.Context, portRange network.PortRange) error
}

// State manages the ports opened by the unit through the hook tools.
type State struct {
	hook HookContext
}

// NewState returns a new State backed by the given hook context.
func NewState(hook HookContext) *State {
	return &State{hook: hook}
}

// GetUnitOpenedPorts returns the port ranges opened by the unit.
func (st *State) GetUnitOpenedPorts(ctx context.Context) ([]network.PortRange, error) {
	opened, err := st.hook.OpenedPorts(ctx)
	if err != nil {
		return nil, errors.Annotate(err, "getting opened ports")
	}
	return opened, nil
}

// OpenPort opens the given port range.
func (st *State) OpenPort(ctx context.Context, portRange network.PortRange) error {
	return errors.Trace(st.hook.OpenPort(ctx, portRange))
}

// ClosePort closes the given port range.
func (st *State) ClosePort(ctx context.Context, portRange network.PortRange) error {
	return errors.Trace(st.hook.ClosePort(ctx, portRange))
}
