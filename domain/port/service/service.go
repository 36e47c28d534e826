// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package service

import (
	"context"

	"github.com/juju/collections/set"
	"github.com/juju/errors"

	"github.com/canonical/fastapi-demo-operator/core/network"
	"github.com/canonical/fastapi-demo-operator/internal/logger"
)

// State describes retrieval and persistence methods for unit ports.
type State interface {
	// GetUnitOpenedPorts returns the port ranges currently opened by the
	// unit.
	GetUnitOpenedPorts(ctx context.Context) ([]network.PortRange, error)

	// OpenPort opens a single port range.
	OpenPort(ctx context.Context, portRange network.PortRange) error

	// ClosePort closes a single port range.
	ClosePort(ctx context.Context, portRange network.PortRange) error
}

// Service provides the API for managing the opened ports of the unit.
type Service struct {
	st     State
	logger logger.Logger
}

// NewService returns a new Service for managing opened ports.
func NewService(st State, logger logger.Logger) *Service {
	return &Service{
		st:     st,
		logger: logger,
	}
}

// SetUnitPorts makes the unit's opened ports exactly the given port
// ranges. Ranges already opened are left alone, stale ranges are closed
// before the missing ones are opened.
func (s *Service) SetUnitPorts(ctx context.Context, portRanges []network.PortRange) error {
	wanted := make(map[string]network.PortRange, len(portRanges))
	for _, pr := range portRanges {
		if err := pr.Validate(); err != nil {
			return errors.Annotatef(err, "port range %q", pr.String())
		}
		wanted[pr.String()] = pr
	}

	opened, err := s.st.GetUnitOpenedPorts(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	current := make(map[string]network.PortRange, len(opened))
	for _, pr := range opened {
		current[pr.String()] = pr
	}

	wantedKeys := set.NewStrings(keys(wanted)...)
	currentKeys := set.NewStrings(keys(current)...)

	for _, key := range currentKeys.Difference(wantedKeys).SortedValues() {
		s.logger.Debugf("closing port %s", key)
		if err := s.st.ClosePort(ctx, current[key]); err != nil {
			return errors.Annotatef(err, "closing port %s", key)
		}
	}
	for _, key := range wantedKeys.Difference(currentKeys).SortedValues() {
		s.logger.Debugf("opening port %s", key)
		if err := s.st.OpenPort(ctx, wanted[key]); err != nil {
			return errors.Annotatef(err, "opening port %s", key)
		}
	}
	return nil
}

func keys(m map[string]network.PortRange) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	return result
}
