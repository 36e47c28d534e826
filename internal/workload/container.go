// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package workload

import (
	"context"
	"fmt"
	"time"

	"github.com/canonical/pebble/client"
	"github.com/juju/clock"
	"github.com/juju/errors"

	"github.com/canonical/fastapi-demo-operator/internal/logger"
)

// DefaultChangeTimeout bounds how long a restart waits for Pebble to
// finish the change.
const DefaultChangeTimeout = 10 * time.Second

// PebbleClient is the subset of the Pebble client used to manage the
// workload.
type PebbleClient interface {
	SysInfo() (*client.SysInfo, error)
	PlanBytes(opts *client.PlanOptions) ([]byte, error)
	AddLayer(opts *client.AddLayerOptions) error
	Restart(opts *client.ServiceOptions) (string, error)
	WaitChange(id string, opts *client.WaitChangeOptions) (*client.Change, error)
	Services(opts *client.ServicesOptions) ([]*client.ServiceInfo, error)
}

// SocketPath returns where Juju mounts the Pebble socket of the named
// workload container inside the charm container.
func SocketPath(containerName string) string {
	return fmt.Sprintf("/charm/containers/%s/pebble.socket", containerName)
}

// Container manages a workload container through its Pebble API.
type Container struct {
	name   string
	client PebbleClient
	clock  clock.Clock
	logger logger.Logger
}

// NewContainerFromClient returns a Container using the given client.
func NewContainerFromClient(name string, client PebbleClient, clock clock.Clock, logger logger.Logger) *Container {
	return &Container{
		name:   name,
		client: client,
		clock:  clock,
		logger: logger,
	}
}

// CanConnect reports whether Pebble in the container is reachable.
func (c *Container) CanConnect(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	if _, err := c.client.SysInfo(); err != nil {
		c.logger.Debugf("cannot connect to pebble in container %q: %v", c.name, err)
		return false
	}
	return true
}

// Plan returns the plan Pebble is currently running with.
func (c *Container) Plan(ctx context.Context) (Plan, error) {
	data, err := c.client.PlanBytes(&client.PlanOptions{})
	if err != nil {
		return Plan{}, errors.Annotatef(err, "getting plan of container %q", c.name)
	}
	return ParsePlan(data)
}

// AddLayer adds the layer to the plan under the given label. When combine
// is true an existing layer with the same label is merged with it.
func (c *Container) AddLayer(ctx context.Context, label string, layer Layer, combine bool) error {
	data, err := layer.Marshal()
	if err != nil {
		return errors.Trace(err)
	}
	err = c.client.AddLayer(&client.AddLayerOptions{
		Combine:   combine,
		Label:     label,
		LayerData: data,
	})
	if err != nil {
		return errors.Annotatef(err, "adding layer %q to container %q", label, c.name)
	}
	return nil
}

// Restart restarts the named service, starting it if it is not running,
// and waits for the change to complete.
func (c *Container) Restart(ctx context.Context, service string) error {
	changeID, err := c.client.Restart(&client.ServiceOptions{Names: []string{service}})
	if err != nil {
		return errors.Annotatef(err, "restarting service %q", service)
	}

	timeout := DefaultChangeTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := deadline.Sub(c.clock.Now()); remaining < timeout {
			timeout = remaining
		}
	}
	change, err := c.client.WaitChange(changeID, &client.WaitChangeOptions{Timeout: timeout})
	if err != nil {
		return errors.Annotatef(err, "waiting for restart of service %q", service)
	}
	if change.Err != "" {
		return errors.Errorf("restarting service %q: %s", service, change.Err)
	}
	return nil
}

// HasService reports whether the plan defines the named service.
func (c *Container) HasService(ctx context.Context, service string) (bool, error) {
	infos, err := c.client.Services(&client.ServicesOptions{Names: []string{service}})
	if err != nil {
		return false, errors.Annotatef(err, "getting service %q", service)
	}
	for _, info := range infos {
		if info.Name == service {
			return true, nil
		}
	}
	return false, nil
}
