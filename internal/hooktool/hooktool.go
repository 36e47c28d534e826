// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package hooktool gives the charm typed access to the Juju hook tools
// (status-set, relation-get, action-set and friends).
package hooktool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/juju/collections/set"
	"github.com/juju/errors"

	"github.com/canonical/fastapi-demo-operator/core/network"
	"github.com/canonical/fastapi-demo-operator/core/status"
)

// Context runs hook tools on behalf of the unit described by its
// Environment.
type Context struct {
	runner Runner
	env    Environment
}

// NewContext returns a Context running tools through runner.
func NewContext(runner Runner, env Environment) *Context {
	return &Context{
		runner: runner,
		env:    env,
	}
}

// SetStatus sets the workload status of the unit.
func (c *Context) SetStatus(ctx context.Context, info status.StatusInfo) error {
	if !info.Status.KnownWorkloadStatus() {
		return errors.NotValidf("workload status %q", info.Status)
	}
	args := []string{info.Status.String()}
	if info.Message != "" {
		args = append(args, info.Message)
	}
	_, err := c.runner.Run(ctx, "status-set", args)
	return errors.Trace(err)
}

// SetWorkloadVersion sets the version of the workload shown in juju status.
func (c *Context) SetWorkloadVersion(ctx context.Context, version string) error {
	_, err := c.runner.Run(ctx, "application-version-set", []string{"--", version})
	return errors.Trace(err)
}

// OpenPort opens the given port range for the unit.
func (c *Context) OpenPort(ctx context.Context, portRange network.PortRange) error {
	_, err := c.runner.Run(ctx, "open-port", []string{portRange.String()})
	return errors.Trace(err)
}

// ClosePort closes the given port range for the unit.
func (c *Context) ClosePort(ctx context.Context, portRange network.PortRange) error {
	_, err := c.runner.Run(ctx, "close-port", []string{portRange.String()})
	return errors.Trace(err)
}

// OpenedPorts returns the port ranges currently opened by the unit.
func (c *Context) OpenedPorts(ctx context.Context) ([]network.PortRange, error) {
	var raw []string
	if err := c.runJSON(ctx, &raw, "opened-ports", "--format=json"); err != nil {
		return nil, errors.Trace(err)
	}
	result := make([]network.PortRange, 0, len(raw))
	for _, r := range raw {
		pr, err := network.ParsePortRange(r)
		if err != nil {
			return nil, errors.Annotatef(err, "parsing opened port %q", r)
		}
		result = append(result, pr)
	}
	return result, nil
}

// Config returns the charm config of the application.
func (c *Context) Config(ctx context.Context) (map[string]any, error) {
	var cfg map[string]any
	if err := c.runJSON(ctx, &cfg, "config-get", "--format=json"); err != nil {
		return nil, errors.Trace(err)
	}
	if cfg == nil {
		cfg = make(map[string]any)
	}
	return cfg, nil
}

// IsLeader reports whether the unit is the application leader.
func (c *Context) IsLeader(ctx context.Context) (bool, error) {
	var leader bool
	if err := c.runJSON(ctx, &leader, "is-leader", "--format=json"); err != nil {
		return false, errors.Trace(err)
	}
	return leader, nil
}

// RelationIDs returns the ids of all relations established on the named
// endpoint.
func (c *Context) RelationIDs(ctx context.Context, endpoint string) ([]string, error) {
	var ids []string
	if err := c.runJSON(ctx, &ids, "relation-ids", "--format=json", endpoint); err != nil {
		return nil, errors.Trace(err)
	}
	return ids, nil
}

// RemoteApplication returns the name of the application on the other side
// of the relation.
func (c *Context) RemoteApplication(ctx context.Context, relationID string) (string, error) {
	if relationID == c.env.RelationID && c.env.RemoteApplication != "" {
		return c.env.RemoteApplication, nil
	}
	var app string
	if err := c.runJSON(ctx, &app, "relation-list", "--format=json", "--app", "-r", relationID); err != nil {
		return "", errors.Trace(err)
	}
	return app, nil
}

// ApplicationRelationData returns the application data bag that the
// given application holds on the relation.
func (c *Context) ApplicationRelationData(ctx context.Context, relationID, application string) (map[string]string, error) {
	var data map[string]string
	if err := c.runJSON(ctx, &data, "relation-get", "--format=json", "--app", "-r", relationID, "-", application); err != nil {
		return nil, errors.Trace(err)
	}
	if data == nil {
		data = make(map[string]string)
	}
	return data, nil
}

// SetApplicationRelationData writes the given keys into this application's
// data bag on the relation. Only the leader may do this.
func (c *Context) SetApplicationRelationData(ctx context.Context, relationID string, values map[string]string) error {
	args := append([]string{"--app", "-r", relationID}, keyValues(values)...)
	_, err := c.runner.Run(ctx, "relation-set", args)
	return errors.Trace(err)
}

// ActionParams decodes the parameters of the running action into v.
func (c *Context) ActionParams(ctx context.Context, v any) error {
	return errors.Trace(c.runJSON(ctx, v, "action-get", "--format=json"))
}

// SetActionResults sets the results of the running action.
func (c *Context) SetActionResults(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	_, err := c.runner.Run(ctx, "action-set", keyValues(values))
	return errors.Trace(err)
}

// FailAction marks the running action as failed.
func (c *Context) FailAction(ctx context.Context, message string) error {
	_, err := c.runner.Run(ctx, "action-fail", []string{message})
	return errors.Trace(err)
}

// JujuLog sends a message to the unit's log on the controller.
func (c *Context) JujuLog(ctx context.Context, level, message string) error {
	_, err := c.runner.Run(ctx, "juju-log", []string{"-l", level, "--", message})
	return errors.Trace(err)
}

func (c *Context) runJSON(ctx context.Context, v any, tool string, args ...string) error {
	out, err := c.runner.Run(ctx, tool, args)
	if err != nil {
		return errors.Trace(err)
	}
	out = bytes.TrimSpace(out)
	if len(out) == 0 {
		return nil
	}
	if err := json.Unmarshal(out, v); err != nil {
		return errors.Annotatef(err, "decoding %s output", tool)
	}
	return nil
}

// keyValues renders the map as key=value arguments in key order.
func keyValues(values map[string]string) []string {
	keys := set.NewStrings()
	for k := range values {
		keys.Add(k)
	}

	args := make([]string, 0, keys.Size())
	for _, k := range keys.SortedValues() {
		args = append(args, fmt.Sprintf("%s=%s", k, values[k]))
	}
	return args
}
