// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package charm

import (
	"context"

	"github.com/juju/errors"

	"github.com/canonical/fastapi-demo-operator/internal/dispatch"
)

// Register exposes the charm's handlers on the given registry.
func Register(registry *dispatch.Registry, c *Charm) {
	registry.MustRegister(dispatch.Hook(ContainerName+"-pebble-ready"), c.withStatus(c.Reconcile))
	registry.MustRegister(dispatch.Hook("config-changed"), c.withStatus(c.Reconcile))
	registry.MustRegister(dispatch.Hook("start"), c.withStatus(c.CountStart))
	registry.MustRegister(dispatch.Hook("database-relation-created"), c.withStatus(c.RequestDatabase))
	registry.MustRegister(dispatch.Hook("database-relation-changed"), c.withStatus(c.Reconcile))
	registry.MustRegister(dispatch.Hook("database-relation-broken"), c.withStatus(c.DatabaseRemoved))
	registry.MustRegister(dispatch.Action(GetDBInfoAction), c.withStatus(c.GetDBInfo))
}

// withStatus reports the status the handler's outcome maps to.
func (c *Charm) withStatus(handler dispatch.Handler) dispatch.Handler {
	return func(ctx context.Context) (dispatch.Outcome, error) {
		outcome, err := handler(ctx)
		if err != nil {
			return outcome, errors.Trace(err)
		}
		if info, ok := outcome.Status(); ok {
			if err := c.cfg.Hook.SetStatus(ctx, info); err != nil {
				return outcome, errors.Trace(err)
			}
		}
		return outcome, nil
	}
}
