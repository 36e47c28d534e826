// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package runhook

import (
	"context"
	"os"
	"time"

	"github.com/canonical/pebble/client"
	"github.com/juju/clock"
	"github.com/juju/cmd/v4"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	"github.com/canonical/fastapi-demo-operator/api/client/demoserver"
	"github.com/canonical/fastapi-demo-operator/domain/database"
	databaseservice "github.com/canonical/fastapi-demo-operator/domain/database/service"
	databasestate "github.com/canonical/fastapi-demo-operator/domain/database/state"
	"github.com/canonical/fastapi-demo-operator/domain/peer"
	peerservice "github.com/canonical/fastapi-demo-operator/domain/peer/service"
	peerstate "github.com/canonical/fastapi-demo-operator/domain/peer/state"
	portservice "github.com/canonical/fastapi-demo-operator/domain/port/service"
	portstate "github.com/canonical/fastapi-demo-operator/domain/port/state"
	"github.com/canonical/fastapi-demo-operator/internal/charm"
	"github.com/canonical/fastapi-demo-operator/internal/dispatch"
	"github.com/canonical/fastapi-demo-operator/internal/hooktool"
	"github.com/canonical/fastapi-demo-operator/internal/logger"
	"github.com/canonical/fastapi-demo-operator/internal/workload"
)

const (
	defaultLogConfig = logger.Root + "=INFO"

	// hookTimeout bounds a single dispatch. Juju kills hooks that run for
	// much longer than this anyway.
	hookTimeout = 5 * time.Minute
)

// dispatchCommand runs the charm for the hook or action Juju dispatched.
type dispatchCommand struct {
	cmd.CommandBase

	getenv    func(string) string
	clock     clock.Clock
	newRunner func(dir string) hooktool.Runner
	newPebble func(socket string) (workload.PebbleClient, error)

	// logConfig is the loggo configuration applied before dispatching.
	logConfig string
	// pebbleSocket overrides the socket of the workload container.
	pebbleSocket string
	// dispatchPath overrides JUJU_DISPATCH_PATH.
	dispatchPath string
}

// NewDispatchCommand returns the command run by the charm's dispatch
// script.
func NewDispatchCommand() cmd.Command {
	return &dispatchCommand{
		getenv: os.Getenv,
		clock:  clock.WallClock,
		newRunner: func(dir string) hooktool.Runner {
			return hooktool.ExecRunner{WorkingDir: dir}
		},
		newPebble: func(socket string) (workload.PebbleClient, error) {
			return client.New(&client.Config{Socket: socket})
		},
	}
}

// Info is part of the cmd.Command interface.
func (c *dispatchCommand) Info() *cmd.Info {
	return &cmd.Info{
		Name:    "fastapi-demo",
		Args:    "[hooks/<name> | actions/<name>]",
		Purpose: "Run the fastapi-demo charm for a hook or action.",
		Doc: `
Runs the handler for the hook or action Juju is dispatching, as named by
JUJU_DISPATCH_PATH. A dispatch path given as argument takes precedence.
`,
		Examples: "fastapi-demo hooks/config-changed\n",
	}
}

// SetFlags is part of the cmd.Command interface.
func (c *dispatchCommand) SetFlags(f *gnuflag.FlagSet) {
	f.StringVar(&c.logConfig, "log-config", defaultLogConfig, "loggo configuration applied to charm logging")
	f.StringVar(&c.pebbleSocket, "pebble-socket", "", "path of the workload container's Pebble socket")
}

// Init is part of the cmd.Command interface.
func (c *dispatchCommand) Init(args []string) error {
	if len(args) == 0 {
		return nil
	}
	c.dispatchPath = args[0]
	return cmd.CheckEmpty(args[1:])
}

// Run is part of the cmd.Command interface.
func (c *dispatchCommand) Run(ctx *cmd.Context) error {
	env, err := hooktool.EnvironmentFromLookup(c.getenv)
	if err != nil {
		return errors.Trace(err)
	}
	dispatchPath := env.DispatchPath
	if c.dispatchPath != "" {
		dispatchPath = c.dispatchPath
	}
	event, err := dispatch.ParseDispatchPath(dispatchPath)
	if err != nil {
		return errors.Trace(err)
	}

	hook := hooktool.NewContext(c.newRunner(env.CharmDir), env)
	if err := logger.ConfigureJujuLog(hook, ctx.Stderr, c.logConfig); err != nil {
		return errors.Trace(err)
	}
	log := logger.GetLogger(logger.Root)

	registry, err := c.newRegistry(env, hook, log)
	if err != nil {
		return errors.Trace(err)
	}

	stdCtx, cancel := context.WithTimeout(context.Background(), hookTimeout)
	defer cancel()

	start := c.clock.Now()
	outcome, err := registry.Dispatch(stdCtx, event)
	log.Debugf("%s on %s took %v", event, env.UnitName, c.clock.Now().Sub(start))
	if err != nil {
		log.Errorf("%s failed: %v", event, err)
		if event.IsAction() {
			if failErr := hook.FailAction(stdCtx, err.Error()); failErr != nil {
				log.Warningf("cannot fail action %q: %v", event.Name, failErr)
			}
		}
		return errors.Trace(err)
	}
	if outcome.Aborted() {
		log.Infof("%s stopped early: %s", event, outcome.Kind)
	}
	return nil
}

func (c *dispatchCommand) newRegistry(env hooktool.Environment, hook *hooktool.Context, log logger.Logger) (*dispatch.Registry, error) {
	socket := c.pebbleSocket
	if socket == "" {
		socket = workload.SocketPath(charm.ContainerName)
	}
	pebble, err := c.newPebble(socket)
	if err != nil {
		return nil, errors.Annotatef(err, "creating pebble client for container %q", charm.ContainerName)
	}

	ch, err := charm.New(charm.Config{
		RelationID: env.RelationID,
		Hook:       hook,
		Container:  workload.NewContainerFromClient(charm.ContainerName, pebble, c.clock, log.Child("workload")),
		Ports: portservice.NewService(
			portstate.NewState(hook),
			log.Child("port"),
		),
		Database: databaseservice.NewService(
			databasestate.NewState(hook, database.RelationName, log.Child("database")),
			log.Child("database"),
		),
		Peer: peerservice.NewService(
			peerstate.NewState(hook, peer.RelationName, env.ApplicationName),
			log.Child("peer"),
		),
		NewVersionClient: func(port int) charm.VersionClient {
			return demoserver.NewClient(port)
		},
		Logger: log.Child("charm"),
	})
	if err != nil {
		return nil, errors.Trace(err)
	}

	registry := dispatch.NewRegistry(log.Child("dispatch"))
	charm.Register(registry, ch)
	return registry, nil
}
