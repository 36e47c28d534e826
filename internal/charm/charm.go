// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package charm

import (
	"context"
	"fmt"

	"github.com/juju/errors"

	"github.com/canonical/fastapi-demo-operator/core/network"
	"github.com/canonical/fastapi-demo-operator/core/status"
	"github.com/canonical/fastapi-demo-operator/domain/database"
	"github.com/canonical/fastapi-demo-operator/domain/peer"
	"github.com/canonical/fastapi-demo-operator/internal/config"
	"github.com/canonical/fastapi-demo-operator/internal/dispatch"
	"github.com/canonical/fastapi-demo-operator/internal/logger"
	"github.com/canonical/fastapi-demo-operator/internal/workload"
	"github.com/canonical/fastapi-demo-operator/rpc/params"
)

const (
	// ContainerName is the workload container declared in metadata.yaml.
	ContainerName = "demo-server"

	// ServiceName is the Pebble service running the demo server.
	ServiceName = "fastapi-service"

	// LayerLabel is the label the charm's Pebble layer is added under.
	LayerLabel = "fastapi_demo"

	// GetDBInfoAction is the action reporting the database connection.
	GetDBInfoAction = "get-db-info"

	noDatabaseResult = "no database connected"
)

const (
	maintenanceMessage   = "Assembling pod spec"
	waitingPebbleMessage = "Waiting for Pebble in workload container"
	reservedPortMessage  = "Invalid port number, 22 is reserved for SSH"
)

// HookContext is the subset of hook tools the charm drives directly.
type HookContext interface {
	SetStatus(ctx context.Context, info status.StatusInfo) error
	SetWorkloadVersion(ctx context.Context, version string) error
	Config(ctx context.Context) (map[string]any, error)
	ActionParams(ctx context.Context, v any) error
	SetActionResults(ctx context.Context, values map[string]string) error
}

// Container is the workload container managed through Pebble.
type Container interface {
	CanConnect(ctx context.Context) bool
	Plan(ctx context.Context) (workload.Plan, error)
	AddLayer(ctx context.Context, label string, layer workload.Layer, combine bool) error
	Restart(ctx context.Context, service string) error
	HasService(ctx context.Context, service string) (bool, error)
}

// PortService keeps the unit's opened ports in line with the config.
type PortService interface {
	SetUnitPorts(ctx context.Context, portRanges []network.PortRange) error
}

// DatabaseService gives access to the database relation.
type DatabaseService interface {
	RequestDatabase(ctx context.Context, relationID string) error
	ConnectionInfo(ctx context.Context) (database.ConnectionInfo, error)
}

// PeerService gives access to the data shared between units.
type PeerService interface {
	IncrementStartedCounter(ctx context.Context) (int, error)
}

// VersionClient reports the version of the running workload.
type VersionClient interface {
	Version(ctx context.Context) (string, error)
}

// Config holds the dependencies of a Charm.
type Config struct {
	// RelationID is the relation the current hook fires for, if any.
	RelationID string

	Hook             HookContext
	Container        Container
	Ports            PortService
	Database         DatabaseService
	Peer             PeerService
	NewVersionClient func(port int) VersionClient
	Logger           logger.Logger
}

// Validate returns an error if the config cannot be used to build a Charm.
func (c Config) Validate() error {
	if c.Hook == nil {
		return errors.NotValidf("nil Hook")
	}
	if c.Container == nil {
		return errors.NotValidf("nil Container")
	}
	if c.Ports == nil {
		return errors.NotValidf("nil Ports")
	}
	if c.Database == nil {
		return errors.NotValidf("nil Database")
	}
	if c.Peer == nil {
		return errors.NotValidf("nil Peer")
	}
	if c.NewVersionClient == nil {
		return errors.NotValidf("nil NewVersionClient")
	}
	if c.Logger == nil {
		return errors.NotValidf("nil Logger")
	}
	return nil
}

// Charm reconciles the demo server workload with the charm config and
// the database relation.
type Charm struct {
	cfg    Config
	logger logger.Logger
}

// New returns a Charm for the given config.
func New(cfg Config) (*Charm, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &Charm{
		cfg:    cfg,
		logger: cfg.Logger,
	}, nil
}

// Reconcile brings the workload in line with the config and the database
// relation.
func (c *Charm) Reconcile(ctx context.Context) (dispatch.Outcome, error) {
	raw, err := c.cfg.Hook.Config(ctx)
	if err != nil {
		return dispatch.Outcome{}, errors.Trace(err)
	}
	cfg, err := config.Parse(raw)
	if err != nil {
		return dispatch.Outcome{}, errors.Trace(err)
	}
	if err := cfg.Validate(); errors.Is(err, config.ErrReservedPort) {
		c.logger.Warningf("refusing to use reserved port %d", cfg.ServerPort)
		return dispatch.Outcome{Kind: dispatch.Blocked, Message: reservedPortMessage}, nil
	} else if errors.Is(err, config.ErrPortOutOfRange) {
		return dispatch.Outcome{
			Kind:    dispatch.Blocked,
			Message: fmt.Sprintf("Invalid port number, %d is out of range", cfg.ServerPort),
		}, nil
	} else if err != nil {
		return dispatch.Outcome{}, errors.Trace(err)
	}

	portRange := network.PortRange{FromPort: cfg.ServerPort, ToPort: cfg.ServerPort, Protocol: "tcp"}
	if err := c.cfg.Ports.SetUnitPorts(ctx, []network.PortRange{portRange}); err != nil {
		return dispatch.Outcome{}, errors.Trace(err)
	}
	c.logger.Debugf("application port is %d", cfg.ServerPort)

	if err := c.cfg.Hook.SetStatus(ctx, status.StatusInfo{
		Status:  status.Maintenance,
		Message: maintenanceMessage,
	}); err != nil {
		return dispatch.Outcome{}, errors.Trace(err)
	}

	if !c.cfg.Container.CanConnect(ctx) {
		return dispatch.Outcome{Kind: dispatch.Waiting, Message: waitingPebbleMessage}, nil
	}

	info, err := c.cfg.Database.ConnectionInfo(ctx)
	if errors.Is(err, database.ErrNoRelationData) {
		c.logger.Debugf("no database relation data, workload runs without a database")
	} else if err != nil {
		return dispatch.Outcome{}, errors.Trace(err)
	}

	layer := desiredLayer(cfg.ServerPort, info)
	plan, err := c.cfg.Container.Plan(ctx)
	if err != nil {
		return dispatch.Outcome{}, errors.Trace(err)
	}
	if !workload.ServicesEqual(plan.Services, layer.Services) {
		if err := c.cfg.Container.AddLayer(ctx, LayerLabel, layer, true); err != nil {
			return dispatch.Outcome{}, errors.Trace(err)
		}
		c.logger.Infof("added updated layer %q to Pebble plan", LayerLabel)

		if err := c.cfg.Container.Restart(ctx, ServiceName); err != nil {
			return dispatch.Outcome{}, errors.Trace(err)
		}
		c.logger.Infof("restarted %q service", ServiceName)
	}

	if err := c.cfg.Hook.SetWorkloadVersion(ctx, c.version(ctx, cfg.ServerPort)); err != nil {
		return dispatch.Outcome{}, errors.Trace(err)
	}
	return dispatch.Outcome{Kind: dispatch.Active}, nil
}

// version asks the workload for its version. Failures are logged and
// reported as an empty version.
func (c *Charm) version(ctx context.Context, port int) string {
	exists, err := c.cfg.Container.HasService(ctx, ServiceName)
	if err != nil {
		c.logger.Warningf("unable to check for service %q: %v", ServiceName, err)
		return ""
	}
	if !exists {
		return ""
	}
	version, err := c.cfg.NewVersionClient(port).Version(ctx)
	if err != nil {
		c.logger.Warningf("unable to get version from API: %v", err)
		return ""
	}
	return version
}

// RequestDatabase asks the provider of the current database relation for
// the charm's database.
func (c *Charm) RequestDatabase(ctx context.Context) (dispatch.Outcome, error) {
	if c.cfg.RelationID == "" {
		return dispatch.Outcome{}, errors.NotFoundf("relation id for %q", database.RelationName)
	}
	if err := c.cfg.Database.RequestDatabase(ctx, c.cfg.RelationID); err != nil {
		return dispatch.Outcome{}, errors.Trace(err)
	}
	return dispatch.Outcome{Kind: dispatch.Done}, nil
}

// DatabaseRemoved reports that the workload is left without a database.
func (c *Charm) DatabaseRemoved(ctx context.Context) (dispatch.Outcome, error) {
	c.logger.Infof("database relation removed")
	return dispatch.Outcome{Kind: dispatch.NeedsRelation}, nil
}

// CountStart increments the number of times units of the application
// have started.
func (c *Charm) CountStart(ctx context.Context) (dispatch.Outcome, error) {
	count, err := c.cfg.Peer.IncrementStartedCounter(ctx)
	if errors.Is(err, peer.ErrNoPeerRelation) || errors.Is(err, peer.ErrNotLeader) {
		c.logger.Debugf("not counting start: %v", err)
		return dispatch.Outcome{Kind: dispatch.Done}, nil
	} else if err != nil {
		return dispatch.Outcome{}, errors.Trace(err)
	}
	c.logger.Infof("units have started %d times", count)
	return dispatch.Outcome{Kind: dispatch.Done}, nil
}

// GetDBInfo reports the database connection details as action results.
// The credentials are only included when show-password is set.
func (c *Charm) GetDBInfo(ctx context.Context) (dispatch.Outcome, error) {
	var args params.GetDBInfoArgs
	if err := c.cfg.Hook.ActionParams(ctx, &args); err != nil {
		return dispatch.Outcome{}, errors.Trace(err)
	}

	var (
		result  params.GetDBInfoResult
		outcome = dispatch.Outcome{Kind: dispatch.Done}
	)
	info, err := c.cfg.Database.ConnectionInfo(ctx)
	switch {
	case errors.Is(err, database.ErrNoRelationData):
		result.Result = noDatabaseResult
		outcome = dispatch.Outcome{Kind: dispatch.NeedsRelation}
	case err != nil:
		return dispatch.Outcome{}, errors.Trace(err)
	default:
		result.Host = info.Host
		result.Port = info.Port
		result.ShowPassword = args.ShowPassword
		if args.ShowPassword {
			result.Username = info.Username
			result.Password = info.Password
		}
	}

	if err := c.cfg.Hook.SetActionResults(ctx, result.Map()); err != nil {
		return dispatch.Outcome{}, errors.Trace(err)
	}
	return outcome, nil
}
