// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package service

import (
	"context"
	"net"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/naturalsort"

	"github.com/canonical/fastapi-demo-operator/domain/database"
	"github.com/canonical/fastapi-demo-operator/internal/logger"
)

// State defines an interface for interacting with the underlying state.
type State interface {
	RelationIDs(ctx context.Context) ([]string, error)
	ProviderData(ctx context.Context, relationID string) (map[string]string, error)
	SetRequirerData(ctx context.Context, relationID string, values map[string]string) error
	IsLeader(ctx context.Context) (bool, error)
}

// Service provides the database connection details the charm hands to the
// workload.
type Service struct {
	st     State
	logger logger.Logger
}

// NewService returns a new Service for interacting with the underlying state.
func NewService(st State, logger logger.Logger) *Service {
	return &Service{
		st:     st,
		logger: logger,
	}
}

// RequestDatabase asks the provider on the given relation for the charm's
// database. Only the leader writes the request; other units do nothing.
func (s *Service) RequestDatabase(ctx context.Context, relationID string) error {
	leader, err := s.st.IsLeader(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	if !leader {
		s.logger.Debugf("not the leader, leaving database request on relation %q to the leader", relationID)
		return nil
	}
	err = s.st.SetRequirerData(ctx, relationID, map[string]string{
		"database": database.DatabaseName,
	})
	if err != nil {
		return errors.Trace(err)
	}
	s.logger.Infof("requested database %q on relation %q", database.DatabaseName, relationID)
	return nil
}

// ConnectionInfo returns the connection details published on the first
// database relation, in relation id order, that has any. It returns database.ErrNoRelationData
// when there are none.
func (s *Service) ConnectionInfo(ctx context.Context) (database.ConnectionInfo, error) {
	ids, err := s.st.RelationIDs(ctx)
	if err != nil {
		return database.ConnectionInfo{}, errors.Trace(err)
	}
	s.logger.Debugf("found database relations %v", ids)

	for _, id := range naturalsort.Sort(ids) {
		data, err := s.st.ProviderData(ctx, id)
		if err != nil {
			return database.ConnectionInfo{}, errors.Trace(err)
		}
		if data["endpoints"] == "" {
			continue
		}
		s.logger.Infof("database endpoints on relation %q are %s", id, data["endpoints"])

		host, port, err := parseEndpoints(data["endpoints"])
		if err != nil {
			return database.ConnectionInfo{}, errors.Annotatef(err, "relation %q", id)
		}
		return database.ConnectionInfo{
			Host:     host,
			Port:     port,
			Username: data["username"],
			Password: data["password"],
		}, nil
	}
	return database.ConnectionInfo{}, database.ErrNoRelationData
}

// parseEndpoints returns the host and port of the first of a comma
// separated list of host:port endpoints.
func parseEndpoints(endpoints string) (string, string, error) {
	first, _, _ := strings.Cut(endpoints, ",")
	host, port, err := net.SplitHostPort(strings.TrimSpace(first))
	if err != nil {
		return "", "", errors.NotValidf("database endpoints %q", endpoints)
	}
	return host, port, nil
}
