// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package service

import (
	"context"
	"encoding/json"

	"github.com/juju/errors"

	"github.com/canonical/fastapi-demo-operator/domain/peer"
	"github.com/canonical/fastapi-demo-operator/internal/logger"
)

// State defines an interface for interacting with the underlying state.
type State interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	IsLeader(ctx context.Context) (bool, error)
}

// Service reads and writes JSON values shared by all units of the
// application. Writes are last-write-wins.
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

// GetPeerData decodes the value stored under key into v. A missing peer
// relation or key leaves v untouched.
func (s *Service) GetPeerData(ctx context.Context, key string, v any) error {
	raw, ok, err := s.st.Get(ctx, key)
	if errors.Is(err, peer.ErrNoPeerRelation) {
		return nil
	} else if err != nil {
		return errors.Trace(err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return errors.Annotatef(err, "decoding peer data %q", key)
	}
	return nil
}

// SetPeerData stores v as JSON under key. Only the leader may write.
func (s *Service) SetPeerData(ctx context.Context, key string, v any) error {
	leader, err := s.st.IsLeader(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	if !leader {
		return peer.ErrNotLeader
	}
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Annotatef(err, "encoding peer data %q", key)
	}
	return errors.Trace(s.st.Set(ctx, key, string(data)))
}

// IncrementStartedCounter adds one to the started counter and returns the
// new value.
func (s *Service) IncrementStartedCounter(ctx context.Context) (int, error) {
	var stats peer.UnitStats
	if err := s.GetPeerData(ctx, peer.UnitStatsKey, &stats); err != nil {
		return 0, errors.Trace(err)
	}
	stats.StartedCounter++
	if err := s.SetPeerData(ctx, peer.UnitStatsKey, stats); err != nil {
		return 0, errors.Trace(err)
	}
	s.logger.Debugf("started counter is now %d", stats.StartedCounter)
	return stats.StartedCounter, nil
}
