// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package service

import (
	"context"

	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	"go.uber.org/mock/gomock"
	gc "gopkg.in/check.v1"

	"github.com/canonical/fastapi-demo-operator/domain/peer"
	loggertesting "github.com/canonical/fastapi-demo-operator/internal/logger/testing"
)

type serviceSuite struct {
	testing.IsolationSuite
	state *MockState
}

var _ = gc.Suite(&serviceSuite{})

func (s *serviceSuite) setupMocks(c *gc.C) *gomock.Controller {
	ctrl := gomock.NewController(c)
	s.state = NewMockState(ctrl)
	return ctrl
}

func (s *serviceSuite) newService(c *gc.C) *Service {
	return NewService(s.state, loggertesting.WrapCheckLog(c))
}

func (s *serviceSuite) TestIncrementStartedCounterFromNothing(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.state.EXPECT().Get(gomock.Any(), "unit_stats").Return("", false, nil)
	s.state.EXPECT().IsLeader(gomock.Any()).Return(true, nil)
	s.state.EXPECT().Set(gomock.Any(), "unit_stats", `{"started_counter":1}`)

	count, err := s.newService(c).IncrementStartedCounter(context.Background())
	c.Assert(err, jc.ErrorIsNil)
	c.Check(count, gc.Equals, 1)
}

func (s *serviceSuite) TestIncrementStartedCounter(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.state.EXPECT().Get(gomock.Any(), "unit_stats").Return(`{"started_counter": 41}`, true, nil)
	s.state.EXPECT().IsLeader(gomock.Any()).Return(true, nil)
	s.state.EXPECT().Set(gomock.Any(), "unit_stats", `{"started_counter":42}`)

	count, err := s.newService(c).IncrementStartedCounter(context.Background())
	c.Assert(err, jc.ErrorIsNil)
	c.Check(count, gc.Equals, 42)
}

func (s *serviceSuite) TestIncrementStartedCounterStringValue(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.state.EXPECT().Get(gomock.Any(), "unit_stats").Return(`{"started_counter":"3"}`, true, nil)
	s.state.EXPECT().IsLeader(gomock.Any()).Return(true, nil)
	s.state.EXPECT().Set(gomock.Any(), "unit_stats", `{"started_counter":4}`)

	count, err := s.newService(c).IncrementStartedCounter(context.Background())
	c.Assert(err, jc.ErrorIsNil)
	c.Check(count, gc.Equals, 4)
}

func (s *serviceSuite) TestIncrementStartedCounterInvalidValue(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.state.EXPECT().Get(gomock.Any(), "unit_stats").Return(`{"started_counter":"three"}`, true, nil)

	_, err := s.newService(c).IncrementStartedCounter(context.Background())
	c.Assert(err, gc.ErrorMatches, `decoding peer data "unit_stats": started counter "three" not valid`)
}

func (s *serviceSuite) TestIncrementStartedCounterNotLeader(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.state.EXPECT().Get(gomock.Any(), "unit_stats").Return(`{"started_counter": 1}`, true, nil)
	s.state.EXPECT().IsLeader(gomock.Any()).Return(false, nil)

	_, err := s.newService(c).IncrementStartedCounter(context.Background())
	c.Assert(err, jc.ErrorIs, peer.ErrNotLeader)
}

func (s *serviceSuite) TestIncrementStartedCounterNoPeerRelation(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.state.EXPECT().Get(gomock.Any(), "unit_stats").Return("", false, peer.ErrNoPeerRelation)
	s.state.EXPECT().IsLeader(gomock.Any()).Return(true, nil)
	s.state.EXPECT().Set(gomock.Any(), "unit_stats", `{"started_counter":1}`).Return(peer.ErrNoPeerRelation)

	_, err := s.newService(c).IncrementStartedCounter(context.Background())
	c.Assert(err, jc.ErrorIs, peer.ErrNoPeerRelation)
}

func (s *serviceSuite) TestGetPeerDataMissingRelation(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.state.EXPECT().Get(gomock.Any(), "unit_stats").Return("", false, peer.ErrNoPeerRelation)

	stats := peer.UnitStats{StartedCounter: 7}
	err := s.newService(c).GetPeerData(context.Background(), "unit_stats", &stats)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(stats.StartedCounter, gc.Equals, 7)
}

func (s *serviceSuite) TestGetPeerDataBadJSON(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.state.EXPECT().Get(gomock.Any(), "unit_stats").Return("{", true, nil)

	var stats peer.UnitStats
	err := s.newService(c).GetPeerData(context.Background(), "unit_stats", &stats)
	c.Assert(err, gc.ErrorMatches, `decoding peer data "unit_stats": .*`)
}

func (s *serviceSuite) TestGetPeerDataError(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.state.EXPECT().Get(gomock.Any(), "unit_stats").Return("", false, errors.New("boom"))

	var stats peer.UnitStats
	err := s.newService(c).GetPeerData(context.Background(), "unit_stats", &stats)
	c.Assert(err, gc.ErrorMatches, "boom")
}
