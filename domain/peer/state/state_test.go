// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package state

import (
	"context"

	"github.com/juju/errors"
	jc "github.com/juju/testing/checkers"
	"go.uber.org/mock/gomock"
	gc "gopkg.in/check.v1"

	"github.com/canonical/fastapi-demo-operator/domain/peer"
)

type stateSuite struct {
	hook *MockHookContext
}

var _ = gc.Suite(&stateSuite{})

func (s *stateSuite) setupMocks(c *gc.C) *gomock.Controller {
	ctrl := gomock.NewController(c)
	s.hook = NewMockHookContext(ctrl)
	return ctrl
}

func (s *stateSuite) newState() *State {
	return NewState(s.hook, "fastapi-peer", "fastapi-demo")
}

func (s *stateSuite) TestGet(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.hook.EXPECT().RelationIDs(gomock.Any(), "fastapi-peer").Return([]string{"fastapi-peer:1"}, nil)
	s.hook.EXPECT().ApplicationRelationData(gomock.Any(), "fastapi-peer:1", "fastapi-demo").Return(map[string]string{
		"unit_stats": `{"started_counter": 3}`,
	}, nil)

	value, ok, err := s.newState().Get(context.Background(), "unit_stats")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(ok, jc.IsTrue)
	c.Check(value, gc.Equals, `{"started_counter": 3}`)
}

func (s *stateSuite) TestGetMissingKey(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.hook.EXPECT().RelationIDs(gomock.Any(), "fastapi-peer").Return([]string{"fastapi-peer:1"}, nil)
	s.hook.EXPECT().ApplicationRelationData(gomock.Any(), "fastapi-peer:1", "fastapi-demo").Return(map[string]string{}, nil)

	_, ok, err := s.newState().Get(context.Background(), "unit_stats")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(ok, jc.IsFalse)
}

func (s *stateSuite) TestGetNoRelation(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.hook.EXPECT().RelationIDs(gomock.Any(), "fastapi-peer").Return(nil, nil)

	_, _, err := s.newState().Get(context.Background(), "unit_stats")
	c.Assert(err, jc.ErrorIs, peer.ErrNoPeerRelation)
}

func (s *stateSuite) TestSet(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.hook.EXPECT().RelationIDs(gomock.Any(), "fastapi-peer").Return([]string{"fastapi-peer:1"}, nil)
	s.hook.EXPECT().SetApplicationRelationData(gomock.Any(), "fastapi-peer:1", map[string]string{
		"unit_stats": `{"started_counter":4}`,
	})

	err := s.newState().Set(context.Background(), "unit_stats", `{"started_counter":4}`)
	c.Assert(err, jc.ErrorIsNil)
}

func (s *stateSuite) TestSetError(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.hook.EXPECT().RelationIDs(gomock.Any(), "fastapi-peer").Return([]string{"fastapi-peer:1"}, nil)
	s.hook.EXPECT().SetApplicationRelationData(gomock.Any(), "fastapi-peer:1", gomock.Any()).Return(errors.New("not the leader"))

	err := s.newState().Set(context.Background(), "unit_stats", "{}")
	c.Assert(err, gc.ErrorMatches, `writing peer data on relation "fastapi-peer:1": not the leader`)
}
