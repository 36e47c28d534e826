// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package state

import (
	"context"

	"github.com/juju/errors"
	jc "github.com/juju/testing/checkers"
	"go.uber.org/mock/gomock"
	gc "gopkg.in/check.v1"

	loggertesting "github.com/canonical/fastapi-demo-operator/internal/logger/testing"
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

func (s *stateSuite) newState(c *gc.C) *State {
	return NewState(s.hook, "database", loggertesting.WrapCheckLog(c))
}

func (s *stateSuite) TestRelationIDs(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.hook.EXPECT().RelationIDs(gomock.Any(), "database").Return([]string{"database:3"}, nil)

	ids, err := s.newState(c).RelationIDs(context.Background())
	c.Assert(err, jc.ErrorIsNil)
	c.Check(ids, jc.DeepEquals, []string{"database:3"})
}

func (s *stateSuite) TestRelationIDsError(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.hook.EXPECT().RelationIDs(gomock.Any(), "database").Return(nil, errors.New("boom"))

	_, err := s.newState(c).RelationIDs(context.Background())
	c.Assert(err, gc.ErrorMatches, `getting "database" relations: boom`)
}

func (s *stateSuite) TestProviderData(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.hook.EXPECT().RemoteApplication(gomock.Any(), "database:3").Return("postgresql-k8s", nil)
	s.hook.EXPECT().ApplicationRelationData(gomock.Any(), "database:3", "postgresql-k8s").Return(map[string]string{
		"endpoints": "10.1.1.1:5432",
	}, nil)

	data, err := s.newState(c).ProviderData(context.Background(), "database:3")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(data, jc.DeepEquals, map[string]string{"endpoints": "10.1.1.1:5432"})
}

func (s *stateSuite) TestProviderDataNoRemoteApplication(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.hook.EXPECT().RemoteApplication(gomock.Any(), "database:3").Return("", nil)

	data, err := s.newState(c).ProviderData(context.Background(), "database:3")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(data, gc.HasLen, 0)
}

func (s *stateSuite) TestProviderDataError(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.hook.EXPECT().RemoteApplication(gomock.Any(), "database:3").Return("postgresql-k8s", nil)
	s.hook.EXPECT().ApplicationRelationData(gomock.Any(), "database:3", "postgresql-k8s").Return(nil, errors.New("permission denied"))

	_, err := s.newState(c).ProviderData(context.Background(), "database:3")
	c.Assert(err, gc.ErrorMatches, `getting data of "postgresql-k8s" on relation "database:3": permission denied`)
}

func (s *stateSuite) TestSetRequirerData(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.hook.EXPECT().SetApplicationRelationData(gomock.Any(), "database:3", map[string]string{"database": "names_db"})

	err := s.newState(c).SetRequirerData(context.Background(), "database:3", map[string]string{"database": "names_db"})
	c.Assert(err, jc.ErrorIsNil)
}

func (s *stateSuite) TestIsLeader(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.hook.EXPECT().IsLeader(gomock.Any()).Return(true, nil)

	leader, err := s.newState(c).IsLeader(context.Background())
	c.Assert(err, jc.ErrorIsNil)
	c.Check(leader, jc.IsTrue)
}
