package characterdraft_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/d20forge/srd35-engine/internal/entities/srd35"
	"github.com/d20forge/srd35-engine/internal/errors"
	"github.com/d20forge/srd35-engine/internal/pkg/clock"
	characterdraft "github.com/d20forge/srd35-engine/internal/repositories/character_draft"
	"github.com/d20forge/srd35-engine/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    characterdraft.Repository
	server  *miniredis.Miniredis
	clock   *clock.Fixed
	cleanup func()
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = &clock.Fixed{T: time.Unix(1700000000, 0)}

	server, client, cleanup := testutils.CreateTestRedisServer(s.T())
	s.server = server
	s.cleanup = cleanup

	repo, err := characterdraft.NewRedis(&characterdraft.RedisConfig{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	draft := testutils.CreateTestDraft("draft_123", "player_456")

	createOutput, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: draft})
	s.Require().NoError(err)
	s.Equal(int64(1700000000), createOutput.Draft.CreatedAt)
	s.Equal(int64(1700000000), createOutput.Draft.UpdatedAt)

	getOutput, err := s.repo.Get(s.ctx, characterdraft.GetInput{ID: "draft_123"})
	s.Require().NoError(err)
	s.Equal("draft_123", getOutput.Draft.ID)
	s.Equal("Mialee", getOutput.Draft.Name)
	s.Equal("elf", getOutput.Draft.RaceID)
	s.True(getOutput.Draft.Progress.HasStep(srd35.ProgressStepName))
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	s.Run("nil draft", func() {
		_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("missing ID", func() {
		draft := testutils.CreateTestDraft("", "player_456")
		_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: draft})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("missing player ID", func() {
		draft := testutils.CreateTestDraft("draft_123", "")
		_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: draft})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestCreateReplacesExistingDraft() {
	first := testutils.CreateTestDraft("draft_old", "player_456")
	_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: first})
	s.Require().NoError(err)

	second := testutils.CreateTestDraft("draft_new", "player_456")
	_, err = s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: second})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, characterdraft.GetInput{ID: "draft_old"})
	s.True(errors.IsNotFound(err), "old draft is replaced")

	getOutput, err := s.repo.GetByPlayerID(s.ctx, characterdraft.GetByPlayerIDInput{PlayerID: "player_456"})
	s.Require().NoError(err)
	s.Equal("draft_new", getOutput.Draft.ID)
}

func (s *RedisRepositoryTestSuite) TestCreateSetsDefaultTTL() {
	draft := testutils.CreateTestDraft("draft_123", "player_456")

	_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: draft})
	s.Require().NoError(err)

	s.Equal(24*time.Hour, s.server.TTL("draft:draft_123"))
	s.Equal(time.Duration(0), s.server.TTL("draft:player:player_456"), "player mapping does not expire")
}

func (s *RedisRepositoryTestSuite) TestCreateHonorsExplicitExpiry() {
	draft := testutils.CreateTestDraft("draft_123", "player_456")
	draft.ExpiresAt = s.clock.T.Add(2 * time.Hour).Unix()

	_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: draft})
	s.Require().NoError(err)

	s.Equal(2*time.Hour, s.server.TTL("draft:draft_123"))
}

func (s *RedisRepositoryTestSuite) TestCreateRejectsExpiredDraft() {
	draft := testutils.CreateTestDraft("draft_123", "player_456")
	draft.ExpiresAt = s.clock.T.Add(-time.Minute).Unix()

	_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: draft})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, characterdraft.GetInput{ID: "draft_missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetByPlayerIDNotFound() {
	_, err := s.repo.GetByPlayerID(s.ctx, characterdraft.GetByPlayerIDInput{PlayerID: "player_nobody"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetByPlayerIDCleansDanglingMapping() {
	draft := testutils.CreateTestDraft("draft_123", "player_456")
	_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: draft})
	s.Require().NoError(err)

	// Let the draft expire while the mapping key lingers
	s.server.FastForward(25 * time.Hour)

	_, err = s.repo.GetByPlayerID(s.ctx, characterdraft.GetByPlayerIDInput{PlayerID: "player_456"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	s.False(s.server.Exists("draft:player:player_456"), "stale mapping is removed")
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	draft := testutils.CreateTestDraft("draft_123", "player_456")
	_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: draft})
	s.Require().NoError(err)

	s.clock.T = time.Unix(1700003600, 0)

	updated := testutils.CreateTestDraft("draft_123", "player_456")
	updated.Name = "Mialee the Wise"
	updateOutput, err := s.repo.Update(s.ctx, characterdraft.UpdateInput{Draft: updated})
	s.Require().NoError(err)
	s.Equal(int64(1700003600), updateOutput.Draft.UpdatedAt)

	getOutput, err := s.repo.Get(s.ctx, characterdraft.GetInput{ID: "draft_123"})
	s.Require().NoError(err)
	s.Equal("Mialee the Wise", getOutput.Draft.Name)
}

func (s *RedisRepositoryTestSuite) TestUpdateNotFound() {
	draft := testutils.CreateTestDraft("draft_missing", "player_456")
	_, err := s.repo.Update(s.ctx, characterdraft.UpdateInput{Draft: draft})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	draft := testutils.CreateTestDraft("draft_123", "player_456")
	_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: draft})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, characterdraft.DeleteInput{ID: "draft_123"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, characterdraft.GetInput{ID: "draft_123"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.GetByPlayerID(s.ctx, characterdraft.GetByPlayerIDInput{PlayerID: "player_456"})
	s.True(errors.IsNotFound(err), "delete removes the player mapping")
}

func (s *RedisRepositoryTestSuite) TestDeleteNotFound() {
	_, err := s.repo.Delete(s.ctx, characterdraft.DeleteInput{ID: "draft_missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
