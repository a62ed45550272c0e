package cooldownledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Interzoneism/tactica/internal/combat/cooldown"
	"github.com/Interzoneism/tactica/internal/pkg/clock"
	cooldownledger "github.com/Interzoneism/tactica/internal/repositories/cooldown_ledger"
	"github.com/Interzoneism/tactica/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    cooldownledger.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := cooldownledger.NewRedisRepository(&cooldownledger.Config{
		Client: client,
		Clock:  clock.NewFixed(time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndLoad() {
	states := []*cooldown.State{
		{
			ActorID:           "fighter",
			ActionID:          "action_surge",
			MaxCharges:        2,
			CurrentCharges:    1,
			RemainingCooldown: 3,
			Cooldown:          3,
			Unit:              cooldown.UnitTurn,
		},
	}

	_, err := s.repo.Save(s.ctx, cooldownledger.SaveInput{CombatID: "combat_1", States: states})
	s.Require().NoError(err)

	out, err := s.repo.Load(s.ctx, cooldownledger.LoadInput{CombatID: "combat_1"})
	s.Require().NoError(err)
	s.Require().Len(out.States, 1)
	s.Equal("action_surge", out.States[0].ActionID)
	s.Equal(1, out.States[0].CurrentCharges)
	s.Equal(cooldown.UnitTurn, out.States[0].Unit)
}

func (s *RedisRepositoryTestSuite) TestLoadMissingReturnsEmpty() {
	out, err := s.repo.Load(s.ctx, cooldownledger.LoadInput{CombatID: "nope"})
	s.Require().NoError(err)
	s.Empty(out.States)
}

func (s *RedisRepositoryTestSuite) TestSaveOverwrites() {
	_, err := s.repo.Save(s.ctx, cooldownledger.SaveInput{
		CombatID: "combat_1",
		States:   []*cooldown.State{{ActorID: "a", ActionID: "x", CurrentCharges: 2}},
	})
	s.Require().NoError(err)

	_, err = s.repo.Save(s.ctx, cooldownledger.SaveInput{
		CombatID: "combat_1",
		States:   []*cooldown.State{{ActorID: "a", ActionID: "x", CurrentCharges: 1}},
	})
	s.Require().NoError(err)

	out, err := s.repo.Load(s.ctx, cooldownledger.LoadInput{CombatID: "combat_1"})
	s.Require().NoError(err)
	s.Require().Len(out.States, 1)
	s.Equal(1, out.States[0].CurrentCharges)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, cooldownledger.SaveInput{
		CombatID: "combat_1",
		States:   []*cooldown.State{{ActorID: "a", ActionID: "x"}},
	})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, cooldownledger.DeleteInput{CombatID: "combat_1"})
	s.Require().NoError(err)

	out, err := s.repo.Load(s.ctx, cooldownledger.LoadInput{CombatID: "combat_1"})
	s.Require().NoError(err)
	s.Empty(out.States)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Save(s.ctx, cooldownledger.SaveInput{})
	s.Error(err)

	_, err = s.repo.Load(s.ctx, cooldownledger.LoadInput{})
	s.Error(err)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
