package srd35

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	"github.com/d20forge/srd35-engine/internal/engine"
	entities "github.com/d20forge/srd35-engine/internal/entities/srd35"
	"github.com/d20forge/srd35-engine/internal/errors"
)

type SkillsSuite struct {
	AdapterSuite
}

func (s *SkillsSuite) allocate(char *entities.Character, skillID string, delta int) *engine.AllocateSkillRankOutput {
	out, err := s.adapter.AllocateSkillRank(s.ctx, &engine.AllocateSkillRankInput{
		Character: char,
		SkillID:   skillID,
		Delta:     delta,
	})
	s.Require().NoError(err)
	return out
}

func (s *SkillsSuite) TestClassSkillCapAtLevelOne() {
	char := humanFighter()

	for i := 1; i <= 4; i++ {
		out := s.allocate(char, "climb", 1)
		s.True(out.Applied, "rank %d", i)
		s.Equal(i, out.Skill.Ranks)
		s.True(out.Skill.ClassSkill)
		s.Equal(i, out.Budget.Spent)
	}

	out := s.allocate(char, "climb", 1)
	s.False(out.Applied)
	s.Require().Len(out.Errors, 1)
	s.Equal(string(errors.CodeRankCeilingExceeded), out.Errors[0].Code)
	s.Equal(4, char.Skills["climb"].Ranks, "rejected allocation must not change the character")
}

func (s *SkillsSuite) TestCrossClassCostAndCap() {
	char := humanFighter()

	out := s.allocate(char, "hide", 1)
	s.True(out.Applied)
	s.False(out.Skill.ClassSkill)
	s.Equal(2, out.Budget.Spent, "cross-class ranks cost two points")

	out = s.allocate(char, "hide", 1)
	s.True(out.Applied)
	s.Equal(2, out.Skill.Ranks)

	out = s.allocate(char, "hide", 1)
	s.False(out.Applied)
	s.Equal(string(errors.CodeRankCeilingExceeded), out.Errors[0].Code)
}

func (s *SkillsSuite) TestMulticlassUsesUnionOfClassSkills() {
	char := humanFighter()
	char.Classes = append(char.Classes, entities.ClassLevel{ClassID: "rogue", Level: 1})

	// Hide is cross-class for fighters but one rogue level makes it a
	// class skill for the whole character.
	out := s.allocate(char, "hide", 1)
	s.True(out.Applied)
	s.True(out.Skill.ClassSkill)
	s.Equal(1, out.Budget.Spent)
}

func (s *SkillsSuite) TestBudgetExhaustion() {
	char := humanFighter()
	// Budget is (2+0+1)*4 = 12 points
	for _, skillID := range []string{"climb", "jump", "swim"} {
		for i := 0; i < 4; i++ {
			out := s.allocate(char, skillID, 1)
			s.Require().True(out.Applied)
		}
	}

	out := s.allocate(char, "ride", 1)
	s.False(out.Applied)
	s.Require().Len(out.Errors, 1)
	s.Equal(string(errors.CodeBudgetExceeded), out.Errors[0].Code)
	s.NotContains(char.Skills, "ride")
}

func (s *SkillsSuite) TestRemoveRankRefunds() {
	char := humanFighter()
	s.allocate(char, "climb", 1)
	s.allocate(char, "climb", 1)

	out := s.allocate(char, "climb", -1)
	s.True(out.Applied)
	s.Equal(1, out.Skill.Ranks)
	s.Equal(1, out.Budget.Spent)

	out = s.allocate(char, "climb", -1)
	s.True(out.Applied)
	s.NotContains(char.Skills, "climb", "zero-rank entries are removed")

	out = s.allocate(char, "climb", -1)
	s.False(out.Applied)
	s.Equal(string(errors.CodeOutOfRange), out.Errors[0].Code)
}

func (s *SkillsSuite) TestTrainedOnlyUnusableAtZeroRanks() {
	char := humanFighter()

	// Tumble is trained-only; one rank makes it usable
	out := s.allocate(char, "tumble", 1)
	s.True(out.Applied)
	s.False(out.Unusable)

	out = s.allocate(char, "tumble", -1)
	s.True(out.Applied)
	s.Zero(out.Skill.Ranks)
	s.True(out.Unusable, "trained-only skill at zero ranks cannot be attempted")

	out = s.allocate(char, "tumble", -1)
	s.False(out.Applied)
	s.True(out.Unusable)

	// Untrained skills stay usable at zero ranks
	out = s.allocate(char, "climb", -1)
	s.False(out.Applied)
	s.False(out.Unusable)
}

func (s *SkillsSuite) TestAllocateWithoutClass() {
	char := humanFighter()
	char.Classes = nil

	out := s.allocate(char, "climb", 1)
	s.False(out.Applied)
	s.Equal(string(errors.CodeMissingSelection), out.Errors[0].Code)
}

func (s *SkillsSuite) TestUnknownSkillAborts() {
	_, err := s.adapter.AllocateSkillRank(s.ctx, &engine.AllocateSkillRankInput{
		Character: humanFighter(),
		SkillID:   "underwater_basket_weaving",
		Delta:     1,
	})
	s.Require().Error(err)
	s.True(errors.IsUnknownRule(err))
}

func (s *SkillsSuite) TestBadDelta() {
	_, err := s.adapter.AllocateSkillRank(s.ctx, &engine.AllocateSkillRankInput{
		Character: humanFighter(),
		SkillID:   "climb",
		Delta:     3,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *SkillsSuite) TestAllocationInvariants() {
	skillIDs := []string{"climb", "jump", "swim", "ride", "hide", "spot", "listen"}

	rapid.Check(s.T(), func(t *rapid.T) {
		char := humanFighter()
		char.Classes[0].Level = rapid.IntRange(1, 5).Draw(t, "level")

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			skillID := rapid.SampledFrom(skillIDs).Draw(t, "skill")
			delta := rapid.SampledFrom([]int{1, 1, 1, -1}).Draw(t, "delta")

			out, err := s.adapter.AllocateSkillRank(s.ctx, &engine.AllocateSkillRankInput{
				Character: char,
				SkillID:   skillID,
				Delta:     delta,
			})
			if err != nil {
				t.Fatalf("allocation error: %v", err)
			}

			// Whatever the mix of applied and rejected steps, the spent
			// total never exceeds the budget and no skill tops its cap.
			if out.Budget.Spent > out.Budget.Available {
				t.Fatalf("spent %d over available %d", out.Budget.Spent, out.Budget.Available)
			}
			classCap := char.Level() + 3
			for id, state := range char.Skills {
				cap := classCap
				if !state.ClassSkill {
					cap = classCap / 2
				}
				if state.Ranks > cap {
					t.Fatalf("skill %s at %d ranks over cap %d", id, state.Ranks, cap)
				}
				if state.Ranks <= 0 {
					t.Fatalf("skill %s kept at %d ranks", id, state.Ranks)
				}
			}
		}
	})
}

func TestSkillsSuite(t *testing.T) {
	suite.Run(t, new(SkillsSuite))
}
