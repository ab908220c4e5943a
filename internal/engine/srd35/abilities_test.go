package srd35

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/d20forge/srd35-engine/internal/engine"
	entities "github.com/d20forge/srd35-engine/internal/entities/srd35"
	"github.com/d20forge/srd35-engine/internal/errors"
)

type AbilitiesSuite struct {
	AdapterSuite
}

func (s *AbilitiesSuite) TestApplyRacialAdjustments() {
	out, err := s.adapter.ApplyRacialAdjustments(s.ctx, &engine.ApplyRacialAdjustmentsInput{
		Scores: scores(10, 10, 10, 10, 10, 10),
		RaceID: "dwarf",
	})
	s.Require().NoError(err)

	s.Equal(12, out.Scores.Total(entities.AbilityConstitution))
	s.Equal(8, out.Scores.Total(entities.AbilityCharisma))
	s.Equal(10, out.Scores.Total(entities.AbilityStrength))
	s.Equal(entities.SizeMedium, out.Size)
	s.Equal(20, out.Speed)
}

func (s *AbilitiesSuite) TestRaceReselectionLeavesNoResidue() {
	base := scores(10, 10, 10, 10, 10, 10)

	elf, err := s.adapter.ApplyRacialAdjustments(s.ctx, &engine.ApplyRacialAdjustmentsInput{
		Scores: base,
		RaceID: "elf",
	})
	s.Require().NoError(err)
	s.Equal(12, elf.Scores.Total(entities.AbilityDexterity))
	s.Equal(8, elf.Scores.Total(entities.AbilityConstitution))

	dwarf, err := s.adapter.ApplyRacialAdjustments(s.ctx, &engine.ApplyRacialAdjustmentsInput{
		Scores: elf.Scores,
		RaceID: "dwarf",
	})
	s.Require().NoError(err)

	// The elf dexterity bonus must be gone, not layered under the dwarf's
	s.Equal(10, dwarf.Scores.Total(entities.AbilityDexterity))
	s.Equal(12, dwarf.Scores.Total(entities.AbilityConstitution))
	s.Equal(8, dwarf.Scores.Total(entities.AbilityCharisma))
}

func (s *AbilitiesSuite) TestApplyRacialAdjustmentsIdempotent() {
	first, err := s.adapter.ApplyRacialAdjustments(s.ctx, &engine.ApplyRacialAdjustmentsInput{
		Scores: scores(15, 14, 14, 10, 12, 8),
		RaceID: "dwarf",
	})
	s.Require().NoError(err)

	second, err := s.adapter.ApplyRacialAdjustments(s.ctx, &engine.ApplyRacialAdjustmentsInput{
		Scores: first.Scores,
		RaceID: "dwarf",
	})
	s.Require().NoError(err)
	s.Equal(first.Scores, second.Scores)
}

func (s *AbilitiesSuite) TestApplyRacialAdjustmentsUnknownRace() {
	_, err := s.adapter.ApplyRacialAdjustments(s.ctx, &engine.ApplyRacialAdjustmentsInput{
		Scores: scores(10, 10, 10, 10, 10, 10),
		RaceID: "tiefling",
	})
	s.Require().Error(err)
	s.True(errors.IsUnknownRule(err))
}

func (s *AbilitiesSuite) TestPointBuyAllTens() {
	out, err := s.adapter.ValidatePointBuy(s.ctx, &engine.ValidatePointBuyInput{
		Scores: map[entities.Ability]int{
			entities.AbilityStrength:     10,
			entities.AbilityDexterity:    10,
			entities.AbilityConstitution: 10,
			entities.AbilityIntelligence: 10,
			entities.AbilityWisdom:       10,
			entities.AbilityCharisma:     10,
		},
	})
	s.Require().NoError(err)
	s.True(out.Valid)
	s.Equal(12, out.TotalCost)
	s.Equal(16, out.Remaining)
}

func (s *AbilitiesSuite) TestPointBuyAllFourteensOverspends() {
	in := &engine.ValidatePointBuyInput{Scores: map[entities.Ability]int{}}
	for _, ability := range entities.Abilities() {
		in.Scores[ability] = 14
	}

	out, err := s.adapter.ValidatePointBuy(s.ctx, in)
	s.Require().NoError(err)
	s.False(out.Valid)
	s.Equal(36, out.TotalCost)
	s.Require().Len(out.Errors, 1)
	s.Equal(string(errors.CodeBudgetExceeded), out.Errors[0].Code)
}

func (s *AbilitiesSuite) TestPointBuyScoreOutsideRange() {
	in := &engine.ValidatePointBuyInput{Scores: map[entities.Ability]int{}}
	for _, ability := range entities.Abilities() {
		in.Scores[ability] = 10
	}
	in.Scores[entities.AbilityStrength] = 19
	in.Scores[entities.AbilityCharisma] = 7

	out, err := s.adapter.ValidatePointBuy(s.ctx, in)
	s.Require().NoError(err)
	s.False(out.Valid)
	s.Len(out.Errors, 2)
	for _, e := range out.Errors {
		s.Equal(string(errors.CodeOutOfRange), e.Code)
	}
	// Untabulated scores are not free: they are errors, never zero-cost buys
	s.Equal(8, out.TotalCost)
}

func (s *AbilitiesSuite) TestPointBuyCustomBudget() {
	in := &engine.ValidatePointBuyInput{Budget: 12, Scores: map[entities.Ability]int{}}
	for _, ability := range entities.Abilities() {
		in.Scores[ability] = 10
	}

	out, err := s.adapter.ValidatePointBuy(s.ctx, in)
	s.Require().NoError(err)
	s.True(out.Valid)
	s.Equal(0, out.Remaining)
}

func TestAbilitiesSuite(t *testing.T) {
	suite.Run(t, new(AbilitiesSuite))
}
