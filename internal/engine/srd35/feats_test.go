package srd35

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/d20forge/srd35-engine/internal/engine"
	entities "github.com/d20forge/srd35-engine/internal/entities/srd35"
	"github.com/d20forge/srd35-engine/internal/errors"
)

type FeatsSuite struct {
	AdapterSuite
}

func (s *FeatsSuite) prereqs(char *entities.Character, featID string) *engine.ValidateFeatPrerequisitesOutput {
	out, err := s.adapter.ValidateFeatPrerequisites(s.ctx, &engine.ValidateFeatPrerequisitesInput{
		Character: char,
		FeatID:    featID,
	})
	s.Require().NoError(err)
	return out
}

func (s *FeatsSuite) TestPowerAttackStrengthThreshold() {
	char := humanFighter() // strength 15

	out := s.prereqs(char, "power_attack")
	s.True(out.Met)
	s.Empty(out.Failures)

	char.Abilities[entities.AbilityStrength] = entities.AbilityScore{Base: 12}
	out = s.prereqs(char, "power_attack")
	s.False(out.Met)
	s.Require().Len(out.Failures, 1)
	s.Equal(string(errors.CodePrerequisiteNotMet), out.Failures[0].Code)
	// The failure must be self-contained: requirement and actual value
	s.Contains(out.Failures[0].Message, "strength 13")
	s.Contains(out.Failures[0].Message, "have 12")
}

func (s *FeatsSuite) TestRacialAdjustmentCountsTowardPrerequisites() {
	char := humanFighter()
	char.RaceID = "half_orc"
	char.Abilities[entities.AbilityStrength] = entities.AbilityScore{Base: 12, RacialAdjustment: 2}

	out := s.prereqs(char, "power_attack")
	s.True(out.Met, "prerequisites check totals, not base scores")
}

func (s *FeatsSuite) TestFeatChain() {
	char := humanFighter()

	out := s.prereqs(char, "cleave")
	s.False(out.Met)
	s.Contains(out.Failures[0].Message, "Power Attack")

	char.Feats = []string{"power_attack"}
	out = s.prereqs(char, "cleave")
	s.True(out.Met)

	// Great Cleave also needs BAB +4; a level 1 fighter fails that leg only
	char.Feats = append(char.Feats, "cleave")
	out = s.prereqs(char, "great_cleave")
	s.False(out.Met)
	s.Require().Len(out.Failures, 1)
	s.Contains(out.Failures[0].Message, "base attack bonus +4")

	char.Classes[0].Level = 4
	out = s.prereqs(char, "great_cleave")
	s.True(out.Met)
}

func (s *FeatsSuite) TestClassPrerequisite() {
	char := humanFighter()
	char.Feats = []string{"weapon_focus"}

	out := s.prereqs(char, "weapon_specialization")
	s.True(out.Met)

	char.Classes = []entities.ClassLevel{{ClassID: "rogue", Level: 4}}
	out = s.prereqs(char, "weapon_specialization")
	s.False(out.Met)
	s.Contains(out.Failures[0].Message, "Fighter")
}

func (s *FeatsSuite) TestSkillRankPrerequisite() {
	char := humanFighter()

	out := s.prereqs(char, "mounted_combat")
	s.False(out.Met)
	s.Contains(out.Failures[0].Message, "Ride")
	s.Contains(out.Failures[0].Message, "have 0")

	char.Skills["ride"] = entities.SkillState{Ranks: 1, ClassSkill: true}
	out = s.prereqs(char, "mounted_combat")
	s.True(out.Met)
}

func (s *FeatsSuite) TestSpellcasterPrerequisite() {
	char := humanFighter()

	out := s.prereqs(char, "combat_casting")
	s.False(out.Met)
	s.Contains(out.Failures[0].Message, "cast spells")

	char.Classes = append(char.Classes, entities.ClassLevel{ClassID: "wizard", Level: 1})
	out = s.prereqs(char, "combat_casting")
	s.True(out.Met)
}

func (s *FeatsSuite) TestMultipleFailuresAllReported() {
	char := humanFighter()
	char.Abilities[entities.AbilityStrength] = entities.AbilityScore{Base: 10}

	// Cleave wants both strength 13 and Power Attack
	out := s.prereqs(char, "cleave")
	s.False(out.Met)
	s.Len(out.Failures, 2)
}

func (s *FeatsSuite) TestUnknownFeatAborts() {
	_, err := s.adapter.ValidateFeatPrerequisites(s.ctx, &engine.ValidateFeatPrerequisitesInput{
		Character: humanFighter(),
		FeatID:    "epic_toughness",
	})
	s.Require().Error(err)
	s.True(errors.IsUnknownRule(err))
}

func (s *FeatsSuite) TestFeatSlotsLevelOneHumanFighter() {
	out, err := s.adapter.CalculateFeatSlots(s.ctx, &engine.CalculateFeatSlotsInput{
		Character: humanFighter(),
	})
	s.Require().NoError(err)
	// One for level one, one human bonus, one fighter bonus
	s.Equal(3, out.Slots.Available)
	s.Equal(0, out.Slots.Spent)
}

func (s *FeatsSuite) TestFeatSlotsByLevel() {
	char := humanFighter()
	char.RaceID = "dwarf"
	char.Classes = []entities.ClassLevel{{ClassID: "rogue", Level: 6}}

	out, err := s.adapter.CalculateFeatSlots(s.ctx, &engine.CalculateFeatSlotsInput{Character: char})
	s.Require().NoError(err)
	// 1 at first level plus one per three levels
	s.Equal(3, out.Slots.Available)
}

func (s *FeatsSuite) TestFighterBonusFeatLevels() {
	char := humanFighter()
	char.RaceID = "dwarf"
	char.Classes = []entities.ClassLevel{{ClassID: "fighter", Level: 4}}

	out, err := s.adapter.CalculateFeatSlots(s.ctx, &engine.CalculateFeatSlotsInput{Character: char})
	s.Require().NoError(err)
	// Levels grant 1+4/3 = 2; fighter bonus feats at 1, 2, and 4 add three
	s.Equal(5, out.Slots.Available)
}

func (s *FeatsSuite) TestSpentCountsSelections() {
	char := humanFighter()
	char.Feats = []string{"power_attack", "cleave", "toughness", "iron_will"}

	out, err := s.adapter.CalculateFeatSlots(s.ctx, &engine.CalculateFeatSlotsInput{Character: char})
	s.Require().NoError(err)
	s.Equal(4, out.Slots.Spent)
	s.Equal(3, out.Slots.Available)
}

func TestFeatsSuite(t *testing.T) {
	suite.Run(t, new(FeatsSuite))
}
