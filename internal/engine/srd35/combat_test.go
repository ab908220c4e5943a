package srd35

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/d20forge/srd35-engine/internal/engine"
	entities "github.com/d20forge/srd35-engine/internal/entities/srd35"
	"github.com/d20forge/srd35-engine/internal/errors"
)

type CombatSuite struct {
	AdapterSuite
}

func (s *CombatSuite) TestArmorClassUnarmored() {
	char := humanFighter() // dexterity 14
	out, err := s.adapter.CalculateArmorClass(s.ctx, &engine.CalculateArmorClassInput{Character: char})
	s.Require().NoError(err)
	s.Equal(2, out.Breakdown.DexBonus)
	s.Equal(12, out.Breakdown.Total)
}

func (s *CombatSuite) TestArmorMaxDexCapsBonus() {
	char := humanFighter()
	char.Abilities[entities.AbilityDexterity] = entities.AbilityScore{Base: 18}
	char.Equipment = []entities.EquippedItem{{ItemID: "chainmail"}}

	out, err := s.adapter.CalculateArmorClass(s.ctx, &engine.CalculateArmorClassInput{Character: char})
	s.Require().NoError(err)
	s.Equal(5, out.Breakdown.ArmorBonus)
	s.Equal(2, out.Breakdown.DexBonus, "chainmail caps dex at +2")
	s.Equal(17, out.Breakdown.Total)
}

func (s *CombatSuite) TestDexPenaltyNotSoftenedByArmor() {
	char := humanFighter()
	char.Abilities[entities.AbilityDexterity] = entities.AbilityScore{Base: 6}
	char.Equipment = []entities.EquippedItem{{ItemID: "full_plate"}}

	out, err := s.adapter.CalculateArmorClass(s.ctx, &engine.CalculateArmorClassInput{Character: char})
	s.Require().NoError(err)
	s.Equal(-2, out.Breakdown.DexBonus)
}

func (s *CombatSuite) TestShieldAndEnhancementStack() {
	char := humanFighter()
	char.Equipment = []entities.EquippedItem{
		{ItemID: "chainmail", EnhancementBonus: 1},
		{ItemID: "shield_heavy_steel"},
	}

	out, err := s.adapter.CalculateArmorClass(s.ctx, &engine.CalculateArmorClassInput{Character: char})
	s.Require().NoError(err)
	s.Equal(6, out.Breakdown.ArmorBonus)
	s.Equal(2, out.Breakdown.ShieldBonus)
	s.Equal(20, out.Breakdown.Total)
}

func (s *CombatSuite) TestSmallRaceACBonus() {
	char := humanFighter()
	char.RaceID = "halfling"

	out, err := s.adapter.CalculateArmorClass(s.ctx, &engine.CalculateArmorClassInput{Character: char})
	s.Require().NoError(err)
	s.Equal(1, out.Breakdown.SizeModifier)
}

func (s *CombatSuite) TestAttackBonus() {
	out, err := s.adapter.CalculateAttackBonus(s.ctx, &engine.CalculateAttackBonusInput{
		BAB:             5,
		AbilityModifier: 3,
		SizeModifier:    1,
		Enhancement:     1,
		Proficient:      true,
	})
	s.Require().NoError(err)
	s.Equal(10, out.AttackBonus)
}

func (s *CombatSuite) TestNonProficiencyPenalty() {
	proficient, err := s.adapter.CalculateAttackBonus(s.ctx, &engine.CalculateAttackBonusInput{
		BAB: 2, Proficient: true,
	})
	s.Require().NoError(err)

	unproficient, err := s.adapter.CalculateAttackBonus(s.ctx, &engine.CalculateAttackBonusInput{
		BAB: 2, Proficient: false,
	})
	s.Require().NoError(err)
	s.Equal(proficient.AttackBonus-4, unproficient.AttackBonus)
}

func (s *CombatSuite) TestCarryingCapacityExtrapolation() {
	base, err := s.adapter.CalculateCarryingCapacity(s.ctx, &engine.CalculateCarryingCapacityInput{Strength: 29})
	s.Require().NoError(err)

	extrapolated, err := s.adapter.CalculateCarryingCapacity(s.ctx, &engine.CalculateCarryingCapacityInput{Strength: 39})
	s.Require().NoError(err)
	s.Equal(base.Capacity.Light*4, extrapolated.Capacity.Light)
	s.Equal(base.Capacity.Medium*4, extrapolated.Capacity.Medium)
	s.Equal(base.Capacity.Heavy*4, extrapolated.Capacity.Heavy)

	_, err = s.adapter.CalculateCarryingCapacity(s.ctx, &engine.CalculateCarryingCapacityInput{Strength: 0})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CombatSuite) TestEncumbranceTierBoundaries() {
	capacity := srd35Capacity()

	cases := []struct {
		weight int
		tier   entities.EncumbranceTier
	}{
		{0, entities.EncumbranceLight},
		{33, entities.EncumbranceLight},
		{34, entities.EncumbranceMedium},
		{66, entities.EncumbranceMedium},
		{67, entities.EncumbranceHeavy},
		{100, entities.EncumbranceHeavy},
		{101, entities.EncumbranceOverloaded},
	}
	for _, tc := range cases {
		out, err := s.adapter.ClassifyEncumbrance(s.ctx, &engine.ClassifyEncumbranceInput{
			TotalWeight: tc.weight,
			Capacity:    capacity,
		})
		s.Require().NoError(err)
		s.Equal(tc.tier, out.Encumbrance.Tier, "weight %d", tc.weight)
	}
}

func (s *CombatSuite) TestEncumbrancePenalties() {
	capacity := srd35Capacity()

	light, err := s.adapter.ClassifyEncumbrance(s.ctx, &engine.ClassifyEncumbranceInput{
		TotalWeight: 10, Capacity: capacity,
	})
	s.Require().NoError(err)
	s.Zero(light.Encumbrance.SpeedPenalty)
	s.Zero(light.Encumbrance.CheckPenalty)
	s.False(light.Encumbrance.HasDexCap)

	medium, err := s.adapter.ClassifyEncumbrance(s.ctx, &engine.ClassifyEncumbranceInput{
		TotalWeight: 50, Capacity: capacity,
	})
	s.Require().NoError(err)
	s.Equal(10, medium.Encumbrance.SpeedPenalty)
	s.Equal(3, medium.Encumbrance.CheckPenalty)
	s.Equal(3, medium.Encumbrance.MaxDexBonus)
	s.True(medium.Encumbrance.HasDexCap)

	heavy, err := s.adapter.ClassifyEncumbrance(s.ctx, &engine.ClassifyEncumbranceInput{
		TotalWeight: 80, Capacity: capacity,
	})
	s.Require().NoError(err)
	s.Equal(6, heavy.Encumbrance.CheckPenalty)
	s.Equal(1, heavy.Encumbrance.MaxDexBonus)
	s.False(heavy.Encumbrance.Immobilized)

	overloaded, err := s.adapter.ClassifyEncumbrance(s.ctx, &engine.ClassifyEncumbranceInput{
		TotalWeight: 101, Capacity: capacity,
	})
	s.Require().NoError(err)
	s.True(overloaded.Encumbrance.Immobilized)
	s.Zero(overloaded.Encumbrance.MaxDexBonus)
	s.True(overloaded.Encumbrance.HasDexCap)
	s.Greater(overloaded.Encumbrance.CheckPenalty, heavy.Encumbrance.CheckPenalty)
}

// srd35Capacity is the strength 10 row
func srd35Capacity() entities.Capacity {
	return entities.Capacity{Light: 33, Medium: 66, Heavy: 100}
}

func TestCombatSuite(t *testing.T) {
	suite.Run(t, new(CombatSuite))
}
