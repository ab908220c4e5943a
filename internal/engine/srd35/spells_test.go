package srd35

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/d20forge/srd35-engine/internal/engine"
	"github.com/d20forge/srd35-engine/internal/errors"
)

type SpellsSuite struct {
	AdapterSuite
}

func (s *SpellsSuite) spells(classID string, level, mod int) *engine.GetSpellsPerDayOutput {
	out, err := s.adapter.GetSpellsPerDay(s.ctx, &engine.GetSpellsPerDayInput{
		ClassID:         classID,
		Level:           level,
		AbilityModifier: mod,
	})
	s.Require().NoError(err)
	return out
}

func (s *SpellsSuite) TestWizardBaseTable() {
	out := s.spells("wizard", 1, 0)
	s.True(out.Spellcaster)
	s.Equal(map[int]int{0: 3, 1: 1}, out.Slots)

	out = s.spells("wizard", 3, 0)
	s.Equal(map[int]int{0: 4, 1: 2, 2: 1}, out.Slots)
}

func (s *SpellsSuite) TestBonusSpellsFromHighAbility() {
	// Intelligence 16 gives +3: one bonus spell at levels 1 through 3,
	// but level 2 has no base entry at caster level 1 so it stays absent.
	out := s.spells("wizard", 1, 3)
	s.Equal(map[int]int{0: 3, 1: 2}, out.Slots)

	out = s.spells("wizard", 3, 3)
	s.Equal(map[int]int{0: 4, 1: 3, 2: 2}, out.Slots)
}

func (s *SpellsSuite) TestNoBonusAtSpellLevelZero() {
	out := s.spells("wizard", 1, 5)
	s.Equal(3, out.Slots[0], "level 0 slots never gain a bonus")
}

func (s *SpellsSuite) TestPaladinZeroEntryStillEarnsBonus() {
	// A 4th level paladin has a first level entry of zero; Wisdom 12
	// turns that into one castable slot.
	out := s.spells("paladin", 4, 1)
	s.True(out.Spellcaster)
	s.Equal(1, out.Slots[1])

	// With no wisdom bonus the zero entry stays zero
	out = s.spells("paladin", 4, 0)
	s.Equal(0, out.Slots[1])
}

func (s *SpellsSuite) TestCasterBelowFirstCastingLevel() {
	out := s.spells("paladin", 3, 4)
	s.True(out.Spellcaster)
	s.Empty(out.Slots)
}

func (s *SpellsSuite) TestNonCaster() {
	out := s.spells("fighter", 5, 4)
	s.False(out.Spellcaster)
	s.Nil(out.Slots)
}

func (s *SpellsSuite) TestUnknownClassAborts() {
	_, err := s.adapter.GetSpellsPerDay(s.ctx, &engine.GetSpellsPerDayInput{
		ClassID: "warlock",
		Level:   1,
	})
	s.Require().Error(err)
	s.True(errors.IsUnknownRule(err))
}

func (s *SpellsSuite) TestSpellDC() {
	out, err := s.adapter.CalculateSpellDC(s.ctx, &engine.CalculateSpellDCInput{
		SpellLevel:      3,
		AbilityModifier: 4,
	})
	s.Require().NoError(err)
	s.Equal(17, out.DC)

	out, err = s.adapter.CalculateSpellDC(s.ctx, &engine.CalculateSpellDCInput{
		SpellLevel:      3,
		AbilityModifier: 4,
		SpellFocus:      true,
	})
	s.Require().NoError(err)
	s.Equal(18, out.DC)

	_, err = s.adapter.CalculateSpellDC(s.ctx, &engine.CalculateSpellDCInput{SpellLevel: 10})
	s.Error(err)
}

func TestSpellsSuite(t *testing.T) {
	suite.Run(t, new(SpellsSuite))
}
