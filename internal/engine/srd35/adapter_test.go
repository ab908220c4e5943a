package srd35

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	entities "github.com/d20forge/srd35-engine/internal/entities/srd35"
	"github.com/d20forge/srd35-engine/internal/rules"
)

type AdapterSuite struct {
	suite.Suite
	ctx     context.Context
	adapter *Adapter
}

func (s *AdapterSuite) SetupSuite() {
	tables, err := rules.LoadDefault()
	s.Require().NoError(err)
	adapter, err := NewAdapter(&Config{Tables: tables})
	s.Require().NoError(err)
	s.ctx = context.Background()
	s.adapter = adapter
}

// scores builds ability scores from base values in STR DEX CON INT WIS CHA order
func scores(str, dex, con, intl, wis, cha int) entities.AbilityScores {
	return entities.AbilityScores{
		entities.AbilityStrength:     {Base: str},
		entities.AbilityDexterity:    {Base: dex},
		entities.AbilityConstitution: {Base: con},
		entities.AbilityIntelligence: {Base: intl},
		entities.AbilityWisdom:       {Base: wis},
		entities.AbilityCharisma:     {Base: cha},
	}
}

// humanFighter is a legal first level character: 26 of 28 points spent
func humanFighter() *entities.Character {
	return &entities.Character{
		ID:        "char_test",
		Name:      "Tordek",
		RaceID:    "human",
		Classes:   []entities.ClassLevel{{ClassID: "fighter", Level: 1}},
		Abilities: scores(15, 14, 14, 10, 12, 8),
		Skills:    map[string]entities.SkillState{},
	}
}

func (s *AdapterSuite) TestNewAdapterRequiresTables() {
	_, err := NewAdapter(nil)
	s.Error(err)

	_, err = NewAdapter(&Config{})
	s.Error(err)
}

func (s *AdapterSuite) TestAbilityModifier() {
	cases := map[int]int{
		1: -5, 3: -4, 8: -1, 9: -1, 10: 0, 11: 0,
		12: 1, 13: 1, 14: 2, 18: 4, 19: 4, 20: 5,
	}
	for score, want := range cases {
		s.Equal(want, s.adapter.AbilityModifier(score), "score %d", score)
	}
}

func (s *AdapterSuite) TestIsSpellcaster() {
	caster, err := s.adapter.IsSpellcaster("wizard")
	s.Require().NoError(err)
	s.True(caster)

	caster, err = s.adapter.IsSpellcaster("fighter")
	s.Require().NoError(err)
	s.False(caster)

	_, err = s.adapter.IsSpellcaster("warlock")
	s.Error(err)
}

func (s *AdapterSuite) TestHitDie() {
	die, err := s.adapter.HitDie("fighter")
	s.Require().NoError(err)
	s.Equal(10, die)

	die, err = s.adapter.HitDie("wizard")
	s.Require().NoError(err)
	s.Equal(4, die)

	_, err = s.adapter.HitDie("warlock")
	s.Error(err)
}

func (s *AdapterSuite) TestRulesVersion() {
	s.Equal("srd35-1.0", s.adapter.RulesVersion())
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterSuite))
}
