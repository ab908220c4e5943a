package srd35

import (
	"context"

	"github.com/d20forge/srd35-engine/internal/engine"
	"github.com/d20forge/srd35-engine/internal/errors"
)

// GetSpellsPerDay combines the class's base table row at the given level
// with bonus spells for a high casting ability. Bonus spells apply only to
// spell levels the base table grants at least a zero entry for; a paladin
// with a zero first-level entry and Wisdom 12 gets one slot, but no entry
// means no slots regardless of modifier.
func (a *Adapter) GetSpellsPerDay(
	_ context.Context,
	input *engine.GetSpellsPerDayInput,
) (*engine.GetSpellsPerDayOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Level < 1 {
		return nil, errors.InvalidArgumentf("class level %d is not valid", input.Level)
	}

	class, err := a.tables.Class(input.ClassID)
	if err != nil {
		return nil, err
	}
	if !class.Spellcasting {
		return &engine.GetSpellsPerDayOutput{Spellcaster: false}, nil
	}

	out := &engine.GetSpellsPerDayOutput{
		Spellcaster: true,
		Slots:       make(map[int]int),
	}
	base, ok := class.SpellsPerDay[input.Level]
	if !ok {
		// Caster class below its first casting level
		return out, nil
	}
	for spellLevel, slots := range base {
		total := slots
		if spellLevel > 0 {
			total += a.tables.BonusSpells(input.AbilityModifier, spellLevel)
		}
		out.Slots[spellLevel] = total
	}
	return out, nil
}

// CalculateSpellDC returns 10 + spell level + casting ability modifier,
// plus 1 with Spell Focus in the spell's school
func (a *Adapter) CalculateSpellDC(
	_ context.Context,
	input *engine.CalculateSpellDCInput,
) (*engine.CalculateSpellDCOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SpellLevel < 0 || input.SpellLevel > 9 {
		return nil, errors.InvalidArgumentf("spell level %d is not valid", input.SpellLevel)
	}

	dc := 10 + input.SpellLevel + input.AbilityModifier
	if input.SpellFocus {
		dc++
	}
	return &engine.CalculateSpellDCOutput{DC: dc}, nil
}
