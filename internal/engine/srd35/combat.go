package srd35

import (
	"context"

	"github.com/d20forge/srd35-engine/internal/engine"
	entities "github.com/d20forge/srd35-engine/internal/entities/srd35"
	"github.com/d20forge/srd35-engine/internal/errors"
	"github.com/d20forge/srd35-engine/internal/rules"
)

const (
	nonProficiencyPenalty  = 4
	overloadedCheckPenalty = 20
)

// CalculateArmorClass itemizes AC from equipment, dexterity, and size.
// The dexterity bonus is capped by the most restrictive worn armor; with
// no max-dex armor the full bonus applies. Penalties cap the bonus side
// only, so a dex penalty is never softened by heavy armor.
func (a *Adapter) CalculateArmorClass(
	_ context.Context,
	input *engine.CalculateArmorClassInput,
) (*engine.CalculateArmorClassOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	char := input.Character

	breakdown := entities.ACBreakdown{Base: 10}

	maxDex := 0
	hasDexCap := false
	for _, equipped := range char.Equipment {
		item, err := a.tables.Item(equipped.ItemID)
		if err != nil {
			return nil, err
		}
		switch item.Kind {
		case rules.ItemArmor:
			breakdown.ArmorBonus += item.Armor.Bonus + equipped.EnhancementBonus
			if item.Armor.HasMaxDex && (!hasDexCap || item.Armor.MaxDexBonus < maxDex) {
				maxDex = item.Armor.MaxDexBonus
				hasDexCap = true
			}
		case rules.ItemShield:
			breakdown.ShieldBonus += item.Armor.Bonus + equipped.EnhancementBonus
		}
	}

	dexBonus := char.Abilities.Modifier(entities.AbilityDexterity)
	if hasDexCap && dexBonus > maxDex {
		dexBonus = maxDex
	}
	breakdown.DexBonus = dexBonus

	if char.RaceID != "" {
		race, err := a.tables.Race(char.RaceID)
		if err != nil {
			return nil, err
		}
		breakdown.SizeModifier = race.Size.Modifier()
	}

	breakdown.Total = breakdown.Base + breakdown.ArmorBonus + breakdown.ShieldBonus +
		breakdown.DexBonus + breakdown.SizeModifier + breakdown.NaturalArmor +
		breakdown.Deflection + breakdown.Misc

	return &engine.CalculateArmorClassOutput{Breakdown: breakdown}, nil
}

// CalculateAttackBonus sums the components of a single attack
func (a *Adapter) CalculateAttackBonus(
	_ context.Context,
	input *engine.CalculateAttackBonusInput,
) (*engine.CalculateAttackBonusOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	bonus := input.BAB + input.AbilityModifier + input.SizeModifier + input.Enhancement
	if !input.Proficient {
		bonus -= nonProficiencyPenalty
	}
	return &engine.CalculateAttackBonusOutput{AttackBonus: bonus}, nil
}

// CalculateCarryingCapacity looks up the load thresholds for a strength
// score
func (a *Adapter) CalculateCarryingCapacity(
	_ context.Context,
	input *engine.CalculateCarryingCapacityInput,
) (*engine.CalculateCarryingCapacityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Strength < 1 {
		return nil, errors.InvalidArgumentf("strength %d is below the living minimum", input.Strength)
	}
	return &engine.CalculateCarryingCapacityOutput{
		Capacity: a.tables.CarryingCapacity(input.Strength),
	}, nil
}

// ClassifyEncumbrance bands carried weight against the thresholds.
// Boundary weights land in the lighter band; a weight exactly at the heavy
// limit is a heavy load, one pound more is overloaded.
func (a *Adapter) ClassifyEncumbrance(
	_ context.Context,
	input *engine.ClassifyEncumbranceInput,
) (*engine.ClassifyEncumbranceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	enc := entities.Encumbrance{TotalWeight: input.TotalWeight}
	switch {
	case input.TotalWeight <= input.Capacity.Light:
		enc.Tier = entities.EncumbranceLight
	case input.TotalWeight <= input.Capacity.Medium:
		enc.Tier = entities.EncumbranceMedium
		enc.SpeedPenalty = 10
		enc.CheckPenalty = 3
		enc.MaxDexBonus = 3
		enc.HasDexCap = true
	case input.TotalWeight <= input.Capacity.Heavy:
		enc.Tier = entities.EncumbranceHeavy
		enc.SpeedPenalty = 10
		enc.CheckPenalty = 6
		enc.MaxDexBonus = 1
		enc.HasDexCap = true
	default:
		// Past the heavy limit the character cannot move under the load;
		// the check penalty is high enough that no ordinary check succeeds
		enc.Tier = entities.EncumbranceOverloaded
		enc.Immobilized = true
		enc.CheckPenalty = overloadedCheckPenalty
		enc.MaxDexBonus = 0
		enc.HasDexCap = true
	}
	return &engine.ClassifyEncumbranceOutput{Encumbrance: enc}, nil
}
