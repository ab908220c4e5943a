package srd35

import (
	"context"
	"fmt"

	"github.com/d20forge/srd35-engine/internal/engine"
	entities "github.com/d20forge/srd35-engine/internal/entities/srd35"
	"github.com/d20forge/srd35-engine/internal/errors"
)

// ValidateCharacter runs every rule check in dependency order and rebuilds
// the full derived block from the raw selections. The report is advisory:
// player mistakes accumulate as errors and never abort the pass, so one
// call yields the complete picture. Only an unknown rule id or a malformed
// character aborts with a Go error, leaving Derived untouched.
//
// Running it twice on an unchanged character produces identical output.
func (a *Adapter) ValidateCharacter(
	ctx context.Context,
	input *engine.ValidateCharacterInput,
) (*engine.ValidateCharacterOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	char := input.Character

	out := &engine.ValidateCharacterOutput{}
	report := &out.Report
	derived := &entities.DerivedStats{
		Saves:        make(map[entities.Save]int, 3),
		SpellsPerDay: make(map[string]map[int]int),
	}

	// Selection presence. Missing race or class is an expected state for a
	// half-built character, so these are soft errors and the remaining
	// checks still run on what exists.
	if char.RaceID == "" {
		report.Errors = append(report.Errors, engine.ValidationError{
			Field:   "race",
			Code:    string(errors.CodeMissingSelection),
			Message: "no race selected",
		})
	}
	if len(char.Classes) == 0 {
		report.Errors = append(report.Errors, engine.ValidationError{
			Field:   "classes",
			Code:    string(errors.CodeMissingSelection),
			Message: "no class selected",
		})
	}
	for _, cl := range char.Classes {
		if cl.Level < 1 {
			return nil, errors.InvalidArgumentf("class %q has level %d", cl.ClassID, cl.Level)
		}
	}

	// Ability scores and point buy
	baseScores := make(map[entities.Ability]int, 6)
	for _, ability := range entities.Abilities() {
		score, ok := char.Abilities[ability]
		if ok {
			baseScores[ability] = score.Base
		}
		total := score.Total()
		if ok && (total < entities.AbilityAbsoluteMin || total > entities.AbilityAbsoluteMax) {
			report.Errors = append(report.Errors, engine.ValidationError{
				Field:   string(ability),
				Code:    string(errors.CodeOutOfRange),
				Message: fmt.Sprintf("%s total %d is outside %d to %d", ability, total, entities.AbilityAbsoluteMin, entities.AbilityAbsoluteMax),
			})
		}
	}
	pointBuy, err := a.ValidatePointBuy(ctx, &engine.ValidatePointBuyInput{Scores: baseScores})
	if err != nil {
		return nil, err
	}
	report.Errors = append(report.Errors, pointBuy.Errors...)

	// Progressions
	babOut, err := a.CalculateBAB(ctx, &engine.CalculateBABInput{Classes: char.Classes})
	if err != nil {
		return nil, err
	}
	derived.BAB = babOut.BAB

	savesOut, err := a.CalculateSaveBases(ctx, &engine.CalculateSaveBasesInput{Classes: char.Classes})
	if err != nil {
		return nil, err
	}
	for _, save := range entities.Saves() {
		derived.Saves[save] = savesOut.Saves[save] + char.Abilities.Modifier(save.KeyAbility())
	}

	hpOut, err := a.CalculateHitPoints(ctx, &engine.CalculateHitPointsInput{
		Classes:              char.Classes,
		ConstitutionModifier: char.Abilities.Modifier(entities.AbilityConstitution),
		Rolls:                char.HitDieRolls,
	})
	if err != nil {
		return nil, err
	}
	derived.MaxHP = hpOut.MaxHP
	derived.Initiative = char.Abilities.Modifier(entities.AbilityDexterity)

	// Skills: rebuild the budget, then re-check every allocation against
	// current caps. Allocations made before a level-down or class change
	// can be stale even though each one was legal when made.
	budgetOut, err := a.CalculateSkillPointBudget(ctx, &engine.CalculateSkillPointBudgetInput{
		Classes:              char.Classes,
		IntelligenceModifier: char.Abilities.Modifier(entities.AbilityIntelligence),
		RaceID:               char.RaceID,
	})
	if err != nil {
		return nil, err
	}
	derived.SkillBudget = entities.SkillBudget{
		Available: budgetOut.Available,
		Spent:     spentPoints(char.Skills),
	}
	if derived.SkillBudget.Spent > derived.SkillBudget.Available {
		report.Errors = append(report.Errors, engine.ValidationError{
			Field: "skills",
			Code:  string(errors.CodeBudgetExceeded),
			Message: fmt.Sprintf("skill allocations cost %d points but only %d are available",
				derived.SkillBudget.Spent, derived.SkillBudget.Available),
		})
	} else if remaining := derived.SkillBudget.Remaining(); remaining > 0 {
		report.Warnings = append(report.Warnings, engine.ValidationWarning{
			Field:   "skills",
			Code:    string(errors.CodeUnspentBudget),
			Message: fmt.Sprintf("%d skill points unspent", remaining),
		})
	}
	for skillID, state := range char.Skills {
		skill, err := a.tables.Skill(skillID)
		if err != nil {
			return nil, err
		}
		if state.Ranks < 0 {
			return nil, errors.InvalidArgumentf("skill %q has negative ranks", skillID)
		}
		classSkill, err := a.classSkillFor(char.Classes, skillID)
		if err != nil {
			return nil, err
		}
		maxRanks := char.Level() + 3
		if !classSkill {
			maxRanks = (char.Level() + 3) / 2
		}
		if state.Ranks > maxRanks {
			report.Errors = append(report.Errors, engine.ValidationError{
				Field: skillID,
				Code:  string(errors.CodeRankCeilingExceeded),
				Message: fmt.Sprintf("%s has %d ranks but is capped at %d at level %d",
					skill.Name, state.Ranks, maxRanks, char.Level()),
			})
		}
	}

	// Feats: slot accounting first, then prerequisites per selected feat
	slotsOut, err := a.CalculateFeatSlots(ctx, &engine.CalculateFeatSlotsInput{Character: char})
	if err != nil {
		return nil, err
	}
	derived.FeatSlots = slotsOut.Slots
	if derived.FeatSlots.Spent > derived.FeatSlots.Available {
		report.Errors = append(report.Errors, engine.ValidationError{
			Field: "feats",
			Code:  string(errors.CodeNoFeatSlots),
			Message: fmt.Sprintf("%d feats selected but only %d slots available",
				derived.FeatSlots.Spent, derived.FeatSlots.Available),
		})
	}
	for _, featID := range char.Feats {
		prereqOut, err := a.ValidateFeatPrerequisites(ctx, &engine.ValidateFeatPrerequisitesInput{
			Character: char,
			FeatID:    featID,
		})
		if err != nil {
			return nil, err
		}
		report.Errors = append(report.Errors, prereqOut.Failures...)
	}

	// Spellcasting
	for _, cl := range char.Classes {
		class, err := a.tables.Class(cl.ClassID)
		if err != nil {
			return nil, err
		}
		if !class.Spellcasting {
			continue
		}
		spellsOut, err := a.GetSpellsPerDay(ctx, &engine.GetSpellsPerDayInput{
			ClassID:         cl.ClassID,
			Level:           cl.Level,
			AbilityModifier: char.Abilities.Modifier(class.CastingAbility),
		})
		if err != nil {
			return nil, err
		}
		derived.SpellsPerDay[cl.ClassID] = spellsOut.Slots
	}

	// Combat block: capacity and encumbrance feed speed and AC context
	strength := char.Abilities.Total(entities.AbilityStrength)
	if strength >= 1 {
		capOut, err := a.CalculateCarryingCapacity(ctx, &engine.CalculateCarryingCapacityInput{Strength: strength})
		if err != nil {
			return nil, err
		}
		derived.CarryingCapacity = capOut.Capacity
	}

	totalWeight := 0
	for _, equipped := range char.Equipment {
		item, err := a.tables.Item(equipped.ItemID)
		if err != nil {
			return nil, err
		}
		quantity := equipped.Quantity
		if quantity < 1 {
			quantity = 1
		}
		totalWeight += item.Weight * quantity
	}
	encOut, err := a.ClassifyEncumbrance(ctx, &engine.ClassifyEncumbranceInput{
		TotalWeight: totalWeight,
		Capacity:    derived.CarryingCapacity,
	})
	if err != nil {
		return nil, err
	}
	derived.Encumbrance = encOut.Encumbrance
	if derived.Encumbrance.Tier == entities.EncumbranceOverloaded {
		report.Warnings = append(report.Warnings, engine.ValidationWarning{
			Field: "equipment",
			Code:  string(errors.CodeOutOfRange),
			Message: fmt.Sprintf("carrying %d lb exceeds the heavy load limit of %d lb and immobilizes the character",
				totalWeight, derived.CarryingCapacity.Heavy),
		})
	}

	if char.RaceID != "" {
		race, err := a.tables.Race(char.RaceID)
		if err != nil {
			return nil, err
		}
		derived.Speed = race.Speed - derived.Encumbrance.SpeedPenalty
		if derived.Encumbrance.Immobilized || derived.Speed < 0 {
			derived.Speed = 0
		}
	}

	acOut, err := a.CalculateArmorClass(ctx, &engine.CalculateArmorClassInput{Character: char})
	if err != nil {
		return nil, err
	}
	derived.ArmorClass = acOut.Breakdown

	report.Valid = len(report.Errors) == 0
	out.Derived = derived
	char.Derived = derived
	return out, nil
}
