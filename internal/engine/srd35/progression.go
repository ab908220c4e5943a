package srd35

import (
	"context"

	"github.com/d20forge/srd35-engine/internal/engine"
	entities "github.com/d20forge/srd35-engine/internal/entities/srd35"
	"github.com/d20forge/srd35-engine/internal/errors"
	"github.com/d20forge/srd35-engine/internal/rules"
)

func babForLevel(progression rules.BABProgression, level int) int {
	switch progression {
	case rules.BABFull:
		return level
	case rules.BABMedium:
		return level * 3 / 4
	case rules.BABPoor:
		return level / 2
	}
	return 0
}

func saveBaseForLevel(progression rules.SaveProgression, level int) int {
	if progression == rules.SaveGood {
		return 2 + level/2
	}
	return level / 3
}

// CalculateBAB sums each class's progression at its own level. A multiclass
// character's total is the per-class sum, not the progression of the summed
// level; two poor-BAB classes at 1 give 0, not whatever 2 would.
func (a *Adapter) CalculateBAB(
	_ context.Context,
	input *engine.CalculateBABInput,
) (*engine.CalculateBABOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	total := 0
	for _, cl := range input.Classes {
		class, err := a.tables.Class(cl.ClassID)
		if err != nil {
			return nil, err
		}
		total += babForLevel(class.BAB, cl.Level)
	}
	return &engine.CalculateBABOutput{BAB: total}, nil
}

// CalculateSaveBases sums per-class save progressions for all three saves
func (a *Adapter) CalculateSaveBases(
	_ context.Context,
	input *engine.CalculateSaveBasesInput,
) (*engine.CalculateSaveBasesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	saves := make(map[entities.Save]int, 3)
	for _, cl := range input.Classes {
		class, err := a.tables.Class(cl.ClassID)
		if err != nil {
			return nil, err
		}
		for _, save := range entities.Saves() {
			saves[save] += saveBaseForLevel(class.Saves[save], cl.Level)
		}
	}
	return &engine.CalculateSaveBasesOutput{Saves: saves}, nil
}

// CalculateHitPoints walks the levels in class order. The first character
// level takes the maximum of its hit die; every later level consumes the
// next supplied roll, or the die's average rounded up when rolls run out.
// The constitution modifier applies per level, and the total never drops
// below the character level.
func (a *Adapter) CalculateHitPoints(
	_ context.Context,
	input *engine.CalculateHitPointsInput,
) (*engine.CalculateHitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	total := 0
	characterLevel := 0
	rollIndex := 0
	for _, cl := range input.Classes {
		class, err := a.tables.Class(cl.ClassID)
		if err != nil {
			return nil, err
		}
		for i := 0; i < cl.Level; i++ {
			characterLevel++
			hp := 0
			if characterLevel == 1 {
				hp = class.HitDie
			} else if rollIndex < len(input.Rolls) {
				hp = input.Rolls[rollIndex]
				rollIndex++
			} else {
				hp = class.HitDie/2 + 1
			}
			total += hp + input.ConstitutionModifier
		}
	}

	if total < characterLevel {
		total = characterLevel
	}
	return &engine.CalculateHitPointsOutput{MaxHP: total}, nil
}

// CalculateSkillPointBudget totals skill points across all levels. Each
// level grants max(1, class base + int modifier + racial bonus); the very
// first character level grants four times that.
func (a *Adapter) CalculateSkillPointBudget(
	_ context.Context,
	input *engine.CalculateSkillPointBudgetInput,
) (*engine.CalculateSkillPointBudgetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	racialBonus := 0
	if input.RaceID != "" {
		race, err := a.tables.Race(input.RaceID)
		if err != nil {
			return nil, err
		}
		racialBonus = race.BonusSkillPoints
	}

	total := 0
	characterLevel := 0
	for _, cl := range input.Classes {
		class, err := a.tables.Class(cl.ClassID)
		if err != nil {
			return nil, err
		}
		perLevel := class.SkillPointsPerLevel + input.IntelligenceModifier + racialBonus
		if perLevel < 1 {
			perLevel = 1
		}
		for i := 0; i < cl.Level; i++ {
			characterLevel++
			if characterLevel == 1 {
				total += perLevel * 4
			} else {
				total += perLevel
			}
		}
	}
	return &engine.CalculateSkillPointBudgetOutput{Available: total}, nil
}
