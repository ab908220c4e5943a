package srd35

import (
	"context"
	"fmt"

	"github.com/d20forge/srd35-engine/internal/engine"
	entities "github.com/d20forge/srd35-engine/internal/entities/srd35"
	"github.com/d20forge/srd35-engine/internal/errors"
	"github.com/d20forge/srd35-engine/internal/rules"
)

// ValidateFeatPrerequisites checks every prerequisite of the feat against
// the character and reports each unmet one self-containedly, with the
// requirement and the character's actual value in the message. Slot
// accounting is deliberately not part of this check.
func (a *Adapter) ValidateFeatPrerequisites(
	ctx context.Context,
	input *engine.ValidateFeatPrerequisitesInput,
) (*engine.ValidateFeatPrerequisitesOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	feat, err := a.tables.Feat(input.FeatID)
	if err != nil {
		return nil, err
	}

	out := &engine.ValidateFeatPrerequisitesOutput{}
	for _, prereq := range feat.Prerequisites {
		failure, err := a.checkPrerequisite(ctx, input.Character, feat, prereq)
		if err != nil {
			return nil, err
		}
		if failure != nil {
			out.Failures = append(out.Failures, *failure)
		}
	}
	out.Met = len(out.Failures) == 0
	return out, nil
}

func (a *Adapter) checkPrerequisite(
	ctx context.Context,
	char *entities.Character,
	feat *rules.Feat,
	prereq rules.Prerequisite,
) (*engine.ValidationError, error) {
	fail := func(message string) *engine.ValidationError {
		return &engine.ValidationError{
			Field:   feat.ID,
			Code:    string(errors.CodePrerequisiteNotMet),
			Message: fmt.Sprintf("%s requires %s", feat.Name, message),
		}
	}

	switch p := prereq.(type) {
	case rules.AbilityAtLeast:
		total := char.Abilities.Total(p.Ability)
		if total < p.Value {
			return fail(fmt.Sprintf("%s %d, have %d", p.Ability, p.Value, total)), nil
		}
	case rules.SkillRanksAtLeast:
		skill, err := a.tables.Skill(p.SkillID)
		if err != nil {
			return nil, err
		}
		ranks := char.Skills[p.SkillID].Ranks
		if ranks < p.Ranks {
			return fail(fmt.Sprintf("%d ranks in %s, have %d", p.Ranks, skill.Name, ranks)), nil
		}
	case rules.BABAtLeast:
		babOut, err := a.CalculateBAB(ctx, &engine.CalculateBABInput{Classes: char.Classes})
		if err != nil {
			return nil, err
		}
		if babOut.BAB < p.Value {
			return fail(fmt.Sprintf("base attack bonus +%d, have +%d", p.Value, babOut.BAB)), nil
		}
	case rules.HasFeat:
		required, err := a.tables.Feat(p.FeatID)
		if err != nil {
			return nil, err
		}
		if !char.HasFeat(p.FeatID) {
			return fail(fmt.Sprintf("the %s feat", required.Name)), nil
		}
	case rules.IsClass:
		class, err := a.tables.Class(p.ClassID)
		if err != nil {
			return nil, err
		}
		if char.ClassLevelOf(p.ClassID) == 0 {
			return fail(fmt.Sprintf("at least one %s level", class.Name)), nil
		}
	case rules.IsSpellcaster:
		caster := false
		for _, cl := range char.Classes {
			is, err := a.IsSpellcaster(cl.ClassID)
			if err != nil {
				return nil, err
			}
			if is {
				caster = true
				break
			}
		}
		if !caster {
			return fail("the ability to cast spells"), nil
		}
	default:
		return nil, errors.Internalf("unhandled prerequisite kind %T", prereq)
	}
	return nil, nil
}

// CalculateFeatSlots counts slots from level (one at first level, another
// every third level), the human bonus feat, and fighter bonus feat levels,
// then counts selections against them.
func (a *Adapter) CalculateFeatSlots(
	_ context.Context,
	input *engine.CalculateFeatSlotsInput,
) (*engine.CalculateFeatSlotsOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	char := input.Character
	level := char.Level()

	available := 0
	if level >= 1 {
		available = 1 + level/3
	}

	if char.RaceID != "" {
		race, err := a.tables.Race(char.RaceID)
		if err != nil {
			return nil, err
		}
		available += race.BonusFeats
	}

	for _, cl := range char.Classes {
		class, err := a.tables.Class(cl.ClassID)
		if err != nil {
			return nil, err
		}
		for lvl := 1; lvl <= cl.Level; lvl++ {
			if class.GrantsBonusFeatAt(lvl) {
				available++
			}
		}
	}

	return &engine.CalculateFeatSlotsOutput{
		Slots: entities.FeatSlots{
			Available: available,
			Spent:     len(char.Feats),
		},
	}, nil
}
