package srd35

import (
	"context"
	"fmt"

	"github.com/d20forge/srd35-engine/internal/engine"
	entities "github.com/d20forge/srd35-engine/internal/entities/srd35"
	"github.com/d20forge/srd35-engine/internal/errors"
)

const crossClassCost = 2

// classSkillFor reports whether any of the character's classes treats the
// skill as a class skill. Multiclass characters use the union; one level
// of rogue makes Hide a class skill for the whole character.
func (a *Adapter) classSkillFor(classes []entities.ClassLevel, skillID string) (bool, error) {
	for _, cl := range classes {
		class, err := a.tables.Class(cl.ClassID)
		if err != nil {
			return false, err
		}
		if class.IsClassSkill(skillID) {
			return true, nil
		}
	}
	return false, nil
}

// spentPoints prices the character's current allocations. Cross-class
// status is read from the cached per-skill flag, which was fixed at
// allocation time.
func spentPoints(skills map[string]entities.SkillState) int {
	spent := 0
	for _, state := range skills {
		cost := 1
		if !state.ClassSkill {
			cost = crossClassCost
		}
		spent += state.Ranks * cost
	}
	return spent
}

// AllocateSkillRank adds or removes exactly one rank. Every check runs
// before any mutation, so a rejected allocation leaves the character
// byte-identical to before the call.
func (a *Adapter) AllocateSkillRank(
	ctx context.Context,
	input *engine.AllocateSkillRankInput,
) (*engine.AllocateSkillRankOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if input.Delta != 1 && input.Delta != -1 {
		return nil, errors.InvalidArgument("delta must be +1 or -1")
	}

	skill, err := a.tables.Skill(input.SkillID)
	if err != nil {
		return nil, err
	}

	char := input.Character
	if len(char.Classes) == 0 {
		return &engine.AllocateSkillRankOutput{
			Errors: []engine.ValidationError{{
				Field:   "classes",
				Code:    string(errors.CodeMissingSelection),
				Message: "select a class before allocating skill ranks",
			}},
		}, nil
	}

	classSkill, err := a.classSkillFor(char.Classes, skill.ID)
	if err != nil {
		return nil, err
	}

	budgetOut, err := a.CalculateSkillPointBudget(ctx, &engine.CalculateSkillPointBudgetInput{
		Classes:              char.Classes,
		IntelligenceModifier: char.Abilities.Modifier(entities.AbilityIntelligence),
		RaceID:               char.RaceID,
	})
	if err != nil {
		return nil, err
	}
	budget := entities.SkillBudget{
		Available: budgetOut.Available,
		Spent:     spentPoints(char.Skills),
	}

	state := char.Skills[skill.ID]

	if input.Delta == -1 {
		if state.Ranks == 0 {
			return &engine.AllocateSkillRankOutput{
				Skill:    state,
				Unusable: skill.TrainedOnly,
				Budget:   budget,
				Errors: []engine.ValidationError{{
					Field:   skill.ID,
					Code:    string(errors.CodeOutOfRange),
					Message: fmt.Sprintf("%s has no ranks to remove", skill.Name),
				}},
			}, nil
		}
		cost := 1
		if !state.ClassSkill {
			cost = crossClassCost
		}
		state.Ranks--
		budget.Spent -= cost
		if char.Skills == nil {
			char.Skills = make(map[string]entities.SkillState)
		}
		if state.Ranks == 0 {
			delete(char.Skills, skill.ID)
		} else {
			char.Skills[skill.ID] = state
		}
		return &engine.AllocateSkillRankOutput{
			Applied:  true,
			Skill:    state,
			Unusable: skill.TrainedOnly && state.Ranks == 0,
			Budget:   budget,
		}, nil
	}

	cost := 1
	maxRanks := char.Level() + 3
	if !classSkill {
		cost = crossClassCost
		maxRanks = (char.Level() + 3) / 2
	}

	if state.Ranks+1 > maxRanks {
		kind := "class"
		if !classSkill {
			kind = "cross-class"
		}
		return &engine.AllocateSkillRankOutput{
			Skill:    state,
			Unusable: skill.TrainedOnly && state.Ranks == 0,
			Budget:   budget,
			Errors: []engine.ValidationError{{
				Field: skill.ID,
				Code:  string(errors.CodeRankCeilingExceeded),
				Message: fmt.Sprintf("%s is capped at %d ranks as a %s skill at level %d",
					skill.Name, maxRanks, kind, char.Level()),
			}},
		}, nil
	}
	if budget.Spent+cost > budget.Available {
		return &engine.AllocateSkillRankOutput{
			Skill:    state,
			Unusable: skill.TrainedOnly && state.Ranks == 0,
			Budget:   budget,
			Errors: []engine.ValidationError{{
				Field: skill.ID,
				Code:  string(errors.CodeBudgetExceeded),
				Message: fmt.Sprintf("allocating %s costs %d points but only %d remain",
					skill.Name, cost, budget.Remaining()),
			}},
		}, nil
	}

	state.Ranks++
	state.ClassSkill = classSkill
	budget.Spent += cost
	if char.Skills == nil {
		char.Skills = make(map[string]entities.SkillState)
	}
	char.Skills[skill.ID] = state

	return &engine.AllocateSkillRankOutput{Applied: true, Skill: state, Budget: budget}, nil
}
