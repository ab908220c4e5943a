package srd35

import (
	"context"
	"fmt"

	"github.com/d20forge/srd35-engine/internal/engine"
	entities "github.com/d20forge/srd35-engine/internal/entities/srd35"
	"github.com/d20forge/srd35-engine/internal/errors"
)

// ApplyRacialAdjustments writes the race's adjustments onto the racial
// layer of each score. The layer is replaced, not added to, so selecting
// dwarf after elf leaves no elf residue behind.
func (a *Adapter) ApplyRacialAdjustments(
	_ context.Context,
	input *engine.ApplyRacialAdjustmentsInput,
) (*engine.ApplyRacialAdjustmentsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	race, err := a.tables.Race(input.RaceID)
	if err != nil {
		return nil, err
	}

	scores := input.Scores.Clone()
	if scores == nil {
		scores = entities.NewAbilityScores(0)
	}
	for _, ability := range entities.Abilities() {
		score := scores[ability]
		score.RacialAdjustment = race.AbilityAdjustments[ability]
		scores[ability] = score
	}

	return &engine.ApplyRacialAdjustmentsOutput{
		Scores: scores,
		Size:   race.Size,
		Speed:  race.Speed,
	}, nil
}

// ValidatePointBuy prices each base score against the cost table and checks
// the total against the budget. Scores outside the purchasable range are
// individual errors; they contribute no cost, so the budget check still
// runs on whatever else was bought.
func (a *Adapter) ValidatePointBuy(
	_ context.Context,
	input *engine.ValidatePointBuyInput,
) (*engine.ValidatePointBuyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	budget := input.Budget
	if budget == 0 {
		budget = entities.DefaultPointBuyBudget
	}

	out := &engine.ValidatePointBuyOutput{}
	for _, ability := range entities.Abilities() {
		score, ok := input.Scores[ability]
		if !ok {
			out.Errors = append(out.Errors, engine.ValidationError{
				Field:   string(ability),
				Code:    string(errors.CodeMissingSelection),
				Message: fmt.Sprintf("%s has no score assigned", ability),
			})
			continue
		}
		cost, err := a.tables.PointBuyCost(score)
		if err != nil {
			if !errors.IsOutOfRange(err) {
				return nil, err
			}
			out.Errors = append(out.Errors, engine.ValidationError{
				Field: string(ability),
				Code:  string(errors.CodeOutOfRange),
				Message: fmt.Sprintf("%s score %d is outside the point-buy range %d to %d",
					ability, score, entities.PointBuyMinScore, entities.PointBuyMaxScore),
			})
			continue
		}
		out.TotalCost += cost
	}

	out.Remaining = budget - out.TotalCost
	if out.Remaining < 0 {
		out.Errors = append(out.Errors, engine.ValidationError{
			Field: "abilities",
			Code:  string(errors.CodeBudgetExceeded),
			Message: fmt.Sprintf("point buy costs %d points but the budget is %d",
				out.TotalCost, budget),
		})
	}
	out.Valid = len(out.Errors) == 0
	return out, nil
}
