// Package engine defines the rules calculation boundary. Implementations
// turn raw character selections into derived statistics and validation
// reports without touching storage or transport.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/d20forge/srd35-engine/internal/engine Engine

import (
	"context"
)

// Engine provides game mechanics and rules calculations.
//
// Player mistakes (overspent budgets, unmet prerequisites) come back as
// ValidationError values inside the outputs; a non-nil Go error means the
// inputs themselves were malformed or referenced an unknown rule id.
type Engine interface {
	// Ability scores
	ApplyRacialAdjustments(ctx context.Context, input *ApplyRacialAdjustmentsInput) (*ApplyRacialAdjustmentsOutput, error)
	ValidatePointBuy(ctx context.Context, input *ValidatePointBuyInput) (*ValidatePointBuyOutput, error)

	// Class progressions
	CalculateBAB(ctx context.Context, input *CalculateBABInput) (*CalculateBABOutput, error)
	CalculateSaveBases(ctx context.Context, input *CalculateSaveBasesInput) (*CalculateSaveBasesOutput, error)
	CalculateHitPoints(ctx context.Context, input *CalculateHitPointsInput) (*CalculateHitPointsOutput, error)

	// Skills
	CalculateSkillPointBudget(
		ctx context.Context,
		input *CalculateSkillPointBudgetInput,
	) (*CalculateSkillPointBudgetOutput, error)
	AllocateSkillRank(ctx context.Context, input *AllocateSkillRankInput) (*AllocateSkillRankOutput, error)

	// Feats
	ValidateFeatPrerequisites(
		ctx context.Context,
		input *ValidateFeatPrerequisitesInput,
	) (*ValidateFeatPrerequisitesOutput, error)
	CalculateFeatSlots(ctx context.Context, input *CalculateFeatSlotsInput) (*CalculateFeatSlotsOutput, error)

	// Spellcasting
	GetSpellsPerDay(ctx context.Context, input *GetSpellsPerDayInput) (*GetSpellsPerDayOutput, error)
	CalculateSpellDC(ctx context.Context, input *CalculateSpellDCInput) (*CalculateSpellDCOutput, error)

	// Combat statistics
	CalculateArmorClass(ctx context.Context, input *CalculateArmorClassInput) (*CalculateArmorClassOutput, error)
	CalculateAttackBonus(ctx context.Context, input *CalculateAttackBonusInput) (*CalculateAttackBonusOutput, error)
	CalculateCarryingCapacity(
		ctx context.Context,
		input *CalculateCarryingCapacityInput,
	) (*CalculateCarryingCapacityOutput, error)
	ClassifyEncumbrance(ctx context.Context, input *ClassifyEncumbranceInput) (*ClassifyEncumbranceOutput, error)

	// Whole-character validation; repopulates derived stats as a side product
	ValidateCharacter(ctx context.Context, input *ValidateCharacterInput) (*ValidateCharacterOutput, error)

	// Utility methods
	AbilityModifier(score int) int
	IsSpellcaster(classID string) (bool, error)
	HitDie(classID string) (int, error)
	RulesVersion() string
}
