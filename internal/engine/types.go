package engine

import (
	"github.com/d20forge/srd35-engine/internal/entities/srd35"
)

// ApplyRacialAdjustmentsInput selects a race for a set of ability scores
type ApplyRacialAdjustmentsInput struct {
	Scores srd35.AbilityScores
	RaceID string
}

// ApplyRacialAdjustmentsOutput carries the adjusted scores plus the
// race-derived physical traits. Racial adjustments are stored on their own
// layer of each score, so selecting a new race replaces the previous
// race's adjustments rather than stacking on top of them.
type ApplyRacialAdjustmentsOutput struct {
	Scores srd35.AbilityScores
	Size   srd35.Size
	Speed  int
}

// ValidatePointBuyInput contains base scores to check against a budget.
// A zero Budget means the standard 28 points.
type ValidatePointBuyInput struct {
	Scores map[srd35.Ability]int
	Budget int
}

// ValidatePointBuyOutput itemizes the spend
type ValidatePointBuyOutput struct {
	Valid     bool
	TotalCost int
	Remaining int
	Errors    []ValidationError
}

// CalculateBABInput contains the class levels to total
type CalculateBABInput struct {
	Classes []srd35.ClassLevel
}

// CalculateBABOutput contains the summed base attack bonus
type CalculateBABOutput struct {
	BAB int
}

// CalculateSaveBasesInput contains the class levels to total
type CalculateSaveBasesInput struct {
	Classes []srd35.ClassLevel
}

// CalculateSaveBasesOutput contains base saves before ability modifiers
type CalculateSaveBasesOutput struct {
	Saves map[srd35.Save]int
}

// CalculateHitPointsInput carries class levels, the constitution modifier,
// and any recorded hit die rolls. Rolls are consumed in order for levels
// after the first; missing rolls fall back to the average result rounded
// up. Level one always takes the maximum of the first class's hit die.
type CalculateHitPointsInput struct {
	Classes              []srd35.ClassLevel
	ConstitutionModifier int
	Rolls                []int
}

// CalculateHitPointsOutput contains the character's maximum hit points
type CalculateHitPointsOutput struct {
	MaxHP int
}

// CalculateSkillPointBudgetInput carries what the budget depends on
type CalculateSkillPointBudgetInput struct {
	Classes              []srd35.ClassLevel
	IntelligenceModifier int
	RaceID               string
}

// CalculateSkillPointBudgetOutput contains total points available
type CalculateSkillPointBudgetOutput struct {
	Available int
}

// AllocateSkillRankInput adjusts one skill by one rank. Delta must be +1
// or -1.
type AllocateSkillRankInput struct {
	Character *srd35.Character
	SkillID   string
	Delta     int
}

// AllocateSkillRankOutput reports the post-allocation state. On a
// rejected allocation the character is left untouched and the rejection
// arrives as a ValidationError. Unusable marks a trained-only skill left
// at zero ranks; it contributes no bonus and cannot be attempted.
type AllocateSkillRankOutput struct {
	Applied  bool
	Skill    srd35.SkillState
	Unusable bool
	Budget   srd35.SkillBudget
	Errors   []ValidationError
}

// ValidateFeatPrerequisitesInput names the feat to test against a character
type ValidateFeatPrerequisitesInput struct {
	Character *srd35.Character
	FeatID    string
}

// ValidateFeatPrerequisitesOutput lists every unmet prerequisite
type ValidateFeatPrerequisitesOutput struct {
	Met      bool
	Failures []ValidationError
}

// CalculateFeatSlotsInput contains the character whose slots to count
type CalculateFeatSlotsInput struct {
	Character *srd35.Character
}

// CalculateFeatSlotsOutput contains the slot accounting
type CalculateFeatSlotsOutput struct {
	Slots srd35.FeatSlots
}

// GetSpellsPerDayInput identifies one casting class at one level
type GetSpellsPerDayInput struct {
	ClassID         string
	Level           int
	AbilityModifier int
}

// GetSpellsPerDayOutput maps spell level to slots per day, base table plus
// bonus spells. Spellcaster is false for classes with no casting at all;
// a caster below their first casting level gets an empty map.
type GetSpellsPerDayOutput struct {
	Spellcaster bool
	Slots       map[int]int
}

// CalculateSpellDCInput carries the DC components
type CalculateSpellDCInput struct {
	SpellLevel      int
	AbilityModifier int
	SpellFocus      bool
}

// CalculateSpellDCOutput contains the saving throw difficulty class
type CalculateSpellDCOutput struct {
	DC int
}

// CalculateArmorClassInput contains the character whose AC to itemize
type CalculateArmorClassInput struct {
	Character *srd35.Character
}

// CalculateArmorClassOutput contains the itemized armor class
type CalculateArmorClassOutput struct {
	Breakdown srd35.ACBreakdown
}

// CalculateAttackBonusInput carries the attack bonus components.
// Proficient toggles the -4 non-proficiency penalty.
type CalculateAttackBonusInput struct {
	BAB             int
	AbilityModifier int
	SizeModifier    int
	Enhancement     int
	Proficient      bool
}

// CalculateAttackBonusOutput contains the total attack bonus
type CalculateAttackBonusOutput struct {
	AttackBonus int
}

// CalculateCarryingCapacityInput contains the strength score to look up
type CalculateCarryingCapacityInput struct {
	Strength int
}

// CalculateCarryingCapacityOutput contains the load thresholds
type CalculateCarryingCapacityOutput struct {
	Capacity srd35.Capacity
}

// ClassifyEncumbranceInput weighs carried equipment against capacity
type ClassifyEncumbranceInput struct {
	TotalWeight int
	Capacity    srd35.Capacity
}

// ClassifyEncumbranceOutput contains the encumbrance tier and penalties
type ClassifyEncumbranceOutput struct {
	Encumbrance srd35.Encumbrance
}

// ValidateCharacterInput contains the character to validate
type ValidateCharacterInput struct {
	Character *srd35.Character
}

// ValidateCharacterOutput contains the report and the freshly computed
// derived statistics. Derived is complete whenever the report was
// produced, even when the report carries errors.
type ValidateCharacterOutput struct {
	Report  ValidationReport
	Derived *srd35.DerivedStats
}

// ValidationReport aggregates everything found during validation
type ValidationReport struct {
	Valid    bool
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// ValidationError represents a player-fixable rule violation
type ValidationError struct {
	Field   string
	Message string
	Code    string
}

// ValidationWarning represents advice that does not block finalization
type ValidationWarning struct {
	Field   string
	Message string
	Code    string
}
