package character

import (
	"github.com/d20forge/srd35-engine/internal/engine"
	"github.com/d20forge/srd35-engine/internal/entities/srd35"
)

// CreateDraftInput defines the request for creating a character draft
type CreateDraftInput struct {
	PlayerID string
	Name     string // optional; can be set later via UpdateName
}

// CreateDraftOutput defines the response for creating a character draft
type CreateDraftOutput struct {
	Draft *srd35.CharacterDraft
}

// GetDraftInput defines the request for getting a draft by ID
type GetDraftInput struct {
	DraftID string
}

// GetDraftOutput defines the response for getting a draft
type GetDraftOutput struct {
	Draft *srd35.CharacterDraft
}

// UpdateNameInput defines the request for setting the draft's name
type UpdateNameInput struct {
	DraftID string
	Name    string
}

// UpdateNameOutput defines the response for setting the draft's name
type UpdateNameOutput struct {
	Draft *srd35.CharacterDraft
}

// UpdateRaceInput defines the request for selecting the draft's race
type UpdateRaceInput struct {
	DraftID string
	RaceID  string
}

// UpdateRaceOutput defines the response for selecting the draft's race.
// Racial ability adjustments have already been re-applied to the draft.
type UpdateRaceOutput struct {
	Draft *srd35.CharacterDraft
	Size  srd35.Size
	Speed int
}

// UpdateClassInput defines the request for selecting the draft's class.
// A zero Level means level one.
type UpdateClassInput struct {
	DraftID string
	ClassID string
	Level   int
}

// UpdateClassOutput defines the response for selecting the draft's class
type UpdateClassOutput struct {
	Draft *srd35.CharacterDraft
}

// UpdateAbilityScoresInput defines the request for assigning base ability
// scores. Scores are validated against the point-buy budget; a zero Budget
// means the standard one.
type UpdateAbilityScoresInput struct {
	DraftID string
	Scores  map[srd35.Ability]int
	Budget  int
}

// UpdateAbilityScoresOutput defines the response for assigning base scores.
// On a rejected spend the draft is unchanged and Errors lists the reasons.
type UpdateAbilityScoresOutput struct {
	Draft     *srd35.CharacterDraft
	TotalCost int
	Remaining int
	Errors    []engine.ValidationError
}

// AllocateSkillRankInput defines the request for a single rank adjustment
type AllocateSkillRankInput struct {
	DraftID string
	SkillID string
	Delta   int
}

// AllocateSkillRankOutput defines the response for a rank adjustment.
// Unusable marks a trained-only skill left at zero ranks.
type AllocateSkillRankOutput struct {
	Draft    *srd35.CharacterDraft
	Applied  bool
	Skill    srd35.SkillState
	Unusable bool
	Budget   srd35.SkillBudget
	Errors   []engine.ValidationError
}

// SelectFeatInput defines the request for selecting a feat
type SelectFeatInput struct {
	DraftID string
	FeatID  string
}

// SelectFeatOutput defines the response for selecting a feat. On a
// rejected selection the draft is unchanged and Errors lists the reasons.
type SelectFeatOutput struct {
	Draft  *srd35.CharacterDraft
	Added  bool
	Slots  srd35.FeatSlots
	Errors []engine.ValidationError
}

// RemoveFeatInput defines the request for removing a selected feat
type RemoveFeatInput struct {
	DraftID string
	FeatID  string
}

// RemoveFeatOutput defines the response for removing a feat
type RemoveFeatOutput struct {
	Draft *srd35.CharacterDraft
}

// UpdateEquipmentInput defines the request for replacing the draft's
// equipment list
type UpdateEquipmentInput struct {
	DraftID   string
	Equipment []srd35.EquippedItem
}

// UpdateEquipmentOutput defines the response for replacing equipment
type UpdateEquipmentOutput struct {
	Draft *srd35.CharacterDraft
}

// RollHitPointsInput defines the request for rolling the draft's hit dice
type RollHitPointsInput struct {
	DraftID string
}

// RollHitPointsOutput defines the response for rolling hit dice. Rolls
// covers levels after the first; level one always takes the maximum die.
type RollHitPointsOutput struct {
	Draft *srd35.CharacterDraft
	Rolls []int
	MaxHP int
}

// RollAbilityScoresInput defines the request for rolling ability scores
type RollAbilityScoresInput struct {
	DraftID string
}

// RollAbilityScoresOutput defines the response for rolling ability scores.
// Six 4d6-drop-lowest totals, unassigned; the player maps them to
// abilities via UpdateAbilityScores or keeps point buy instead.
type RollAbilityScoresOutput struct {
	Scores []int
	Rolls  [][]int // the four dice behind each total
}

// ValidateDraftInput defines the request for validating a draft
type ValidateDraftInput struct {
	DraftID string
}

// ValidateDraftOutput defines the response for validating a draft
type ValidateDraftOutput struct {
	Draft   *srd35.CharacterDraft
	Report  engine.ValidationReport
	Derived *srd35.DerivedStats
}

// FinalizeDraftInput defines the request for finalizing a draft
type FinalizeDraftInput struct {
	DraftID string
}

// FinalizeDraftOutput defines the response for finalizing a draft. When
// the report carries errors no character is created and Character is nil.
type FinalizeDraftOutput struct {
	Character *srd35.Character
	Report    engine.ValidationReport
}

// GetCharacterInput defines the request for getting a finalized character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character, with
// derived statistics freshly recomputed
type GetCharacterOutput struct {
	Character *srd35.Character
}

// ListCharactersInput defines the request for listing a player's characters
type ListCharactersInput struct {
	PlayerID string
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*srd35.Character
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}
