package testutils

import (
	"github.com/d20forge/srd35-engine/internal/entities/srd35"
)

// CreateTestCharacter returns a finalized level 1 human fighter with all
// selections filled in. Derived stats are left nil; the engine owns those.
func CreateTestCharacter(id, playerID string) *srd35.Character {
	return &srd35.Character{
		ID:       id,
		PlayerID: playerID,
		Name:     "Tordek",
		RaceID:   "human",
		Classes: []srd35.ClassLevel{
			{ClassID: "fighter", Level: 1},
		},
		Abilities: srd35.AbilityScores{
			srd35.AbilityStrength:     {Base: 15},
			srd35.AbilityDexterity:    {Base: 14},
			srd35.AbilityConstitution: {Base: 14},
			srd35.AbilityIntelligence: {Base: 10},
			srd35.AbilityWisdom:       {Base: 12},
			srd35.AbilityCharisma:     {Base: 8},
		},
		Skills: map[string]srd35.SkillState{
			"climb": {Ranks: 4, ClassSkill: true},
		},
		Feats: []string{"power_attack"},
		Equipment: []srd35.EquippedItem{
			{ItemID: "longsword", Quantity: 1},
			{ItemID: "chainmail", Quantity: 1},
		},
		RulesVersion: "srd35-1.0",
	}
}

// CreateTestDraft returns a partially completed draft for the given player
func CreateTestDraft(id, playerID string) *srd35.CharacterDraft {
	draft := &srd35.CharacterDraft{
		ID:       id,
		PlayerID: playerID,
		Name:     "Mialee",
		RaceID:   "elf",
		Classes: []srd35.ClassLevel{
			{ClassID: "wizard", Level: 1},
		},
		Abilities: srd35.AbilityScores{
			srd35.AbilityStrength:     {Base: 8},
			srd35.AbilityDexterity:    {Base: 14},
			srd35.AbilityConstitution: {Base: 12},
			srd35.AbilityIntelligence: {Base: 16},
			srd35.AbilityWisdom:       {Base: 12},
			srd35.AbilityCharisma:     {Base: 10},
		},
		RulesVersion: "srd35-1.0",
		Progress: srd35.CreationProgress{
			CurrentStep: srd35.CreationStepSkills,
		},
	}
	draft.Progress.SetStep(srd35.ProgressStepName, true)
	draft.Progress.SetStep(srd35.ProgressStepRace, true)
	draft.Progress.SetStep(srd35.ProgressStepClass, true)
	draft.Progress.SetStep(srd35.ProgressStepAbilityScores, true)
	return draft
}
