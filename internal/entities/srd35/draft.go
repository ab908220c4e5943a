package srd35

// CharacterDraft is a character mid-creation. It carries the same raw
// selections as Character plus wizard progress tracking; the validator runs
// over it at any point and reports eligibility for finalization.
type CharacterDraft struct {
	ID           string                `json:"id"`
	PlayerID     string                `json:"player_id"`
	Name         string                `json:"name"`
	RaceID       string                `json:"race_id"`
	Classes      []ClassLevel          `json:"classes"`
	Abilities    AbilityScores         `json:"abilities"`
	Skills       map[string]SkillState `json:"skills"`
	Feats        []string              `json:"feats"`
	Equipment    []EquippedItem        `json:"equipment"`
	HitDieRolls  []int                 `json:"hit_die_rolls,omitempty"`
	RulesVersion string                `json:"rules_version"`
	Progress     CreationProgress      `json:"progress"`
	ExpiresAt    int64                 `json:"expires_at"`
	CreatedAt    int64                 `json:"created_at"`
	UpdatedAt    int64                 `json:"updated_at"`
}

// ToCharacter projects the draft's raw selections into a Character. The
// caller supplies the finalized id; derived fields stay unpopulated until
// the engine runs.
func (d *CharacterDraft) ToCharacter(id string) *Character {
	return &Character{
		ID:           id,
		PlayerID:     d.PlayerID,
		Name:         d.Name,
		RaceID:       d.RaceID,
		Classes:      append([]ClassLevel(nil), d.Classes...),
		Abilities:    d.Abilities.Clone(),
		Skills:       cloneSkills(d.Skills),
		Feats:        append([]string(nil), d.Feats...),
		Equipment:    append([]EquippedItem(nil), d.Equipment...),
		HitDieRolls:  append([]int(nil), d.HitDieRolls...),
		RulesVersion: d.RulesVersion,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// Snapshot returns a Character view of the draft for engine calls, reusing
// the draft's id. The engine treats drafts and characters identically.
func (d *CharacterDraft) Snapshot() *Character {
	return d.ToCharacter(d.ID)
}

// ApplyCharacter copies raw selections mutated by the engine back onto the
// draft. Derived fields are discarded; drafts never store them.
func (d *CharacterDraft) ApplyCharacter(c *Character) {
	d.RaceID = c.RaceID
	d.Classes = append([]ClassLevel(nil), c.Classes...)
	d.Abilities = c.Abilities.Clone()
	d.Skills = cloneSkills(c.Skills)
	d.Feats = append([]string(nil), c.Feats...)
	d.Equipment = append([]EquippedItem(nil), c.Equipment...)
	d.HitDieRolls = append([]int(nil), c.HitDieRolls...)
}

func cloneSkills(in map[string]SkillState) map[string]SkillState {
	if in == nil {
		return nil
	}
	out := make(map[string]SkillState, len(in))
	for id, state := range in {
		out[id] = state
	}
	return out
}

// CreationProgress tracks completion of character creation steps using bitflags
type CreationProgress struct {
	StepsCompleted uint8  `json:"steps_completed"`
	CurrentStep    string `json:"current_step"`
}

// Progress step bitflags
const (
	ProgressStepName          uint8 = 1 << iota // 1
	ProgressStepRace                            // 2
	ProgressStepClass                           // 4
	ProgressStepAbilityScores                   // 8
	ProgressStepSkills                          // 16
	ProgressStepFeats                           // 32
	ProgressStepEquipment                       // 64
)

// Creation step names for CurrentStep
const (
	CreationStepName          = "name"
	CreationStepRace          = "race"
	CreationStepClass         = "class"
	CreationStepAbilityScores = "ability_scores"
	CreationStepSkills        = "skills"
	CreationStepFeats         = "feats"
	CreationStepEquipment     = "equipment"
)

// HasStep checks if a specific step is completed
func (p CreationProgress) HasStep(step uint8) bool {
	return p.StepsCompleted&step != 0
}

// SetStep marks a step as completed or not
func (p *CreationProgress) SetStep(step uint8, completed bool) {
	if completed {
		p.StepsCompleted |= step
	} else {
		p.StepsCompleted &^= step
	}
}
