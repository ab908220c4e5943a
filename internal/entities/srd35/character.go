// Package srd35 implements the SRD 3.5 character entities.
// NOTE: These are data-only structs. All calculations (BAB, AC, budgets,
// spell slots) are done by the engine, never here.
package srd35

// ClassLevel is one (class, level) pair. A single-class character has one
// entry; multiclass characters carry one entry per class.
type ClassLevel struct {
	ClassID string `json:"class_id"`
	Level   int    `json:"level"`
}

// SkillState is the per-character state of one skill. ClassSkill is derived
// from the character's classes at allocation time and cached here because
// multiclass characters may classify the same skill differently per class.
type SkillState struct {
	Ranks      int  `json:"ranks"`
	ClassSkill bool `json:"class_skill"`
}

// EquippedItem references a rule-table equipment entry plus instance state
type EquippedItem struct {
	ItemID           string `json:"item_id"`
	EnhancementBonus int    `json:"enhancement_bonus,omitempty"`
	Quantity         int    `json:"quantity,omitempty"`
}

// Character is the aggregate root: the player's raw selections plus the
// engine-derived blocks. Only the raw selections are persisted; Derived is
// recomputed wholesale by the validator and excluded from storage so a
// rule-table update can never leave stale numbers in a save.
type Character struct {
	ID           string         `json:"id"`
	PlayerID     string         `json:"player_id"`
	Name         string         `json:"name"`
	RaceID       string         `json:"race_id"`
	Classes      []ClassLevel   `json:"classes"`
	Abilities    AbilityScores  `json:"abilities"`
	Skills       map[string]SkillState `json:"skills"`
	Feats        []string       `json:"feats"`
	Equipment    []EquippedItem `json:"equipment"`
	HitDieRolls  []int          `json:"hit_die_rolls,omitempty"` // rolled values for levels 2..N, supplied by the dice collaborator
	RulesVersion string         `json:"rules_version"`
	CreatedAt    int64          `json:"created_at"`
	UpdatedAt    int64          `json:"updated_at"`

	Derived *DerivedStats `json:"-"`
}

// Level returns the character level: the sum across all class levels
func (c *Character) Level() int {
	total := 0
	for _, cl := range c.Classes {
		total += cl.Level
	}
	return total
}

// PrimaryClass returns the first class entry, or empty if none chosen yet
func (c *Character) PrimaryClass() ClassLevel {
	if len(c.Classes) == 0 {
		return ClassLevel{}
	}
	return c.Classes[0]
}

// HasFeat reports whether the feat is in the character's selection set
func (c *Character) HasFeat(featID string) bool {
	for _, id := range c.Feats {
		if id == featID {
			return true
		}
	}
	return false
}

// ClassLevelOf returns the character's level in the named class, 0 if none
func (c *Character) ClassLevelOf(classID string) int {
	for _, cl := range c.Classes {
		if cl.ClassID == classID {
			return cl.Level
		}
	}
	return 0
}

// DerivedStats is the full derived block. The engine repopulates it
// wholesale on every validation pass; callers never set fields directly.
type DerivedStats struct {
	MaxHP            int
	BAB              int
	Initiative       int
	Speed            int
	Saves            map[Save]int
	ArmorClass       ACBreakdown
	SkillBudget      SkillBudget
	FeatSlots        FeatSlots
	SpellsPerDay     map[string]map[int]int // class id -> spell level -> slots
	CarryingCapacity Capacity
	Encumbrance      Encumbrance
}

// ACBreakdown itemizes every armor class contribution for display and audit
type ACBreakdown struct {
	Base         int
	ArmorBonus   int
	ShieldBonus  int
	DexBonus     int
	SizeModifier int
	NaturalArmor int
	Deflection   int
	Misc         int
	Total        int
}

// SkillBudget tracks skill points available against points spent
type SkillBudget struct {
	Available int
	Spent     int
}

// Remaining returns the unspent skill points
func (b SkillBudget) Remaining() int {
	return b.Available - b.Spent
}

// FeatSlots tracks feat selections against the slots the character has
type FeatSlots struct {
	Available int
	Spent     int
}

// Capacity holds the carrying-capacity thresholds in pounds
type Capacity struct {
	Light  int
	Medium int
	Heavy  int
}

// EncumbranceTier is a carried-weight band
type EncumbranceTier string

// Encumbrance tiers
const (
	EncumbranceLight      EncumbranceTier = "light"
	EncumbranceMedium     EncumbranceTier = "medium"
	EncumbranceHeavy      EncumbranceTier = "heavy"
	EncumbranceOverloaded EncumbranceTier = "overloaded"
)

// Encumbrance is the derived load classification and its penalties
type Encumbrance struct {
	Tier         EncumbranceTier
	TotalWeight  int
	SpeedPenalty int // feet subtracted from base speed
	CheckPenalty int
	MaxDexBonus  int // no cap when the tier imposes none
	HasDexCap    bool
	Immobilized  bool // above the heavy limit; effective speed is zero
}
