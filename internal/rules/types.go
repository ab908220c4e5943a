// Package rules holds the static SRD 3.5 rule tables: races, classes,
// skills, feats, equipment, and the numeric tables the calculators consume.
// Tables are loaded once at process start, immutable afterward, and shared
// by reference across every character session.
package rules

import (
	"github.com/d20forge/srd35-engine/internal/entities/srd35"
)

// BABProgression is the closed set of base-attack-bonus qualities
type BABProgression string

// BAB progressions
const (
	BABFull   BABProgression = "full"
	BABMedium BABProgression = "medium"
	BABPoor   BABProgression = "poor"
)

// IsValid reports whether the progression is a known quality
func (p BABProgression) IsValid() bool {
	return p == BABFull || p == BABMedium || p == BABPoor
}

// SaveProgression is the closed set of saving-throw qualities
type SaveProgression string

// Save progressions
const (
	SaveGood SaveProgression = "good"
	SavePoor SaveProgression = "poor"
)

// IsValid reports whether the progression is a known quality
func (p SaveProgression) IsValid() bool {
	return p == SaveGood || p == SavePoor
}

// Race is an immutable race entry
type Race struct {
	ID                  string
	Name                string
	Size                srd35.Size
	Speed               int
	AbilityAdjustments  map[srd35.Ability]int
	SpecialAbilities    []string
	AutomaticLanguages  []string
	BonusLanguages      []string
	FavoredClass        string // empty means "any" (human, half-elf)
	BonusFeats          int    // extra feat slots at level 1
	BonusSkillPoints    int    // extra skill points per level
}

// HasSpecialAbility reports whether the race carries the named trait,
// e.g. "darkvision". Traits are opaque strings but enumerable so the
// prerequisite system can query them.
func (r *Race) HasSpecialAbility(name string) bool {
	for _, ability := range r.SpecialAbilities {
		if ability == name {
			return true
		}
	}
	return false
}

// Class is an immutable class entry
type Class struct {
	ID                 string
	Name               string
	HitDie             int
	SkillPointsPerLevel int
	ClassSkills        map[string]bool
	BAB                BABProgression
	Saves              map[srd35.Save]SaveProgression
	Spellcasting       bool
	CastingAbility     srd35.Ability // key ability for slots and DCs
	SpellsPerDay       map[int]map[int]int // class level -> spell level -> base slots
	BonusFeatLevels    []int // class levels granting a bonus feat slot (fighter)
}

// IsClassSkill reports whether the named skill is on the class's list
func (c *Class) IsClassSkill(skillID string) bool {
	return c.ClassSkills[skillID]
}

// GrantsBonusFeatAt reports whether the class grants a bonus feat slot at
// the given class level
func (c *Class) GrantsBonusFeatAt(level int) bool {
	for _, l := range c.BonusFeatLevels {
		if l == level {
			return true
		}
	}
	return false
}

// Skill is an immutable skill entry
type Skill struct {
	ID          string
	Name        string
	KeyAbility  srd35.Ability
	TrainedOnly bool
}

// FeatType tags a feat's category
type FeatType string

// Feat type tags
const (
	FeatGeneral      FeatType = "general"
	FeatCombat       FeatType = "combat"
	FeatMetamagic    FeatType = "metamagic"
	FeatItemCreation FeatType = "item_creation"
	FeatEpic         FeatType = "epic"
)

// IsValid reports whether the type tag is known
func (t FeatType) IsValid() bool {
	switch t {
	case FeatGeneral, FeatCombat, FeatMetamagic, FeatItemCreation, FeatEpic:
		return true
	default:
		return false
	}
}

// Feat is an immutable feat entry. Prerequisites are a conjunction: every
// predicate must hold for the feat to be selectable.
type Feat struct {
	ID            string
	Name          string
	Type          FeatType
	Prerequisites []Prerequisite
	Benefit       string
}

// Prerequisite is a tagged predicate in a feat's prerequisite list. New
// feats are data, not code: the closed variant set below is the whole
// predicate language.
type Prerequisite interface {
	isPrerequisite()
}

// AbilityAtLeast requires a total ability score at or above a threshold
type AbilityAtLeast struct {
	Ability srd35.Ability
	Value   int
}

func (AbilityAtLeast) isPrerequisite() {}

// SkillRanksAtLeast requires ranks in a skill at or above a threshold
type SkillRanksAtLeast struct {
	SkillID string
	Ranks   int
}

func (SkillRanksAtLeast) isPrerequisite() {}

// BABAtLeast requires a total base attack bonus at or above a threshold
type BABAtLeast struct {
	Value int
}

func (BABAtLeast) isPrerequisite() {}

// HasFeat requires another feat to already be selected
type HasFeat struct {
	FeatID string
}

func (HasFeat) isPrerequisite() {}

// IsClass requires at least one level in the named class
type IsClass struct {
	ClassID string
}

func (IsClass) isPrerequisite() {}

// IsSpellcaster requires at least one level in a spellcasting class
type IsSpellcaster struct{}

func (IsSpellcaster) isPrerequisite() {}

// ItemKind distinguishes the equipment categories
type ItemKind string

// Equipment kinds
const (
	ItemWeapon ItemKind = "weapon"
	ItemArmor  ItemKind = "armor"
	ItemShield ItemKind = "shield"
	ItemGear   ItemKind = "gear"
)

// WeaponCategory is the proficiency category of a weapon
type WeaponCategory string

// Weapon proficiency categories
const (
	WeaponSimple  WeaponCategory = "simple"
	WeaponMartial WeaponCategory = "martial"
	WeaponExotic  WeaponCategory = "exotic"
)

// Item is an immutable equipment entry. Kind selects which of the
// type-specific blocks is populated.
type Item struct {
	ID     string
	Name   string
	Kind   ItemKind
	Weight int // pounds

	Weapon *WeaponData
	Armor  *ArmorData
}

// WeaponData holds weapon-specific fields
type WeaponData struct {
	Category   WeaponCategory
	DamageDice string // e.g. "1d8"
	Critical   string // e.g. "19-20/x2"
	Ranged     bool
	RangeIncrement int // feet, ranged weapons only
}

// ArmorData holds armor- and shield-specific fields
type ArmorData struct {
	Bonus        int
	MaxDexBonus  int  // ignored unless HasMaxDex
	HasMaxDex    bool // heavy armors cap the dex bonus; shields never do
	CheckPenalty int
}
