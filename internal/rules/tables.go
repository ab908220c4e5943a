package rules

import (
	"sort"

	"github.com/d20forge/srd35-engine/internal/entities/srd35"
	"github.com/d20forge/srd35-engine/internal/errors"
)

// Tables is the immutable rule-table set. Build one with Load or
// LoadDefault at process start and pass it by reference; it is safe for
// concurrent readers and is never mutated after construction.
type Tables struct {
	version string

	races   map[string]*Race
	classes map[string]*Class
	skills  map[string]*Skill
	feats   map[string]*Feat
	items   map[string]*Item

	pointBuyCosts map[int]int
	heavyLoad     map[int]int // strength 1..29 -> heavy load in pounds
}

// Version returns the rule-table version string. Character snapshots carry
// it so a version mismatch surfaces instead of silently recomputing against
// different data.
func (t *Tables) Version() string {
	return t.version
}

// Race looks up a race by id
func (t *Tables) Race(id string) (*Race, error) {
	race, ok := t.races[id]
	if !ok {
		return nil, errors.UnknownRulef("race %q not in rule tables", id).WithMeta("race_id", id)
	}
	return race, nil
}

// Class looks up a class by id
func (t *Tables) Class(id string) (*Class, error) {
	class, ok := t.classes[id]
	if !ok {
		return nil, errors.UnknownRulef("class %q not in rule tables", id).WithMeta("class_id", id)
	}
	return class, nil
}

// Skill looks up a skill by id
func (t *Tables) Skill(id string) (*Skill, error) {
	skill, ok := t.skills[id]
	if !ok {
		return nil, errors.UnknownRulef("skill %q not in rule tables", id).WithMeta("skill_id", id)
	}
	return skill, nil
}

// Feat looks up a feat by id
func (t *Tables) Feat(id string) (*Feat, error) {
	feat, ok := t.feats[id]
	if !ok {
		return nil, errors.UnknownRulef("feat %q not in rule tables", id).WithMeta("feat_id", id)
	}
	return feat, nil
}

// Item looks up an equipment entry by id
func (t *Tables) Item(id string) (*Item, error) {
	item, ok := t.items[id]
	if !ok {
		return nil, errors.UnknownRulef("item %q not in rule tables", id).WithMeta("item_id", id)
	}
	return item, nil
}

// RaceIDs returns every race id in sorted order
func (t *Tables) RaceIDs() []string { return sortedKeys(t.races) }

// ClassIDs returns every class id in sorted order
func (t *Tables) ClassIDs() []string { return sortedKeys(t.classes) }

// SkillIDs returns every skill id in sorted order
func (t *Tables) SkillIDs() []string { return sortedKeys(t.skills) }

// FeatIDs returns every feat id in sorted order
func (t *Tables) FeatIDs() []string { return sortedKeys(t.feats) }

// ItemIDs returns every equipment id in sorted order
func (t *Tables) ItemIDs() []string { return sortedKeys(t.items) }

func sortedKeys[V any](m map[string]*V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PointBuyCost returns the point cost of an ability score. Scores outside
// the table (below 8 or above 18) are invalid, not zero-cost.
func (t *Tables) PointBuyCost(score int) (int, error) {
	cost, ok := t.pointBuyCosts[score]
	if !ok {
		return 0, errors.OutOfRangef("score %d has no point-buy cost; legal scores are %d-%d",
			score, srd35.PointBuyMinScore, srd35.PointBuyMaxScore)
	}
	return cost, nil
}

// CarryingCapacity returns the light/medium/heavy thresholds for a strength
// score. Strength 1-29 is table-driven; each full +10 beyond 29 multiplies
// all three thresholds by 4.
func (t *Tables) CarryingCapacity(strength int) srd35.Capacity {
	if strength < 1 {
		strength = 1
	}

	multiplier := 1
	for strength > 29 {
		strength -= 10
		multiplier *= 4
	}

	// Light and medium are thirds of the heavy load, floored the way the
	// printed table floors them. The multiplier applies to all three
	// thresholds after flooring so an extrapolated tier is exactly 4x the
	// tier ten points below it.
	heavy := t.heavyLoad[strength]
	return srd35.Capacity{
		Light:  heavy / 3 * multiplier,
		Medium: heavy * 2 / 3 * multiplier,
		Heavy:  heavy * multiplier,
	}
}

// BonusSpells returns the bonus spell slots an ability modifier grants at a
// spell level, per the SRD bonus-spell table: a modifier M grants
// (M-L)/4 + 1 slots at spell level L when M >= L, none otherwise. Spell
// level 0 never receives bonus slots.
func (t *Tables) BonusSpells(abilityModifier, spellLevel int) int {
	if spellLevel < 1 || spellLevel > 9 {
		return 0
	}
	if abilityModifier < spellLevel {
		return 0
	}
	return (abilityModifier-spellLevel)/4 + 1
}
