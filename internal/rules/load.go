package rules

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/d20forge/srd35-engine/internal/entities/srd35"
)

//go:embed data/*.yaml
var dataFS embed.FS

// yaml document shapes

type tablesDoc struct {
	Version       string      `yaml:"version"`
	PointBuyCosts map[int]int `yaml:"point_buy_costs"`
	HeavyLoad     map[int]int `yaml:"heavy_load"`
}

type racesDoc struct {
	Races map[string]raceDef `yaml:"races"`
}

type raceDef struct {
	Name               string         `yaml:"name"`
	Size               string         `yaml:"size"`
	Speed              int            `yaml:"speed"`
	AbilityAdjustments map[string]int `yaml:"ability_adjustments"`
	SpecialAbilities   []string       `yaml:"special_abilities"`
	AutomaticLanguages []string       `yaml:"automatic_languages"`
	BonusLanguages     []string       `yaml:"bonus_languages"`
	FavoredClass       string         `yaml:"favored_class"`
	BonusFeats         int            `yaml:"bonus_feats"`
	BonusSkillPoints   int            `yaml:"bonus_skill_points"`
}

type classesDoc struct {
	Classes map[string]classDef `yaml:"classes"`
}

type classDef struct {
	Name            string            `yaml:"name"`
	HitDie          int               `yaml:"hit_die"`
	SkillPoints     int               `yaml:"skill_points"`
	BAB             string            `yaml:"bab"`
	Saves           map[string]string `yaml:"saves"`
	Spellcasting    bool              `yaml:"spellcasting"`
	CastingAbility  string            `yaml:"casting_ability"`
	ClassSkills     []string          `yaml:"class_skills"`
	SpellsPerDay    map[int][]int     `yaml:"spells_per_day"`
	BonusFeatLevels []int             `yaml:"bonus_feat_levels"`
}

type skillsDoc struct {
	Skills map[string]skillDef `yaml:"skills"`
}

type skillDef struct {
	Name        string `yaml:"name"`
	Ability     string `yaml:"ability"`
	TrainedOnly bool   `yaml:"trained_only"`
}

type featsDoc struct {
	Feats map[string]featDef `yaml:"feats"`
}

type featDef struct {
	Name          string    `yaml:"name"`
	Type          string    `yaml:"type"`
	Prerequisites []prereqDef `yaml:"prerequisites"`
	Benefit       string    `yaml:"benefit"`
}

type prereqDef struct {
	Type    string `yaml:"type"`
	Ability string `yaml:"ability"`
	Skill   string `yaml:"skill"`
	Feat    string `yaml:"feat"`
	Class   string `yaml:"class"`
	Value   int    `yaml:"value"`
	Ranks   int    `yaml:"ranks"`
}

type equipmentDoc struct {
	Weapons map[string]weaponDef `yaml:"weapons"`
	Armor   map[string]armorDef  `yaml:"armor"`
	Shields map[string]shieldDef `yaml:"shields"`
	Gear    map[string]gearDef   `yaml:"gear"`
}

type weaponDef struct {
	Name           string `yaml:"name"`
	Category       string `yaml:"category"`
	Damage         string `yaml:"damage"`
	Critical       string `yaml:"critical"`
	Weight         int    `yaml:"weight"`
	Ranged         bool   `yaml:"ranged"`
	RangeIncrement int    `yaml:"range_increment"`
}

type armorDef struct {
	Name         string `yaml:"name"`
	Bonus        int    `yaml:"bonus"`
	MaxDex       int    `yaml:"max_dex"`
	CheckPenalty int    `yaml:"check_penalty"`
	Weight       int    `yaml:"weight"`
}

type shieldDef struct {
	Name         string `yaml:"name"`
	Bonus        int    `yaml:"bonus"`
	CheckPenalty int    `yaml:"check_penalty"`
	Weight       int    `yaml:"weight"`
}

type gearDef struct {
	Name   string `yaml:"name"`
	Weight int    `yaml:"weight"`
}

// LoadDefault builds the rule tables from the embedded SRD data. Call once
// at process start; the result is immutable and safe to share.
func LoadDefault() (*Tables, error) {
	read := func(name string) ([]byte, error) {
		return dataFS.ReadFile("data/" + name)
	}
	return load(read)
}

func load(read func(name string) ([]byte, error)) (*Tables, error) {
	t := &Tables{
		races:   make(map[string]*Race),
		classes: make(map[string]*Class),
		skills:  make(map[string]*Skill),
		feats:   make(map[string]*Feat),
		items:   make(map[string]*Item),
	}

	if err := loadDoc(read, "tables.yaml", func(doc *tablesDoc) error {
		if doc.Version == "" {
			return fmt.Errorf("tables.yaml: version is required")
		}
		t.version = doc.Version
		t.pointBuyCosts = doc.PointBuyCosts
		t.heavyLoad = doc.HeavyLoad
		for strength := 1; strength <= 29; strength++ {
			if _, ok := t.heavyLoad[strength]; !ok {
				return fmt.Errorf("tables.yaml: heavy_load missing strength %d", strength)
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadDoc(read, "races.yaml", func(doc *racesDoc) error {
		for id, def := range doc.Races {
			race, err := def.toRace(id)
			if err != nil {
				return err
			}
			t.races[id] = race
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadDoc(read, "skills.yaml", func(doc *skillsDoc) error {
		for id, def := range doc.Skills {
			ability := srd35.Ability(def.Ability)
			if !ability.IsValid() {
				return fmt.Errorf("skill %q: unknown key ability %q", id, def.Ability)
			}
			t.skills[id] = &Skill{
				ID:          id,
				Name:        def.Name,
				KeyAbility:  ability,
				TrainedOnly: def.TrainedOnly,
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadDoc(read, "classes.yaml", func(doc *classesDoc) error {
		for id, def := range doc.Classes {
			class, err := def.toClass(id, t.skills)
			if err != nil {
				return err
			}
			t.classes[id] = class
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadDoc(read, "feats.yaml", func(doc *featsDoc) error {
		for id, def := range doc.Feats {
			feat, err := def.toFeat(id)
			if err != nil {
				return err
			}
			t.feats[id] = feat
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadDoc(read, "equipment.yaml", func(doc *equipmentDoc) error {
		return t.addEquipment(doc)
	}); err != nil {
		return nil, err
	}

	if err := t.checkReferences(); err != nil {
		return nil, err
	}

	return t, nil
}

func loadDoc[D any](read func(name string) ([]byte, error), name string, apply func(*D) error) error {
	data, err := read(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	var doc D
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return apply(&doc)
}

func (d raceDef) toRace(id string) (*Race, error) {
	size := srd35.Size(d.Size)
	if !size.IsValid() {
		return nil, fmt.Errorf("race %q: unknown size %q", id, d.Size)
	}

	adjustments := make(map[srd35.Ability]int, len(d.AbilityAdjustments))
	for name, value := range d.AbilityAdjustments {
		ability := srd35.Ability(name)
		if !ability.IsValid() {
			return nil, fmt.Errorf("race %q: unknown ability %q", id, name)
		}
		adjustments[ability] = value
	}

	return &Race{
		ID:                 id,
		Name:               d.Name,
		Size:               size,
		Speed:              d.Speed,
		AbilityAdjustments: adjustments,
		SpecialAbilities:   d.SpecialAbilities,
		AutomaticLanguages: d.AutomaticLanguages,
		BonusLanguages:     d.BonusLanguages,
		FavoredClass:       d.FavoredClass,
		BonusFeats:         d.BonusFeats,
		BonusSkillPoints:   d.BonusSkillPoints,
	}, nil
}

func (d classDef) toClass(id string, skills map[string]*Skill) (*Class, error) {
	bab := BABProgression(d.BAB)
	if !bab.IsValid() {
		return nil, fmt.Errorf("class %q: unknown bab progression %q", id, d.BAB)
	}

	saves := make(map[srd35.Save]SaveProgression, 3)
	for _, save := range srd35.Saves() {
		quality, ok := d.Saves[string(save)]
		if !ok {
			return nil, fmt.Errorf("class %q: missing %s save quality", id, save)
		}
		progression := SaveProgression(quality)
		if !progression.IsValid() {
			return nil, fmt.Errorf("class %q: unknown save progression %q", id, quality)
		}
		saves[save] = progression
	}

	classSkills := make(map[string]bool, len(d.ClassSkills))
	for _, skillID := range d.ClassSkills {
		if _, ok := skills[skillID]; !ok {
			return nil, fmt.Errorf("class %q: unknown class skill %q", id, skillID)
		}
		classSkills[skillID] = true
	}

	var castingAbility srd35.Ability
	var spellsPerDay map[int]map[int]int
	if d.Spellcasting {
		castingAbility = srd35.Ability(d.CastingAbility)
		if !castingAbility.IsValid() {
			return nil, fmt.Errorf("class %q: unknown casting ability %q", id, d.CastingAbility)
		}
		spellsPerDay = make(map[int]map[int]int, len(d.SpellsPerDay))
		for classLevel, row := range d.SpellsPerDay {
			slots := make(map[int]int, len(row))
			for spellLevel, count := range row {
				slots[spellLevel] = count
			}
			spellsPerDay[classLevel] = slots
		}
	} else if len(d.SpellsPerDay) > 0 {
		return nil, fmt.Errorf("class %q: spells_per_day on a non-spellcasting class", id)
	}

	return &Class{
		ID:                  id,
		Name:                d.Name,
		HitDie:              d.HitDie,
		SkillPointsPerLevel: d.SkillPoints,
		ClassSkills:         classSkills,
		BAB:                 bab,
		Saves:               saves,
		Spellcasting:        d.Spellcasting,
		CastingAbility:      castingAbility,
		SpellsPerDay:        spellsPerDay,
		BonusFeatLevels:     d.BonusFeatLevels,
	}, nil
}

func (d featDef) toFeat(id string) (*Feat, error) {
	featType := FeatType(d.Type)
	if !featType.IsValid() {
		return nil, fmt.Errorf("feat %q: unknown type %q", id, d.Type)
	}

	prereqs := make([]Prerequisite, 0, len(d.Prerequisites))
	for _, p := range d.Prerequisites {
		prereq, err := p.toPrerequisite(id)
		if err != nil {
			return nil, err
		}
		prereqs = append(prereqs, prereq)
	}

	return &Feat{
		ID:            id,
		Name:          d.Name,
		Type:          featType,
		Prerequisites: prereqs,
		Benefit:       d.Benefit,
	}, nil
}

func (d prereqDef) toPrerequisite(featID string) (Prerequisite, error) {
	switch d.Type {
	case "ability":
		ability := srd35.Ability(d.Ability)
		if !ability.IsValid() {
			return nil, fmt.Errorf("feat %q: unknown ability %q in prerequisite", featID, d.Ability)
		}
		return AbilityAtLeast{Ability: ability, Value: d.Value}, nil
	case "skill_ranks":
		if d.Skill == "" {
			return nil, fmt.Errorf("feat %q: skill_ranks prerequisite missing skill", featID)
		}
		return SkillRanksAtLeast{SkillID: d.Skill, Ranks: d.Ranks}, nil
	case "bab":
		return BABAtLeast{Value: d.Value}, nil
	case "feat":
		if d.Feat == "" {
			return nil, fmt.Errorf("feat %q: feat prerequisite missing feat id", featID)
		}
		return HasFeat{FeatID: d.Feat}, nil
	case "class":
		if d.Class == "" {
			return nil, fmt.Errorf("feat %q: class prerequisite missing class id", featID)
		}
		return IsClass{ClassID: d.Class}, nil
	case "spellcaster":
		return IsSpellcaster{}, nil
	default:
		return nil, fmt.Errorf("feat %q: unknown prerequisite type %q", featID, d.Type)
	}
}

func (t *Tables) addEquipment(doc *equipmentDoc) error {
	for id, def := range doc.Weapons {
		category := WeaponCategory(def.Category)
		switch category {
		case WeaponSimple, WeaponMartial, WeaponExotic:
		default:
			return fmt.Errorf("weapon %q: unknown category %q", id, def.Category)
		}
		t.items[id] = &Item{
			ID:     id,
			Name:   def.Name,
			Kind:   ItemWeapon,
			Weight: def.Weight,
			Weapon: &WeaponData{
				Category:       category,
				DamageDice:     def.Damage,
				Critical:       def.Critical,
				Ranged:         def.Ranged,
				RangeIncrement: def.RangeIncrement,
			},
		}
	}
	for id, def := range doc.Armor {
		t.items[id] = &Item{
			ID:     id,
			Name:   def.Name,
			Kind:   ItemArmor,
			Weight: def.Weight,
			Armor: &ArmorData{
				Bonus:        def.Bonus,
				MaxDexBonus:  def.MaxDex,
				HasMaxDex:    true,
				CheckPenalty: def.CheckPenalty,
			},
		}
	}
	for id, def := range doc.Shields {
		t.items[id] = &Item{
			ID:     id,
			Name:   def.Name,
			Kind:   ItemShield,
			Weight: def.Weight,
			Armor: &ArmorData{
				Bonus:        def.Bonus,
				CheckPenalty: def.CheckPenalty,
			},
		}
	}
	for id, def := range doc.Gear {
		t.items[id] = &Item{
			ID:     id,
			Name:   def.Name,
			Kind:   ItemGear,
			Weight: def.Weight,
		}
	}
	return nil
}

// checkReferences verifies cross-table ids: feat prerequisites must point
// at feats, skills, and classes that exist, and race favored classes must
// resolve. A broken reference here is a data bug, caught at load rather
// than surfacing later as UnknownRuleId mid-validation.
func (t *Tables) checkReferences() error {
	for id, feat := range t.feats {
		for _, prereq := range feat.Prerequisites {
			switch p := prereq.(type) {
			case HasFeat:
				if _, ok := t.feats[p.FeatID]; !ok {
					return fmt.Errorf("feat %q: prerequisite references unknown feat %q", id, p.FeatID)
				}
			case SkillRanksAtLeast:
				if _, ok := t.skills[p.SkillID]; !ok {
					return fmt.Errorf("feat %q: prerequisite references unknown skill %q", id, p.SkillID)
				}
			case IsClass:
				if _, ok := t.classes[p.ClassID]; !ok {
					return fmt.Errorf("feat %q: prerequisite references unknown class %q", id, p.ClassID)
				}
			}
		}
	}
	for id, race := range t.races {
		if race.FavoredClass == "" {
			continue
		}
		if _, ok := t.classes[race.FavoredClass]; !ok {
			return fmt.Errorf("race %q: favored class %q not in class tables", id, race.FavoredClass)
		}
	}
	return nil
}
