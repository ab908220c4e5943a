package srd35

// Ability identifies one of the six ability scores
type Ability string

// The six abilities
const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// Abilities returns the six abilities in display order
func Abilities() []Ability {
	return []Ability{
		AbilityStrength,
		AbilityDexterity,
		AbilityConstitution,
		AbilityIntelligence,
		AbilityWisdom,
		AbilityCharisma,
	}
}

// IsValid reports whether the ability is one of the six
func (a Ability) IsValid() bool {
	switch a {
	case AbilityStrength, AbilityDexterity, AbilityConstitution,
		AbilityIntelligence, AbilityWisdom, AbilityCharisma:
		return true
	default:
		return false
	}
}

// Save identifies a saving throw
type Save string

// The three saving throws
const (
	SaveFortitude Save = "fortitude"
	SaveReflex    Save = "reflex"
	SaveWill      Save = "will"
)

// Saves returns the three saves in display order
func Saves() []Save {
	return []Save{SaveFortitude, SaveReflex, SaveWill}
}

// KeyAbility returns the ability whose modifier applies to the save
func (s Save) KeyAbility() Ability {
	switch s {
	case SaveFortitude:
		return AbilityConstitution
	case SaveReflex:
		return AbilityDexterity
	case SaveWill:
		return AbilityWisdom
	default:
		return ""
	}
}

// Size is a creature size category
type Size string

// Size categories
const (
	SizeFine       Size = "fine"
	SizeDiminutive Size = "diminutive"
	SizeTiny       Size = "tiny"
	SizeSmall      Size = "small"
	SizeMedium     Size = "medium"
	SizeLarge      Size = "large"
	SizeHuge       Size = "huge"
	SizeGargantuan Size = "gargantuan"
	SizeColossal   Size = "colossal"
)

// Modifier returns the size modifier applied to AC and attack rolls
func (s Size) Modifier() int {
	switch s {
	case SizeFine:
		return 8
	case SizeDiminutive:
		return 4
	case SizeTiny:
		return 2
	case SizeSmall:
		return 1
	case SizeMedium:
		return 0
	case SizeLarge:
		return -1
	case SizeHuge:
		return -2
	case SizeGargantuan:
		return -4
	case SizeColossal:
		return -8
	default:
		return 0
	}
}

// IsValid reports whether the size is a known category
func (s Size) IsValid() bool {
	switch s {
	case SizeFine, SizeDiminutive, SizeTiny, SizeSmall, SizeMedium,
		SizeLarge, SizeHuge, SizeGargantuan, SizeColossal:
		return true
	default:
		return false
	}
}

// Point-buy bounds. Scores outside AbilityAbsoluteMin..AbilityAbsoluteMax
// are never legal on any character regardless of generation method.
const (
	PointBuyMinScore   = 8
	PointBuyMaxScore   = 18
	DefaultPointBuyBudget = 28

	AbilityAbsoluteMin = 1
	AbilityAbsoluteMax = 50
)
