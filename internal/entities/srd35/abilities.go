package srd35

// AbilityScore holds the raw components of a single ability. The total and
// modifier are always derived; storing a stale modifier is the bug class
// this layout exists to prevent.
type AbilityScore struct {
	Base             int `json:"base"`
	RacialAdjustment int `json:"racial_adjustment"`
	EnhancementBonus int `json:"enhancement_bonus"`
}

// Total returns base + racial adjustment + enhancement bonus
func (a AbilityScore) Total() int {
	return a.Base + a.RacialAdjustment + a.EnhancementBonus
}

// Modifier returns the ability modifier for the current total
func (a AbilityScore) Modifier() int {
	return AbilityModifier(a.Total())
}

// AbilityModifier computes floor((score-10)/2) with floor toward negative
// infinity, so a score of 9 yields -1, not 0.
func AbilityModifier(score int) int {
	diff := score - 10
	if diff < 0 {
		// Go truncates toward zero; shift odd negatives down one
		return -((-diff + 1) / 2)
	}
	return diff / 2
}

// AbilityScores maps each of the six abilities to its score components
type AbilityScores map[Ability]AbilityScore

// NewAbilityScores returns a score set with every base at the given value
// and no adjustments
func NewAbilityScores(base int) AbilityScores {
	scores := make(AbilityScores, 6)
	for _, ability := range Abilities() {
		scores[ability] = AbilityScore{Base: base}
	}
	return scores
}

// Total returns the total score for an ability, 0 if absent
func (s AbilityScores) Total(ability Ability) int {
	return s[ability].Total()
}

// Modifier returns the modifier for an ability's total
func (s AbilityScores) Modifier(ability Ability) int {
	return s[ability].Modifier()
}

// Clone returns an independent copy of the score set
func (s AbilityScores) Clone() AbilityScores {
	out := make(AbilityScores, len(s))
	for ability, score := range s {
		out[ability] = score
	}
	return out
}
