// Package character implements the character creation orchestrator: the
// draft lifecycle over the rules engine and the repositories.
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/d20forge/srd35-engine/internal/orchestrators/character Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/d20forge/srd35-engine/internal/engine"
	"github.com/d20forge/srd35-engine/internal/entities/srd35"
	"github.com/d20forge/srd35-engine/internal/errors"
	"github.com/d20forge/srd35-engine/internal/pkg/clock"
	"github.com/d20forge/srd35-engine/internal/pkg/idgen"
	characterrepo "github.com/d20forge/srd35-engine/internal/repositories/character"
	draftrepo "github.com/d20forge/srd35-engine/internal/repositories/character_draft"
)

const (
	// DefaultDraftTTL is how long an untouched draft survives
	DefaultDraftTTL = 24 * time.Hour

	// Ability score rolling
	abilityRollCount = 6
	abilityDiceCount = 4
	abilityDieSize   = 6
)

// Service defines the character creation and retrieval operations
type Service interface {
	// Draft lifecycle
	CreateDraft(ctx context.Context, input *CreateDraftInput) (*CreateDraftOutput, error)
	GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error)
	UpdateName(ctx context.Context, input *UpdateNameInput) (*UpdateNameOutput, error)
	UpdateRace(ctx context.Context, input *UpdateRaceInput) (*UpdateRaceOutput, error)
	UpdateClass(ctx context.Context, input *UpdateClassInput) (*UpdateClassOutput, error)
	UpdateAbilityScores(ctx context.Context, input *UpdateAbilityScoresInput) (*UpdateAbilityScoresOutput, error)
	AllocateSkillRank(ctx context.Context, input *AllocateSkillRankInput) (*AllocateSkillRankOutput, error)
	SelectFeat(ctx context.Context, input *SelectFeatInput) (*SelectFeatOutput, error)
	RemoveFeat(ctx context.Context, input *RemoveFeatInput) (*RemoveFeatOutput, error)
	UpdateEquipment(ctx context.Context, input *UpdateEquipmentInput) (*UpdateEquipmentOutput, error)
	RollHitPoints(ctx context.Context, input *RollHitPointsInput) (*RollHitPointsOutput, error)
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)
	ValidateDraft(ctx context.Context, input *ValidateDraftInput) (*ValidateDraftOutput, error)
	FinalizeDraft(ctx context.Context, input *FinalizeDraftInput) (*FinalizeDraftOutput, error)

	// Finalized characters
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
}

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo        characterrepo.Repository
	CharacterDraftRepo   draftrepo.Repository
	Engine               engine.Engine
	DiceRoller           dice.Roller
	DraftIDGenerator     idgen.Generator
	CharacterIDGenerator idgen.Generator
	Clock                clock.Clock // optional, defaults to the real clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.CharacterDraftRepo == nil {
		vb.RequiredField("CharacterDraftRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	if c.DraftIDGenerator == nil {
		vb.RequiredField("DraftIDGenerator")
	}
	if c.CharacterIDGenerator == nil {
		vb.RequiredField("CharacterIDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo characterrepo.Repository
	draftRepo     draftrepo.Repository
	engine        engine.Engine
	roller        dice.Roller
	draftIDGen    idgen.Generator
	charIDGen     idgen.Generator
	clock         clock.Clock
}

// NewOrchestrator creates a new character orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		draftRepo:     cfg.CharacterDraftRepo,
		engine:        cfg.Engine,
		roller:        cfg.DiceRoller,
		draftIDGen:    cfg.DraftIDGenerator,
		charIDGen:     cfg.CharacterIDGenerator,
		clock:         c,
	}, nil
}

var _ Service = (*orchestrator)(nil)

// CreateDraft starts a new draft for the player, replacing any existing one
func (o *orchestrator) CreateDraft(ctx context.Context, input *CreateDraftInput) (*CreateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft := &srd35.CharacterDraft{
		ID:           o.draftIDGen.Generate(),
		PlayerID:     input.PlayerID,
		RulesVersion: o.engine.RulesVersion(),
		ExpiresAt:    o.clock.Now().Add(DefaultDraftTTL).Unix(),
		Progress: srd35.CreationProgress{
			CurrentStep: srd35.CreationStepName,
		},
	}

	if input.Name != "" {
		draft.Name = input.Name
		draft.Progress.SetStep(srd35.ProgressStepName, true)
	}
	o.advanceProgress(draft)

	createOutput, err := o.draftRepo.Create(ctx, draftrepo.CreateInput{Draft: draft})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create draft")
	}

	slog.InfoContext(ctx, "created character draft",
		"draft_id", draft.ID,
		"player_id", draft.PlayerID)

	return &CreateDraftOutput{Draft: createOutput.Draft}, nil
}

// GetDraft retrieves a draft by ID
func (o *orchestrator) GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	return &GetDraftOutput{Draft: draft}, nil
}

// UpdateName sets the draft's character name
func (o *orchestrator) UpdateName(ctx context.Context, input *UpdateNameInput) (*UpdateNameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	draft.Name = input.Name
	draft.Progress.SetStep(srd35.ProgressStepName, true)
	o.advanceProgress(draft)

	saved, err := o.updateDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &UpdateNameOutput{Draft: saved}, nil
}

// UpdateRace selects the draft's race and re-applies racial ability
// adjustments. Re-selection replaces the previous race's adjustments.
func (o *orchestrator) UpdateRace(ctx context.Context, input *UpdateRaceInput) (*UpdateRaceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	adjusted, err := o.engine.ApplyRacialAdjustments(ctx, &engine.ApplyRacialAdjustmentsInput{
		Scores: draft.Abilities,
		RaceID: input.RaceID,
	})
	if err != nil {
		return nil, err
	}

	draft.RaceID = input.RaceID
	draft.Abilities = adjusted.Scores
	draft.Progress.SetStep(srd35.ProgressStepRace, true)
	o.advanceProgress(draft)

	updateOutput, err := o.draftRepo.Update(ctx, draftrepo.UpdateInput{Draft: draft})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update draft")
	}

	return &UpdateRaceOutput{
		Draft: updateOutput.Draft,
		Size:  adjusted.Size,
		Speed: adjusted.Speed,
	}, nil
}

// UpdateClass selects the draft's class at the given level
func (o *orchestrator) UpdateClass(ctx context.Context, input *UpdateClassInput) (*UpdateClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	level := input.Level
	if level == 0 {
		level = 1
	}
	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("level", level, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	// Rejects unknown class ids before touching the draft
	if _, err := o.engine.IsSpellcaster(input.ClassID); err != nil {
		return nil, err
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	draft.Classes = []srd35.ClassLevel{{ClassID: input.ClassID, Level: level}}
	// A class change invalidates rolled hit dice; level one takes the
	// maximum die and later levels must be rerolled
	draft.HitDieRolls = nil
	draft.Progress.SetStep(srd35.ProgressStepClass, true)
	o.advanceProgress(draft)

	saved, err := o.updateDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &UpdateClassOutput{Draft: saved}, nil
}

// UpdateAbilityScores assigns base ability scores after validating the
// point-buy spend. Racial adjustments are re-applied when a race is set.
func (o *orchestrator) UpdateAbilityScores(
	ctx context.Context,
	input *UpdateAbilityScoresInput,
) (*UpdateAbilityScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	spend, err := o.engine.ValidatePointBuy(ctx, &engine.ValidatePointBuyInput{
		Scores: input.Scores,
		Budget: input.Budget,
	})
	if err != nil {
		return nil, err
	}

	if !spend.Valid {
		return &UpdateAbilityScoresOutput{
			Draft:     draft,
			TotalCost: spend.TotalCost,
			Remaining: spend.Remaining,
			Errors:    spend.Errors,
		}, nil
	}

	scores := make(srd35.AbilityScores, len(input.Scores))
	for ability, base := range input.Scores {
		scores[ability] = srd35.AbilityScore{Base: base}
	}

	if draft.RaceID != "" {
		adjusted, err := o.engine.ApplyRacialAdjustments(ctx, &engine.ApplyRacialAdjustmentsInput{
			Scores: scores,
			RaceID: draft.RaceID,
		})
		if err != nil {
			return nil, err
		}
		scores = adjusted.Scores
	}

	draft.Abilities = scores
	draft.Progress.SetStep(srd35.ProgressStepAbilityScores, true)
	o.advanceProgress(draft)

	updateOutput, err := o.draftRepo.Update(ctx, draftrepo.UpdateInput{Draft: draft})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update draft")
	}

	return &UpdateAbilityScoresOutput{
		Draft:     updateOutput.Draft,
		TotalCost: spend.TotalCost,
		Remaining: spend.Remaining,
	}, nil
}

// AllocateSkillRank adds or removes one rank of one skill
func (o *orchestrator) AllocateSkillRank(
	ctx context.Context,
	input *AllocateSkillRankInput,
) (*AllocateSkillRankOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	snapshot := draft.Snapshot()
	allocation, err := o.engine.AllocateSkillRank(ctx, &engine.AllocateSkillRankInput{
		Character: snapshot,
		SkillID:   input.SkillID,
		Delta:     input.Delta,
	})
	if err != nil {
		return nil, err
	}

	if !allocation.Applied {
		return &AllocateSkillRankOutput{
			Draft:    draft,
			Applied:  false,
			Unusable: allocation.Unusable,
			Budget:   allocation.Budget,
			Errors:   allocation.Errors,
		}, nil
	}

	draft.ApplyCharacter(snapshot)
	draft.Progress.SetStep(srd35.ProgressStepSkills, true)
	o.advanceProgress(draft)

	updateOutput, err := o.draftRepo.Update(ctx, draftrepo.UpdateInput{Draft: draft})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update draft")
	}

	return &AllocateSkillRankOutput{
		Draft:    updateOutput.Draft,
		Applied:  true,
		Skill:    allocation.Skill,
		Unusable: allocation.Unusable,
		Budget:   allocation.Budget,
	}, nil
}

// SelectFeat adds a feat after checking slots and prerequisites
func (o *orchestrator) SelectFeat(ctx context.Context, input *SelectFeatInput) (*SelectFeatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	snapshot := draft.Snapshot()
	if snapshot.HasFeat(input.FeatID) {
		return nil, errors.InvalidArgumentf("feat %s is already selected", input.FeatID)
	}
	slots, err := o.engine.CalculateFeatSlots(ctx, &engine.CalculateFeatSlotsInput{Character: snapshot})
	if err != nil {
		return nil, err
	}

	prereqs, err := o.engine.ValidateFeatPrerequisites(ctx, &engine.ValidateFeatPrerequisitesInput{
		Character: snapshot,
		FeatID:    input.FeatID,
	})
	if err != nil {
		return nil, err
	}

	var failures []engine.ValidationError
	if slots.Slots.Spent >= slots.Slots.Available {
		failures = append(failures, engine.ValidationError{
			Field:   "feats",
			Message: "no feat slots available",
			Code:    string(errors.CodeNoFeatSlots),
		})
	}
	failures = append(failures, prereqs.Failures...)

	if len(failures) > 0 {
		return &SelectFeatOutput{
			Draft:  draft,
			Added:  false,
			Slots:  slots.Slots,
			Errors: failures,
		}, nil
	}

	draft.Feats = append(draft.Feats, input.FeatID)
	draft.Progress.SetStep(srd35.ProgressStepFeats, true)
	o.advanceProgress(draft)

	updateOutput, err := o.draftRepo.Update(ctx, draftrepo.UpdateInput{Draft: draft})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update draft")
	}

	slots.Slots.Spent++
	return &SelectFeatOutput{
		Draft: updateOutput.Draft,
		Added: true,
		Slots: slots.Slots,
	}, nil
}

// RemoveFeat removes a previously selected feat
func (o *orchestrator) RemoveFeat(ctx context.Context, input *RemoveFeatInput) (*RemoveFeatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(draft.Feats))
	for _, id := range draft.Feats {
		if id != input.FeatID {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(draft.Feats) {
		return nil, errors.NotFoundf("feat %s is not selected", input.FeatID)
	}
	draft.Feats = kept

	saved, err := o.updateDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &RemoveFeatOutput{Draft: saved}, nil
}

// UpdateEquipment replaces the draft's equipment list
func (o *orchestrator) UpdateEquipment(
	ctx context.Context,
	input *UpdateEquipmentInput,
) (*UpdateEquipmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	draft.Equipment = input.Equipment

	// Rejects unknown item ids before persisting
	if _, err := o.engine.CalculateArmorClass(ctx, &engine.CalculateArmorClassInput{
		Character: draft.Snapshot(),
	}); err != nil {
		return nil, err
	}

	draft.Progress.SetStep(srd35.ProgressStepEquipment, true)
	o.advanceProgress(draft)

	saved, err := o.updateDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &UpdateEquipmentOutput{Draft: saved}, nil
}

// RollHitPoints rolls hit dice for every level after the first and stores
// the results on the draft
func (o *orchestrator) RollHitPoints(ctx context.Context, input *RollHitPointsInput) (*RollHitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	if len(draft.Classes) == 0 {
		return nil, errors.FailedPrecondition("draft has no class selected")
	}

	var rolls []int
	characterLevel := 0
	for _, cl := range draft.Classes {
		die, err := o.engine.HitDie(cl.ClassID)
		if err != nil {
			return nil, err
		}
		for i := 0; i < cl.Level; i++ {
			characterLevel++
			if characterLevel == 1 {
				continue // level one takes the maximum die, no roll
			}
			value, err := o.roller.Roll(die)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to roll d%d", die)
			}
			rolls = append(rolls, value)
		}
	}

	draft.HitDieRolls = rolls

	snapshot := draft.Snapshot()
	conMod := o.engine.AbilityModifier(snapshot.Abilities.Total(srd35.AbilityConstitution))
	hp, err := o.engine.CalculateHitPoints(ctx, &engine.CalculateHitPointsInput{
		Classes:              draft.Classes,
		ConstitutionModifier: conMod,
		Rolls:                rolls,
	})
	if err != nil {
		return nil, err
	}

	updateOutput, err := o.draftRepo.Update(ctx, draftrepo.UpdateInput{Draft: draft})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update draft")
	}

	return &RollHitPointsOutput{
		Draft: updateOutput.Draft,
		Rolls: rolls,
		MaxHP: hp.MaxHP,
	}, nil
}

// RollAbilityScores produces six 4d6-drop-lowest totals. Nothing is
// assigned; the player maps totals to abilities separately.
func (o *orchestrator) RollAbilityScores(
	ctx context.Context,
	input *RollAbilityScoresInput,
) (*RollAbilityScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	scores := make([]int, 0, abilityRollCount)
	allRolls := make([][]int, 0, abilityRollCount)
	for i := 0; i < abilityRollCount; i++ {
		rolled, err := o.roller.RollN(abilityDiceCount, abilityDieSize)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll ability dice")
		}

		total, lowest := 0, rolled[0]
		for _, d := range rolled {
			total += d
			if d < lowest {
				lowest = d
			}
		}
		scores = append(scores, total-lowest)
		allRolls = append(allRolls, rolled)
	}

	slog.InfoContext(ctx, "rolled ability scores",
		"draft_id", input.DraftID,
		"scores", scores)

	return &RollAbilityScoresOutput{Scores: scores, Rolls: allRolls}, nil
}

// ValidateDraft runs full validation and returns the report without
// blocking further edits
func (o *orchestrator) ValidateDraft(ctx context.Context, input *ValidateDraftInput) (*ValidateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	result, err := o.engine.ValidateCharacter(ctx, &engine.ValidateCharacterInput{
		Character: draft.Snapshot(),
	})
	if err != nil {
		return nil, err
	}

	return &ValidateDraftOutput{
		Draft:   draft,
		Report:  result.Report,
		Derived: result.Derived,
	}, nil
}

// FinalizeDraft validates the draft and, when clean, persists the
// finalized character and deletes the draft
func (o *orchestrator) FinalizeDraft(ctx context.Context, input *FinalizeDraftInput) (*FinalizeDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	result, err := o.engine.ValidateCharacter(ctx, &engine.ValidateCharacterInput{
		Character: draft.Snapshot(),
	})
	if err != nil {
		return nil, err
	}

	if !result.Report.Valid {
		return &FinalizeDraftOutput{Report: result.Report}, nil
	}

	char := draft.ToCharacter(o.charIDGen.Generate())
	char.Derived = result.Derived

	createOutput, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to persist character")
	}

	if _, err := o.draftRepo.Delete(ctx, draftrepo.DeleteInput{ID: draft.ID}); err != nil {
		// The character exists; an orphaned draft just expires on its TTL
		slog.WarnContext(ctx, "failed to delete draft after finalization",
			"draft_id", draft.ID,
			"character_id", char.ID,
			"error", err)
	}

	slog.InfoContext(ctx, "finalized character",
		"draft_id", draft.ID,
		"character_id", char.ID,
		"player_id", char.PlayerID)

	return &FinalizeDraftOutput{
		Character: createOutput.Character,
		Report:    result.Report,
	}, nil
}

// GetCharacter loads a finalized character with derived statistics
// recomputed from the current rule tables
func (o *orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}

	char := getOutput.Character
	if _, err := o.engine.ValidateCharacter(ctx, &engine.ValidateCharacterInput{Character: char}); err != nil {
		return nil, errors.Wrapf(err, "failed to derive statistics for character %s", char.ID)
	}

	return &GetCharacterOutput{Character: char}, nil
}

// ListCharacters returns a player's finalized characters. Derived
// statistics are recomputed per character; characters that no longer
// resolve against the rule tables come back without them.
func (o *orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	listOutput, err := o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, err
	}

	for _, char := range listOutput.Characters {
		if _, err := o.engine.ValidateCharacter(ctx, &engine.ValidateCharacterInput{Character: char}); err != nil {
			slog.WarnContext(ctx, "failed to derive statistics for character",
				"character_id", char.ID,
				"error", err)
		}
	}

	return &ListCharactersOutput{Characters: listOutput.Characters}, nil
}

// DeleteCharacter removes a finalized character
func (o *orchestrator) DeleteCharacter(
	ctx context.Context,
	input *DeleteCharacterInput,
) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "deleted character", "character_id", input.CharacterID)

	return &DeleteCharacterOutput{}, nil
}

// getDraft fetches a draft with input validation
func (o *orchestrator) getDraft(ctx context.Context, draftID string) (*srd35.CharacterDraft, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", draftID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	getOutput, err := o.draftRepo.Get(ctx, draftrepo.GetInput{ID: draftID})
	if err != nil {
		return nil, err
	}
	return getOutput.Draft, nil
}

// updateDraft persists draft changes
func (o *orchestrator) updateDraft(ctx context.Context, draft *srd35.CharacterDraft) (*srd35.CharacterDraft, error) {
	updateOutput, err := o.draftRepo.Update(ctx, draftrepo.UpdateInput{Draft: draft})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update draft")
	}
	return updateOutput.Draft, nil
}

// advanceProgress points CurrentStep at the first incomplete creation step
func (o *orchestrator) advanceProgress(draft *srd35.CharacterDraft) {
	steps := []struct {
		flag uint8
		name string
	}{
		{srd35.ProgressStepName, srd35.CreationStepName},
		{srd35.ProgressStepRace, srd35.CreationStepRace},
		{srd35.ProgressStepClass, srd35.CreationStepClass},
		{srd35.ProgressStepAbilityScores, srd35.CreationStepAbilityScores},
		{srd35.ProgressStepSkills, srd35.CreationStepSkills},
		{srd35.ProgressStepFeats, srd35.CreationStepFeats},
		{srd35.ProgressStepEquipment, srd35.CreationStepEquipment},
	}
	for _, step := range steps {
		if !draft.Progress.HasStep(step.flag) {
			draft.Progress.CurrentStep = step.name
			return
		}
	}
	draft.Progress.CurrentStep = srd35.CreationStepEquipment
}
