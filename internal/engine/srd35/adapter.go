// Package srd35 provides the concrete implementation of the engine
// interface against the loaded SRD 3.5 rule tables.
package srd35

import (
	"github.com/d20forge/srd35-engine/internal/engine"
	entities "github.com/d20forge/srd35-engine/internal/entities/srd35"
	"github.com/d20forge/srd35-engine/internal/errors"
	"github.com/d20forge/srd35-engine/internal/rules"
)

// Adapter implements engine.Engine on top of immutable rule tables
type Adapter struct {
	tables *rules.Tables
}

var _ engine.Engine = (*Adapter)(nil)

// Config contains configuration for creating a new Adapter
type Config struct {
	Tables *rules.Tables
}

// Validate checks that all required dependencies are provided
func (c *Config) Validate() error {
	if c.Tables == nil {
		return errors.InvalidArgument("rule tables are required")
	}
	return nil
}

// NewAdapter creates a rules engine bound to one rule-table version
func NewAdapter(cfg *Config) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Adapter{tables: cfg.Tables}, nil
}

// RulesVersion returns the version of the loaded rule tables
func (a *Adapter) RulesVersion() string {
	return a.tables.Version()
}

// AbilityModifier returns floor((score-10)/2), floor toward negative infinity
func (a *Adapter) AbilityModifier(score int) int {
	return entities.AbilityModifier(score)
}

// IsSpellcaster reports whether the class has any spellcasting progression
func (a *Adapter) IsSpellcaster(classID string) (bool, error) {
	class, err := a.tables.Class(classID)
	if err != nil {
		return false, err
	}
	return class.Spellcasting, nil
}

// HitDie returns the class's hit die size
func (a *Adapter) HitDie(classID string) (int, error) {
	class, err := a.tables.Class(classID)
	if err != nil {
		return 0, err
	}
	return class.HitDie, nil
}
