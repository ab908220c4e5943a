package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/d20forge/srd35-engine/internal/rules"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Inspect the loaded rule tables",
}

var tablesRacesCmd = &cobra.Command{
	Use:   "races",
	Short: "List races",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTables(func(t *rules.Tables) error {
			for _, id := range t.RaceIDs() {
				race, err := t.Race(id)
				if err != nil {
					return err
				}
				fmt.Printf("%-12s %s (speed %d ft)\n", id, race.Name, race.Speed)
			}
			return nil
		})
	},
}

var tablesClassesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List classes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTables(func(t *rules.Tables) error {
			for _, id := range t.ClassIDs() {
				class, err := t.Class(id)
				if err != nil {
					return err
				}
				caster := ""
				if class.Spellcasting {
					caster = fmt.Sprintf(", casts from %s", class.CastingAbility)
				}
				fmt.Printf("%-12s %s (d%d, %d skill points/level%s)\n",
					id, class.Name, class.HitDie, class.SkillPointsPerLevel, caster)
			}
			return nil
		})
	},
}

var tablesSkillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List skills",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTables(func(t *rules.Tables) error {
			for _, id := range t.SkillIDs() {
				skill, err := t.Skill(id)
				if err != nil {
					return err
				}
				fmt.Printf("%-20s %s (%s)\n", id, skill.Name, skill.KeyAbility)
			}
			return nil
		})
	},
}

var tablesFeatsCmd = &cobra.Command{
	Use:   "feats",
	Short: "List feats",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTables(func(t *rules.Tables) error {
			for _, id := range t.FeatIDs() {
				feat, err := t.Feat(id)
				if err != nil {
					return err
				}
				fmt.Printf("%-24s %s [%s]\n", id, feat.Name, feat.Type)
			}
			return nil
		})
	},
}

var tablesItemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List equipment",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTables(func(t *rules.Tables) error {
			for _, id := range t.ItemIDs() {
				item, err := t.Item(id)
				if err != nil {
					return err
				}
				fmt.Printf("%-24s %s [%s, %d lb]\n", id, item.Name, item.Kind, item.Weight)
			}
			return nil
		})
	},
}

func withTables(fn func(*rules.Tables) error) error {
	tables, err := rules.LoadDefault()
	if err != nil {
		return fmt.Errorf("failed to load rule tables: %w", err)
	}
	fmt.Printf("rules %s\n\n", tables.Version())
	return fn(tables)
}

func init() {
	tablesCmd.AddCommand(tablesRacesCmd)
	tablesCmd.AddCommand(tablesClassesCmd)
	tablesCmd.AddCommand(tablesSkillsCmd)
	tablesCmd.AddCommand(tablesFeatsCmd)
	tablesCmd.AddCommand(tablesItemsCmd)
}
