package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/d20forge/srd35-engine/internal/engine"
	enginesrd35 "github.com/d20forge/srd35-engine/internal/engine/srd35"
	"github.com/d20forge/srd35-engine/internal/entities/srd35"
	"github.com/d20forge/srd35-engine/internal/rules"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.json>",
	Short: "Validate a character snapshot",
	Long: `Validate loads a character snapshot from a JSON file, runs the full
rules validation over it, and prints the itemized report along with the
derived statistics.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0]) // #nosec G304 // user-supplied path is the point
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	var char srd35.Character
	if err := json.Unmarshal(data, &char); err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}

	out, err := eng.ValidateCharacter(context.Background(), &engine.ValidateCharacterInput{
		Character: &char,
	})
	if err != nil {
		return fmt.Errorf("validation aborted: %w", err)
	}

	printReport(&out.Report)
	if out.Derived != nil {
		printDerived(out.Derived)
	}

	if !out.Report.Valid {
		os.Exit(1)
	}
	return nil
}

func newEngine() (engine.Engine, error) {
	tables, err := rules.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load rule tables: %w", err)
	}
	return enginesrd35.NewAdapter(&enginesrd35.Config{Tables: tables})
}

func printReport(report *engine.ValidationReport) {
	if report.Valid {
		fmt.Println("VALID")
	} else {
		fmt.Println("INVALID")
	}

	for _, e := range report.Errors {
		fmt.Printf("  error   [%s] %s: %s\n", e.Code, e.Field, e.Message)
	}
	for _, w := range report.Warnings {
		fmt.Printf("  warning [%s] %s: %s\n", w.Code, w.Field, w.Message)
	}
}

func printDerived(d *srd35.DerivedStats) {
	fmt.Println()
	fmt.Printf("HP %d  BAB +%d  Init %+d  Speed %d ft\n", d.MaxHP, d.BAB, d.Initiative, d.Speed)

	saves := make([]string, 0, len(d.Saves))
	for save, value := range d.Saves {
		saves = append(saves, fmt.Sprintf("%s %+d", save, value))
	}
	sort.Strings(saves)
	fmt.Print("Saves: ")
	for i, s := range saves {
		if i > 0 {
			fmt.Print("  ")
		}
		fmt.Print(s)
	}
	fmt.Println()

	ac := d.ArmorClass
	fmt.Printf("AC %d (armor %+d, shield %+d, dex %+d, size %+d)\n",
		ac.Total, ac.ArmorBonus, ac.ShieldBonus, ac.DexBonus, ac.SizeModifier)

	fmt.Printf("Skill points %d/%d  Feat slots %d/%d\n",
		d.SkillBudget.Spent, d.SkillBudget.Available,
		d.FeatSlots.Spent, d.FeatSlots.Available)

	if len(d.SpellsPerDay) > 0 {
		classes := make([]string, 0, len(d.SpellsPerDay))
		for classID := range d.SpellsPerDay {
			classes = append(classes, classID)
		}
		sort.Strings(classes)
		for _, classID := range classes {
			slots := d.SpellsPerDay[classID]
			levels := make([]int, 0, len(slots))
			for lvl := range slots {
				levels = append(levels, lvl)
			}
			sort.Ints(levels)
			fmt.Printf("Spells/day (%s):", classID)
			for _, lvl := range levels {
				fmt.Printf(" %d:%d", lvl, slots[lvl])
			}
			fmt.Println()
		}
	}

	fmt.Printf("Load %d lb (%s, light %d / medium %d / heavy %d)\n",
		d.Encumbrance.TotalWeight, d.Encumbrance.Tier,
		d.CarryingCapacity.Light, d.CarryingCapacity.Medium, d.CarryingCapacity.Heavy)
}
