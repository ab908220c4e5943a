package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"
)

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll dice for character creation",
}

var rollAbilitiesCmd = &cobra.Command{
	Use:   "abilities",
	Short: "Roll six ability scores (4d6 drop lowest)",
	RunE: func(cmd *cobra.Command, args []string) error {
		for i := 0; i < 6; i++ {
			rolled, err := dice.DefaultRoller.RollN(4, 6)
			if err != nil {
				return fmt.Errorf("failed to roll: %w", err)
			}
			sort.Sort(sort.Reverse(sort.IntSlice(rolled)))
			total := rolled[0] + rolled[1] + rolled[2]
			fmt.Printf("%2d  (kept %v, dropped %d)\n", total, rolled[:3], rolled[3])
		}
		return nil
	},
}

var rollHPCmd = &cobra.Command{
	Use:   "hp <class> <level>",
	Short: "Roll hit dice for levels after the first",
	Long: `Roll hit dice for a class at the given level. The first level always
takes the maximum die, so level N produces N-1 rolls.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := strconv.Atoi(args[1])
		if err != nil || level < 1 {
			return fmt.Errorf("level must be a positive integer, got %q", args[1])
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}
		die, err := eng.HitDie(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("level 1: %d (maximum d%d)\n", die, die)
		for lvl := 2; lvl <= level; lvl++ {
			value, err := dice.DefaultRoller.Roll(die)
			if err != nil {
				return fmt.Errorf("failed to roll d%d: %w", die, err)
			}
			fmt.Printf("level %d: %d\n", lvl, value)
		}
		return nil
	},
}

func init() {
	rollCmd.AddCommand(rollAbilitiesCmd)
	rollCmd.AddCommand(rollHPCmd)
}
