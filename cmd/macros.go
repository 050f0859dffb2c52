package cmd

import (
	"context"
	"fmt"

	"github.com/theirongolddev/kburn/internal/budget"
	"github.com/theirongolddev/kburn/internal/cli"
	"github.com/theirongolddev/kburn/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagMacroCalories int
	flagMacroGoal     string
)

var macrosCmd = &cobra.Command{
	Use:   "macros",
	Short: "Daily macro targets for the profile or an explicit calorie amount",
	Example: `  kburn macros
  kburn macros --calories 2000 --goal lose`,
	RunE: runMacros,
}

func init() {
	macrosCmd.Flags().IntVar(&flagMacroCalories, "calories", 0, "Calorie target (default: profile target)")
	macrosCmd.Flags().StringVar(&flagMacroGoal, "goal", "", "lose, maintain, or gain (default: profile goal)")
	rootCmd.AddCommand(macrosCmd)
}

func runMacros(_ *cobra.Command, _ []string) error {
	calories := flagMacroCalories
	var goal model.Goal

	if flagMacroGoal != "" {
		g, err := model.ParseGoal(flagMacroGoal)
		if err != nil {
			return err
		}
		goal = g
	}

	// Only touch the diary when the profile fills a gap.
	if calories <= 0 || goal == "" {
		svc, db, err := openDiary()
		if err != nil {
			return err
		}
		defer db.Close()

		plan, err := svc.Plan(context.Background())
		if err != nil {
			return err
		}
		if calories <= 0 {
			calories = plan.Target
		}
		if goal == "" {
			goal = plan.Profile.Goal
		}
	}

	m := budget.MacroTargets(calories, goal)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MACROS  %s  %s", cli.FormatKcal(calories), goal.Label())))
	fmt.Println()
	fmt.Print(renderMacros(m))
	fmt.Println()
	for _, mc := range []struct {
		name string
		m    model.Macro
	}{{"Protein", m.Protein}, {"Carbs  ", m.Carbs}, {"Fat    ", m.Fat}} {
		fmt.Println(cli.RenderHorizontalBar(mc.name, float64(mc.m.Calories), float64(calories), 40))
	}
	return nil
}

func renderMacros(m model.MacroTargets) string {
	row := func(name string, mc model.Macro) []string {
		return []string{name, cli.FormatGrams(float64(mc.Grams)), cli.FormatKcal(mc.Calories), cli.FormatPercent(mc.Percentage)}
	}
	return cli.RenderTable(cli.Table{
		Headers: []string{"Macro", "Grams", "Calories", "Share"},
		Rows: [][]string{
			row("Protein", m.Protein),
			row("Carbs", m.Carbs),
			row("Fat", m.Fat),
		},
	})
}
