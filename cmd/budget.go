package cmd

import (
	"context"
	"fmt"

	"github.com/theirongolddev/kburn/internal/budget"
	"github.com/theirongolddev/kburn/internal/cli"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show how the daily calorie target is derived",
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, _ []string) error {
	svc, db, err := openDiary()
	if err != nil {
		return err
	}
	defer db.Close()

	plan, err := svc.Plan(context.Background())
	if err != nil {
		return err
	}
	p := plan.Profile

	fmt.Println()
	fmt.Println(cli.RenderTitle("CALORIE BUDGET"))
	fmt.Println()

	adj := budget.GoalAdjustment(p.Goal)
	rows := [][]string{
		{"BMR (Mifflin-St Jeor)", fmt.Sprintf("%.1f kcal", plan.BMR)},
		{"Activity factor", fmt.Sprintf("x %.3g (%s)", budget.ActivityFactor(p.ActivityLevel), p.ActivityLevel.Label())},
		{"TDEE", cli.FormatKcal(plan.TDEE)},
		{"Goal adjustment", fmt.Sprintf("%+d kcal (%s)", adj, p.Goal.Label())},
		{"---"},
		{"Daily target", cli.FormatKcal(plan.Target)},
	}
	fmt.Print(cli.RenderTable(cli.Table{Headers: []string{"Step", "Value"}, Rows: rows}))

	if plan.Clamped {
		fmt.Printf("\n  Raised to the %s safety minimum.\n", cli.FormatKcal(budget.MinCalories))
	}
	return nil
}
