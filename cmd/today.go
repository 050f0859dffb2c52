package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/theirongolddev/kburn/internal/cli"
	"github.com/theirongolddev/kburn/internal/model"

	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Today's intake against the calorie budget",
	RunE:  runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(_ *cobra.Command, _ []string) error {
	svc, db, err := openDiary()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	plan, err := svc.Plan(ctx)
	if err != nil {
		return err
	}
	now := time.Now()
	today, entries, err := svc.Today(ctx, now)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TODAY  %s", cli.FormatDay(now.Format(model.DateLayout)))))
	fmt.Println()

	fmt.Printf("  %s\n\n", cli.RenderProgressBar(today.Calories, today.Budget, 40))

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"", "Consumed", "Target", "Status"},
		Rows: [][]string{
			{"Calories", cli.FormatKcal(today.Calories), cli.FormatKcal(today.Budget), cli.RenderStatus(today.Calories, today.Budget)},
			{"---"},
			{"Protein", cli.FormatGrams(today.Protein), cli.FormatGrams(float64(plan.Macros.Protein.Grams)), cli.RenderStatus(int(today.Protein), plan.Macros.Protein.Grams)},
			{"Carbs", cli.FormatGrams(today.Carbs), cli.FormatGrams(float64(plan.Macros.Carbs.Grams)), cli.RenderStatus(int(today.Carbs), plan.Macros.Carbs.Grams)},
			{"Fat", cli.FormatGrams(today.Fat), cli.FormatGrams(float64(plan.Macros.Fat.Grams)), cli.RenderStatus(int(today.Fat), plan.Macros.Fat.Grams)},
		},
	}))

	if today.OverBudget() {
		fmt.Printf("\n  Over budget by %s\n", cli.FormatKcal(today.Calories-today.Budget))
	} else {
		fmt.Printf("\n  %s remaining (%s consumed)\n", cli.FormatKcal(today.Remaining), cli.FormatPercent(today.Percent))
	}

	if len(entries) == 0 {
		fmt.Println("\n  Nothing logged yet. Try `kburn log` or `kburn scan`.")
		return nil
	}

	fmt.Println()
	fmt.Print(renderEntries(entries, false))
	return nil
}

// renderEntries renders diary entries as a table, optionally with the date column.
func renderEntries(entries []model.FoodEntry, withDate bool) string {
	headers := []string{"Time", "Food", "Calories", "Protein", "Carbs", "Fat", "Source"}
	if withDate {
		headers = append([]string{"Date"}, headers...)
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		row := []string{
			e.Time,
			e.Name,
			cli.FormatKcal(e.Calories),
			cli.FormatGrams(e.Protein),
			cli.FormatGrams(e.Carbs),
			cli.FormatGrams(e.Fat),
			e.Source,
		}
		if withDate {
			row = append([]string{cli.FormatDay(e.Date)}, row...)
		}
		rows = append(rows, row)
	}

	return cli.RenderTable(cli.Table{Headers: headers, Rows: rows})
}
