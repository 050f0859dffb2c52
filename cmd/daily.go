package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/theirongolddev/kburn/internal/cli"
	"github.com/theirongolddev/kburn/internal/diary"

	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Daily intake vs budget table",
	RunE:  runDaily,
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
	svc, db, err := openDiary()
	if err != nil {
		return err
	}
	defer db.Close()

	now := time.Now()
	days, err := svc.Days(context.Background(), now.AddDate(0, 0, -(max(flagDays, 1)-1)), now)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY INTAKE  Last %dd", len(days))))
	fmt.Println()

	rows := make([][]string, 0, len(days))
	trend := make([]float64, len(days))
	for i, d := range days {
		rows = append(rows, []string{
			d.Date.Format("2006-01-02"),
			cli.FormatDayOfWeek(int(d.Date.Weekday())),
			cli.FormatNumber(int64(d.Entries)),
			cli.FormatKcal(d.Calories),
			cli.FormatDelta(d.Calories, d.Budget),
			cli.FormatGrams(d.Protein),
			cli.FormatGrams(d.Carbs),
			cli.FormatGrams(d.Fat),
			cli.RenderStatus(d.Calories, d.Budget),
		})
		trend[len(days)-1-i] = float64(d.Calories)
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Entries", "Calories", "vs Budget", "Protein", "Carbs", "Fat", ""},
		Rows:    rows,
	}))

	sum := diary.Summarize(days)
	fmt.Println()
	fmt.Printf("  Trend   %s\n", cli.RenderSparkline(trend))
	if sum.LoggedDays == 0 {
		fmt.Println("  No entries logged in this window.")
		return nil
	}
	fmt.Printf("  Average %s over %d logged days, %d over budget\n",
		cli.FormatKcal(int(sum.AvgCalories+0.5)), sum.LoggedDays, sum.DaysOverBudget)
	fmt.Printf("  Total   %s kcal of %s budgeted\n",
		cli.FormatCompact(int64(sum.TotalCalories)), cli.FormatCompact(int64(sum.Budget*sum.Days)))
	return nil
}
