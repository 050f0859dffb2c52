package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/kburn/internal/cli"
	"github.com/theirongolddev/kburn/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagLogCalories int
	flagLogProtein  float64
	flagLogCarbs    float64
	flagLogFat      float64
	flagLogDate     string
	flagLogTime     string
)

var logCmd = &cobra.Command{
	Use:   "log NAME",
	Short: "Log a food entry to the diary",
	Example: `  kburn log "Greek yogurt" --calories 150 --protein 15 --carbs 8 --fat 4
  kburn log Banana --calories 105 --date 2026-03-01 --time 10:30`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLog,
}

func init() {
	logCmd.Flags().IntVarP(&flagLogCalories, "calories", "c", 0, "Calories (kcal)")
	logCmd.Flags().Float64Var(&flagLogProtein, "protein", 0, "Protein in grams")
	logCmd.Flags().Float64Var(&flagLogCarbs, "carbs", 0, "Carbohydrates in grams")
	logCmd.Flags().Float64Var(&flagLogFat, "fat", 0, "Fat in grams")
	logCmd.Flags().StringVar(&flagLogDate, "date", "", "Date YYYY-MM-DD (default today)")
	logCmd.Flags().StringVar(&flagLogTime, "time", "", "Time HH:MM (default now)")
	_ = logCmd.MarkFlagRequired("calories")
	rootCmd.AddCommand(logCmd)
}

func runLog(_ *cobra.Command, args []string) error {
	now := time.Now()
	entry := model.FoodEntry{
		Name:     strings.Join(args, " "),
		Calories: flagLogCalories,
		Protein:  flagLogProtein,
		Carbs:    flagLogCarbs,
		Fat:      flagLogFat,
		Date:     flagLogDate,
		Time:     flagLogTime,
		Source:   model.SourceManual,
	}
	if entry.Date == "" {
		entry.Date = now.Format(model.DateLayout)
	}
	if entry.Time == "" && flagLogDate == "" {
		entry.Time = now.Format(model.TimeLayout)
	}

	svc, db, err := openDiary()
	if err != nil {
		return err
	}
	defer db.Close()

	return logEntry(context.Background(), svc, entry, now)
}

// entryLogger is the slice of the diary service logEntry needs.
type entryLogger interface {
	Log(ctx context.Context, e model.FoodEntry) (model.FoodEntry, error)
	Today(ctx context.Context, now time.Time) (model.DailyIntake, []model.FoodEntry, error)
}

// logEntry appends e and prints where the day now stands.
func logEntry(ctx context.Context, svc entryLogger, e model.FoodEntry, now time.Time) error {
	saved, err := svc.Log(ctx, e)
	if err != nil {
		return err
	}
	fmt.Printf("  Logged %s (%s) on %s\n", saved.Name, cli.FormatKcal(saved.Calories), cli.FormatDay(saved.Date))

	if saved.Date != now.Format(model.DateLayout) {
		return nil
	}
	today, _, err := svc.Today(ctx, now)
	if err != nil {
		return err
	}
	fmt.Printf("  Today: %s\n", cli.RenderProgressBar(today.Calories, today.Budget, 30))
	if today.OverBudget() {
		fmt.Printf("  Over budget by %s\n", cli.FormatKcal(today.Calories-today.Budget))
	} else {
		fmt.Printf("  %s remaining\n", cli.FormatKcal(today.Remaining))
	}
	return nil
}
