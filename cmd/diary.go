package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/theirongolddev/kburn/internal/cli"
	"github.com/theirongolddev/kburn/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagDiaryFrom string
	flagDiaryTo   string
)

var diaryCmd = &cobra.Command{
	Use:   "diary",
	Short: "List diary entries",
	Example: `  kburn diary
  kburn diary --from 2026-03-01 --to 2026-03-07`,
	RunE: runDiary,
}

func init() {
	diaryCmd.Flags().StringVar(&flagDiaryFrom, "from", "", "First date YYYY-MM-DD (default: --days ago)")
	diaryCmd.Flags().StringVar(&flagDiaryTo, "to", "", "Last date YYYY-MM-DD (default: today)")
	rootCmd.AddCommand(diaryCmd)
}

func runDiary(_ *cobra.Command, _ []string) error {
	since, until, err := diaryRange(time.Now(), flagDiaryFrom, flagDiaryTo, flagDays)
	if err != nil {
		return err
	}

	svc, db, err := openDiary()
	if err != nil {
		return err
	}
	defer db.Close()

	entries, err := svc.Entries(context.Background(), since, until)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DIARY  %s to %s",
		since.Format(model.DateLayout), until.Format(model.DateLayout))))
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("  No entries in this range.")
		return nil
	}

	fmt.Print(renderEntries(entries, true))

	total := 0
	for _, e := range entries {
		total += e.Calories
	}
	fmt.Printf("\n  %s entries, %s total\n", cli.FormatNumber(int64(len(entries))), cli.FormatKcal(total))
	return nil
}

// diaryRange resolves --from/--to, defaulting to the last `days` days ending at now.
func diaryRange(now time.Time, from, to string, days int) (time.Time, time.Time, error) {
	until := now
	if to != "" {
		t, err := time.ParseInLocation(model.DateLayout, to, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to %q: want YYYY-MM-DD", to)
		}
		until = t
	}

	since := until.AddDate(0, 0, -(max(days, 1) - 1))
	if from != "" {
		t, err := time.ParseInLocation(model.DateLayout, from, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from %q: want YYYY-MM-DD", from)
		}
		since = t
	}

	if since.After(until) {
		return time.Time{}, time.Time{}, fmt.Errorf("--from %s is after --to %s",
			since.Format(model.DateLayout), until.Format(model.DateLayout))
	}
	return since, until, nil
}
