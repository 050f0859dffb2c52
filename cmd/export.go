package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/kburn/internal/model"
	"github.com/theirongolddev/kburn/internal/source"

	"github.com/spf13/cobra"
)

var (
	flagExportFrom string
	flagExportTo   string
	flagExportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export diary entries as JSON Lines",
	Example: `  kburn export > diary.jsonl
  kburn export --from 2026-03-01 --out march.jsonl`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportFrom, "from", "", "First date YYYY-MM-DD (default: whole diary)")
	exportCmd.Flags().StringVar(&flagExportTo, "to", "", "Last date YYYY-MM-DD (default: today)")
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	svc, db, err := openDiary()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	var entries []model.FoodEntry
	if flagExportFrom == "" && flagExportTo == "" {
		entries, err = db.AllEntries(ctx)
	} else {
		var since, until time.Time
		since, until, err = diaryRange(time.Now(), flagExportFrom, flagExportTo, flagDays)
		if err != nil {
			return err
		}
		entries, err = svc.Entries(ctx, since, until)
	}
	if err != nil {
		return fmt.Errorf("reading diary: %w", err)
	}

	out := os.Stdout
	if flagExportOut != "" {
		f, err := os.OpenFile(flagExportOut, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // path is supplied by the local user
		if err != nil {
			return fmt.Errorf("creating %s: %w", flagExportOut, err)
		}
		defer f.Close()
		out = f
	}

	if err := source.WriteEntries(out, entries); err != nil {
		return err
	}
	progressf("  Exported %d entries\n", len(entries))
	return nil
}
