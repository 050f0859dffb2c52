package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/theirongolddev/kburn/internal/diary"
	"github.com/theirongolddev/kburn/internal/pipeline"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import PATH",
	Short: "Import diary entries from a JSONL file or directory",
	Long:  "Import entries written by `kburn export`. Entries whose ID is already in the diary are skipped, so re-importing is safe.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	progressf("  Scanning %s...\n", args[0])

	result, err := pipeline.Load(args[0], func(current, total int) {
		if current%10 == 0 || current == total {
			progressf("\r  Parsing [%d/%d]", current, total)
		}
	})
	if err != nil {
		return err
	}
	if result.TotalFiles > 0 {
		progressf("\n")
	}
	if len(result.Entries) == 0 {
		fmt.Println("  No entries found.")
		return nil
	}

	svc, db, err := openDiary()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	var imported, skipped, rejected int
	for _, e := range result.Entries {
		if e.ID != "" {
			exists, err := db.HasEntry(ctx, e.ID)
			if err != nil {
				return err
			}
			if exists {
				skipped++
				continue
			}
		}
		if _, err := svc.Log(ctx, e); err != nil {
			if errors.Is(err, diary.ErrInvalidEntry) {
				rejected++
				progressf("  Skipping %q: %v\n", e.Name, err)
				continue
			}
			return err
		}
		imported++
	}

	fmt.Printf("  Imported %d entries from %d files (%d already present, %d invalid)\n",
		imported, result.ParsedFiles, skipped, rejected)
	if result.ParseErrors > 0 || result.FileErrors > 0 {
		fmt.Printf("  %d malformed lines, %d unreadable files\n", result.ParseErrors, result.FileErrors)
	}
	return nil
}
