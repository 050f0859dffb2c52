package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/kburn/internal/config"
	"github.com/theirongolddev/kburn/internal/diary"
	"github.com/theirongolddev/kburn/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDays   int
	flagQuiet  bool
	flagDBPath string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "kburn",
	Short: "Calorie budget tracker",
	Long:  "Track meals against a daily calorie budget: profile, macros, photo estimates, and a food diary.",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.LoadEnv(); err != nil {
			return err
		}
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("days") && cfg.General.DefaultDays > 0 {
			flagDays = cfg.General.DefaultDays
		}
		return nil
	},
	RunE:         runToday,
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagDays, "days", "n", 7, "Time window in days")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Diary database path (default from config)")
}

// openDiary opens the SQLite diary and wraps it in the diary service.
// Callers must close the returned store.
func openDiary() (*diary.Service, *store.DB, error) {
	db, err := store.Open(dbPath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening diary: %w", err)
	}
	return diary.New(db, db), db, nil
}

// dbPath returns the --db override or the configured diary path.
func dbPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return config.DBPath(cfg)
}

// progressf prints a progress line to stderr unless --quiet is set.
func progressf(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
