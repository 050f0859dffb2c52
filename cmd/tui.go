package cmd

import (
	"context"
	"fmt"

	"github.com/theirongolddev/kburn/internal/tui"
	"github.com/theirongolddev/kburn/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var flagTUIAutoRefresh bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&flagTUIAutoRefresh, "auto-refresh", true, "Reload the diary periodically")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	svc, db, err := openDiary()
	if err != nil {
		return err
	}
	defer db.Close()

	hasProfile, err := db.HasProfile(context.Background())
	if err != nil {
		return fmt.Errorf("checking profile: %w", err)
	}

	app := tui.NewApp(svc, tui.Options{
		Days:        flagDays,
		NeedSetup:   !hasProfile,
		AutoRefresh: flagTUIAutoRefresh,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
