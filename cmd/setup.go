package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/theirongolddev/kburn/internal/config"
	"github.com/theirongolddev/kburn/internal/estimator"
	"github.com/theirongolddev/kburn/internal/tui"
	"github.com/theirongolddev/kburn/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
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

	vals := tui.ProfileValuesFrom(plan.Profile)
	provider := cfg.Estimator.Provider
	apiKey := cfg.Estimator.APIKey
	days := strconv.Itoa(cfg.General.DefaultDays)
	themeName := cfg.Appearance.Theme

	providerOpts := make([]huh.Option[string], len(estimator.Providers))
	for i, p := range estimator.Providers {
		providerOpts[i] = huh.NewOption(p, p)
	}
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	groups := tui.ProfileGroups(&vals)
	groups = append(groups,
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Nutrition estimator").
				Description("simulated works offline; openai needs an API key; rekognition uses AWS credentials").
				Options(providerOpts...).
				Value(&provider),
			huh.NewInput().
				Title("OpenAI API key").
				Description("Optional. OPENAI_API_KEY overrides this.").
				EchoMode(huh.EchoModePassword).
				Value(&apiKey),
		).Title("Photo estimates"),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default time range").
				Options(
					huh.NewOption("7 days", "7"),
					huh.NewOption("14 days", "14"),
					huh.NewOption("30 days", "30"),
				).
				Value(&days),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&themeName),
		).Title("Appearance"),
	)

	fmt.Println()
	fmt.Println("  Welcome to kburn!")
	fmt.Println()

	form := huh.NewForm(groups...).WithTheme(huh.ThemeCharm())
	if err := form.Run(); err != nil {
		return fmt.Errorf("setup form: %w", err)
	}

	p, err := vals.Profile()
	if err != nil {
		return err
	}
	if err := svc.SaveProfile(ctx, p); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	cfg.Estimator.Provider = provider
	cfg.Estimator.APIKey = apiKey
	cfg.General.DefaultDays, _ = strconv.Atoi(days)
	cfg.Appearance.Theme = themeName
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	updated, err := svc.Plan(ctx)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Daily target: %d kcal\n", updated.Target)
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `kburn setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
