package cmd

import (
	"context"
	"fmt"

	"github.com/theirongolddev/kburn/internal/cli"
	"github.com/theirongolddev/kburn/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagGender   string
	flagAge      int
	flagWeight   float64
	flagHeight   float64
	flagActivity string
	flagGoal     string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the stored body profile",
	RunE:  runProfileShow,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored body profile",
	RunE:  runProfileShow,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	Example: `  kburn profile set --weight 72.5
  kburn profile set --goal lose --activity light`,
	RunE: runProfileSet,
}

func init() {
	profileSetCmd.Flags().StringVar(&flagGender, "gender", "", "male, female, or other")
	profileSetCmd.Flags().IntVar(&flagAge, "age", 0, "Age in years")
	profileSetCmd.Flags().Float64Var(&flagWeight, "weight", 0, "Weight in kg")
	profileSetCmd.Flags().Float64Var(&flagHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().StringVar(&flagActivity, "activity", "", "sedentary, light, moderate, active, or very_active")
	profileSetCmd.Flags().StringVar(&flagGoal, "goal", "", "lose, maintain, or gain")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(_ *cobra.Command, _ []string) error {
	svc, db, err := openDiary()
	if err != nil {
		return err
	}
	defer db.Close()

	plan, err := svc.Plan(context.Background())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PROFILE"))
	fmt.Println()
	fmt.Print(renderProfile(plan.Profile))
	fmt.Println()
	fmt.Printf("  Daily target: %s\n", cli.FormatKcal(plan.Target))
	fmt.Println("  Run `kburn profile set` or `kburn setup` to change it.")
	return nil
}

func runProfileSet(cmd *cobra.Command, _ []string) error {
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

	p, err := applyProfileFlags(cmd, plan.Profile)
	if err != nil {
		return err
	}
	if err := svc.SaveProfile(ctx, p); err != nil {
		return err
	}

	updated, err := svc.Plan(ctx)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Print(renderProfile(updated.Profile))
	fmt.Println()
	fmt.Printf("  Daily target: %s (was %s)\n", cli.FormatKcal(updated.Target), cli.FormatKcal(plan.Target))
	return nil
}

// applyProfileFlags overlays the flags the user actually passed onto p.
func applyProfileFlags(cmd *cobra.Command, p model.Profile) (model.Profile, error) {
	flags := cmd.Flags()
	var err error

	if flags.Changed("gender") {
		if p.Gender, err = model.ParseGender(flagGender); err != nil {
			return p, err
		}
	}
	if flags.Changed("age") {
		p.Age = flagAge
	}
	if flags.Changed("weight") {
		p.Weight = flagWeight
	}
	if flags.Changed("height") {
		p.Height = flagHeight
	}
	if flags.Changed("activity") {
		if p.ActivityLevel, err = model.ParseActivityLevel(flagActivity); err != nil {
			return p, err
		}
	}
	if flags.Changed("goal") {
		if p.Goal, err = model.ParseGoal(flagGoal); err != nil {
			return p, err
		}
	}
	return p, p.Validate()
}

func renderProfile(p model.Profile) string {
	return cli.RenderTable(cli.Table{
		Headers: []string{"Field", "Value"},
		Rows: [][]string{
			{"Gender", string(p.Gender)},
			{"Age", fmt.Sprintf("%d years", p.Age)},
			{"Weight", fmt.Sprintf("%.1f kg", p.Weight)},
			{"Height", fmt.Sprintf("%.1f cm", p.Height)},
			{"Activity", p.ActivityLevel.Label()},
			{"Goal", p.Goal.Label()},
		},
	})
}
