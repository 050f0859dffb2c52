package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/theirongolddev/kburn/internal/cli"
	"github.com/theirongolddev/kburn/internal/config"
	"github.com/theirongolddev/kburn/internal/estimator"
	"github.com/theirongolddev/kburn/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagScanDescribe string
	flagScanProvider string
	flagScanLog      bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [IMAGE]",
	Short: "Estimate the nutrition of a meal photo or description",
	Example: `  kburn scan lunch-burger.jpg
  kburn scan plate.jpg --provider rekognition --log
  kburn scan --describe "two slices of pepperoni pizza" --provider openai`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&flagScanDescribe, "describe", "", "Text description of the meal")
	scanCmd.Flags().StringVar(&flagScanProvider, "provider", "", "simulated, openai, or rekognition (default from config)")
	scanCmd.Flags().BoolVar(&flagScanLog, "log", false, "Log the estimate to the diary")
	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, args []string) error {
	if len(args) == 0 && flagScanDescribe == "" {
		return errors.New("give an image path or --describe")
	}

	var req estimator.Request
	if len(args) == 1 {
		r, err := estimator.ReadImage(args[0])
		if err != nil {
			return err
		}
		req = r
	}
	req.Description = flagScanDescribe

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	est, err := estimator.New(ctx, cfg, flagScanProvider)
	if err != nil {
		if errors.Is(err, estimator.ErrNoAPIKey) {
			return fmt.Errorf("%w: set OPENAI_API_KEY or [estimator] api_key in %s", err, config.ConfigPath())
		}
		return err
	}

	progressf("  Estimating with %s...\n", est.Name())
	result, err := est.Estimate(ctx, req)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("ESTIMATE  " + result.FoodName))
	fmt.Println()
	fmt.Print(renderEstimate(result))

	if !flagScanLog {
		fmt.Println("\n  Add --log to record this in the diary.")
		return nil
	}

	svc, db, err := openDiary()
	if err != nil {
		return err
	}
	defer db.Close()

	now := time.Now()
	fmt.Println()
	return logEntry(ctx, svc, result.Entry(now), now)
}

func renderEstimate(e model.Estimate) string {
	rows := [][]string{
		{"Calories", cli.FormatKcal(e.Calories), ""},
	}
	for _, n := range e.Nutrients {
		pct := ""
		if n.Percentage > 0 {
			pct = fmt.Sprintf("%.0f%% DV", n.Percentage)
		}
		rows = append(rows, []string{n.Name, fmt.Sprintf("%.1f %s", n.Value, n.Unit), pct})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Confidence", cli.FormatPercent(e.Confidence), ""},
		[]string{"Source", e.Source, ""},
	)

	out := cli.RenderTable(cli.Table{Headers: []string{"Nutrient", "Amount", ""}, Rows: rows})
	if e.Description != "" {
		out += "\n  " + e.Description + "\n"
	}
	if e.Explanation != "" {
		out += "\n  " + e.Explanation + "\n"
	}
	return out
}
