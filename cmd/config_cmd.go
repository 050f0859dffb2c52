// Package cmd implements the kburn CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/kburn/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default days: %d\n", cfg.General.DefaultDays)
	fmt.Printf("    Diary:        %s\n", dbPath())
	fmt.Println()

	fmt.Println("  [Estimator]")
	fmt.Printf("    Provider: %s\n", cfg.Estimator.Provider)
	if cfg.Estimator.Model != "" {
		fmt.Printf("    Model:    %s\n", cfg.Estimator.Model)
	}
	if cfg.Estimator.BaseURL != "" {
		fmt.Printf("    Base URL: %s\n", cfg.Estimator.BaseURL)
	}
	if key := config.GetAPIKey(cfg); key != "" {
		fmt.Printf("    API key:  %s\n", maskAPIKey(key))
	} else {
		fmt.Println("    API key:  not configured")
	}
	fmt.Println()

	fmt.Println("  [AWS]")
	if region := config.GetAWSRegion(cfg); region != "" {
		fmt.Printf("    Region: %s\n", region)
	} else {
		fmt.Println("    Region: SDK default chain")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Serve]")
	fmt.Printf("    Address:  %s\n", cfg.Serve.Addr)
	fmt.Printf("    Interval: %ds\n", cfg.Serve.IntervalSec)
	fmt.Println()

	fmt.Println("  Run `kburn setup` to reconfigure.")
	return nil
}

func maskAPIKey(key string) string {
	if len(key) > 16 {
		return key[:8] + "..." + key[len(key)-4:]
	}
	if len(key) > 4 {
		return key[:4] + "..."
	}
	return "****"
}
