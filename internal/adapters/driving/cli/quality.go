package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var qualityCmd = &cobra.Command{
	Use:   "quality",
	Short: "Data quality commands",
	Long:  `Run quality checks and view the aggregated quality dashboard.`,
}

var qualityCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Score every collection and save snapshots",
	RunE:  runQualityCheck,
}

var qualityDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the quality dashboard",
	RunE:  runQualityDashboard,
}

func init() {
	qualityCmd.AddCommand(qualityCheckCmd)
	qualityCmd.AddCommand(qualityDashboardCmd)
	rootCmd.AddCommand(qualityCmd)
}

func runQualityCheck(cmd *cobra.Command, _ []string) error {
	if qualityService == nil {
		return errors.New("quality service not configured")
	}

	ctx := context.Background()

	cmd.Println("Running quality check...")

	snapshots, err := qualityService.RunQualityCheck(ctx)
	if err != nil {
		return fmt.Errorf("quality check failed: %w", err)
	}

	cmd.Println()
	for i := range snapshots {
		cmd.Printf("  %-16s %.2f", snapshots[i].SourceName, snapshots[i].Metrics.OverallScore)
		if issues := len(snapshots[i].Metrics.Issues); issues > 0 {
			cmd.Printf("  (%d issues)", issues)
		}
		cmd.Println()
	}

	cmd.Printf("\nScored %d collections.\n", len(snapshots))
	return nil
}

func runQualityDashboard(cmd *cobra.Command, _ []string) error {
	if qualityService == nil {
		return errors.New("quality service not configured")
	}

	ctx := context.Background()

	dashboard, err := qualityService.Dashboard(ctx)
	if err != nil {
		return fmt.Errorf("failed to build dashboard: %w", err)
	}

	cmd.Println("Quality Dashboard")
	cmd.Println("=================")
	cmd.Println()
	cmd.Printf("  Overall score: %.2f\n", dashboard.OverallScore)
	cmd.Printf("  Trend:         %s\n", dashboard.Trend)

	if len(dashboard.Sources) > 0 {
		cmd.Println("\n  Sources:")
		for _, src := range dashboard.Sources {
			cmd.Printf("    %-16s %.2f", src.SourceName, src.LatestScore)
			if src.PreviousScore >= 0 {
				cmd.Printf("  (was %.2f)", src.PreviousScore)
			}
			cmd.Println()
		}
	}

	if len(dashboard.RecentIssues) > 0 {
		cmd.Println("\n  Recent issues:")
		for _, issue := range dashboard.RecentIssues {
			cmd.Printf("    - %s\n", issue)
		}
	}

	return nil
}
