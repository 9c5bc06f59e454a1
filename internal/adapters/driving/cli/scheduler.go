package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/stratkb/internal/core/domain"
	"github.com/custodia-labs/stratkb/internal/core/services"
	"github.com/custodia-labs/stratkb/internal/logger"
)

var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Background scheduler commands",
	Long:  `Run the background task scheduler or inspect task history.`,
}

var schedulerRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scheduler in the foreground",
	Long: `Starts the background scheduler and blocks until interrupted.
The quality check task runs on the interval set by the
"scheduler.interval" config key (default 6h); edits to the config file
are picked up while the scheduler is running.`,
	RunE: runSchedulerRun,
}

var schedulerHistoryLimit int

var schedulerStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show task state and recent runs",
	RunE:  runSchedulerStatus,
}

func init() {
	schedulerStatusCmd.Flags().IntVarP(&schedulerHistoryLimit, "limit", "n", 10, "number of recent runs to show")

	schedulerCmd.AddCommand(schedulerRunCmd)
	schedulerCmd.AddCommand(schedulerStatusCmd)
	rootCmd.AddCommand(schedulerCmd)
}

// schedulerConfig builds the scheduler configuration from the config
// store, falling back to the defaults where keys are unset or invalid.
// Recognised keys: "scheduler.enabled" (bool) and "scheduler.interval"
// (a duration string like "30m" or "6h").
func schedulerConfig() domain.SchedulerConfig {
	config := domain.DefaultSchedulerConfig()
	if configStore == nil {
		return config
	}

	if _, ok := configStore.Get("scheduler.enabled"); ok {
		config.Enabled = configStore.GetBool("scheduler.enabled")
	}

	if raw := configStore.GetString("scheduler.interval"); raw != "" {
		interval, err := time.ParseDuration(raw)
		if err != nil || interval <= 0 {
			logger.Warn("invalid scheduler.interval %q, using default", raw)
			return config
		}
		task := config.TaskConfigs[domain.TaskIDQualityCheck]
		task.Interval = interval
		config.TaskConfigs[domain.TaskIDQualityCheck] = task
	}

	return config
}

func runSchedulerRun(cmd *cobra.Command, _ []string) error {
	if schedulerStore == nil {
		return errors.New("scheduler store not configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler := services.NewScheduler(schedulerConfig(), schedulerStore, qualityService)

	cmd.Println("Scheduler running. Press Ctrl+C to stop.")

	if configStore != nil {
		go func() {
			err := configStore.Watch(ctx, func() {
				if err := scheduler.Reconfigure(ctx, schedulerConfig()); err != nil {
					logger.Warn("applying config change: %v", err)
				}
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("config watch stopped: %v", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- scheduler.Start(ctx)
	}()

	select {
	case <-ctx.Done():
		if err := scheduler.Stop(); err != nil {
			return fmt.Errorf("stopping scheduler: %w", err)
		}
		cmd.Println("Scheduler stopped.")
		return nil
	case err := <-errCh:
		return err
	}
}

func runSchedulerStatus(cmd *cobra.Command, _ []string) error {
	if schedulerStore == nil {
		return errors.New("scheduler store not configured")
	}

	ctx := context.Background()

	task, err := schedulerStore.GetTask(ctx, domain.TaskIDQualityCheck)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		cmd.Println("No scheduled tasks. Run 'stratkb scheduler run' to initialise them.")
		return nil
	}

	cmd.Printf("Task: %s (%s)\n\n", task.Name, task.ID)
	cmd.Printf("  Enabled:  %t\n", task.Enabled)
	cmd.Printf("  Interval: %s\n", task.Interval)
	if !task.LastRun.IsZero() {
		cmd.Printf("  Last run: %s\n", task.LastRun.Format("2006-01-02 15:04:05"))
	}
	if !task.NextRun.IsZero() {
		cmd.Printf("  Next run: %s\n", task.NextRun.Format("2006-01-02 15:04:05"))
	}
	if task.LastError != "" {
		cmd.Printf("  Last error: %s\n", task.LastError)
	}

	history, err := schedulerStore.GetTaskHistory(ctx, task.ID, schedulerHistoryLimit)
	if err != nil {
		return fmt.Errorf("failed to get task history: %w", err)
	}

	if len(history) > 0 {
		cmd.Println("\n  Recent runs:")
		for i := range history {
			outcome := "ok"
			if !history[i].Success {
				outcome = "failed: " + history[i].Error
			}
			cmd.Printf("    %s  %d items  %s\n",
				history[i].StartedAt.Format("2006-01-02 15:04:05"),
				history[i].ItemsProcessed, outcome)
		}
	}

	return nil
}
