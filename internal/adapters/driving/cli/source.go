package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Manage data sources",
	Long:  `Register, list, and inspect the data sources feeding the knowledge base.`,
}

var sourceConfigPairs []string

var sourceRegisterCmd = &cobra.Command{
	Use:   "register [name] [kind]",
	Short: "Register a data source",
	Long: `Registers a data source in the metadata registry.

Kinds: DATABASE, API, FILE, MANUAL, EXTERNAL_SERVICE.`,
	Args: cobra.ExactArgs(2),
	RunE: runSourceRegister,
}

var sourceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered data sources",
	RunE:  runSourceList,
}

var sourceRemoveCmd = &cobra.Command{
	Use:   "remove [source-id]",
	Short: "Remove a data source",
	Args:  cobra.ExactArgs(1),
	RunE:  runSourceRemove,
}

var sourceSchemaCmd = &cobra.Command{
	Use:   "schema [kind]",
	Short: "Show the schema catalog for a source kind",
	Args:  cobra.ExactArgs(1),
	RunE:  runSourceSchema,
}

var sourceStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show registry-wide source statistics",
	RunE:  runSourceStats,
}

func init() {
	sourceRegisterCmd.Flags().StringArrayVarP(&sourceConfigPairs, "config", "c", nil, "configuration entry as key=value (repeatable)")

	sourceCmd.AddCommand(sourceRegisterCmd)
	sourceCmd.AddCommand(sourceListCmd)
	sourceCmd.AddCommand(sourceRemoveCmd)
	sourceCmd.AddCommand(sourceSchemaCmd)
	sourceCmd.AddCommand(sourceStatsCmd)
	rootCmd.AddCommand(sourceCmd)
}

func runSourceRegister(cmd *cobra.Command, args []string) error {
	if registryService == nil {
		return errors.New("registry service not configured")
	}

	name, kind := args[0], args[1]
	ctx := context.Background()

	config := make(map[string]string, len(sourceConfigPairs))
	for _, pair := range sourceConfigPairs {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return fmt.Errorf("config entry %q: expected key=value", pair)
		}
		config[key] = value
	}

	source, err := registryService.Register(ctx, domain.DataSourceMetadata{
		Name:   name,
		Kind:   domain.SourceKind(kind),
		Config: config,
	})
	if err != nil {
		return fmt.Errorf("failed to register source: %w", err)
	}

	cmd.Printf("Registered source %s (%s)\n", source.Name, source.ID)
	return nil
}

func runSourceList(cmd *cobra.Command, _ []string) error {
	if registryService == nil {
		return errors.New("registry service not configured")
	}

	ctx := context.Background()

	sources, err := registryService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sources: %w", err)
	}

	if len(sources) == 0 {
		cmd.Println("No sources registered.")
		return nil
	}

	cmd.Println("Registered sources:")
	cmd.Println()
	for i := range sources {
		cmd.Printf("  %s\n", sources[i].ID)
		cmd.Printf("    Name:   %s\n", sources[i].Name)
		cmd.Printf("    Kind:   %s\n", sources[i].Kind)
		cmd.Printf("    Status: %s\n", sources[i].SyncStatus)
		if !sources[i].LastSyncAt.IsZero() {
			cmd.Printf("    Synced: %s\n", sources[i].LastSyncAt.Format("2006-01-02 15:04:05"))
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d sources\n", len(sources))
	return nil
}

func runSourceRemove(cmd *cobra.Command, args []string) error {
	if registryService == nil {
		return errors.New("registry service not configured")
	}

	sourceID := args[0]
	ctx := context.Background()

	if err := registryService.Delete(ctx, sourceID); err != nil {
		return fmt.Errorf("failed to remove source: %w", err)
	}

	cmd.Printf("Removed source %s.\n", sourceID)
	return nil
}

func runSourceSchema(cmd *cobra.Command, args []string) error {
	if registryService == nil {
		return errors.New("registry service not configured")
	}

	kind := domain.SourceKind(args[0])

	catalog, err := registryService.SchemaCatalog(kind)
	if err != nil {
		return fmt.Errorf("failed to get schema catalog: %w", err)
	}

	groups := make([]string, 0, len(catalog))
	for group := range catalog {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	cmd.Printf("Schema catalog for %s:\n\n", kind)
	for _, group := range groups {
		cmd.Printf("  [%s]\n", group)
		for _, field := range catalog[group] {
			required := ""
			if field.Required {
				required = " (required)"
			}
			cmd.Printf("    %s: %s%s\n", field.Name, field.Type, required)
		}
		cmd.Println()
	}

	return nil
}

func runSourceStats(cmd *cobra.Command, _ []string) error {
	if registryService == nil {
		return errors.New("registry service not configured")
	}

	ctx := context.Background()

	stats, err := registryService.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get source stats: %w", err)
	}

	cmd.Println("Source statistics:")
	cmd.Println()
	cmd.Printf("  Total: %d\n", stats.Total)

	if len(stats.ByKind) > 0 {
		cmd.Println("\n  By kind:")
		kinds := make([]string, 0, len(stats.ByKind))
		for kind := range stats.ByKind {
			kinds = append(kinds, string(kind))
		}
		sort.Strings(kinds)
		for _, kind := range kinds {
			cmd.Printf("    %s: %d\n", kind, stats.ByKind[domain.SourceKind(kind)])
		}
	}

	if len(stats.ByStatus) > 0 {
		cmd.Println("\n  By status:")
		statuses := make([]string, 0, len(stats.ByStatus))
		for status := range stats.ByStatus {
			statuses = append(statuses, string(status))
		}
		sort.Strings(statuses)
		for _, status := range statuses {
			cmd.Printf("    %s: %d\n", status, stats.ByStatus[domain.SyncStatus(status)])
		}
	}

	cmd.Println("\n  Sync recency:")
	cmd.Printf("    Last 24h: %d\n", stats.SyncedLast24h)
	cmd.Printf("    Last 7d:  %d\n", stats.SyncedLast7d)
	cmd.Printf("    Never:    %d\n", stats.NeverSynced)

	return nil
}
