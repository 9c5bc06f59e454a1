package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

var entityCmd = &cobra.Command{
	Use:   "entity",
	Short: "Manage knowledge base entities",
	Long:  `List, view, and analyse entities across the knowledge base collections.`,
}

var entityKindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the collection names",
	RunE:  runEntityKinds,
}

var (
	entityListPage  int
	entityListLimit int
	entityListSort  string
	entityListOrder string
	entityListJSON  bool
)

var entityListCmd = &cobra.Command{
	Use:   "list [kind]",
	Short: "List entities of a collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntityList,
}

var entityGetJSON bool

var entityGetCmd = &cobra.Command{
	Use:   "get [kind] [id]",
	Short: "Show one entity",
	Args:  cobra.ExactArgs(2),
	RunE:  runEntityGet,
}

var entityAnalyzeCmd = &cobra.Command{
	Use:   "analyze [kind] [id]",
	Short: "Run the analysis heuristic for one entity",
	Long: `Scores one entity with its collection's analysis heuristic and
persists the result as immutable history. Only megatrends, hidden
needs, and competitors declare a heuristic.`,
	Args: cobra.ExactArgs(2),
	RunE: runEntityAnalyze,
}

func init() {
	entityListCmd.Flags().IntVar(&entityListPage, "page", 1, "1-based page number")
	entityListCmd.Flags().IntVarP(&entityListLimit, "limit", "n", domain.DefaultLimit, "page size")
	entityListCmd.Flags().StringVar(&entityListSort, "sort", "", "field to sort by")
	entityListCmd.Flags().StringVar(&entityListOrder, "order", "desc", "sort order: asc or desc")
	entityListCmd.Flags().BoolVar(&entityListJSON, "json", false, "output results as JSON")
	entityGetCmd.Flags().BoolVar(&entityGetJSON, "json", false, "output entity as JSON")

	entityCmd.AddCommand(entityKindsCmd)
	entityCmd.AddCommand(entityListCmd)
	entityCmd.AddCommand(entityGetCmd)
	entityCmd.AddCommand(entityAnalyzeCmd)
	rootCmd.AddCommand(entityCmd)
}

func runEntityKinds(cmd *cobra.Command, _ []string) error {
	if connectorSet == nil {
		return errors.New("connectors not configured")
	}

	for _, kind := range connectorSet.Kinds() {
		cmd.Println(kind)
	}
	return nil
}

func runEntityList(cmd *cobra.Command, args []string) error {
	if connectorSet == nil {
		return errors.New("connectors not configured")
	}

	kind := args[0]
	ctx := context.Background()

	params := domain.PaginationParams{
		Page:      entityListPage,
		Limit:     entityListLimit,
		SortBy:    entityListSort,
		SortOrder: domain.SortOrder(entityListOrder),
	}

	page, err := connectorSet.ListKind(ctx, kind, nil, params)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", kind, err)
	}

	if entityListJSON {
		data, err := json.MarshalIndent(page, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal page: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(page.Data) == 0 {
		cmd.Printf("No %s found.\n", kind)
		return nil
	}

	cmd.Printf("%s (page %d of %d):\n\n", kind, page.Page, page.TotalPages)
	for i := range page.Data {
		cmd.Printf("  %s\n", entityLabel(page.Data[i]))
		if id, ok := page.Data[i]["id"].(string); ok {
			cmd.Printf("    ID: %s\n", id)
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d entities\n", page.Total)
	return nil
}

func runEntityGet(cmd *cobra.Command, args []string) error {
	if connectorSet == nil {
		return errors.New("connectors not configured")
	}

	kind, id := args[0], args[1]
	ctx := context.Background()

	fields, err := connectorSet.GetKind(ctx, kind, id)
	if err != nil {
		return fmt.Errorf("failed to get entity: %w", err)
	}

	if entityGetJSON {
		data, err := json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal entity: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Entity: %s (%s)\n\n", id, kind)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cmd.Printf("  %s: %v\n", k, fields[k])
	}

	return nil
}

func runEntityAnalyze(cmd *cobra.Command, args []string) error {
	if connectorSet == nil {
		return errors.New("connectors not configured")
	}

	kind, id := args[0], args[1]
	ctx := context.Background()

	result, err := connectorSet.AnalyzeKind(ctx, kind, id)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	cmd.Printf("Analysis: %s (%s)\n\n", result.EntityName, result.EntityKind)
	cmd.Printf("  Score:    %.2f\n", result.Score)
	cmd.Printf("  Severity: %s\n", result.Severity)

	if len(result.Insights) > 0 {
		cmd.Println("\n  Insights:")
		for _, insight := range result.Insights {
			cmd.Printf("    - %s\n", insight)
		}
	}
	if len(result.Recommendations) > 0 {
		cmd.Println("\n  Recommendations:")
		for _, rec := range result.Recommendations {
			cmd.Printf("    - %s\n", rec)
		}
	}

	return nil
}

// entityLabel picks the display name of a kind-erased record.
func entityLabel(fields map[string]any) string {
	if title, ok := fields["title"].(string); ok && title != "" {
		return title
	}
	if name, ok := fields["name"].(string); ok && name != "" {
		return name
	}
	if id, ok := fields["id"].(string); ok {
		return id
	}
	return "(unnamed)"
}
