package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/stratkb/internal/connectors"
)

var (
	searchKind  string
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the knowledge base",
	Long: `Performs a case-insensitive free-text search over the knowledge base.
By default every collection is searched; use --kind to restrict the
search to one collection (e.g. megatrends, seeds, competitors).`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchKind, "kind", "k", "", "restrict to one collection")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results per collection")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if connectorSet == nil {
		return errors.New("connectors not configured")
	}

	ctx := context.Background()

	var (
		hits []connectors.Summary
		err  error
	)
	if searchKind == "" {
		hits, err = connectorSet.SearchAll(ctx, query, searchLimit)
	} else {
		hits, err = connectorSet.SearchKind(ctx, searchKind, query, searchLimit)
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, hits)
	}

	return outputSearchTable(cmd, hits)
}

func outputSearchJSON(cmd *cobra.Command, hits []connectors.Summary) error {
	data, err := json.MarshalIndent(hits, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, hits []connectors.Summary) error {
	if len(hits) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range hits {
		title := hits[i].Title
		if title == "" {
			title = hits[i].ID
		}

		cmd.Printf("  [%d] %s (%s)\n", i+1, title, hits[i].Kind)
		cmd.Printf("      ID: %s\n", hits[i].ID)
		cmd.Println()
	}

	cmd.Printf("Total: %d results\n", len(hits))
	return nil
}
