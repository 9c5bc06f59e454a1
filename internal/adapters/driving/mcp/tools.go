package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchInput is the input schema for the kb_search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query to match against knowledge base entries"`
	Kind  string `json:"kind,omitempty" jsonschema:"restrict the search to one collection (e.g. megatrends, seeds); empty searches all collections"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results per collection (default 10)"`
}

// SearchOutput is the output schema for the kb_search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Title string `json:"title"`
}

// DashboardInput is the (empty) input schema for the kb_quality tool.
type DashboardInput struct{}

// DashboardOutput is the output schema for the kb_quality tool.
type DashboardOutput struct {
	OverallScore float64               `json:"overall_score"`
	Trend        string                `json:"trend"`
	Sources      []SourceQualityOutput `json:"sources"`
	RecentIssues []string              `json:"recent_issues,omitempty"`
	GeneratedAt  time.Time             `json:"generated_at"`
}

// SourceQualityOutput summarises one collection's quality.
type SourceQualityOutput struct {
	SourceName    string  `json:"source_name"`
	LatestScore   float64 `json:"latest_score"`
	PreviousScore float64 `json:"previous_score"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "kb_search",
		Description: "Search the strategy knowledge base across all collections or within one",
	}, s.handleSearch)

	if s.ports.Quality != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "kb_quality",
			Description: "Report the knowledge base quality dashboard",
		}, s.handleQuality)
	}
}

// handleSearch handles the kb_search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	var (
		results []SearchResultOutput
		err     error
	)
	if input.Kind == "" {
		results, err = s.searchAll(ctx, input.Query, limit)
	} else {
		results, err = s.searchKind(ctx, input.Kind, input.Query, limit)
	}
	if err != nil {
		return nil, SearchOutput{}, err
	}

	return nil, SearchOutput{Results: results, Count: len(results)}, nil
}

func (s *Server) searchAll(ctx context.Context, query string, limit int) ([]SearchResultOutput, error) {
	summaries, err := s.ports.Search.SearchAll(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	out := make([]SearchResultOutput, len(summaries))
	for i, sum := range summaries {
		out[i] = SearchResultOutput{ID: sum.ID, Kind: sum.Kind, Title: sum.Title}
	}
	return out, nil
}

func (s *Server) searchKind(ctx context.Context, kind, query string, limit int) ([]SearchResultOutput, error) {
	summaries, err := s.ports.Search.SearchKind(ctx, kind, query, limit)
	if err != nil {
		return nil, err
	}
	out := make([]SearchResultOutput, len(summaries))
	for i, sum := range summaries {
		out[i] = SearchResultOutput{ID: sum.ID, Kind: sum.Kind, Title: sum.Title}
	}
	return out, nil
}

// handleQuality handles the kb_quality tool invocation.
func (s *Server) handleQuality(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ DashboardInput,
) (*mcp.CallToolResult, DashboardOutput, error) {
	dashboard, err := s.ports.Quality.Dashboard(ctx)
	if err != nil {
		return nil, DashboardOutput{}, err
	}

	output := DashboardOutput{
		OverallScore: dashboard.OverallScore,
		Trend:        string(dashboard.Trend),
		Sources:      make([]SourceQualityOutput, len(dashboard.Sources)),
		RecentIssues: dashboard.RecentIssues,
		GeneratedAt:  dashboard.GeneratedAt,
	}
	for i, src := range dashboard.Sources {
		output.Sources[i] = SourceQualityOutput{
			SourceName:    src.SourceName,
			LatestScore:   src.LatestScore,
			PreviousScore: src.PreviousScore,
		}
	}

	return nil, output, nil
}
