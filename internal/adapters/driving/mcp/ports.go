package mcp

import (
	"context"

	"github.com/custodia-labs/stratkb/internal/connectors"
	"github.com/custodia-labs/stratkb/internal/core/ports/driving"
)

// Searcher is the kind-erased search capability the server exposes.
// The connector set satisfies it.
type Searcher interface {
	// Kinds lists the collection names.
	Kinds() []string

	// SearchKind searches one collection.
	SearchKind(ctx context.Context, kind, query string, limit int) ([]connectors.Summary, error)

	// SearchAll searches every collection.
	SearchAll(ctx context.Context, query string, limit int) ([]connectors.Summary, error)
}

// Ports aggregates the capabilities the MCP server requires.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides knowledge-base search.
	Search Searcher

	// Quality provides the quality dashboard.
	Quality driving.QualityService

	// Registry provides data source metadata.
	Registry driving.SourceRegistry
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearcher
	}
	// Quality and Registry are optional
	return nil
}
