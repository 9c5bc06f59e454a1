package driven

import (
	"context"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

// MetadataStore persists data source metadata.
type MetadataStore interface {
	// Save stores or updates a source's metadata.
	Save(ctx context.Context, source domain.DataSourceMetadata) error

	// Get retrieves a source by ID. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.DataSourceMetadata, error)

	// Delete removes a source. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// List returns all registered sources.
	List(ctx context.Context) ([]domain.DataSourceMetadata, error)
}
