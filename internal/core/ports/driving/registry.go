package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

// SourceRegistry manages data source metadata independent of entity
// content. It is not in the hot path of entity CRUD.
type SourceRegistry interface {
	// Register adds a new data source. The ID is assigned by the
	// registry and returned on the stored record.
	Register(ctx context.Context, source domain.DataSourceMetadata) (*domain.DataSourceMetadata, error)

	// Get retrieves a source. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.DataSourceMetadata, error)

	// List returns all registered sources.
	List(ctx context.Context) ([]domain.DataSourceMetadata, error)

	// UpdateConfig replaces a source's configuration map.
	UpdateConfig(ctx context.Context, id string, config map[string]string) (*domain.DataSourceMetadata, error)

	// Delete removes a source. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// UpdateSyncStatus sets a source's sync status; when syncedAt is
	// non-zero it also records the sync timestamp.
	UpdateSyncStatus(ctx context.Context, id string, status domain.SyncStatus, syncedAt time.Time) error

	// SchemaCatalog returns the static field-list description for a
	// source kind, keyed by entity group. This is declarative metadata,
	// not derived from live data.
	SchemaCatalog(kind domain.SourceKind) (map[string][]domain.SchemaField, error)

	// Stats aggregates counts by kind and status plus the sync recency
	// breakdown (24h / 7d / never) against the current time.
	Stats(ctx context.Context) (*domain.SourceStats, error)
}
