package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/stratkb/internal/core/domain"
	"github.com/custodia-labs/stratkb/internal/core/ports/driven"
	"github.com/custodia-labs/stratkb/internal/core/ports/driving"
)

// Ensure RegistryService implements the interface.
var _ driving.SourceRegistry = (*RegistryService)(nil)

// RegistryService manages data source metadata.
type RegistryService struct {
	store driven.MetadataStore
	now   func() time.Time
}

// NewRegistryService creates a registry over the given metadata store.
func NewRegistryService(store driven.MetadataStore) *RegistryService {
	return &RegistryService{
		store: store,
		now:   time.Now,
	}
}

// Register adds a new data source, assigning its identifier.
func (s *RegistryService) Register(ctx context.Context, source domain.DataSourceMetadata) (*domain.DataSourceMetadata, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if source.Name == "" || source.Kind == "" {
		return nil, domain.ErrInvalidInput
	}

	source.ID = uuid.NewString()
	if source.SyncStatus == "" {
		source.SyncStatus = domain.SyncIdle
	}
	now := s.now()
	source.CreatedAt = now
	source.UpdatedAt = now

	if err := s.store.Save(ctx, source); err != nil {
		return nil, fmt.Errorf("registering source: %w", err)
	}
	return &source, nil
}

// Get retrieves a source by ID.
func (s *RegistryService) Get(ctx context.Context, id string) (*domain.DataSourceMetadata, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.Get(ctx, id)
}

// List returns all registered sources.
func (s *RegistryService) List(ctx context.Context) ([]domain.DataSourceMetadata, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.List(ctx)
}

// UpdateConfig replaces a source's configuration map.
func (s *RegistryService) UpdateConfig(ctx context.Context, id string, config map[string]string) (*domain.DataSourceMetadata, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	source, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	source.Config = config
	source.UpdatedAt = s.now()
	if err := s.store.Save(ctx, *source); err != nil {
		return nil, fmt.Errorf("updating source config: %w", err)
	}
	return source, nil
}

// Delete removes a source.
func (s *RegistryService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	return s.store.Delete(ctx, id)
}

// UpdateSyncStatus sets a source's sync status, recording the sync
// timestamp when one is supplied.
func (s *RegistryService) UpdateSyncStatus(ctx context.Context, id string, status domain.SyncStatus, syncedAt time.Time) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	source, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	source.SyncStatus = status
	if !syncedAt.IsZero() {
		source.LastSyncAt = syncedAt
	}
	source.UpdatedAt = s.now()
	return s.store.Save(ctx, *source)
}

// SchemaCatalog returns the declared field lists for a source kind,
// keyed by entity group.
func (s *RegistryService) SchemaCatalog(kind domain.SourceKind) (map[string][]domain.SchemaField, error) {
	catalog, ok := schemaCatalogs[kind]
	if !ok {
		return nil, fmt.Errorf("source kind %q: %w", kind, domain.ErrUnsupportedType)
	}
	return catalog, nil
}

// Stats aggregates registry-wide counts and sync recency buckets.
func (s *RegistryService) Stats(ctx context.Context) (*domain.SourceStats, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	sources, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sources: %w", err)
	}

	stats := &domain.SourceStats{
		Total:    len(sources),
		ByKind:   make(map[domain.SourceKind]int),
		ByStatus: make(map[domain.SyncStatus]int),
	}
	now := s.now()
	for i := range sources {
		src := &sources[i]
		stats.ByKind[src.Kind]++
		stats.ByStatus[src.SyncStatus]++
		switch {
		case src.LastSyncAt.IsZero():
			stats.NeverSynced++
		case now.Sub(src.LastSyncAt) <= 24*time.Hour:
			stats.SyncedLast24h++
			stats.SyncedLast7d++
		case now.Sub(src.LastSyncAt) <= 7*24*time.Hour:
			stats.SyncedLast7d++
		}
	}
	return stats, nil
}

// schemaCatalogs is the static per-kind schema declaration. The catalog
// is descriptive metadata for registry consumers; it is not enforced
// against live records.
var schemaCatalogs = map[domain.SourceKind]map[string][]domain.SchemaField{
	domain.SourceKindDatabase: {
		"megatrends": {
			{Name: "title", Type: "string", Required: true},
			{Name: "description", Type: "string", Required: true},
			{Name: "category", Type: "string", Required: true},
			{Name: "impact", Type: "string", Required: false},
			{Name: "confidence", Type: "number", Required: false},
			{Name: "sources", Type: "string[]", Required: false},
		},
		"trends": {
			{Name: "title", Type: "string", Required: true},
			{Name: "description", Type: "string", Required: true},
			{Name: "megatrendId", Type: "string", Required: false},
			{Name: "sources", Type: "string[]", Required: false},
		},
		"competitors": {
			{Name: "name", Type: "string", Required: true},
			{Name: "industry", Type: "string", Required: true},
			{Name: "marketShare", Type: "number", Required: false},
			{Name: "strengths", Type: "string[]", Required: false},
			{Name: "weaknesses", Type: "string[]", Required: false},
		},
	},
	domain.SourceKindAPI: {
		"success-cases": {
			{Name: "title", Type: "string", Required: true},
			{Name: "company", Type: "string", Required: true},
			{Name: "industry", Type: "string", Required: true},
			{Name: "year", Type: "number", Required: false},
			{Name: "sources", Type: "string[]", Required: false},
		},
		"trends": {
			{Name: "title", Type: "string", Required: true},
			{Name: "description", Type: "string", Required: true},
			{Name: "sources", Type: "string[]", Required: false},
		},
	},
	domain.SourceKindFile: {
		"seeds": {
			{Name: "title", Type: "string", Required: true},
			{Name: "description", Type: "string", Required: true},
			{Name: "stage", Type: "string", Required: false},
			{Name: "owner", Type: "string", Required: false},
		},
		"partners": {
			{Name: "name", Type: "string", Required: true},
			{Name: "kind", Type: "string", Required: true},
			{Name: "capabilities", Type: "string[]", Required: false},
		},
	},
	domain.SourceKindManual: {
		"hidden-needs": {
			{Name: "title", Type: "string", Required: true},
			{Name: "description", Type: "string", Required: true},
			{Name: "level", Type: "string", Required: false},
			{Name: "confidence", Type: "number", Required: false},
			{Name: "evidence", Type: "string[]", Required: false},
		},
		"value-templates": {
			{Name: "title", Type: "string", Required: true},
			{Name: "description", Type: "string", Required: true},
			{Name: "category", Type: "string", Required: true},
			{Name: "examples", Type: "string[]", Required: false},
		},
	},
	domain.SourceKindExternalService: {
		"megatrends": {
			{Name: "title", Type: "string", Required: true},
			{Name: "description", Type: "string", Required: true},
			{Name: "category", Type: "string", Required: true},
		},
		"competitors": {
			{Name: "name", Type: "string", Required: true},
			{Name: "industry", Type: "string", Required: true},
		},
	},
}
