package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/stratkb/internal/core/domain"
	"github.com/custodia-labs/stratkb/internal/core/ports/driven"
)

// Ensure MetadataStore implements the interface.
var _ driven.MetadataStore = (*MetadataStore)(nil)

// MetadataStore is an in-memory implementation of driven.MetadataStore.
type MetadataStore struct {
	mu      sync.RWMutex
	sources map[string]domain.DataSourceMetadata
}

// NewMetadataStore creates a new in-memory metadata store.
func NewMetadataStore() *MetadataStore {
	return &MetadataStore{
		sources: make(map[string]domain.DataSourceMetadata),
	}
}

// Save stores or updates a source's metadata.
func (s *MetadataStore) Save(_ context.Context, source domain.DataSourceMetadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sources[source.ID] = source
	return nil
}

// Get retrieves a source by ID.
func (s *MetadataStore) Get(_ context.Context, id string) (*domain.DataSourceMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	source, ok := s.sources[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &source, nil
}

// Delete removes a source.
func (s *MetadataStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sources[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.sources, id)
	return nil
}

// List returns all registered sources.
func (s *MetadataStore) List(_ context.Context) ([]domain.DataSourceMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.DataSourceMetadata, 0, len(s.sources))
	for _, source := range s.sources {
		result = append(result, source)
	}
	return result, nil
}
