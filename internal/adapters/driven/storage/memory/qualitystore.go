package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/stratkb/internal/core/domain"
	"github.com/custodia-labs/stratkb/internal/core/ports/driven"
)

// Ensure QualityStore implements the interface.
var _ driven.QualityStore = (*QualityStore)(nil)

// QualityStore is an in-memory implementation of driven.QualityStore.
type QualityStore struct {
	mu        sync.RWMutex
	snapshots map[string][]domain.QualitySnapshot
}

// NewQualityStore creates a new in-memory quality store.
func NewQualityStore() *QualityStore {
	return &QualityStore{
		snapshots: make(map[string][]domain.QualitySnapshot),
	}
}

// SaveSnapshot appends a quality measurement.
func (s *QualityStore) SaveSnapshot(_ context.Context, snapshot domain.QualitySnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[snapshot.SourceName] = append(s.snapshots[snapshot.SourceName], snapshot)
	return nil
}

// Snapshots returns up to limit snapshots for one source, newest first.
func (s *QualityStore) Snapshots(_ context.Context, sourceName string, limit int) ([]domain.QualitySnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.snapshots[sourceName]
	result := make([]domain.QualitySnapshot, len(history))
	copy(result, history)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CheckedAt.After(result[j].CheckedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// SourceNames returns the distinct source names with snapshots, sorted.
func (s *QualityStore) SourceNames(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.snapshots))
	for name := range s.snapshots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
