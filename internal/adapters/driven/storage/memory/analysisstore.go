package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/stratkb/internal/core/domain"
	"github.com/custodia-labs/stratkb/internal/core/ports/driven"
)

// Ensure AnalysisStore implements the interface.
var _ driven.AnalysisStore = (*AnalysisStore)(nil)

// AnalysisStore is an in-memory implementation of driven.AnalysisStore.
// History is append-only; results are never mutated or replaced.
type AnalysisStore struct {
	mu      sync.RWMutex
	results map[string][]domain.AnalysisResult
}

// NewAnalysisStore creates a new in-memory analysis store.
func NewAnalysisStore() *AnalysisStore {
	return &AnalysisStore{
		results: make(map[string][]domain.AnalysisResult),
	}
}

// Append records one analysis result.
func (s *AnalysisStore) Append(_ context.Context, result domain.AnalysisResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.EntityID] = append(s.results[result.EntityID], result)
	return nil
}

// History returns up to limit results for one entity, newest first.
func (s *AnalysisStore) History(_ context.Context, entityID string, limit int) ([]domain.AnalysisResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.results[entityID]
	result := make([]domain.AnalysisResult, len(history))
	copy(result, history)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].AnalysedAt.After(result[j].AnalysedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
