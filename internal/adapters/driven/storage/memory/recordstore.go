// Package memory provides in-memory implementations of the driven
// storage ports. Used as the test substitute and for ephemeral runs.
package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/stratkb/internal/adapters/driven/storage/query"
	"github.com/custodia-labs/stratkb/internal/core/domain"
	"github.com/custodia-labs/stratkb/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.RecordStore[domain.Megatrend] = (*RecordStore[domain.Megatrend])(nil)

// RecordStore is an in-memory implementation of driven.RecordStore.
type RecordStore[T any] struct {
	mu      sync.RWMutex
	records map[string]T
}

// NewRecordStore creates a new in-memory record store.
func NewRecordStore[T any]() *RecordStore[T] {
	return &RecordStore[T]{
		records: make(map[string]T),
	}
}

// Get retrieves a record by ID.
func (s *RecordStore[T]) Get(_ context.Context, id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

// Find returns one page of records matching the filters.
func (s *RecordStore[T]) Find(ctx context.Context, filters []domain.QueryFilter, params domain.PaginationParams) ([]T, int, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, 0, err
	}
	return query.Page(all, filters, params)
}

// All returns every record in the collection.
func (s *RecordStore[T]) All(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]T, 0, len(s.records))
	for _, record := range s.records {
		result = append(result, record)
	}
	return result, nil
}

// Count returns the number of records in the collection.
func (s *RecordStore[T]) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// Insert persists a new record.
func (s *RecordStore[T]) Insert(_ context.Context, id string, record T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; ok {
		return domain.ErrAlreadyExists
	}
	s.records[id] = record
	return nil
}

// Update replaces an existing record.
func (s *RecordStore[T]) Update(_ context.Context, id string, record T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return domain.ErrNotFound
	}
	s.records[id] = record
	return nil
}

// Delete removes a record.
func (s *RecordStore[T]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.records, id)
	return nil
}
