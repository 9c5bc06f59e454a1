package driven

import (
	"context"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

// RecordStore persists one entity collection. T is the entity type.
//
// Filters are evaluated against the JSON field representation of a
// record, so all implementations share one predicate semantics for the
// operator set (eq, ne, gt, gte, lt, lte, in, contains). An operator
// that does not apply to a field's type is ignored for that filter
// rather than treated as an error.
type RecordStore[T any] interface {
	// Get retrieves a record by ID. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*T, error)

	// Find returns one page of records matching the ANDed filters,
	// ordered per the pagination params, plus the total match count.
	Find(ctx context.Context, filters []domain.QueryFilter, params domain.PaginationParams) ([]T, int, error)

	// All returns every record in the collection. Used by quality scans.
	All(ctx context.Context) ([]T, error)

	// Count returns the number of records in the collection.
	Count(ctx context.Context) (int, error)

	// Insert persists a new record. Returns domain.ErrAlreadyExists if
	// the ID is taken.
	Insert(ctx context.Context, id string, record T) error

	// Update replaces an existing record. Returns domain.ErrNotFound if
	// the ID is absent.
	Update(ctx context.Context, id string, record T) error

	// Delete removes a record. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id string) error
}
