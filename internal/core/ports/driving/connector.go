package driving

import (
	"context"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

// Connector is the uniform access contract over one entity kind.
// T is the entity type, C the creation input (T without identity),
// U the update input (partial C).
//
// Validation is value-returning and never an error path; callers must
// check DataValidationResult.IsValid. Repository faults propagate
// unchanged with no retries.
type Connector[T any, C any, U any] interface {
	// FindByID retrieves one entity. Returns domain.ErrNotFound if the
	// identifier does not exist; absence is a typed outcome, not an
	// empty entity.
	FindByID(ctx context.Context, id string) (*T, error)

	// FindMany returns one page of entities matching the ANDed filters.
	// A filter whose operator does not apply to the field's type is
	// ignored rather than treated as an error.
	FindMany(ctx context.Context, filters []domain.QueryFilter, params domain.PaginationParams) (domain.Paginated[T], error)

	// Create validates nothing; it assigns an identifier, persists, and
	// returns the stored entity. Callers wanting validation call
	// Validate first.
	Create(ctx context.Context, input C) (*T, error)

	// CreateMany creates entities one by one, fanning out concurrently.
	// It is NOT atomic: the policy is fail-fast, the first failure is
	// propagated and no partial results are returned. Result order
	// matches input order.
	CreateMany(ctx context.Context, inputs []C) ([]T, error)

	// Update applies the non-nil fields of the partial input. Returns
	// domain.ErrNotFound if the identifier does not exist.
	Update(ctx context.Context, id string, input U) (*T, error)

	// Delete removes the entity (hard delete). Returns
	// domain.ErrNotFound if the identifier does not exist.
	Delete(ctx context.Context, id string) error

	// ValidateCreate checks a creation input against the kind's rules.
	// Pure; no I/O.
	ValidateCreate(input C) domain.DataValidationResult

	// ValidateUpdate checks an update input against the kind's rules.
	// Rules never reject absent optional fields. Pure; no I/O.
	ValidateUpdate(input U) domain.DataValidationResult

	// QualityMetrics scans the full collection and scores it along the
	// four quality dimensions with kind-specific issue messages.
	QualityMetrics(ctx context.Context) (domain.DataQualityMetrics, error)
}

// Searcher is the optional free-text search capability.
type Searcher[T any] interface {
	// Search performs a case-insensitive substring match over the
	// kind's fixed text fields. Limit defaults to 10 when <= 0.
	Search(ctx context.Context, query string, limit int) ([]T, error)

	// FindByKeywords returns entities matching any of the keywords
	// (OR of per-keyword substring/membership matches).
	FindByKeywords(ctx context.Context, keywords []string) ([]T, error)
}

// Analyzer is the optional analysis capability.
type Analyzer[T any] interface {
	// Analyze scores one entity, persists the result as immutable
	// history, and returns it. Returns domain.ErrNotFound if the
	// identifier does not exist.
	Analyze(ctx context.Context, id string) (*domain.AnalysisResult, error)

	// AnalyzeMany analyses entities concurrently with fail-fast policy;
	// result order matches input order.
	AnalyzeMany(ctx context.Context, ids []string) ([]domain.AnalysisResult, error)

	// Related returns up to limit entities sharing categorical
	// attributes with the subject, excluding the subject itself.
	// Limit defaults to 5 when <= 0.
	Related(ctx context.Context, id string, limit int) ([]T, error)
}

// QualityReporter is the kind-erased view of a connector used by the
// quality engine to scan every collection uniformly.
type QualityReporter interface {
	// Kind names the collection (e.g., "megatrends").
	Kind() string

	// QualityMetrics scores the full collection.
	QualityMetrics(ctx context.Context) (domain.DataQualityMetrics, error)
}
