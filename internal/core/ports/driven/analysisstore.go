package driven

import (
	"context"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

// AnalysisStore is an append-only history of analysis runs.
// Results are immutable; repeated analysis appends, never replaces.
type AnalysisStore interface {
	// Append records one analysis result.
	Append(ctx context.Context, result domain.AnalysisResult) error

	// History returns up to limit results for one entity, ordered by
	// analysis time descending.
	History(ctx context.Context, entityID string, limit int) ([]domain.AnalysisResult, error)
}
