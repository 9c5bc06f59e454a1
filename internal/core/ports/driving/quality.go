package driving

import (
	"context"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

// QualityService runs quality checks across registered collections and
// aggregates the dashboard.
type QualityService interface {
	// RunQualityCheck scores every registered collection and persists
	// one snapshot per collection. Returns the snapshots taken.
	RunQualityCheck(ctx context.Context) ([]domain.QualitySnapshot, error)

	// Dashboard aggregates the two latest snapshots per source.
	Dashboard(ctx context.Context) (*domain.QualityDashboard, error)
}
