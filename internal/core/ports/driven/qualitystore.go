package driven

import (
	"context"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

// QualityStore persists quality snapshots, newest first per source.
type QualityStore interface {
	// SaveSnapshot appends a quality measurement.
	SaveSnapshot(ctx context.Context, snapshot domain.QualitySnapshot) error

	// Snapshots returns up to limit snapshots for one source, ordered
	// by check time descending.
	Snapshots(ctx context.Context, sourceName string, limit int) ([]domain.QualitySnapshot, error)

	// SourceNames returns the distinct source names with snapshots.
	SourceNames(ctx context.Context) ([]string, error)
}
