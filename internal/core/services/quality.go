package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/stratkb/internal/core/domain"
	"github.com/custodia-labs/stratkb/internal/core/ports/driven"
	"github.com/custodia-labs/stratkb/internal/core/ports/driving"
)

// Ensure QualityService implements the interface.
var _ driving.QualityService = (*QualityService)(nil)

const (
	// maxRecentIssues caps the dashboard's issue list.
	maxRecentIssues = 10
	// maxIssuesPerSource caps one source's contribution to it.
	maxIssuesPerSource = 3
	// defaultScanRate paces full-collection scans during a check run.
	defaultScanRate = rate.Limit(4)
)

// QualityService scores every registered collection, persists the
// snapshots, and aggregates the dashboard.
type QualityService struct {
	reporters []driving.QualityReporter
	snapshots driven.QualityStore
	limiter   *rate.Limiter
	now       func() time.Time
}

// NewQualityService creates a quality service over the given reporters.
func NewQualityService(reporters []driving.QualityReporter, snapshots driven.QualityStore) *QualityService {
	return &QualityService{
		reporters: reporters,
		snapshots: snapshots,
		limiter:   rate.NewLimiter(defaultScanRate, 1),
		now:       time.Now,
	}
}

// RunQualityCheck scores each registered collection in order and saves
// one snapshot per collection. Scans are rate limited so a check run
// does not monopolise the stores.
func (s *QualityService) RunQualityCheck(ctx context.Context) ([]domain.QualitySnapshot, error) {
	if s.snapshots == nil {
		return nil, domain.ErrNotImplemented
	}

	results := make([]domain.QualitySnapshot, 0, len(s.reporters))
	for _, reporter := range s.reporters {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("pacing quality scan: %w", err)
		}

		metrics, err := reporter.QualityMetrics(ctx)
		if err != nil {
			return nil, fmt.Errorf("scoring %s: %w", reporter.Kind(), err)
		}

		snapshot := domain.QualitySnapshot{
			ID:         uuid.NewString(),
			SourceName: reporter.Kind(),
			Metrics:    metrics,
			CheckedAt:  s.now(),
		}
		if err := s.snapshots.SaveSnapshot(ctx, snapshot); err != nil {
			return nil, fmt.Errorf("saving snapshot for %s: %w", reporter.Kind(), err)
		}
		results = append(results, snapshot)
	}
	return results, nil
}

// Dashboard aggregates the two latest snapshots per source. Sources
// with no snapshots yet are omitted; an empty store yields a stable
// dashboard with no sources.
func (s *QualityService) Dashboard(ctx context.Context) (*domain.QualityDashboard, error) {
	if s.snapshots == nil {
		return nil, domain.ErrNotImplemented
	}

	names, err := s.snapshots.SourceNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing quality sources: %w", err)
	}

	dashboard := &domain.QualityDashboard{
		Trend:       domain.TrendStable,
		GeneratedAt: s.now(),
	}

	var scoreSum float64
	var improved, declined int
	for _, name := range names {
		latest, err := s.snapshots.Snapshots(ctx, name, 2)
		if err != nil {
			return nil, fmt.Errorf("loading snapshots for %s: %w", name, err)
		}
		if len(latest) == 0 {
			continue
		}

		entry := domain.SourceQuality{
			SourceName:    name,
			LatestScore:   latest[0].Metrics.OverallScore,
			PreviousScore: -1,
			CheckedAt:     latest[0].CheckedAt,
		}
		if len(latest) > 1 {
			entry.PreviousScore = latest[1].Metrics.OverallScore
			switch {
			case entry.LatestScore > entry.PreviousScore:
				improved++
			case entry.LatestScore < entry.PreviousScore:
				declined++
			}
		}
		dashboard.Sources = append(dashboard.Sources, entry)
		scoreSum += entry.LatestScore

		for i, issue := range latest[0].Metrics.Issues {
			if i >= maxIssuesPerSource || len(dashboard.RecentIssues) >= maxRecentIssues {
				break
			}
			dashboard.RecentIssues = append(dashboard.RecentIssues, fmt.Sprintf("[%s] %s", name, issue))
		}
	}

	if len(dashboard.Sources) > 0 {
		dashboard.OverallScore = scoreSum / float64(len(dashboard.Sources))
	}
	switch {
	case improved > declined:
		dashboard.Trend = domain.TrendImproving
	case declined > improved:
		dashboard.Trend = domain.TrendDeclining
	}
	return dashboard, nil
}
