package domain

import "time"

// DataQualityMetrics scores one entity collection along four dimensions,
// each in [0,1].
type DataQualityMetrics struct {
	// Completeness is the mean required-field fill ratio across records.
	Completeness float64

	// Accuracy is the fraction of records satisfying the kind's
	// evidentiary condition.
	Accuracy float64

	// Consistency is fixed at 1.0; cross-record conflict detection is
	// not part of this layer.
	Consistency float64

	// Timeliness is fixed at 1.0; staleness tracking is not part of
	// this layer.
	Timeliness float64

	// OverallScore is the unweighted mean of the four dimensions.
	OverallScore float64

	// Issues are human-readable findings identifying records by name.
	Issues []string
}

// NewQualityMetrics derives the overall score from the four dimensions.
func NewQualityMetrics(completeness, accuracy, consistency, timeliness float64, issues []string) DataQualityMetrics {
	return DataQualityMetrics{
		Completeness: completeness,
		Accuracy:     accuracy,
		Consistency:  consistency,
		Timeliness:   timeliness,
		OverallScore: (completeness + accuracy + consistency + timeliness) / 4,
		Issues:       issues,
	}
}

// QualitySnapshot is one historical quality measurement for a source.
type QualitySnapshot struct {
	// ID is the unique identifier for the snapshot.
	ID string

	// SourceName identifies the scored collection (e.g., "megatrends").
	SourceName string

	// Metrics is the measurement taken at CheckedAt.
	Metrics DataQualityMetrics

	// CheckedAt is when the measurement was taken.
	CheckedAt time.Time
}

// QualityTrend summarises movement between the two latest snapshots
// across sources.
type QualityTrend string

const (
	// TrendImproving means more sources improved than declined.
	TrendImproving QualityTrend = "improving"
	// TrendDeclining means more sources declined than improved.
	TrendDeclining QualityTrend = "declining"
	// TrendStable means improvements and declines balanced out.
	TrendStable QualityTrend = "stable"
)

// SourceQuality is one source's entry on the quality dashboard.
type SourceQuality struct {
	// SourceName identifies the collection.
	SourceName string

	// LatestScore is the overall score of the most recent snapshot.
	LatestScore float64

	// PreviousScore is the overall score of the snapshot before it,
	// or -1 when only one snapshot exists.
	PreviousScore float64

	// CheckedAt is when the latest snapshot was taken.
	CheckedAt time.Time
}

// QualityDashboard aggregates the latest snapshots across all sources.
type QualityDashboard struct {
	// OverallScore is the mean of each source's latest score.
	OverallScore float64

	// Trend compares the two latest snapshots per source.
	Trend QualityTrend

	// Sources lists per-source summaries.
	Sources []SourceQuality

	// RecentIssues holds up to 10 of the most recent issue strings,
	// at most 3 per source.
	RecentIssues []string

	// GeneratedAt is when the dashboard was assembled.
	GeneratedAt time.Time
}
