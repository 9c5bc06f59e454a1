package domain

import "time"

// Severity is the four-tier categorical label derived from a bounded score.
type Severity string

const (
	// SeverityLow is the lowest tier.
	SeverityLow Severity = "LOW"
	// SeverityMedium is the second tier.
	SeverityMedium Severity = "MEDIUM"
	// SeverityHigh is the third tier.
	SeverityHigh Severity = "HIGH"
	// SeverityCritical is the highest tier.
	SeverityCritical Severity = "CRITICAL"
)

// Fixed thresholds mapping scores to severity tiers.
const (
	severityCriticalAbove = 0.7
	severityHighAbove     = 0.5
	severityMediumAbove   = 0.3
)

// SeverityForScore maps a score to its tier. The mapping is monotone:
// a higher score never yields a lower tier.
func SeverityForScore(score float64) Severity {
	switch {
	case score > severityCriticalAbove:
		return SeverityCritical
	case score > severityHighAbove:
		return SeverityHigh
	case score > severityMediumAbove:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// Clamp01 bounds a score to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// AnalysisResult is an immutable record of one analysis run. Repeated
// analysis of the same entity appends new results; prior results are
// never overwritten.
type AnalysisResult struct {
	// ID is the unique identifier for this analysis run.
	ID string

	// EntityKind names the analysed collection (e.g., "competitors").
	EntityKind string

	// EntityID identifies the analysed entity.
	EntityID string

	// EntityName is the entity's display name at analysis time.
	EntityName string

	// Score is the bounded heuristic score in [0,1].
	Score float64

	// Severity is the tier derived from Score.
	Severity Severity

	// Insights are short observations derived from the entity's fields.
	Insights []string

	// Recommendations are actionable follow-ups.
	Recommendations []string

	// AnalysedAt is when the analysis ran.
	AnalysedAt time.Time
}
