package domain

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestSeverityForScore_Thresholds(t *testing.T) {
	assert.Equal(t, SeverityLow, SeverityForScore(0))
	assert.Equal(t, SeverityLow, SeverityForScore(0.3))
	assert.Equal(t, SeverityMedium, SeverityForScore(0.31))
	assert.Equal(t, SeverityMedium, SeverityForScore(0.5))
	assert.Equal(t, SeverityHigh, SeverityForScore(0.51))
	assert.Equal(t, SeverityHigh, SeverityForScore(0.7))
	assert.Equal(t, SeverityCritical, SeverityForScore(0.71))
	assert.Equal(t, SeverityCritical, SeverityForScore(1))
}

// severityRank orders tiers for the monotonicity check.
func severityRank(s Severity) int {
	switch s {
	case SeverityLow:
		return 0
	case SeverityMedium:
		return 1
	case SeverityHigh:
		return 2
	case SeverityCritical:
		return 3
	default:
		return -1
	}
}

// TestSeverityForScore_Monotonic verifies a higher score never maps to a
// lower severity tier.
func TestSeverityForScore_Monotonic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("severity is monotone in score", prop.ForAll(
		func(a, b float64) bool {
			lo, hi := a, b
			if lo > hi {
				lo, hi = hi, lo
			}
			return severityRank(SeverityForScore(lo)) <= severityRank(SeverityForScore(hi))
		},
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
	))

	properties.TestingRun(t)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.5))
	assert.Equal(t, 0.0, Clamp01(0))
	assert.Equal(t, 0.42, Clamp01(0.42))
	assert.Equal(t, 1.0, Clamp01(1))
	assert.Equal(t, 1.0, Clamp01(1.8))
}

func TestNewQualityMetrics_OverallIsMean(t *testing.T) {
	m := NewQualityMetrics(0.5, 0.7, 1.0, 1.0, []string{"issue"})

	assert.InDelta(t, 0.8, m.OverallScore, 1e-9)
	assert.Equal(t, []string{"issue"}, m.Issues)
}
