package analysis

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

var analysedAt = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func TestThreatScore_Bounded(t *testing.T) {
	weak := domain.Competitor{Weaknesses: []string{"a", "b", "c", "d", "e", "f", "g", "h"}}
	strong := domain.Competitor{
		MarketShare: 1,
		Strengths:   []string{"a", "b", "c", "d", "e", "f", "g", "h"},
	}

	assert.GreaterOrEqual(t, ThreatScore(weak), 0.0)
	assert.LessOrEqual(t, ThreatScore(strong), 1.0)
}

// TestThreatScore_MonotoneInShare verifies increasing market share never
// lowers the severity tier.
func TestThreatScore_MonotoneInShare(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	rank := map[domain.Severity]int{
		domain.SeverityLow: 0, domain.SeverityMedium: 1,
		domain.SeverityHigh: 2, domain.SeverityCritical: 3,
	}

	properties.Property("severity never drops as share grows", prop.ForAll(
		func(shareA, shareB float64, strengths int) bool {
			lo, hi := shareA, shareB
			if lo > hi {
				lo, hi = hi, lo
			}
			base := domain.Competitor{Strengths: make([]string, strengths)}
			low, high := base, base
			low.MarketShare, high.MarketShare = lo, hi
			sevLow := domain.SeverityForScore(ThreatScore(low))
			sevHigh := domain.SeverityForScore(ThreatScore(high))
			return rank[sevLow] <= rank[sevHigh]
		},
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
		gen.IntRange(0, 6),
	))

	properties.TestingRun(t)
}

func TestAnalyseCompetitor_WeaknessRecommendations(t *testing.T) {
	competitor := domain.Competitor{
		ID:         "c-1",
		Name:       "Acme",
		Strengths:  []string{"brand"},
		Weaknesses: []string{"slow delivery", "high prices", "legacy stack"},
	}

	result := AnalyseCompetitor(competitor, analysedAt)

	assert.Equal(t, "competitors", result.EntityKind)
	assert.Equal(t, analysedAt, result.AnalysedAt)
	// More weaknesses than strengths: exploit, plus the first two
	// weaknesses as individually actionable items.
	assert.Contains(t, result.Recommendations, "exploit the competitor's weak points before they are addressed")
	assert.Contains(t, result.Recommendations, "target weakness: slow delivery")
	assert.Contains(t, result.Recommendations, "target weakness: high prices")
	assert.NotContains(t, result.Recommendations, "target weakness: legacy stack")
}

func TestAnalyseCompetitor_SeverityMatchesScore(t *testing.T) {
	competitor := domain.Competitor{ID: "c-1", Name: "Acme", MarketShare: 0.9, Strengths: []string{"a", "b"}}

	result := AnalyseCompetitor(competitor, analysedAt)

	assert.Equal(t, domain.SeverityForScore(result.Score), result.Severity)
	assert.Equal(t, domain.SeverityCritical, result.Severity)
}

func TestOpportunityScore(t *testing.T) {
	critical := domain.Megatrend{Impact: domain.ImpactCritical, Confidence: 1}
	low := domain.Megatrend{Impact: domain.ImpactLow, Confidence: 0}

	assert.InDelta(t, 1.0, OpportunityScore(critical), 1e-9)
	assert.InDelta(t, 0.125, OpportunityScore(low), 1e-9)
}

func TestAnalyseMegatrend_LowConfidenceInsight(t *testing.T) {
	trend := domain.Megatrend{
		ID: "mt-1", Title: "Circular Economy", Category: "Sustainability",
		Impact: domain.ImpactHigh, Confidence: 0.2,
	}

	result := AnalyseMegatrend(trend, analysedAt)

	assert.Equal(t, "megatrends", result.EntityKind)
	assert.Contains(t, result.Insights, "confidence is low (0.20); treat conclusions as provisional")
	assert.Contains(t, result.Recommendations, "add supporting sources before committing investment")
}

func TestInsightScore_GrowsWithMaturity(t *testing.T) {
	need := domain.HiddenNeed{Confidence: 0.5}

	var previous float64 = -1
	for _, level := range domain.ValidationLevels {
		need.ValidationLevel = level
		score := InsightScore(need)
		assert.Greater(t, score, previous)
		previous = score
	}
}

func TestAnalyseHiddenNeed_HypothesisRecommendation(t *testing.T) {
	need := domain.HiddenNeed{
		ID: "hn-1", Title: "Silent churn",
		SurfaceNeed:     "cheaper plans",
		HiddenDriver:    "feeling locked in",
		ValidationLevel: domain.LevelHypothesis,
	}

	result := AnalyseHiddenNeed(need, analysedAt)

	assert.Contains(t, result.Insights, `stated need "cheaper plans" is driven by "feeling locked in"`)
	assert.Contains(t, result.Insights, "no evidence recorded yet")
	assert.Contains(t, result.Recommendations, "run customer interviews to move beyond hypothesis")
}
