package analysis

import (
	"fmt"
	"time"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

// Insight score weights: evidence maturity dominates stated confidence.
const (
	insightLevelWeight      = 0.6
	insightConfidenceWeight = 0.4
)

// InsightScore grades how actionable a hidden need is.
func InsightScore(n domain.HiddenNeed) float64 {
	return domain.Clamp01(insightLevelWeight*n.ValidationLevel.Weight() + insightConfidenceWeight*n.Confidence)
}

// AnalyseHiddenNeed scores a hidden need and extracts insights about
// the gap between the surface need and its underlying driver.
func AnalyseHiddenNeed(n domain.HiddenNeed, now time.Time) domain.AnalysisResult {
	score := InsightScore(n)

	var insights []string
	if n.SurfaceNeed != "" && n.HiddenDriver != "" {
		insights = append(insights, fmt.Sprintf("stated need %q is driven by %q", n.SurfaceNeed, n.HiddenDriver))
	}
	insights = append(insights, fmt.Sprintf("evidence maturity is %s", n.ValidationLevel))
	if len(n.Evidence) > 0 {
		insights = append(insights, fmt.Sprintf("%d evidence items recorded", len(n.Evidence)))
	} else {
		insights = append(insights, "no evidence recorded yet")
	}

	var recommendations []string
	switch n.ValidationLevel {
	case domain.LevelHypothesis:
		recommendations = append(recommendations, "run customer interviews to move beyond hypothesis")
	case domain.LevelObserved:
		recommendations = append(recommendations, "design a structured validation experiment")
	case domain.LevelValidated, domain.LevelProven:
		recommendations = append(recommendations, "scope a solution concept against this need")
	}
	if n.Segment != "" && score > 0.5 {
		recommendations = append(recommendations, fmt.Sprintf("prioritise the %s segment", n.Segment))
	}

	return domain.AnalysisResult{
		EntityKind:      "hidden-needs",
		EntityID:        n.ID,
		EntityName:      n.Title,
		Score:           score,
		Severity:        domain.SeverityForScore(score),
		Insights:        insights,
		Recommendations: recommendations,
		AnalysedAt:      now,
	}
}
