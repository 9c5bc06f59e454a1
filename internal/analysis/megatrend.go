package analysis

import (
	"fmt"
	"time"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

// Opportunity score weights: impact and confidence contribute equally.
const (
	opportunityImpactWeight     = 0.5
	opportunityConfidenceWeight = 0.5
)

// OpportunityScore grades how much upside a megatrend carries.
func OpportunityScore(m domain.Megatrend) float64 {
	return domain.Clamp01(opportunityImpactWeight*m.Impact.Weight() + opportunityConfidenceWeight*m.Confidence)
}

// AnalyseMegatrend scores a megatrend and derives insights from its
// impact, confidence, and sourcing.
func AnalyseMegatrend(m domain.Megatrend, now time.Time) domain.AnalysisResult {
	score := OpportunityScore(m)

	var insights []string
	if m.Impact == domain.ImpactHigh || m.Impact == domain.ImpactCritical {
		insights = append(insights, fmt.Sprintf("%q is a %s-impact shift in the %s space", m.Title, m.Impact, m.Category))
	}
	if m.Confidence >= 0.7 {
		insights = append(insights, fmt.Sprintf("confidence is high (%.2f); the trend is well evidenced", m.Confidence))
	} else if m.Confidence < 0.4 {
		insights = append(insights, fmt.Sprintf("confidence is low (%.2f); treat conclusions as provisional", m.Confidence))
	}
	if m.Timeframe != "" {
		insights = append(insights, fmt.Sprintf("expected timeframe: %s", m.Timeframe))
	}

	var recommendations []string
	if score > 0.5 {
		recommendations = append(recommendations, "prioritise opportunity scouting against this megatrend")
	}
	if len(m.Sources) == 0 {
		recommendations = append(recommendations, "add supporting sources before committing investment")
	}
	if len(m.Regions) > 1 {
		recommendations = append(recommendations, fmt.Sprintf("assess regional variation across %d regions", len(m.Regions)))
	}

	return domain.AnalysisResult{
		EntityKind:      "megatrends",
		EntityID:        m.ID,
		EntityName:      m.Title,
		Score:           score,
		Severity:        domain.SeverityForScore(score),
		Insights:        insights,
		Recommendations: recommendations,
		AnalysedAt:      now,
	}
}
