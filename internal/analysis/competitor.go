package analysis

import (
	"fmt"
	"time"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

// Threat score contributions.
const (
	threatBase           = 0.3
	threatShareWeight    = 0.4
	threatStrengthWeight = 0.1
	threatWeaknessWeight = 0.05
)

// ThreatScore grades how dangerous a competitor is. Monotone
// non-decreasing in market share and strength count.
func ThreatScore(c domain.Competitor) float64 {
	score := threatBase +
		threatShareWeight*c.MarketShare +
		threatStrengthWeight*float64(len(c.Strengths)) -
		threatWeaknessWeight*float64(len(c.Weaknesses))
	return domain.Clamp01(score)
}

// AnalyseCompetitor scores a competitor and derives insights and
// recommendations from its strength/weakness profile.
func AnalyseCompetitor(c domain.Competitor, now time.Time) domain.AnalysisResult {
	score := ThreatScore(c)

	var insights []string
	if c.MarketShare > 0.3 {
		insights = append(insights, fmt.Sprintf("%s holds a dominant market share of %.0f%%", c.Name, c.MarketShare*100))
	}
	if len(c.Strengths) > len(c.Weaknesses) {
		insights = append(insights, fmt.Sprintf("%s has more recorded strengths (%d) than weaknesses (%d)", c.Name, len(c.Strengths), len(c.Weaknesses)))
	}

	var recommendations []string
	if len(c.Weaknesses) >= len(c.Strengths) && len(c.Weaknesses) > 0 {
		recommendations = append(recommendations, "exploit the competitor's weak points before they are addressed")
	}
	// The first two weaknesses become individually actionable items.
	for i, weakness := range c.Weaknesses {
		if i == 2 {
			break
		}
		recommendations = append(recommendations, fmt.Sprintf("target weakness: %s", weakness))
	}
	if len(c.Weaknesses) == 0 && len(c.Strengths) > 0 {
		recommendations = append(recommendations, "differentiate rather than compete head-on; no exploitable weakness is recorded")
	}

	return domain.AnalysisResult{
		EntityKind:      "competitors",
		EntityID:        c.ID,
		EntityName:      c.Name,
		Score:           score,
		Severity:        domain.SeverityForScore(score),
		Insights:        insights,
		Recommendations: recommendations,
		AnalysedAt:      now,
	}
}
