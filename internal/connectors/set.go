package connectors

import (
	"github.com/custodia-labs/stratkb/internal/core/domain"
	"github.com/custodia-labs/stratkb/internal/core/ports/driven"
	"github.com/custodia-labs/stratkb/internal/core/ports/driving"
)

// Stores bundles the per-collection record stores the connector set
// needs, plus the shared analysis history store.
type Stores struct {
	Megatrends     driven.RecordStore[domain.Megatrend]
	ValueTemplates driven.RecordStore[domain.ValueTemplate]
	HiddenNeeds    driven.RecordStore[domain.HiddenNeed]
	SuccessCases   driven.RecordStore[domain.SuccessCase]
	Seeds          driven.RecordStore[domain.Seed]
	Partners       driven.RecordStore[domain.Partner]
	Trends         driven.RecordStore[domain.Trend]
	Competitors    driven.RecordStore[domain.Competitor]
	Analyses       driven.AnalysisStore
}

// Set holds one connector per entity kind. The shared repository
// handle is injected through Stores rather than read from ambient
// state, so every connector stays independently testable.
type Set struct {
	Megatrends     *MegatrendConnector
	ValueTemplates *ValueTemplateConnector
	HiddenNeeds    *HiddenNeedConnector
	SuccessCases   *SuccessCaseConnector
	Seeds          *SeedConnector
	Partners       *PartnerConnector
	Trends         *TrendConnector
	Competitors    *CompetitorConnector
}

// NewSet wires all eight connectors over the given stores.
func NewSet(stores Stores) *Set {
	return &Set{
		Megatrends:     NewMegatrendConnector(stores.Megatrends, stores.Analyses),
		ValueTemplates: NewValueTemplateConnector(stores.ValueTemplates),
		HiddenNeeds:    NewHiddenNeedConnector(stores.HiddenNeeds, stores.Analyses),
		SuccessCases:   NewSuccessCaseConnector(stores.SuccessCases),
		Seeds:          NewSeedConnector(stores.Seeds),
		Partners:       NewPartnerConnector(stores.Partners),
		Trends:         NewTrendConnector(stores.Trends, stores.Megatrends),
		Competitors:    NewCompetitorConnector(stores.Competitors, stores.Analyses),
	}
}

// QualityReporters returns the kind-erased view of every connector for
// the quality engine, in a stable order.
func (s *Set) QualityReporters() []driving.QualityReporter {
	return []driving.QualityReporter{
		s.Megatrends,
		s.ValueTemplates,
		s.HiddenNeeds,
		s.SuccessCases,
		s.Seeds,
		s.Partners,
		s.Trends,
		s.Competitors,
	}
}
