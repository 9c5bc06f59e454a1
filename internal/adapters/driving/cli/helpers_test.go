package cli

import (
	"context"
	"errors"

	"github.com/custodia-labs/stratkb/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/stratkb/internal/connectors"
	"github.com/custodia-labs/stratkb/internal/core/domain"
	"github.com/custodia-labs/stratkb/internal/core/services"
)

// setupTestServices wires memory-backed services into the package-level
// variables and returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldSet := connectorSet
	oldQuality := qualityService
	oldRegistry := registryService
	oldScheduler := schedulerStore

	connectorSet = connectors.NewSet(connectors.Stores{
		Megatrends:     memory.NewRecordStore[domain.Megatrend](),
		ValueTemplates: memory.NewRecordStore[domain.ValueTemplate](),
		HiddenNeeds:    memory.NewRecordStore[domain.HiddenNeed](),
		SuccessCases:   memory.NewRecordStore[domain.SuccessCase](),
		Seeds:          memory.NewRecordStore[domain.Seed](),
		Partners:       memory.NewRecordStore[domain.Partner](),
		Trends:         memory.NewRecordStore[domain.Trend](),
		Competitors:    memory.NewRecordStore[domain.Competitor](),
		Analyses:       memory.NewAnalysisStore(),
	})
	qualityService = services.NewQualityService(connectorSet.QualityReporters(), memory.NewQualityStore())
	registryService = services.NewRegistryService(memory.NewMetadataStore())
	schedulerStore = memory.NewSchedulerStore()

	return func() {
		connectorSet = oldSet
		qualityService = oldQuality
		registryService = oldRegistry
		schedulerStore = oldScheduler
	}
}

// mockQualityServiceError fails every operation.
type mockQualityServiceError struct{}

func (m *mockQualityServiceError) RunQualityCheck(_ context.Context) ([]domain.QualitySnapshot, error) {
	return nil, errors.New("quality store unavailable")
}

func (m *mockQualityServiceError) Dashboard(_ context.Context) (*domain.QualityDashboard, error) {
	return nil, errors.New("quality store unavailable")
}
