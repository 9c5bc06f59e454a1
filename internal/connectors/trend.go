package connectors

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/stratkb/internal/core/domain"
	"github.com/custodia-labs/stratkb/internal/core/ports/driven"
	"github.com/custodia-labs/stratkb/internal/core/ports/driving"
)

// Ensure TrendConnector fulfils the contract and capabilities.
var (
	_ driving.Connector[domain.Trend, domain.CreateTrend, domain.UpdateTrend] = (*TrendConnector)(nil)
	_ driving.Searcher[domain.Trend]                                          = (*TrendConnector)(nil)
)

// TrendConnector provides access to the short-term trend collection.
// A trend may reference a megatrend by ID; the reference is resolved on
// demand via Megatrend, never embedded.
type TrendConnector struct {
	*Base[domain.Trend, domain.CreateTrend, domain.UpdateTrend]
	megatrends driven.RecordStore[domain.Megatrend]
}

// NewTrendConnector creates the trend connector.
func NewTrendConnector(store driven.RecordStore[domain.Trend], megatrends driven.RecordStore[domain.Megatrend]) *TrendConnector {
	return &TrendConnector{
		Base:       NewBase(trendSpec(), store),
		megatrends: megatrends,
	}
}

func trendSpec() Spec[domain.Trend, domain.CreateTrend, domain.UpdateTrend] {
	return Spec[domain.Trend, domain.CreateTrend, domain.UpdateTrend]{
		Kind: "trends",
		New: func(input domain.CreateTrend, id string, now time.Time) domain.Trend {
			return domain.Trend{
				ID:          id,
				Title:       input.Title,
				Description: input.Description,
				Category:    input.Category,
				MegatrendID: input.MegatrendID,
				Momentum:    input.Momentum,
				Keywords:    input.Keywords,
				Sources:     input.Sources,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
		},
		Apply: func(entity domain.Trend, input domain.UpdateTrend, now time.Time) domain.Trend {
			assign(&entity.Title, input.Title)
			assign(&entity.Description, input.Description)
			assign(&entity.Category, input.Category)
			assign(&entity.MegatrendID, input.MegatrendID)
			assign(&entity.Momentum, input.Momentum)
			assignList(&entity.Keywords, input.Keywords)
			assignList(&entity.Sources, input.Sources)
			entity.UpdatedAt = now
			return entity
		},
		ValidateCreate: func(input domain.CreateTrend) domain.DataValidationResult {
			result := domain.NewValidationResult(nil, nil)
			checkRequired(&result, "title", input.Title)
			checkMinLength(&result, "title", input.Title, minTitleLength)
			checkUnitRange(&result, "momentum", input.Momentum)
			warnEmptyList(&result, "sources", input.Sources, "add at least one source")
			return result
		},
		ValidateUpdate: func(input domain.UpdateTrend) domain.DataValidationResult {
			result := domain.NewValidationResult(nil, nil)
			if input.Title != nil {
				checkRequired(&result, "title", *input.Title)
				checkMinLength(&result, "title", *input.Title, minTitleLength)
			}
			if input.Momentum != nil {
				checkUnitRange(&result, "momentum", *input.Momentum)
			}
			return result
		},
		RequiredFields: []string{"title", "description", "category", "keywords", "sources"},
		Accurate: func(entity domain.Trend) bool {
			return len(entity.Sources) > 0
		},
		InaccuracyIssue: func(entity domain.Trend) string {
			return fmt.Sprintf("trend %q has no supporting sources", entity.Title)
		},
		SearchFields:  []string{"title", "description", "category", "keywords"},
		KeywordFields: []string{"keywords", "title", "category"},
	}
}

// Megatrend resolves the trend's megatrend reference. Returns
// domain.ErrNotFound when the trend has no reference or the referenced
// megatrend no longer exists.
func (c *TrendConnector) Megatrend(ctx context.Context, trendID string) (*domain.Megatrend, error) {
	trend, err := c.FindByID(ctx, trendID)
	if err != nil {
		return nil, err
	}
	if trend.MegatrendID == "" {
		return nil, domain.ErrNotFound
	}
	return c.megatrends.Get(ctx, trend.MegatrendID)
}
