package connectors

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/stratkb/internal/analysis"
	"github.com/custodia-labs/stratkb/internal/core/domain"
	"github.com/custodia-labs/stratkb/internal/core/ports/driven"
	"github.com/custodia-labs/stratkb/internal/core/ports/driving"
)

// Ensure MegatrendConnector fulfils the contract and capabilities.
var (
	_ driving.Connector[domain.Megatrend, domain.CreateMegatrend, domain.UpdateMegatrend] = (*MegatrendConnector)(nil)
	_ driving.Searcher[domain.Megatrend]                                                  = (*MegatrendConnector)(nil)
	_ driving.Analyzer[domain.Megatrend]                                                  = (*MegatrendConnector)(nil)
)

// MegatrendConnector provides access to the megatrend collection with
// search and opportunity analysis.
type MegatrendConnector struct {
	*Base[domain.Megatrend, domain.CreateMegatrend, domain.UpdateMegatrend]
	analyses driven.AnalysisStore
}

// NewMegatrendConnector creates the megatrend connector.
func NewMegatrendConnector(store driven.RecordStore[domain.Megatrend], analyses driven.AnalysisStore) *MegatrendConnector {
	return &MegatrendConnector{
		Base:     NewBase(megatrendSpec(), store),
		analyses: analyses,
	}
}

func megatrendSpec() Spec[domain.Megatrend, domain.CreateMegatrend, domain.UpdateMegatrend] {
	return Spec[domain.Megatrend, domain.CreateMegatrend, domain.UpdateMegatrend]{
		Kind: "megatrends",
		New: func(input domain.CreateMegatrend, id string, now time.Time) domain.Megatrend {
			return domain.Megatrend{
				ID:          id,
				Title:       input.Title,
				Description: input.Description,
				Category:    input.Category,
				Impact:      input.Impact,
				Confidence:  input.Confidence,
				Timeframe:   input.Timeframe,
				Keywords:    input.Keywords,
				Sources:     input.Sources,
				Regions:     input.Regions,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
		},
		Apply: func(entity domain.Megatrend, input domain.UpdateMegatrend, now time.Time) domain.Megatrend {
			assign(&entity.Title, input.Title)
			assign(&entity.Description, input.Description)
			assign(&entity.Category, input.Category)
			assign(&entity.Impact, input.Impact)
			assign(&entity.Confidence, input.Confidence)
			assign(&entity.Timeframe, input.Timeframe)
			assignList(&entity.Keywords, input.Keywords)
			assignList(&entity.Sources, input.Sources)
			assignList(&entity.Regions, input.Regions)
			entity.UpdatedAt = now
			return entity
		},
		ValidateCreate: func(input domain.CreateMegatrend) domain.DataValidationResult {
			result := domain.NewValidationResult(nil, nil)
			checkRequired(&result, "title", input.Title)
			checkMinLength(&result, "title", input.Title, minTitleLength)
			checkRequired(&result, "impact", string(input.Impact))
			checkEnum(&result, "impact", input.Impact, domain.ImpactLevels)
			checkUnitRange(&result, "confidence", input.Confidence)
			warnEmptyList(&result, "sources", input.Sources, "add at least one source")
			warnEmptyList(&result, "keywords", input.Keywords, "keywords improve search and related lookups")
			return result
		},
		ValidateUpdate: func(input domain.UpdateMegatrend) domain.DataValidationResult {
			result := domain.NewValidationResult(nil, nil)
			if input.Title != nil {
				checkRequired(&result, "title", *input.Title)
				checkMinLength(&result, "title", *input.Title, minTitleLength)
			}
			if input.Impact != nil {
				checkEnum(&result, "impact", *input.Impact, domain.ImpactLevels)
			}
			if input.Confidence != nil {
				checkUnitRange(&result, "confidence", *input.Confidence)
			}
			return result
		},
		RequiredFields: []string{"title", "description", "category", "impact", "timeframe", "keywords", "sources"},
		Accurate: func(entity domain.Megatrend) bool {
			return len(entity.Sources) > 0
		},
		InaccuracyIssue: func(entity domain.Megatrend) string {
			return fmt.Sprintf("megatrend %q has no supporting sources", entity.Title)
		},
		SearchFields:  []string{"title", "description", "category", "keywords"},
		KeywordFields: []string{"keywords", "title", "category"},
	}
}

// Analyze scores the megatrend's opportunity and appends the result to
// the immutable analysis history.
func (c *MegatrendConnector) Analyze(ctx context.Context, id string) (*domain.AnalysisResult, error) {
	entity, err := c.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := analysis.AnalyseMegatrend(*entity, time.Now().UTC())
	result.ID = uuid.NewString()
	if err := c.analyses.Append(ctx, result); err != nil {
		return nil, fmt.Errorf("recording megatrend analysis: %w", err)
	}
	return &result, nil
}

// AnalyzeMany analyses megatrends concurrently, fail-fast.
func (c *MegatrendConnector) AnalyzeMany(ctx context.Context, ids []string) ([]domain.AnalysisResult, error) {
	return analyzeMany(ctx, ids, c.Analyze)
}

// Related returns megatrends in the same category or sharing a keyword.
func (c *MegatrendConnector) Related(ctx context.Context, id string, limit int) ([]domain.Megatrend, error) {
	return related(ctx, c.Base, id, limit, func(subject, candidate domain.Megatrend) bool {
		if subject.Category != "" && strings.EqualFold(subject.Category, candidate.Category) {
			return true
		}
		return sharedKeyword(subject.Keywords, candidate.Keywords)
	})
}
