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

// Ensure CompetitorConnector fulfils the contract and capabilities.
var (
	_ driving.Connector[domain.Competitor, domain.CreateCompetitor, domain.UpdateCompetitor] = (*CompetitorConnector)(nil)
	_ driving.Searcher[domain.Competitor]                                                    = (*CompetitorConnector)(nil)
	_ driving.Analyzer[domain.Competitor]                                                    = (*CompetitorConnector)(nil)
)

// CompetitorConnector provides access to the competitor collection with
// search and threat analysis.
type CompetitorConnector struct {
	*Base[domain.Competitor, domain.CreateCompetitor, domain.UpdateCompetitor]
	analyses driven.AnalysisStore
}

// NewCompetitorConnector creates the competitor connector.
func NewCompetitorConnector(store driven.RecordStore[domain.Competitor], analyses driven.AnalysisStore) *CompetitorConnector {
	return &CompetitorConnector{
		Base:     NewBase(competitorSpec(), store),
		analyses: analyses,
	}
}

func competitorSpec() Spec[domain.Competitor, domain.CreateCompetitor, domain.UpdateCompetitor] {
	return Spec[domain.Competitor, domain.CreateCompetitor, domain.UpdateCompetitor]{
		Kind: "competitors",
		New: func(input domain.CreateCompetitor, id string, now time.Time) domain.Competitor {
			return domain.Competitor{
				ID:          id,
				Name:        input.Name,
				Industry:    input.Industry,
				Description: input.Description,
				Strengths:   input.Strengths,
				Weaknesses:  input.Weaknesses,
				MarketShare: input.MarketShare,
				Products:    input.Products,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
		},
		Apply: func(entity domain.Competitor, input domain.UpdateCompetitor, now time.Time) domain.Competitor {
			assign(&entity.Name, input.Name)
			assign(&entity.Industry, input.Industry)
			assign(&entity.Description, input.Description)
			assignList(&entity.Strengths, input.Strengths)
			assignList(&entity.Weaknesses, input.Weaknesses)
			assign(&entity.MarketShare, input.MarketShare)
			assignList(&entity.Products, input.Products)
			entity.UpdatedAt = now
			return entity
		},
		ValidateCreate: func(input domain.CreateCompetitor) domain.DataValidationResult {
			result := domain.NewValidationResult(nil, nil)
			checkRequired(&result, "name", input.Name)
			checkMinLength(&result, "name", input.Name, minTitleLength)
			checkUnitRange(&result, "marketShare", input.MarketShare)
			if len(input.Strengths) == 0 && len(input.Weaknesses) == 0 {
				result.AddWarning("strengths", "no strengths or weaknesses recorded", "a profile without either cannot be analysed meaningfully")
			}
			return result
		},
		ValidateUpdate: func(input domain.UpdateCompetitor) domain.DataValidationResult {
			result := domain.NewValidationResult(nil, nil)
			if input.Name != nil {
				checkRequired(&result, "name", *input.Name)
				checkMinLength(&result, "name", *input.Name, minTitleLength)
			}
			if input.MarketShare != nil {
				checkUnitRange(&result, "marketShare", *input.MarketShare)
			}
			return result
		},
		RequiredFields: []string{"name", "industry", "description", "strengths", "weaknesses"},
		Accurate: func(entity domain.Competitor) bool {
			return len(entity.Strengths) > 0 || len(entity.Weaknesses) > 0
		},
		InaccuracyIssue: func(entity domain.Competitor) string {
			return fmt.Sprintf("competitor %q has no recorded strengths or weaknesses", entity.Name)
		},
		SearchFields:  []string{"name", "industry", "description", "products"},
		KeywordFields: []string{"products", "name", "industry"},
	}
}

// Analyze scores the competitor's threat and appends the result to the
// immutable analysis history.
func (c *CompetitorConnector) Analyze(ctx context.Context, id string) (*domain.AnalysisResult, error) {
	entity, err := c.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := analysis.AnalyseCompetitor(*entity, time.Now().UTC())
	result.ID = uuid.NewString()
	if err := c.analyses.Append(ctx, result); err != nil {
		return nil, fmt.Errorf("recording competitor analysis: %w", err)
	}
	return &result, nil
}

// AnalyzeMany analyses competitors concurrently, fail-fast.
func (c *CompetitorConnector) AnalyzeMany(ctx context.Context, ids []string) ([]domain.AnalysisResult, error) {
	return analyzeMany(ctx, ids, c.Analyze)
}

// Related returns competitors in the same industry or with overlapping
// products.
func (c *CompetitorConnector) Related(ctx context.Context, id string, limit int) ([]domain.Competitor, error) {
	return related(ctx, c.Base, id, limit, func(subject, candidate domain.Competitor) bool {
		if subject.Industry != "" && strings.EqualFold(subject.Industry, candidate.Industry) {
			return true
		}
		return sharedKeyword(subject.Products, candidate.Products)
	})
}
