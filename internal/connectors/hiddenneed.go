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

// Ensure HiddenNeedConnector fulfils the contract and capabilities.
var (
	_ driving.Connector[domain.HiddenNeed, domain.CreateHiddenNeed, domain.UpdateHiddenNeed] = (*HiddenNeedConnector)(nil)
	_ driving.Searcher[domain.HiddenNeed]                                                    = (*HiddenNeedConnector)(nil)
	_ driving.Analyzer[domain.HiddenNeed]                                                    = (*HiddenNeedConnector)(nil)
)

// HiddenNeedConnector provides access to the hidden-need collection
// with search and insight analysis.
type HiddenNeedConnector struct {
	*Base[domain.HiddenNeed, domain.CreateHiddenNeed, domain.UpdateHiddenNeed]
	analyses driven.AnalysisStore
}

// NewHiddenNeedConnector creates the hidden-need connector.
func NewHiddenNeedConnector(store driven.RecordStore[domain.HiddenNeed], analyses driven.AnalysisStore) *HiddenNeedConnector {
	return &HiddenNeedConnector{
		Base:     NewBase(hiddenNeedSpec(), store),
		analyses: analyses,
	}
}

func hiddenNeedSpec() Spec[domain.HiddenNeed, domain.CreateHiddenNeed, domain.UpdateHiddenNeed] {
	return Spec[domain.HiddenNeed, domain.CreateHiddenNeed, domain.UpdateHiddenNeed]{
		Kind: "hidden-needs",
		New: func(input domain.CreateHiddenNeed, id string, now time.Time) domain.HiddenNeed {
			return domain.HiddenNeed{
				ID:              id,
				Title:           input.Title,
				SurfaceNeed:     input.SurfaceNeed,
				HiddenDriver:    input.HiddenDriver,
				Segment:         input.Segment,
				ValidationLevel: input.ValidationLevel,
				Evidence:        input.Evidence,
				Keywords:        input.Keywords,
				Confidence:      input.Confidence,
				CreatedAt:       now,
				UpdatedAt:       now,
			}
		},
		Apply: func(entity domain.HiddenNeed, input domain.UpdateHiddenNeed, now time.Time) domain.HiddenNeed {
			assign(&entity.Title, input.Title)
			assign(&entity.SurfaceNeed, input.SurfaceNeed)
			assign(&entity.HiddenDriver, input.HiddenDriver)
			assign(&entity.Segment, input.Segment)
			assign(&entity.ValidationLevel, input.ValidationLevel)
			assignList(&entity.Evidence, input.Evidence)
			assignList(&entity.Keywords, input.Keywords)
			assign(&entity.Confidence, input.Confidence)
			entity.UpdatedAt = now
			return entity
		},
		ValidateCreate: func(input domain.CreateHiddenNeed) domain.DataValidationResult {
			result := domain.NewValidationResult(nil, nil)
			checkRequired(&result, "title", input.Title)
			checkMinLength(&result, "title", input.Title, minTitleLength)
			checkRequired(&result, "surfaceNeed", input.SurfaceNeed)
			checkRequired(&result, "hiddenDriver", input.HiddenDriver)
			checkEnum(&result, "validationLevel", input.ValidationLevel, domain.ValidationLevels)
			checkUnitRange(&result, "confidence", input.Confidence)
			warnEmptyList(&result, "evidence", input.Evidence, "record at least one evidence item")
			return result
		},
		ValidateUpdate: func(input domain.UpdateHiddenNeed) domain.DataValidationResult {
			result := domain.NewValidationResult(nil, nil)
			if input.Title != nil {
				checkRequired(&result, "title", *input.Title)
				checkMinLength(&result, "title", *input.Title, minTitleLength)
			}
			if input.SurfaceNeed != nil {
				checkRequired(&result, "surfaceNeed", *input.SurfaceNeed)
			}
			if input.HiddenDriver != nil {
				checkRequired(&result, "hiddenDriver", *input.HiddenDriver)
			}
			if input.ValidationLevel != nil {
				checkEnum(&result, "validationLevel", *input.ValidationLevel, domain.ValidationLevels)
			}
			if input.Confidence != nil {
				checkUnitRange(&result, "confidence", *input.Confidence)
			}
			return result
		},
		RequiredFields: []string{"title", "surfaceNeed", "hiddenDriver", "segment", "validationLevel", "evidence"},
		Accurate: func(entity domain.HiddenNeed) bool {
			return entity.ValidationLevel != domain.LevelHypothesis && len(entity.Evidence) > 0
		},
		InaccuracyIssue: func(entity domain.HiddenNeed) string {
			if entity.ValidationLevel == domain.LevelHypothesis {
				return fmt.Sprintf("hidden need %q is still a hypothesis", entity.Title)
			}
			return fmt.Sprintf("hidden need %q has no recorded evidence", entity.Title)
		},
		SearchFields:  []string{"title", "surfaceNeed", "hiddenDriver", "segment", "keywords"},
		KeywordFields: []string{"keywords", "title", "segment"},
	}
}

// Analyze scores the hidden need and appends the result to the
// immutable analysis history.
func (c *HiddenNeedConnector) Analyze(ctx context.Context, id string) (*domain.AnalysisResult, error) {
	entity, err := c.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := analysis.AnalyseHiddenNeed(*entity, time.Now().UTC())
	result.ID = uuid.NewString()
	if err := c.analyses.Append(ctx, result); err != nil {
		return nil, fmt.Errorf("recording hidden-need analysis: %w", err)
	}
	return &result, nil
}

// AnalyzeMany analyses hidden needs concurrently, fail-fast.
func (c *HiddenNeedConnector) AnalyzeMany(ctx context.Context, ids []string) ([]domain.AnalysisResult, error) {
	return analyzeMany(ctx, ids, c.Analyze)
}

// Related returns hidden needs in the same segment or sharing a keyword.
func (c *HiddenNeedConnector) Related(ctx context.Context, id string, limit int) ([]domain.HiddenNeed, error) {
	return related(ctx, c.Base, id, limit, func(subject, candidate domain.HiddenNeed) bool {
		if subject.Segment != "" && strings.EqualFold(subject.Segment, candidate.Segment) {
			return true
		}
		return sharedKeyword(subject.Keywords, candidate.Keywords)
	})
}
