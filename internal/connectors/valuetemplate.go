package connectors

import (
	"fmt"
	"time"

	"github.com/custodia-labs/stratkb/internal/core/domain"
	"github.com/custodia-labs/stratkb/internal/core/ports/driven"
	"github.com/custodia-labs/stratkb/internal/core/ports/driving"
)

// Ensure ValueTemplateConnector fulfils the contract and capabilities.
var (
	_ driving.Connector[domain.ValueTemplate, domain.CreateValueTemplate, domain.UpdateValueTemplate] = (*ValueTemplateConnector)(nil)
	_ driving.Searcher[domain.ValueTemplate]                                                          = (*ValueTemplateConnector)(nil)
)

// ValueTemplateConnector provides access to the value-template
// collection.
type ValueTemplateConnector struct {
	*Base[domain.ValueTemplate, domain.CreateValueTemplate, domain.UpdateValueTemplate]
}

// NewValueTemplateConnector creates the value-template connector.
func NewValueTemplateConnector(store driven.RecordStore[domain.ValueTemplate]) *ValueTemplateConnector {
	return &ValueTemplateConnector{Base: NewBase(valueTemplateSpec(), store)}
}

func valueTemplateSpec() Spec[domain.ValueTemplate, domain.CreateValueTemplate, domain.UpdateValueTemplate] {
	return Spec[domain.ValueTemplate, domain.CreateValueTemplate, domain.UpdateValueTemplate]{
		Kind: "value-templates",
		New: func(input domain.CreateValueTemplate, id string, now time.Time) domain.ValueTemplate {
			return domain.ValueTemplate{
				ID:               id,
				Name:             input.Name,
				Description:      input.Description,
				Industry:         input.Industry,
				ValueProposition: input.ValueProposition,
				TargetSegment:    input.TargetSegment,
				RevenueModel:     input.RevenueModel,
				Examples:         input.Examples,
				Tags:             input.Tags,
				CreatedAt:        now,
				UpdatedAt:        now,
			}
		},
		Apply: func(entity domain.ValueTemplate, input domain.UpdateValueTemplate, now time.Time) domain.ValueTemplate {
			assign(&entity.Name, input.Name)
			assign(&entity.Description, input.Description)
			assign(&entity.Industry, input.Industry)
			assign(&entity.ValueProposition, input.ValueProposition)
			assign(&entity.TargetSegment, input.TargetSegment)
			assign(&entity.RevenueModel, input.RevenueModel)
			assignList(&entity.Examples, input.Examples)
			assignList(&entity.Tags, input.Tags)
			entity.UpdatedAt = now
			return entity
		},
		ValidateCreate: func(input domain.CreateValueTemplate) domain.DataValidationResult {
			result := domain.NewValidationResult(nil, nil)
			checkRequired(&result, "name", input.Name)
			checkMinLength(&result, "name", input.Name, minTitleLength)
			checkRequired(&result, "valueProposition", input.ValueProposition)
			warnEmptyList(&result, "examples", input.Examples, "add a real-world example applying this template")
			return result
		},
		ValidateUpdate: func(input domain.UpdateValueTemplate) domain.DataValidationResult {
			result := domain.NewValidationResult(nil, nil)
			if input.Name != nil {
				checkRequired(&result, "name", *input.Name)
				checkMinLength(&result, "name", *input.Name, minTitleLength)
			}
			if input.ValueProposition != nil {
				checkRequired(&result, "valueProposition", *input.ValueProposition)
			}
			return result
		},
		RequiredFields: []string{"name", "description", "industry", "valueProposition", "targetSegment", "revenueModel"},
		Accurate: func(entity domain.ValueTemplate) bool {
			return len(entity.Examples) > 0
		},
		InaccuracyIssue: func(entity domain.ValueTemplate) string {
			return fmt.Sprintf("value template %q has no real-world examples", entity.Name)
		},
		SearchFields:  []string{"name", "description", "industry", "valueProposition", "tags"},
		KeywordFields: []string{"tags", "name", "industry"},
	}
}
