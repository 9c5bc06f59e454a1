package connectors

import (
	"fmt"
	"time"

	"github.com/custodia-labs/stratkb/internal/core/domain"
	"github.com/custodia-labs/stratkb/internal/core/ports/driven"
	"github.com/custodia-labs/stratkb/internal/core/ports/driving"
)

// Year bounds for success cases; zero means "not set".
const (
	successCaseMinYear = 1900
	successCaseMaxYear = 2100
)

// Ensure SuccessCaseConnector fulfils the contract and capabilities.
var (
	_ driving.Connector[domain.SuccessCase, domain.CreateSuccessCase, domain.UpdateSuccessCase] = (*SuccessCaseConnector)(nil)
	_ driving.Searcher[domain.SuccessCase]                                                      = (*SuccessCaseConnector)(nil)
)

// SuccessCaseConnector provides access to the success-case collection.
type SuccessCaseConnector struct {
	*Base[domain.SuccessCase, domain.CreateSuccessCase, domain.UpdateSuccessCase]
}

// NewSuccessCaseConnector creates the success-case connector.
func NewSuccessCaseConnector(store driven.RecordStore[domain.SuccessCase]) *SuccessCaseConnector {
	return &SuccessCaseConnector{Base: NewBase(successCaseSpec(), store)}
}

func successCaseSpec() Spec[domain.SuccessCase, domain.CreateSuccessCase, domain.UpdateSuccessCase] {
	return Spec[domain.SuccessCase, domain.CreateSuccessCase, domain.UpdateSuccessCase]{
		Kind: "success-cases",
		New: func(input domain.CreateSuccessCase, id string, now time.Time) domain.SuccessCase {
			return domain.SuccessCase{
				ID:         id,
				Title:      input.Title,
				Company:    input.Company,
				Industry:   input.Industry,
				Summary:    input.Summary,
				Outcome:    input.Outcome,
				KeyFactors: input.KeyFactors,
				Year:       input.Year,
				Sources:    input.Sources,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
		},
		Apply: func(entity domain.SuccessCase, input domain.UpdateSuccessCase, now time.Time) domain.SuccessCase {
			assign(&entity.Title, input.Title)
			assign(&entity.Company, input.Company)
			assign(&entity.Industry, input.Industry)
			assign(&entity.Summary, input.Summary)
			assign(&entity.Outcome, input.Outcome)
			assignList(&entity.KeyFactors, input.KeyFactors)
			assign(&entity.Year, input.Year)
			assignList(&entity.Sources, input.Sources)
			entity.UpdatedAt = now
			return entity
		},
		ValidateCreate: func(input domain.CreateSuccessCase) domain.DataValidationResult {
			result := domain.NewValidationResult(nil, nil)
			checkRequired(&result, "title", input.Title)
			checkMinLength(&result, "title", input.Title, minTitleLength)
			checkRequired(&result, "company", input.Company)
			checkIntRange(&result, "year", input.Year, successCaseMinYear, successCaseMaxYear)
			warnEmptyList(&result, "sources", input.Sources, "add at least one source")
			warnEmptyList(&result, "keyFactors", input.KeyFactors, "key factors make the case transferable")
			return result
		},
		ValidateUpdate: func(input domain.UpdateSuccessCase) domain.DataValidationResult {
			result := domain.NewValidationResult(nil, nil)
			if input.Title != nil {
				checkRequired(&result, "title", *input.Title)
				checkMinLength(&result, "title", *input.Title, minTitleLength)
			}
			if input.Company != nil {
				checkRequired(&result, "company", *input.Company)
			}
			if input.Year != nil {
				checkIntRange(&result, "year", *input.Year, successCaseMinYear, successCaseMaxYear)
			}
			return result
		},
		RequiredFields: []string{"title", "company", "industry", "summary", "outcome", "keyFactors"},
		Accurate: func(entity domain.SuccessCase) bool {
			return len(entity.Sources) > 0
		},
		InaccuracyIssue: func(entity domain.SuccessCase) string {
			return fmt.Sprintf("success case %q has no supporting sources", entity.Title)
		},
		SearchFields:  []string{"title", "company", "industry", "summary", "keyFactors"},
		KeywordFields: []string{"keyFactors", "title", "company", "industry"},
	}
}
