package connectors

import (
	"fmt"
	"time"

	"github.com/custodia-labs/stratkb/internal/core/domain"
	"github.com/custodia-labs/stratkb/internal/core/ports/driven"
	"github.com/custodia-labs/stratkb/internal/core/ports/driving"
)

// Ensure PartnerConnector fulfils the contract.
var _ driving.Connector[domain.Partner, domain.CreatePartner, domain.UpdatePartner] = (*PartnerConnector)(nil)

// PartnerConnector provides access to the partner collection.
type PartnerConnector struct {
	*Base[domain.Partner, domain.CreatePartner, domain.UpdatePartner]
}

// NewPartnerConnector creates the partner connector.
func NewPartnerConnector(store driven.RecordStore[domain.Partner]) *PartnerConnector {
	return &PartnerConnector{Base: NewBase(partnerSpec(), store)}
}

func partnerSpec() Spec[domain.Partner, domain.CreatePartner, domain.UpdatePartner] {
	return Spec[domain.Partner, domain.CreatePartner, domain.UpdatePartner]{
		Kind: "partners",
		New: func(input domain.CreatePartner, id string, now time.Time) domain.Partner {
			return domain.Partner{
				ID:                 id,
				Name:               input.Name,
				Industry:           input.Industry,
				Region:             input.Region,
				Capabilities:       input.Capabilities,
				CollaborationAreas: input.CollaborationAreas,
				Contact:            input.Contact,
				CreatedAt:          now,
				UpdatedAt:          now,
			}
		},
		Apply: func(entity domain.Partner, input domain.UpdatePartner, now time.Time) domain.Partner {
			assign(&entity.Name, input.Name)
			assign(&entity.Industry, input.Industry)
			assign(&entity.Region, input.Region)
			assignList(&entity.Capabilities, input.Capabilities)
			assignList(&entity.CollaborationAreas, input.CollaborationAreas)
			assign(&entity.Contact, input.Contact)
			entity.UpdatedAt = now
			return entity
		},
		ValidateCreate: func(input domain.CreatePartner) domain.DataValidationResult {
			result := domain.NewValidationResult(nil, nil)
			checkRequired(&result, "name", input.Name)
			checkMinLength(&result, "name", input.Name, minTitleLength)
			warnEmptyList(&result, "capabilities", input.Capabilities, "capabilities drive partner matching")
			return result
		},
		ValidateUpdate: func(input domain.UpdatePartner) domain.DataValidationResult {
			result := domain.NewValidationResult(nil, nil)
			if input.Name != nil {
				checkRequired(&result, "name", *input.Name)
				checkMinLength(&result, "name", *input.Name, minTitleLength)
			}
			return result
		},
		RequiredFields: []string{"name", "industry", "region", "capabilities"},
		Accurate: func(entity domain.Partner) bool {
			return len(entity.Capabilities) > 0
		},
		InaccuracyIssue: func(entity domain.Partner) string {
			return fmt.Sprintf("partner %q has no recorded capabilities", entity.Name)
		},
		SearchFields:  []string{"name", "industry", "region", "capabilities", "collaborationAreas"},
		KeywordFields: []string{"capabilities", "collaborationAreas", "name", "industry"},
	}
}
