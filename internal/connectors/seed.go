package connectors

import (
	"fmt"
	"time"

	"github.com/custodia-labs/stratkb/internal/core/domain"
	"github.com/custodia-labs/stratkb/internal/core/ports/driven"
	"github.com/custodia-labs/stratkb/internal/core/ports/driving"
)

// Ensure SeedConnector fulfils the contract.
var _ driving.Connector[domain.Seed, domain.CreateSeed, domain.UpdateSeed] = (*SeedConnector)(nil)

// SeedConnector provides access to the seed collection.
type SeedConnector struct {
	*Base[domain.Seed, domain.CreateSeed, domain.UpdateSeed]
}

// NewSeedConnector creates the seed connector.
func NewSeedConnector(store driven.RecordStore[domain.Seed]) *SeedConnector {
	return &SeedConnector{Base: NewBase(seedSpec(), store)}
}

func seedSpec() Spec[domain.Seed, domain.CreateSeed, domain.UpdateSeed] {
	return Spec[domain.Seed, domain.CreateSeed, domain.UpdateSeed]{
		Kind: "seeds",
		New: func(input domain.CreateSeed, id string, now time.Time) domain.Seed {
			return domain.Seed{
				ID:          id,
				Name:        input.Name,
				Description: input.Description,
				Category:    input.Category,
				Stage:       input.Stage,
				Potential:   input.Potential,
				Owner:       input.Owner,
				Tags:        input.Tags,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
		},
		Apply: func(entity domain.Seed, input domain.UpdateSeed, now time.Time) domain.Seed {
			assign(&entity.Name, input.Name)
			assign(&entity.Description, input.Description)
			assign(&entity.Category, input.Category)
			assign(&entity.Stage, input.Stage)
			assign(&entity.Potential, input.Potential)
			assign(&entity.Owner, input.Owner)
			assignList(&entity.Tags, input.Tags)
			entity.UpdatedAt = now
			return entity
		},
		ValidateCreate: func(input domain.CreateSeed) domain.DataValidationResult {
			result := domain.NewValidationResult(nil, nil)
			checkRequired(&result, "name", input.Name)
			checkMinLength(&result, "name", input.Name, minTitleLength)
			checkEnum(&result, "stage", input.Stage, domain.SeedStages)
			checkUnitRange(&result, "potential", input.Potential)
			if input.Owner == "" {
				result.AddWarning("owner", "no owner assigned", "seeds without an owner tend to stall")
			}
			return result
		},
		ValidateUpdate: func(input domain.UpdateSeed) domain.DataValidationResult {
			result := domain.NewValidationResult(nil, nil)
			if input.Name != nil {
				checkRequired(&result, "name", *input.Name)
				checkMinLength(&result, "name", *input.Name, minTitleLength)
			}
			if input.Stage != nil {
				checkEnum(&result, "stage", *input.Stage, domain.SeedStages)
			}
			if input.Potential != nil {
				checkUnitRange(&result, "potential", *input.Potential)
			}
			return result
		},
		RequiredFields: []string{"name", "description", "category", "stage", "owner"},
		Accurate: func(entity domain.Seed) bool {
			return entity.Owner != ""
		},
		InaccuracyIssue: func(entity domain.Seed) string {
			return fmt.Sprintf("seed %q has no owner assigned", entity.Name)
		},
		SearchFields:  []string{"name", "description", "category", "tags"},
		KeywordFields: []string{"tags", "name", "category"},
	}
}
