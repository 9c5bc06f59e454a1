package domain

import "time"

// SeedStage is the maturity of an internal seed idea.
type SeedStage string

const (
	// StageIdea is a raw idea.
	StageIdea SeedStage = "IDEA"
	// StageExploring is under active investigation.
	StageExploring SeedStage = "EXPLORING"
	// StageIncubating has a dedicated team.
	StageIncubating SeedStage = "INCUBATING"
	// StageLaunched is in the market.
	StageLaunched SeedStage = "LAUNCHED"
)

// SeedStages lists the valid values in ascending maturity order.
var SeedStages = []SeedStage{StageIdea, StageExploring, StageIncubating, StageLaunched}

// Seed is an internal capability or idea that could grow into a business.
type Seed struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Stage       SeedStage `json:"stage"`
	Potential   float64   `json:"potential"`
	Owner       string    `json:"owner"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateSeed is the creation input.
type CreateSeed struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Stage       SeedStage `json:"stage"`
	Potential   float64   `json:"potential"`
	Owner       string    `json:"owner"`
	Tags        []string  `json:"tags"`
}

// UpdateSeed is a partial update; nil fields are left unchanged.
type UpdateSeed struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Stage       *SeedStage `json:"stage,omitempty"`
	Potential   *float64   `json:"potential,omitempty"`
	Owner       *string    `json:"owner,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}
