package domain

import "time"

// Competitor is a rival player in the same market.
type Competitor struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Industry    string    `json:"industry"`
	Description string    `json:"description"`
	Strengths   []string  `json:"strengths"`
	Weaknesses  []string  `json:"weaknesses"`
	MarketShare float64   `json:"marketShare"`
	Products    []string  `json:"products"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateCompetitor is the creation input.
type CreateCompetitor struct {
	Name        string   `json:"name"`
	Industry    string   `json:"industry"`
	Description string   `json:"description"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	MarketShare float64  `json:"marketShare"`
	Products    []string `json:"products"`
}

// UpdateCompetitor is a partial update; nil fields are left unchanged.
type UpdateCompetitor struct {
	Name        *string  `json:"name,omitempty"`
	Industry    *string  `json:"industry,omitempty"`
	Description *string  `json:"description,omitempty"`
	Strengths   []string `json:"strengths,omitempty"`
	Weaknesses  []string `json:"weaknesses,omitempty"`
	MarketShare *float64 `json:"marketShare,omitempty"`
	Products    []string `json:"products,omitempty"`
}
