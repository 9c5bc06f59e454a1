package domain

import "time"

// ValueTemplate is a reusable value-creation pattern.
type ValueTemplate struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Industry         string    `json:"industry"`
	ValueProposition string    `json:"valueProposition"`
	TargetSegment    string    `json:"targetSegment"`
	RevenueModel     string    `json:"revenueModel"`
	Examples         []string  `json:"examples"`
	Tags             []string  `json:"tags"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// CreateValueTemplate is the creation input.
type CreateValueTemplate struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Industry         string   `json:"industry"`
	ValueProposition string   `json:"valueProposition"`
	TargetSegment    string   `json:"targetSegment"`
	RevenueModel     string   `json:"revenueModel"`
	Examples         []string `json:"examples"`
	Tags             []string `json:"tags"`
}

// UpdateValueTemplate is a partial update; nil fields are left unchanged.
type UpdateValueTemplate struct {
	Name             *string  `json:"name,omitempty"`
	Description      *string  `json:"description,omitempty"`
	Industry         *string  `json:"industry,omitempty"`
	ValueProposition *string  `json:"valueProposition,omitempty"`
	TargetSegment    *string  `json:"targetSegment,omitempty"`
	RevenueModel     *string  `json:"revenueModel,omitempty"`
	Examples         []string `json:"examples,omitempty"`
	Tags             []string `json:"tags,omitempty"`
}
