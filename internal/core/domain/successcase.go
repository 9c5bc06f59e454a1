package domain

import "time"

// SuccessCase is a documented win worth learning from.
type SuccessCase struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Company    string    `json:"company"`
	Industry   string    `json:"industry"`
	Summary    string    `json:"summary"`
	Outcome    string    `json:"outcome"`
	KeyFactors []string  `json:"keyFactors"`
	Year       int       `json:"year"`
	Sources    []string  `json:"sources"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreateSuccessCase is the creation input.
type CreateSuccessCase struct {
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Industry   string   `json:"industry"`
	Summary    string   `json:"summary"`
	Outcome    string   `json:"outcome"`
	KeyFactors []string `json:"keyFactors"`
	Year       int      `json:"year"`
	Sources    []string `json:"sources"`
}

// UpdateSuccessCase is a partial update; nil fields are left unchanged.
type UpdateSuccessCase struct {
	Title      *string  `json:"title,omitempty"`
	Company    *string  `json:"company,omitempty"`
	Industry   *string  `json:"industry,omitempty"`
	Summary    *string  `json:"summary,omitempty"`
	Outcome    *string  `json:"outcome,omitempty"`
	KeyFactors []string `json:"keyFactors,omitempty"`
	Year       *int     `json:"year,omitempty"`
	Sources    []string `json:"sources,omitempty"`
}
