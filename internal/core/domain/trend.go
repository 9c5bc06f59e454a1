package domain

import "time"

// Trend is a short-term movement, optionally linked to a megatrend.
// The link is a foreign-key string resolved on demand via the megatrend
// connector, never an embedded object.
type Trend struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	MegatrendID string    `json:"megatrendId"`
	Momentum    float64   `json:"momentum"`
	Keywords    []string  `json:"keywords"`
	Sources     []string  `json:"sources"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateTrend is the creation input.
type CreateTrend struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	MegatrendID string   `json:"megatrendId"`
	Momentum    float64  `json:"momentum"`
	Keywords    []string `json:"keywords"`
	Sources     []string `json:"sources"`
}

// UpdateTrend is a partial update; nil fields are left unchanged.
type UpdateTrend struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	MegatrendID *string  `json:"megatrendId,omitempty"`
	Momentum    *float64 `json:"momentum,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Sources     []string `json:"sources,omitempty"`
}
