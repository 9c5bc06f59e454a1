package domain

import "time"

// ImpactLevel grades how strongly a megatrend reshapes its environment.
type ImpactLevel string

const (
	// ImpactLow is a marginal shift.
	ImpactLow ImpactLevel = "LOW"
	// ImpactMedium is a noticeable shift.
	ImpactMedium ImpactLevel = "MEDIUM"
	// ImpactHigh is a market-defining shift.
	ImpactHigh ImpactLevel = "HIGH"
	// ImpactCritical is an existential shift.
	ImpactCritical ImpactLevel = "CRITICAL"
)

// ImpactLevels lists the valid values in ascending order.
var ImpactLevels = []ImpactLevel{ImpactLow, ImpactMedium, ImpactHigh, ImpactCritical}

// Weight maps the level to a score contribution in [0,1].
func (l ImpactLevel) Weight() float64 {
	switch l {
	case ImpactLow:
		return 0.25
	case ImpactMedium:
		return 0.5
	case ImpactHigh:
		return 0.75
	case ImpactCritical:
		return 1.0
	default:
		return 0
	}
}

// Megatrend is a long-horizon structural shift.
type Megatrend struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Impact      ImpactLevel `json:"impact"`
	Confidence  float64     `json:"confidence"`
	Timeframe   string      `json:"timeframe"`
	Keywords    []string    `json:"keywords"`
	Sources     []string    `json:"sources"`
	Regions     []string    `json:"regions"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// CreateMegatrend is the creation input: a Megatrend without identity
// or timestamps.
type CreateMegatrend struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Impact      ImpactLevel `json:"impact"`
	Confidence  float64     `json:"confidence"`
	Timeframe   string      `json:"timeframe"`
	Keywords    []string    `json:"keywords"`
	Sources     []string    `json:"sources"`
	Regions     []string    `json:"regions"`
}

// UpdateMegatrend is a partial update; nil fields are left unchanged.
type UpdateMegatrend struct {
	Title       *string      `json:"title,omitempty"`
	Description *string      `json:"description,omitempty"`
	Category    *string      `json:"category,omitempty"`
	Impact      *ImpactLevel `json:"impact,omitempty"`
	Confidence  *float64     `json:"confidence,omitempty"`
	Timeframe   *string      `json:"timeframe,omitempty"`
	Keywords    []string     `json:"keywords,omitempty"`
	Sources     []string     `json:"sources,omitempty"`
	Regions     []string     `json:"regions,omitempty"`
}
