package domain

import "time"

// ValidationLevel is the evidence maturity behind a hidden need,
// ordered HYPOTHESIS < OBSERVED < VALIDATED < PROVEN.
type ValidationLevel string

const (
	// LevelHypothesis is an unverified assumption.
	LevelHypothesis ValidationLevel = "HYPOTHESIS"
	// LevelObserved has anecdotal observations behind it.
	LevelObserved ValidationLevel = "OBSERVED"
	// LevelValidated has structured validation behind it.
	LevelValidated ValidationLevel = "VALIDATED"
	// LevelProven is confirmed in the market.
	LevelProven ValidationLevel = "PROVEN"
)

// ValidationLevels lists the valid values in ascending order.
var ValidationLevels = []ValidationLevel{LevelHypothesis, LevelObserved, LevelValidated, LevelProven}

// Rank returns the level's position in the maturity order, starting at 0.
// Unknown levels rank below HYPOTHESIS.
func (l ValidationLevel) Rank() int {
	for i, level := range ValidationLevels {
		if l == level {
			return i
		}
	}
	return -1
}

// Weight maps the level to a score contribution in [0,1].
func (l ValidationLevel) Weight() float64 {
	switch l {
	case LevelHypothesis:
		return 0.25
	case LevelObserved:
		return 0.5
	case LevelValidated:
		return 0.75
	case LevelProven:
		return 1.0
	default:
		return 0
	}
}

// HiddenNeed documents the gap between a stated need and its
// underlying driver.
type HiddenNeed struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	SurfaceNeed     string          `json:"surfaceNeed"`
	HiddenDriver    string          `json:"hiddenDriver"`
	Segment         string          `json:"segment"`
	ValidationLevel ValidationLevel `json:"validationLevel"`
	Evidence        []string        `json:"evidence"`
	Keywords        []string        `json:"keywords"`
	Confidence      float64         `json:"confidence"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// CreateHiddenNeed is the creation input.
type CreateHiddenNeed struct {
	Title           string          `json:"title"`
	SurfaceNeed     string          `json:"surfaceNeed"`
	HiddenDriver    string          `json:"hiddenDriver"`
	Segment         string          `json:"segment"`
	ValidationLevel ValidationLevel `json:"validationLevel"`
	Evidence        []string        `json:"evidence"`
	Keywords        []string        `json:"keywords"`
	Confidence      float64         `json:"confidence"`
}

// UpdateHiddenNeed is a partial update; nil fields are left unchanged.
type UpdateHiddenNeed struct {
	Title           *string          `json:"title,omitempty"`
	SurfaceNeed     *string          `json:"surfaceNeed,omitempty"`
	HiddenDriver    *string          `json:"hiddenDriver,omitempty"`
	Segment         *string          `json:"segment,omitempty"`
	ValidationLevel *ValidationLevel `json:"validationLevel,omitempty"`
	Evidence        []string         `json:"evidence,omitempty"`
	Keywords        []string         `json:"keywords,omitempty"`
	Confidence      *float64         `json:"confidence,omitempty"`
}
