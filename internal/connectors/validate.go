package connectors

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

// Minimum length for titles and names across entity kinds.
const minTitleLength = 3

// checkRequired adds a REQUIRED_FIELD error when the value is blank.
func checkRequired(result *domain.DataValidationResult, field, value string) {
	if err := validation.Validate(value, validation.Required); err != nil {
		result.AddError(field, fmt.Sprintf("%s is required", field), domain.CodeRequiredField)
	}
}

// checkMinLength adds a TOO_SHORT error when a non-empty value is
// shorter than min runes. Blank values are left to checkRequired.
func checkMinLength(result *domain.DataValidationResult, field, value string, min int) {
	if value == "" {
		return
	}
	if err := validation.Validate(value, validation.RuneLength(min, 0)); err != nil {
		result.AddError(field, fmt.Sprintf("%s must be at least %d characters", field, min), domain.CodeTooShort)
	}
}

// checkUnitRange adds an OUT_OF_RANGE error when the value is outside
// [0,1].
func checkUnitRange(result *domain.DataValidationResult, field string, value float64) {
	if err := validation.Validate(value, validation.Min(0.0), validation.Max(1.0)); err != nil {
		result.AddError(field, fmt.Sprintf("%s must be between 0 and 1", field), domain.CodeOutOfRange)
	}
}

// checkIntRange adds an OUT_OF_RANGE error when the value is outside
// [min,max]. Zero is accepted as "not set".
func checkIntRange(result *domain.DataValidationResult, field string, value, min, max int) {
	if value == 0 {
		return
	}
	if err := validation.Validate(value, validation.Min(min), validation.Max(max)); err != nil {
		result.AddError(field, fmt.Sprintf("%s must be between %d and %d", field, min, max), domain.CodeOutOfRange)
	}
}

// checkEnum adds an INVALID_ENUM error when a non-empty value is not
// one of the allowed values. Presence is enforced separately where the
// field is mandatory.
func checkEnum[E ~string](result *domain.DataValidationResult, field string, value E, allowed []E) {
	if value == "" {
		return
	}
	candidates := make([]any, 0, len(allowed))
	for _, a := range allowed {
		candidates = append(candidates, a)
	}
	if err := validation.Validate(value, validation.In(candidates...)); err != nil {
		result.AddError(field, fmt.Sprintf("%s must be one of %v", field, allowed), domain.CodeInvalidEnum)
	}
}

// warnEmptyList adds an advisory warning for an empty sequence field.
func warnEmptyList(result *domain.DataValidationResult, field string, values []string, suggestion string) {
	if len(values) == 0 {
		result.AddWarning(field, fmt.Sprintf("%s is empty", field), suggestion)
	}
}
