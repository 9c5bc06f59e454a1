package domain

// Validation error codes shared across entity kinds.
const (
	CodeRequiredField = "REQUIRED_FIELD"
	CodeTypeMismatch  = "TYPE_MISMATCH"
	CodeOutOfRange    = "OUT_OF_RANGE"
	CodeTooShort      = "TOO_SHORT"
	CodeInvalidEnum   = "INVALID_ENUM"
)

// ValidationError describes a single failed validation rule.
type ValidationError struct {
	// Field is the JSON field name the rule applies to.
	Field string

	// Message is a human-readable description of the failure.
	Message string

	// Code classifies the failure (REQUIRED_FIELD, OUT_OF_RANGE, ...).
	Code string
}

// ValidationWarning is advisory only and never blocks validity.
type ValidationWarning struct {
	// Field is the JSON field name the warning applies to.
	Field string

	// Message describes the concern.
	Message string

	// Suggestion optionally describes how to improve the record.
	Suggestion string
}

// DataValidationResult is the value-returning outcome of validation.
// Validation never surfaces as an error; callers check IsValid.
type DataValidationResult struct {
	// IsValid is true exactly when Errors is empty.
	IsValid bool

	// Errors are the rule failures that make the data invalid.
	Errors []ValidationError

	// Warnings are advisory findings that do not affect validity.
	Warnings []ValidationWarning
}

// NewValidationResult builds a result and derives IsValid from the
// error list, preserving the IsValid == (Errors empty) invariant.
func NewValidationResult(errs []ValidationError, warnings []ValidationWarning) DataValidationResult {
	return DataValidationResult{
		IsValid:  len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}

// AddError appends a rule failure and marks the result invalid.
func (r *DataValidationResult) AddError(field, message, code string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message, Code: code})
	r.IsValid = false
}

// AddWarning appends an advisory finding. Validity is unchanged.
func (r *DataValidationResult) AddWarning(field, message, suggestion string) {
	r.Warnings = append(r.Warnings, ValidationWarning{Field: field, Message: message, Suggestion: suggestion})
}
