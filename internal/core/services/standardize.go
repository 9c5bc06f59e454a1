package services

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

// StandardizationAction names a per-field standardization rule.
type StandardizationAction string

const (
	// ActionTrim strips leading and trailing whitespace.
	ActionTrim StandardizationAction = "trim"
	// ActionLowercase lowercases the value.
	ActionLowercase StandardizationAction = "lowercase"
	// ActionUppercase uppercases the value.
	ActionUppercase StandardizationAction = "uppercase"
	// ActionNormalize applies Unicode NFKC folding and collapses
	// internal whitespace.
	ActionNormalize StandardizationAction = "normalize"
	// ActionCustom applies the rule's Custom function.
	ActionCustom StandardizationAction = "custom"
)

// StandardizationRule maps one field to an action.
type StandardizationRule struct {
	// Field is the record field the rule applies to.
	Field string

	// Action selects the transformation.
	Action StandardizationAction

	// Custom is the transformation for ActionCustom; ignored otherwise.
	Custom func(string) string
}

// Standardize applies the rules to a record's string fields and
// returns a new record. Non-string fields and fields without a
// matching rule pass through unchanged.
//
// For the built-in actions the function is idempotent: applying it
// twice yields the same result as once. Custom rules own their own
// idempotence.
func Standardize(record map[string]any, rules []StandardizationRule) map[string]any {
	result := make(map[string]any, len(record))
	for field, value := range record {
		result[field] = value
	}

	for _, rule := range rules {
		value, ok := result[rule.Field]
		if !ok {
			continue
		}
		str, ok := value.(string)
		if !ok {
			continue
		}
		result[rule.Field] = applyAction(str, rule)
	}
	return result
}

func applyAction(value string, rule StandardizationRule) string {
	switch rule.Action {
	case ActionTrim:
		return strings.TrimSpace(value)
	case ActionLowercase:
		return strings.ToLower(value)
	case ActionUppercase:
		return strings.ToUpper(value)
	case ActionNormalize:
		folded := norm.NFKC.String(value)
		return strings.Join(strings.Fields(folded), " ")
	case ActionCustom:
		if rule.Custom != nil {
			return rule.Custom(value)
		}
		return value
	default:
		return value
	}
}

// ValidateData checks a raw record against a required-field list and
// optional per-field type expectations. It reports a REQUIRED_FIELD
// error for each missing, empty, or nil required field, and a
// TYPE_MISMATCH error when a present field's runtime category differs
// from the declared one.
//
// Types are coarse categories: "string", "number", "boolean", "array",
// "object". Sequences are a distinct category from scalars.
func ValidateData(record map[string]any, requiredFields []string, fieldTypes map[string]string) domain.DataValidationResult {
	result := domain.NewValidationResult(nil, nil)

	for _, field := range requiredFields {
		value, ok := record[field]
		if !ok || isEmptyValue(value) {
			result.AddError(field, fmt.Sprintf("%s is required", field), domain.CodeRequiredField)
		}
	}

	for field, expected := range fieldTypes {
		value, ok := record[field]
		if !ok || value == nil {
			continue
		}
		actual := valueCategory(value)
		if actual != expected {
			result.AddError(field,
				fmt.Sprintf("%s should be %s but is %s", field, expected, actual),
				domain.CodeTypeMismatch)
		}
	}

	return result
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	default:
		return false
	}
}

func valueCategory(value any) string {
	switch value.(type) {
	case string:
		return "string"
	case float64, float32, int, int32, int64:
		return "number"
	case bool:
		return "boolean"
	case []any, []string, []float64, []int:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}

// DuplicateGroup is one set of records sharing a duplicate key.
type DuplicateGroup struct {
	// Key is the pipe-joined concatenation of the key-field values.
	Key string

	// Records are the group members in input order.
	Records []map[string]any
}

// DuplicateReport is the outcome of duplicate detection.
type DuplicateReport struct {
	// Duplicates lists groups with more than one member.
	Duplicates []DuplicateGroup

	// Unique lists first occurrences in input order.
	Unique []map[string]any
}

// DetectDuplicates groups records by the order-preserving, pipe-joined
// concatenation of their key-field values. Groups with more than one
// member are reported as duplicates; Unique keeps the first occurrence
// of every key in input order.
func DetectDuplicates(records []map[string]any, keyFields []string) DuplicateReport {
	groups := make(map[string][]map[string]any)
	var keyOrder []string

	for _, record := range records {
		parts := make([]string, 0, len(keyFields))
		for _, field := range keyFields {
			parts = append(parts, fmt.Sprint(record[field]))
		}
		key := strings.Join(parts, "|")

		if _, seen := groups[key]; !seen {
			keyOrder = append(keyOrder, key)
		}
		groups[key] = append(groups[key], record)
	}

	report := DuplicateReport{}
	for _, key := range keyOrder {
		members := groups[key]
		report.Unique = append(report.Unique, members[0])
		if len(members) > 1 {
			report.Duplicates = append(report.Duplicates, DuplicateGroup{Key: key, Records: members})
		}
	}
	return report
}
