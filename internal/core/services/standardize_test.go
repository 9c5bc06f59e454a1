package services

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

func TestStandardize_AppliesRules(t *testing.T) {
	record := map[string]any{
		"title":    "  Remote   Healthcare  ",
		"category": "Technology",
		"code":     "ab-12",
		"year":     2024,
	}
	rules := []StandardizationRule{
		{Field: "title", Action: ActionNormalize},
		{Field: "category", Action: ActionLowercase},
		{Field: "code", Action: ActionUppercase},
	}

	result := Standardize(record, rules)

	assert.Equal(t, "Remote Healthcare", result["title"])
	assert.Equal(t, "technology", result["category"])
	assert.Equal(t, "AB-12", result["code"])
	assert.Equal(t, 2024, result["year"])
	// Input record untouched
	assert.Equal(t, "  Remote   Healthcare  ", record["title"])
}

func TestStandardize_SkipsNonStringAndMissingFields(t *testing.T) {
	record := map[string]any{
		"confidence": 0.8,
		"tags":       []string{"A", "B"},
	}
	rules := []StandardizationRule{
		{Field: "confidence", Action: ActionLowercase},
		{Field: "tags", Action: ActionTrim},
		{Field: "absent", Action: ActionUppercase},
	}

	result := Standardize(record, rules)

	assert.Equal(t, 0.8, result["confidence"])
	assert.Equal(t, []string{"A", "B"}, result["tags"])
	assert.NotContains(t, result, "absent")
}

func TestStandardize_CustomRule(t *testing.T) {
	record := map[string]any{"title": "ai trends"}
	rules := []StandardizationRule{
		{Field: "title", Action: ActionCustom, Custom: func(s string) string {
			return "[draft] " + s
		}},
	}

	result := Standardize(record, rules)

	assert.Equal(t, "[draft] ai trends", result["title"])
}

func TestStandardize_BuiltinActionsAreIdempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	rules := []StandardizationRule{
		{Field: "title", Action: ActionNormalize},
		{Field: "category", Action: ActionLowercase},
		{Field: "code", Action: ActionUppercase},
		{Field: "owner", Action: ActionTrim},
	}

	properties.Property("standardize twice equals standardize once", prop.ForAll(
		func(title, category, code, owner string) bool {
			record := map[string]any{
				"title":    title,
				"category": category,
				"code":     code,
				"owner":    owner,
			}
			once := Standardize(record, rules)
			twice := Standardize(once, rules)
			return assert.ObjectsAreEqual(once, twice)
		},
		gen.AnyString(),
		gen.AnyString(),
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestValidateData_RequiredAndTypes(t *testing.T) {
	record := map[string]any{
		"title":      "",
		"confidence": "high",
		"sources":    []any{"report"},
	}

	result := ValidateData(record,
		[]string{"title", "description"},
		map[string]string{"confidence": "number", "sources": "array"})

	require.False(t, result.IsValid)
	require.Len(t, result.Errors, 3)

	codes := make(map[string]string)
	for _, e := range result.Errors {
		codes[e.Field] = e.Code
	}
	assert.Equal(t, domain.CodeRequiredField, codes["title"])
	assert.Equal(t, domain.CodeRequiredField, codes["description"])
	assert.Equal(t, domain.CodeTypeMismatch, codes["confidence"])
}

func TestValidateData_ValidRecord(t *testing.T) {
	record := map[string]any{
		"title":      "Ageing population",
		"confidence": 0.7,
		"active":     true,
		"sources":    []string{"UN report"},
		"meta":       map[string]any{"region": "EU"},
	}

	result := ValidateData(record,
		[]string{"title"},
		map[string]string{
			"title":      "string",
			"confidence": "number",
			"active":     "boolean",
			"sources":    "array",
			"meta":       "object",
		})

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestDetectDuplicates_GroupsByKeyFields(t *testing.T) {
	records := []map[string]any{
		{"title": "AI", "category": "tech", "id": "1"},
		{"title": "Ageing", "category": "society", "id": "2"},
		{"title": "AI", "category": "tech", "id": "3"},
		{"title": "AI", "category": "energy", "id": "4"},
	}

	report := DetectDuplicates(records, []string{"title", "category"})

	require.Len(t, report.Duplicates, 1)
	assert.Equal(t, "AI|tech", report.Duplicates[0].Key)
	require.Len(t, report.Duplicates[0].Records, 2)
	assert.Equal(t, "1", report.Duplicates[0].Records[0]["id"])
	assert.Equal(t, "3", report.Duplicates[0].Records[1]["id"])

	// Unique keeps first occurrences in input order.
	require.Len(t, report.Unique, 3)
	assert.Equal(t, "1", report.Unique[0]["id"])
	assert.Equal(t, "2", report.Unique[1]["id"])
	assert.Equal(t, "4", report.Unique[2]["id"])
}

func TestDetectDuplicates_NoDuplicates(t *testing.T) {
	records := []map[string]any{
		{"title": "A"},
		{"title": "B"},
	}

	report := DetectDuplicates(records, []string{"title"})

	assert.Empty(t, report.Duplicates)
	assert.Len(t, report.Unique, 2)
}
