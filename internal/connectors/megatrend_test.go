package connectors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

func TestMegatrendConnector_ValidateCreate_ConfidenceOutOfRange(t *testing.T) {
	set := newMemorySet()

	result := set.Megatrends.ValidateCreate(domain.CreateMegatrend{
		Title:      "Ageing Population",
		Impact:     domain.ImpactHigh,
		Confidence: 1.5,
	})

	assert.False(t, result.IsValid)
	require.NotEmpty(t, result.Errors)
	found := false
	for _, e := range result.Errors {
		if e.Field == "confidence" {
			found = true
			assert.Equal(t, domain.CodeOutOfRange, e.Code)
		}
	}
	assert.True(t, found, "expected an error on field confidence")
}

func TestMegatrendConnector_ValidateCreate_MissingTitle(t *testing.T) {
	set := newMemorySet()

	result := set.Megatrends.ValidateCreate(domain.CreateMegatrend{Impact: domain.ImpactLow})

	assert.False(t, result.IsValid)
	assert.Equal(t, "title", result.Errors[0].Field)
	assert.Equal(t, domain.CodeRequiredField, result.Errors[0].Code)
}

func TestMegatrendConnector_ValidateCreate_WarningsDoNotBlock(t *testing.T) {
	set := newMemorySet()

	result := set.Megatrends.ValidateCreate(domain.CreateMegatrend{
		Title:      "Ageing Population",
		Impact:     domain.ImpactHigh,
		Confidence: 0.8,
	})

	assert.True(t, result.IsValid)
	assert.NotEmpty(t, result.Warnings) // sources and keywords are empty
}

func TestMegatrendConnector_ValidateUpdate_IgnoresAbsentFields(t *testing.T) {
	set := newMemorySet()

	result := set.Megatrends.ValidateUpdate(domain.UpdateMegatrend{})

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestMegatrendConnector_ValidateUpdate_InvalidEnum(t *testing.T) {
	set := newMemorySet()

	bogus := domain.ImpactLevel("EXTREME")
	result := set.Megatrends.ValidateUpdate(domain.UpdateMegatrend{Impact: &bogus})

	assert.False(t, result.IsValid)
	assert.Equal(t, domain.CodeInvalidEnum, result.Errors[0].Code)
}

func TestMegatrendConnector_Analyze_AppendsHistory(t *testing.T) {
	set := newMemorySet()
	ctx := context.Background()

	created, err := set.Megatrends.Create(ctx, domain.CreateMegatrend{
		Title: "Electrification", Impact: domain.ImpactCritical, Confidence: 0.9,
	})
	require.NoError(t, err)

	first, err := set.Megatrends.Analyze(ctx, created.ID)
	require.NoError(t, err)
	second, err := set.Megatrends.Analyze(ctx, created.ID)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, domain.SeverityCritical, first.Severity)
	assert.Equal(t, first.Score, second.Score)
}

func TestMegatrendConnector_Analyze_NotFound(t *testing.T) {
	set := newMemorySet()

	_, err := set.Megatrends.Analyze(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMegatrendConnector_AnalyzeMany_OrderMatchesInput(t *testing.T) {
	set := newMemorySet()
	ctx := context.Background()

	a, err := set.Megatrends.Create(ctx, domain.CreateMegatrend{Title: "First", Impact: domain.ImpactLow})
	require.NoError(t, err)
	b, err := set.Megatrends.Create(ctx, domain.CreateMegatrend{Title: "Second", Impact: domain.ImpactHigh})
	require.NoError(t, err)

	results, err := set.Megatrends.AnalyzeMany(ctx, []string{b.ID, a.ID})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Second", results[0].EntityName)
	assert.Equal(t, "First", results[1].EntityName)
}

func TestMegatrendConnector_AnalyzeMany_FailFast(t *testing.T) {
	set := newMemorySet()
	ctx := context.Background()

	created, err := set.Megatrends.Create(ctx, domain.CreateMegatrend{Title: "Only", Impact: domain.ImpactLow})
	require.NoError(t, err)

	results, err := set.Megatrends.AnalyzeMany(ctx, []string{created.ID, "missing"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, results)
}

func TestMegatrendConnector_Related_SharedCategoryOrKeyword(t *testing.T) {
	set := newMemorySet()
	ctx := context.Background()

	subject, err := set.Megatrends.Create(ctx, domain.CreateMegatrend{
		Title: "Urbanisation", Category: "Society", Keywords: []string{"cities"},
	})
	require.NoError(t, err)
	_, err = set.Megatrends.Create(ctx, domain.CreateMegatrend{
		Title: "Megacities", Category: "Society",
	})
	require.NoError(t, err)
	_, err = set.Megatrends.Create(ctx, domain.CreateMegatrend{
		Title: "Smart Infrastructure", Category: "Technology", Keywords: []string{"Cities"},
	})
	require.NoError(t, err)
	_, err = set.Megatrends.Create(ctx, domain.CreateMegatrend{
		Title: "Deep Sea Mining", Category: "Resources",
	})
	require.NoError(t, err)

	relatedTrends, err := set.Megatrends.Related(ctx, subject.ID, 0)

	require.NoError(t, err)
	require.Len(t, relatedTrends, 2)
	for _, trend := range relatedTrends {
		assert.NotEqual(t, subject.ID, trend.ID, "related must exclude the subject")
	}
}
