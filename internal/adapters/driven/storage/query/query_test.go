package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

func testRecords() []domain.Competitor {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Competitor{
		{ID: "c-1", Name: "Acme Robotics", Industry: "Technology", MarketShare: 0.4, Products: []string{"arms", "grippers"}, CreatedAt: base},
		{ID: "c-2", Name: "FinServe", Industry: "Finance", MarketShare: 0.2, CreatedAt: base.Add(time.Hour)},
		{ID: "c-3", Name: "TechNova", Industry: "Technology", MarketShare: 0.1, CreatedAt: base.Add(2 * time.Hour)},
	}
}

func TestPage_ContainsFilter_CaseInsensitive(t *testing.T) {
	records := []domain.Competitor{
		{ID: "c-1", Name: "A", Industry: "Technology"},
		{ID: "c-2", Name: "B", Industry: "Finance"},
	}

	page, total, err := Page(records, []domain.QueryFilter{
		{Field: "industry", Operator: domain.OpContains, Value: "tech"},
	}, domain.PaginationParams{})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, page, 1)
	assert.Equal(t, "c-1", page[0].ID)
}

func TestPage_FiltersAreANDed(t *testing.T) {
	_, total, err := Page(testRecords(), []domain.QueryFilter{
		{Field: "industry", Operator: domain.OpEq, Value: "Technology"},
		{Field: "marketShare", Operator: domain.OpGte, Value: 0.3},
	}, domain.PaginationParams{})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestPage_NumericRangeOperators(t *testing.T) {
	_, total, err := Page(testRecords(), []domain.QueryFilter{
		{Field: "marketShare", Operator: domain.OpGt, Value: 0.1},
	}, domain.PaginationParams{})

	require.NoError(t, err)
	assert.Equal(t, 2, total)

	_, total, err = Page(testRecords(), []domain.QueryFilter{
		{Field: "marketShare", Operator: domain.OpLte, Value: 0.2},
	}, domain.PaginationParams{})

	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestPage_InFilter(t *testing.T) {
	_, total, err := Page(testRecords(), []domain.QueryFilter{
		{Field: "industry", Operator: domain.OpIn, Value: []string{"Finance", "Retail"}},
	}, domain.PaginationParams{})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestPage_ContainsOnStringSlice(t *testing.T) {
	page, total, err := Page(testRecords(), []domain.QueryFilter{
		{Field: "products", Operator: domain.OpContains, Value: "gripper"},
	}, domain.PaginationParams{})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "c-1", page[0].ID)
}

func TestPage_ContainsSkipsAbsentFields(t *testing.T) {
	// c-2 and c-3 carry no products; a contains filter on that field
	// must not match them.
	page, total, err := Page(testRecords(), []domain.QueryFilter{
		{Field: "products", Operator: domain.OpContains, Value: "arm"},
	}, domain.PaginationParams{})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, page, 1)
	assert.Equal(t, "c-1", page[0].ID)
}

func TestMatches_ContainsOnMissingField(t *testing.T) {
	fields := map[string]any{"name": "FinServe"}

	assert.False(t, Matches(fields, []domain.QueryFilter{
		{Field: "description", Operator: domain.OpContains, Value: "fin"},
	}))
}

func TestPage_UnsupportedOperatorIgnored(t *testing.T) {
	// contains on a numeric field does not apply; the filter is ignored.
	_, total, err := Page(testRecords(), []domain.QueryFilter{
		{Field: "marketShare", Operator: domain.OpContains, Value: "0.4"},
	}, domain.PaginationParams{})

	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestPage_SortAndPaginate(t *testing.T) {
	page, total, err := Page(testRecords(), nil, domain.PaginationParams{
		Page: 1, Limit: 2, SortBy: "createdAt", SortOrder: domain.SortDesc,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, "c-3", page[0].ID)
	assert.Equal(t, "c-2", page[1].ID)

	page, _, err = Page(testRecords(), nil, domain.PaginationParams{
		Page: 2, Limit: 2, SortBy: "createdAt", SortOrder: domain.SortDesc,
	})

	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "c-1", page[0].ID)
}

func TestPage_SortCreatedAt_MixedFractionalSeconds(t *testing.T) {
	// Timestamps with and without fractional digits must order as
	// instants, not as strings ("…00Z" sorts after "…00.5Z" as text).
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []domain.Competitor{
		{ID: "c-1", Name: "A", CreatedAt: base.Add(500 * time.Millisecond)},
		{ID: "c-2", Name: "B", CreatedAt: base},
		{ID: "c-3", Name: "C", CreatedAt: base.Add(time.Second)},
	}

	page, _, err := Page(records, nil, domain.PaginationParams{
		Page: 1, Limit: 10, SortBy: "createdAt", SortOrder: domain.SortAsc,
	})

	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, "c-2", page[0].ID)
	assert.Equal(t, "c-1", page[1].ID)
	assert.Equal(t, "c-3", page[2].ID)
}

func TestPage_SortByName_Asc(t *testing.T) {
	page, _, err := Page(testRecords(), nil, domain.PaginationParams{
		Page: 1, Limit: 10, SortBy: "name", SortOrder: domain.SortAsc,
	})

	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, "Acme Robotics", page[0].Name)
	assert.Equal(t, "TechNova", page[2].Name)
}

func TestPage_OffsetBeyondTotal(t *testing.T) {
	page, total, err := Page(testRecords(), nil, domain.PaginationParams{Page: 9, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, page)
}

func TestMatches_NeOperator(t *testing.T) {
	fields := map[string]any{"industry": "Finance"}

	assert.True(t, Matches(fields, []domain.QueryFilter{
		{Field: "industry", Operator: domain.OpNe, Value: "Technology"},
	}))
	assert.False(t, Matches(fields, []domain.QueryFilter{
		{Field: "industry", Operator: domain.OpNe, Value: "Finance"},
	}))
}

func TestMatches_EnumFilterValue(t *testing.T) {
	fields := map[string]any{"impact": "HIGH"}

	assert.True(t, Matches(fields, []domain.QueryFilter{
		{Field: "impact", Operator: domain.OpEq, Value: domain.ImpactHigh},
	}))
}
