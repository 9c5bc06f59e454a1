package connectors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

func TestSet_Kinds_StableOrder(t *testing.T) {
	set := newMemorySet()

	assert.Equal(t, []string{
		"megatrends", "value-templates", "hidden-needs", "success-cases",
		"seeds", "partners", "trends", "competitors",
	}, set.Kinds())
}

func TestSet_SearchKind_ErasesRows(t *testing.T) {
	set := newMemorySet()
	ctx := context.Background()

	created, err := set.Competitors.Create(ctx, domain.CreateCompetitor{
		Name:     "Acme Robotics",
		Industry: "manufacturing",
	})
	require.NoError(t, err)

	hits, err := set.SearchKind(ctx, "competitors", "acme", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, created.ID, hits[0].ID)
	assert.Equal(t, "competitors", hits[0].Kind)
	// Competitors carry a name, not a title; the summary falls back.
	assert.Equal(t, "Acme Robotics", hits[0].Title)
}

func TestSet_SearchKind_UnknownKind(t *testing.T) {
	set := newMemorySet()

	_, err := set.SearchKind(context.Background(), "documents", "x", 10)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestSet_SearchAll_SpansKinds(t *testing.T) {
	set := newMemorySet()
	ctx := context.Background()

	_, err := set.Megatrends.Create(ctx, domain.CreateMegatrend{Title: "Hydrogen economy"})
	require.NoError(t, err)
	_, err = set.Seeds.Create(ctx, domain.CreateSeed{Name: "Hydrogen storage pilot"})
	require.NoError(t, err)

	hits, err := set.SearchAll(ctx, "hydrogen", 10)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	// Stable kind order: megatrends before seeds.
	assert.Equal(t, "megatrends", hits[0].Kind)
	assert.Equal(t, "seeds", hits[1].Kind)
}

func TestSet_AnalyzeKind_Dispatch(t *testing.T) {
	set := newMemorySet()
	ctx := context.Background()

	created, err := set.Competitors.Create(ctx, domain.CreateCompetitor{
		Name:        "Acme",
		Industry:    "robotics",
		MarketShare: 0.4,
		Strengths:   []string{"distribution"},
	})
	require.NoError(t, err)

	result, err := set.AnalyzeKind(ctx, "competitors", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "competitors", result.EntityKind)
	assert.Equal(t, created.ID, result.EntityID)
}

func TestSet_AnalyzeKind_UnsupportedKind(t *testing.T) {
	set := newMemorySet()

	_, err := set.AnalyzeKind(context.Background(), "seeds", "any-id")
	assert.ErrorIs(t, err, domain.ErrAnalysisUnsupported)
}

func TestSet_GetKind_ErasesRecord(t *testing.T) {
	set := newMemorySet()
	ctx := context.Background()

	created, err := set.Seeds.Create(ctx, domain.CreateSeed{Name: "Solid-state battery"})
	require.NoError(t, err)

	fields, err := set.GetKind(ctx, "seeds", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fields["id"])
	assert.Equal(t, "Solid-state battery", fields["name"])
}

func TestSet_GetKind_UnknownKind(t *testing.T) {
	set := newMemorySet()

	_, err := set.GetKind(context.Background(), "documents", "any-id")
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestSet_GetKind_NotFound(t *testing.T) {
	set := newMemorySet()

	_, err := set.GetKind(context.Background(), "seeds", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSet_ListKind_Paginates(t *testing.T) {
	set := newMemorySet()
	ctx := context.Background()

	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		_, err := set.Seeds.Create(ctx, domain.CreateSeed{Name: name})
		require.NoError(t, err)
	}

	page, err := set.ListKind(ctx, "seeds", nil, domain.PaginationParams{
		Page: 1, Limit: 2, SortBy: "name", SortOrder: domain.SortAsc,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "Alpha", page.Data[0]["name"])
	assert.Equal(t, "Beta", page.Data[1]["name"])
}

func TestSet_ListKind_UnknownKind(t *testing.T) {
	set := newMemorySet()

	_, err := set.ListKind(context.Background(), "documents", nil, domain.PaginationParams{})
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}
