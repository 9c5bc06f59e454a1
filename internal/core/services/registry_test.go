package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

// mockMetadataStore implements driven.MetadataStore for testing.
type mockMetadataStore struct {
	mu      sync.RWMutex
	sources map[string]domain.DataSourceMetadata
}

func newMockMetadataStore() *mockMetadataStore {
	return &mockMetadataStore{sources: make(map[string]domain.DataSourceMetadata)}
}

func (m *mockMetadataStore) Save(_ context.Context, source domain.DataSourceMetadata) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources[source.ID] = source
	return nil
}

func (m *mockMetadataStore) Get(_ context.Context, id string) (*domain.DataSourceMetadata, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	source, ok := m.sources[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &source, nil
}

func (m *mockMetadataStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sources[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.sources, id)
	return nil
}

func (m *mockMetadataStore) List(_ context.Context) ([]domain.DataSourceMetadata, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sources := make([]domain.DataSourceMetadata, 0, len(m.sources))
	for _, s := range m.sources {
		sources = append(sources, s)
	}
	return sources, nil
}

func TestRegistryService_Register_AssignsIdentity(t *testing.T) {
	svc := NewRegistryService(newMockMetadataStore())

	stored, err := svc.Register(context.Background(), domain.DataSourceMetadata{
		Name: "Strategy DB",
		Kind: domain.SourceKindDatabase,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, domain.SyncIdle, stored.SyncStatus)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, stored.CreatedAt, stored.UpdatedAt)

	fetched, err := svc.Get(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Strategy DB", fetched.Name)
}

func TestRegistryService_Register_RejectsMissingNameOrKind(t *testing.T) {
	svc := NewRegistryService(newMockMetadataStore())

	_, err := svc.Register(context.Background(), domain.DataSourceMetadata{Kind: domain.SourceKindAPI})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Register(context.Background(), domain.DataSourceMetadata{Name: "no kind"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistryService_Get_NotFound(t *testing.T) {
	svc := NewRegistryService(newMockMetadataStore())

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistryService_UpdateConfig_ReplacesMap(t *testing.T) {
	svc := NewRegistryService(newMockMetadataStore())
	ctx := context.Background()

	stored, err := svc.Register(ctx, domain.DataSourceMetadata{
		Name:   "CRM export",
		Kind:   domain.SourceKindFile,
		Config: map[string]string{"path": "/old.csv", "delimiter": ";"},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateConfig(ctx, stored.ID, map[string]string{"path": "/new.csv"})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"path": "/new.csv"}, updated.Config)
	assert.NotContains(t, updated.Config, "delimiter")
}

func TestRegistryService_UpdateSyncStatus_RecordsTimestamp(t *testing.T) {
	svc := NewRegistryService(newMockMetadataStore())
	ctx := context.Background()

	stored, err := svc.Register(ctx, domain.DataSourceMetadata{
		Name: "Trends API",
		Kind: domain.SourceKindAPI,
	})
	require.NoError(t, err)

	syncedAt := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	require.NoError(t, svc.UpdateSyncStatus(ctx, stored.ID, domain.SyncSuccess, syncedAt))

	fetched, err := svc.Get(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SyncSuccess, fetched.SyncStatus)
	assert.Equal(t, syncedAt, fetched.LastSyncAt)

	// A zero timestamp changes only the status.
	require.NoError(t, svc.UpdateSyncStatus(ctx, stored.ID, domain.SyncFailed, time.Time{}))
	fetched, err = svc.Get(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SyncFailed, fetched.SyncStatus)
	assert.Equal(t, syncedAt, fetched.LastSyncAt)
}

func TestRegistryService_Delete(t *testing.T) {
	svc := NewRegistryService(newMockMetadataStore())
	ctx := context.Background()

	stored, err := svc.Register(ctx, domain.DataSourceMetadata{
		Name: "temp", Kind: domain.SourceKindManual,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, stored.ID))
	assert.ErrorIs(t, svc.Delete(ctx, stored.ID), domain.ErrNotFound)
}

func TestRegistryService_SchemaCatalog(t *testing.T) {
	svc := NewRegistryService(newMockMetadataStore())

	catalog, err := svc.SchemaCatalog(domain.SourceKindDatabase)
	require.NoError(t, err)
	require.Contains(t, catalog, "megatrends")

	var foundTitle bool
	for _, field := range catalog["megatrends"] {
		if field.Name == "title" {
			foundTitle = true
			assert.True(t, field.Required)
		}
	}
	assert.True(t, foundTitle)

	_, err = svc.SchemaCatalog(domain.SourceKind("BOGUS"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestRegistryService_Stats_RecencyBuckets(t *testing.T) {
	store := newMockMetadataStore()
	svc := NewRegistryService(store)
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	seed := []domain.DataSourceMetadata{
		{ID: "a", Name: "a", Kind: domain.SourceKindDatabase, SyncStatus: domain.SyncSuccess, LastSyncAt: now.Add(-2 * time.Hour)},
		{ID: "b", Name: "b", Kind: domain.SourceKindDatabase, SyncStatus: domain.SyncSuccess, LastSyncAt: now.Add(-3 * 24 * time.Hour)},
		{ID: "c", Name: "c", Kind: domain.SourceKindAPI, SyncStatus: domain.SyncFailed, LastSyncAt: now.Add(-10 * 24 * time.Hour)},
		{ID: "d", Name: "d", Kind: domain.SourceKindManual, SyncStatus: domain.SyncIdle},
	}
	for _, s := range seed {
		require.NoError(t, store.Save(ctx, s))
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.ByKind[domain.SourceKindDatabase])
	assert.Equal(t, 1, stats.ByKind[domain.SourceKindAPI])
	assert.Equal(t, 2, stats.ByStatus[domain.SyncSuccess])
	assert.Equal(t, 1, stats.SyncedLast24h)
	assert.Equal(t, 2, stats.SyncedLast7d)
	assert.Equal(t, 1, stats.NeverSynced)
}
