package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/stratkb/internal/connectors"
	"github.com/custodia-labs/stratkb/internal/core/domain"
)

// mockSearcher is a mock implementation of Searcher.
type mockSearcher struct {
	kinds     []string
	summaries []connectors.Summary
	err       error

	lastKind  string
	lastQuery string
	lastLimit int
}

func (m *mockSearcher) Kinds() []string {
	return m.kinds
}

func (m *mockSearcher) SearchKind(_ context.Context, kind, query string, limit int) ([]connectors.Summary, error) {
	m.lastKind = kind
	m.lastQuery = query
	m.lastLimit = limit
	return m.summaries, m.err
}

func (m *mockSearcher) SearchAll(_ context.Context, query string, limit int) ([]connectors.Summary, error) {
	m.lastKind = ""
	m.lastQuery = query
	m.lastLimit = limit
	return m.summaries, m.err
}

// mockQualityService is a mock implementation of driving.QualityService.
type mockQualityService struct {
	snapshots []domain.QualitySnapshot
	dashboard *domain.QualityDashboard
	err       error
}

func (m *mockQualityService) RunQualityCheck(_ context.Context) ([]domain.QualitySnapshot, error) {
	return m.snapshots, m.err
}

func (m *mockQualityService) Dashboard(_ context.Context) (*domain.QualityDashboard, error) {
	return m.dashboard, m.err
}

// mockRegistry is a mock implementation of driving.SourceRegistry.
type mockRegistry struct {
	sources []domain.DataSourceMetadata
	source  *domain.DataSourceMetadata
	catalog map[string][]domain.SchemaField
	stats   *domain.SourceStats
	err     error
}

func (m *mockRegistry) Register(_ context.Context, _ domain.DataSourceMetadata) (*domain.DataSourceMetadata, error) {
	return m.source, m.err
}

func (m *mockRegistry) Get(_ context.Context, _ string) (*domain.DataSourceMetadata, error) {
	return m.source, m.err
}

func (m *mockRegistry) List(_ context.Context) ([]domain.DataSourceMetadata, error) {
	return m.sources, m.err
}

func (m *mockRegistry) UpdateConfig(_ context.Context, _ string, _ map[string]string) (*domain.DataSourceMetadata, error) {
	return m.source, m.err
}

func (m *mockRegistry) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockRegistry) UpdateSyncStatus(_ context.Context, _ string, _ domain.SyncStatus, _ time.Time) error {
	return m.err
}

func (m *mockRegistry) SchemaCatalog(_ domain.SourceKind) (map[string][]domain.SchemaField, error) {
	return m.catalog, m.err
}

func (m *mockRegistry) Stats(_ context.Context) (*domain.SourceStats, error) {
	return m.stats, m.err
}
