package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/stratkb/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/stratkb/internal/adapters/driven/storage/query"
	"github.com/custodia-labs/stratkb/internal/core/domain"
	"github.com/custodia-labs/stratkb/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to
// all driven store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.stratkb/data/stratkb.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".stratkb", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "stratkb.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// MetadataStore returns a MetadataStore interface backed by this store.
func (s *Store) MetadataStore() driven.MetadataStore {
	return &metadataStore{store: s}
}

// QualityStore returns a QualityStore interface backed by this store.
func (s *Store) QualityStore() driven.QualityStore {
	return &qualityStore{store: s}
}

// AnalysisStore returns an AnalysisStore interface backed by this store.
func (s *Store) AnalysisStore() driven.AnalysisStore {
	return &analysisStore{store: s}
}

// SchedulerStore returns a SchedulerStore interface backed by this store.
func (s *Store) SchedulerStore() driven.SchedulerStore {
	return &schedulerStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Record Store ====================

// Ensure RecordStore implements the interface.
var _ driven.RecordStore[domain.Megatrend] = (*RecordStore[domain.Megatrend])(nil)

// RecordStore persists one entity collection as JSON payloads keyed by
// collection and ID.
type RecordStore[T any] struct {
	store      *Store
	collection string
}

// NewRecordStore creates a record store bound to one collection.
func NewRecordStore[T any](store *Store, collection string) *RecordStore[T] {
	return &RecordStore[T]{store: store, collection: collection}
}

// Get retrieves a record by ID.
func (s *RecordStore[T]) Get(ctx context.Context, id string) (*T, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT payload FROM records WHERE collection = ? AND id = ?
	`, s.collection, id)

	var payload string
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning record: %w", err)
	}

	var record T
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, fmt.Errorf("unmarshaling record: %w", err)
	}
	return &record, nil
}

// Find returns one page of records matching the filters. Predicate and
// sort semantics are shared with the memory store via the query package.
func (s *RecordStore[T]) Find(ctx context.Context, filters []domain.QueryFilter, params domain.PaginationParams) ([]T, int, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, 0, err
	}
	return query.Page(all, filters, params)
}

// All returns every record in the collection.
func (s *RecordStore[T]) All(ctx context.Context) ([]T, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT payload FROM records WHERE collection = ?
	`, s.collection)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []T //nolint:prealloc // size unknown from query
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		var record T
		if err := json.Unmarshal([]byte(payload), &record); err != nil {
			return nil, fmt.Errorf("unmarshaling record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}

	return records, nil
}

// Count returns the number of records in the collection.
func (s *RecordStore[T]) Count(ctx context.Context) (int, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM records WHERE collection = ?
	`, s.collection)

	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return count, nil
}

// Insert persists a new record.
func (s *RecordStore[T]) Insert(ctx context.Context, id string, record T) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshalling record: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO records (collection, id, payload) VALUES (?, ?, ?)
	`, s.collection, id, string(payload))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("inserting record: %w", err)
	}
	return nil
}

// Update replaces an existing record.
func (s *RecordStore[T]) Update(ctx context.Context, id string, record T) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshalling record: %w", err)
	}

	result, err := s.store.db.ExecContext(ctx, `
		UPDATE records SET payload = ?, updated_at = CURRENT_TIMESTAMP
		WHERE collection = ? AND id = ?
	`, string(payload), s.collection, id)
	if err != nil {
		return fmt.Errorf("updating record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a record.
func (s *RecordStore[T]) Delete(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, `
		DELETE FROM records WHERE collection = ? AND id = ?
	`, s.collection, id)
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// isUniqueViolation reports whether an error is a primary key or unique
// constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// ==================== Metadata Store ====================

// metadataStore implements driven.MetadataStore.
type metadataStore struct {
	store *Store
}

var _ driven.MetadataStore = (*metadataStore)(nil)

// Save stores or updates a source's metadata.
func (s *metadataStore) Save(ctx context.Context, source domain.DataSourceMetadata) error {
	configJSON, err := json.Marshal(source.Config)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	schemaJSON, err := json.Marshal(source.Schema)
	if err != nil {
		return fmt.Errorf("marshalling schema: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO data_sources (id, name, kind, config, last_sync_at, sync_status, schema_fields, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			kind = excluded.kind,
			config = excluded.config,
			last_sync_at = excluded.last_sync_at,
			sync_status = excluded.sync_status,
			schema_fields = excluded.schema_fields,
			updated_at = excluded.updated_at
	`, source.ID, source.Name, string(source.Kind), string(configJSON),
		formatNullableTime(source.LastSyncAt), string(source.SyncStatus),
		string(schemaJSON), source.CreatedAt, source.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving data source: %w", err)
	}
	return nil
}

// Get retrieves a source by ID.
func (s *metadataStore) Get(ctx context.Context, id string) (*domain.DataSourceMetadata, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, kind, config, last_sync_at, sync_status, schema_fields, created_at, updated_at
		FROM data_sources WHERE id = ?
	`, id)

	source, err := scanDataSource(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return source, nil
}

// Delete removes a source.
func (s *metadataStore) Delete(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM data_sources WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting data source: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns all registered sources.
func (s *metadataStore) List(ctx context.Context) ([]domain.DataSourceMetadata, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, kind, config, last_sync_at, sync_status, schema_fields, created_at, updated_at
		FROM data_sources
	`)
	if err != nil {
		return nil, fmt.Errorf("querying data sources: %w", err)
	}
	defer rows.Close()

	var sources []domain.DataSourceMetadata //nolint:prealloc // size unknown from query
	for rows.Next() {
		source, err := scanDataSource(rows.Scan)
		if err != nil {
			return nil, err
		}
		sources = append(sources, *source)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating data sources: %w", err)
	}

	return sources, nil
}

// scanDataSource scans one data source row via the given scan function.
func scanDataSource(scan func(dest ...any) error) (*domain.DataSourceMetadata, error) {
	var source domain.DataSourceMetadata
	var kind, syncStatus, configJSON, schemaJSON string
	var lastSyncAt sql.NullString
	var createdAt, updatedAt sql.NullTime

	if err := scan(&source.ID, &source.Name, &kind, &configJSON,
		&lastSyncAt, &syncStatus, &schemaJSON, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning data source: %w", err)
	}

	source.Kind = domain.SourceKind(kind)
	source.SyncStatus = domain.SyncStatus(syncStatus)
	source.LastSyncAt = parseNullableTime(lastSyncAt)
	if createdAt.Valid {
		source.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		source.UpdatedAt = updatedAt.Time
	}

	if err := json.Unmarshal([]byte(configJSON), &source.Config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := json.Unmarshal([]byte(schemaJSON), &source.Schema); err != nil {
		return nil, fmt.Errorf("unmarshaling schema: %w", err)
	}

	return &source, nil
}

// ==================== Quality Store ====================

// qualityStore implements driven.QualityStore.
type qualityStore struct {
	store *Store
}

var _ driven.QualityStore = (*qualityStore)(nil)

// SaveSnapshot appends a quality measurement.
func (s *qualityStore) SaveSnapshot(ctx context.Context, snapshot domain.QualitySnapshot) error {
	metricsJSON, err := json.Marshal(snapshot.Metrics)
	if err != nil {
		return fmt.Errorf("marshalling metrics: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO quality_snapshots (id, source_name, metrics, checked_at)
		VALUES (?, ?, ?, ?)
	`, snapshot.ID, snapshot.SourceName, string(metricsJSON),
		snapshot.CheckedAt.Format(time.RFC3339Nano))

	if err != nil {
		return fmt.Errorf("saving quality snapshot: %w", err)
	}
	return nil
}

// Snapshots returns up to limit snapshots for one source, newest first.
func (s *qualityStore) Snapshots(ctx context.Context, sourceName string, limit int) ([]domain.QualitySnapshot, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, source_name, metrics, checked_at
		FROM quality_snapshots
		WHERE source_name = ?
		ORDER BY checked_at DESC
		LIMIT ?
	`, sourceName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying quality snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []domain.QualitySnapshot //nolint:prealloc // size unknown from query
	for rows.Next() {
		var snapshot domain.QualitySnapshot
		var metricsJSON, checkedAt string
		if err := rows.Scan(&snapshot.ID, &snapshot.SourceName, &metricsJSON, &checkedAt); err != nil {
			return nil, fmt.Errorf("scanning quality snapshot: %w", err)
		}
		if err := json.Unmarshal([]byte(metricsJSON), &snapshot.Metrics); err != nil {
			return nil, fmt.Errorf("unmarshaling metrics: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, checkedAt); err == nil {
			snapshot.CheckedAt = t
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quality snapshots: %w", err)
	}

	return snapshots, nil
}

// SourceNames returns the distinct source names with snapshots, sorted.
func (s *qualityStore) SourceNames(ctx context.Context) ([]string, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT DISTINCT source_name FROM quality_snapshots ORDER BY source_name
	`)
	if err != nil {
		return nil, fmt.Errorf("querying source names: %w", err)
	}
	defer rows.Close()

	var names []string //nolint:prealloc // size unknown from query
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning source name: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating source names: %w", err)
	}

	return names, nil
}

// ==================== Analysis Store ====================

// analysisStore implements driven.AnalysisStore.
type analysisStore struct {
	store *Store
}

var _ driven.AnalysisStore = (*analysisStore)(nil)

// Append records one analysis result.
func (s *analysisStore) Append(ctx context.Context, result domain.AnalysisResult) error {
	insightsJSON, err := json.Marshal(result.Insights)
	if err != nil {
		return fmt.Errorf("marshalling insights: %w", err)
	}
	recommendationsJSON, err := json.Marshal(result.Recommendations)
	if err != nil {
		return fmt.Errorf("marshalling recommendations: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO analysis_results (id, entity_kind, entity_id, entity_name, score, severity, insights, recommendations, analysed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, result.ID, result.EntityKind, result.EntityID, result.EntityName,
		result.Score, string(result.Severity), string(insightsJSON),
		string(recommendationsJSON), result.AnalysedAt.Format(time.RFC3339Nano))

	if err != nil {
		return fmt.Errorf("appending analysis result: %w", err)
	}
	return nil
}

// History returns up to limit results for one entity, newest first.
func (s *analysisStore) History(ctx context.Context, entityID string, limit int) ([]domain.AnalysisResult, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, entity_kind, entity_id, entity_name, score, severity, insights, recommendations, analysed_at
		FROM analysis_results
		WHERE entity_id = ?
		ORDER BY analysed_at DESC
		LIMIT ?
	`, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying analysis history: %w", err)
	}
	defer rows.Close()

	var results []domain.AnalysisResult //nolint:prealloc // size unknown from query
	for rows.Next() {
		var result domain.AnalysisResult
		var severity, insightsJSON, recommendationsJSON, analysedAt string
		if err := rows.Scan(&result.ID, &result.EntityKind, &result.EntityID,
			&result.EntityName, &result.Score, &severity,
			&insightsJSON, &recommendationsJSON, &analysedAt); err != nil {
			return nil, fmt.Errorf("scanning analysis result: %w", err)
		}
		result.Severity = domain.Severity(severity)
		if err := json.Unmarshal([]byte(insightsJSON), &result.Insights); err != nil {
			return nil, fmt.Errorf("unmarshaling insights: %w", err)
		}
		if err := json.Unmarshal([]byte(recommendationsJSON), &result.Recommendations); err != nil {
			return nil, fmt.Errorf("unmarshaling recommendations: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, analysedAt); err == nil {
			result.AnalysedAt = t
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating analysis history: %w", err)
	}

	return results, nil
}
