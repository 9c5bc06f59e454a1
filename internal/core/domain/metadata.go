package domain

import "time"

// SourceKind classifies where a data source's records originate.
type SourceKind string

const (
	// SourceKindDatabase is a relational or document database.
	SourceKindDatabase SourceKind = "DATABASE"
	// SourceKindAPI is a remote HTTP API.
	SourceKindAPI SourceKind = "API"
	// SourceKindFile is a file import (CSV, spreadsheet).
	SourceKindFile SourceKind = "FILE"
	// SourceKindManual is hand-entered data.
	SourceKindManual SourceKind = "MANUAL"
	// SourceKindExternalService is a third-party managed service.
	SourceKindExternalService SourceKind = "EXTERNAL_SERVICE"
)

// SyncStatus is the synchronisation state of a data source.
type SyncStatus string

const (
	// SyncIdle means no sync has been requested.
	SyncIdle SyncStatus = "IDLE"
	// SyncSyncing means a sync is in progress.
	SyncSyncing SyncStatus = "SYNCING"
	// SyncSuccess means the last sync completed.
	SyncSuccess SyncStatus = "SUCCESS"
	// SyncFailed means the last sync failed.
	SyncFailed SyncStatus = "FAILED"
)

// SchemaField describes one field of a source's declared schema.
type SchemaField struct {
	// Name is the field name.
	Name string

	// Type is the declared category ("string", "number", "string[]", ...).
	Type string

	// Required marks fields counted by completeness scoring.
	Required bool
}

// DataSourceMetadata describes a registered data source independent of
// its entity content.
type DataSourceMetadata struct {
	// ID is the unique identifier for the source.
	ID string

	// Name is the human-readable name.
	Name string

	// Kind classifies the source origin.
	Kind SourceKind

	// Config contains kind-specific configuration.
	Config map[string]string

	// LastSyncAt is when the source last synced; zero if never.
	LastSyncAt time.Time

	// SyncStatus is the current synchronisation state.
	SyncStatus SyncStatus

	// Schema declares the fields this source provides.
	Schema []SchemaField

	// CreatedAt is when the source was registered.
	CreatedAt time.Time

	// UpdatedAt is when the source was last updated.
	UpdatedAt time.Time
}

// SourceStats aggregates registry-wide counts.
type SourceStats struct {
	// Total is the number of registered sources.
	Total int

	// ByKind counts sources per kind.
	ByKind map[SourceKind]int

	// ByStatus counts sources per sync status.
	ByStatus map[SyncStatus]int

	// SyncedLast24h counts sources synced within 24 hours.
	SyncedLast24h int

	// SyncedLast7d counts sources synced within 7 days.
	SyncedLast7d int

	// NeverSynced counts sources with no recorded sync.
	NeverSynced int
}
