// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services and connectors depend on these interfaces, and storage
// adapters implement them.
//
// # Required Interfaces
//
//   - RecordStore: persistence for one entity collection
//   - MetadataStore: data source metadata persistence
//   - QualityStore: quality snapshot persistence
//   - AnalysisStore: append-only analysis history
//   - ConfigStore: application configuration
//   - SchedulerStore: background task state and history
//
// The repository behind RecordStore is treated as an opaque transactional
// collaborator: it owns timeouts and retries, and any fault it returns is
// propagated unchanged.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
