// Package connectors implements the uniform access contract over each
// of the eight knowledge-base entity kinds.
//
// A generic Base carries the behaviour every kind shares: CRUD against
// a driven.RecordStore, filtered and paginated listing, free-text
// search, and the four-dimension quality scan. Each entity kind
// supplies a Spec with what differs: how to build and update the
// entity, its validation rules, required fields for completeness, the
// evidentiary accuracy condition, and the text fields search covers.
//
// Kinds that declare the analysis capability (megatrends, hidden needs,
// competitors) wrap Base with Analyze/AnalyzeMany/Related backed by the
// pure heuristics in internal/analysis and an append-only
// driven.AnalysisStore.
package connectors
