// Package domain defines the core business entities for StratKB.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - The eight knowledge-base entity kinds (Megatrend, ValueTemplate,
//     HiddenNeed, SuccessCase, Seed, Partner, Trend, Competitor)
//   - Query shapes: PaginationParams, Paginated, QueryFilter
//   - Quality shapes: DataQualityMetrics, DataValidationResult
//   - DataSourceMetadata: a registered data source
//   - AnalysisResult: an immutable analysis history record
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
