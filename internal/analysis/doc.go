// Package analysis holds the entity-specific scoring and insight
// heuristics layered on top of the analysable connectors.
//
// Every function here is pure over the entity's fields so the scores,
// insights, and recommendations can be tested without I/O. Scores are
// clamped to [0,1] and mapped to the four-tier severity label via the
// fixed thresholds in domain.SeverityForScore.
package analysis
