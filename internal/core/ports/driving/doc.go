// Package driving defines the use-case interfaces that callers invoke.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI and MCP adapters depend on these interfaces; connectors and
// core services implement them.
//
// The central contract is Connector, generic over entity type T,
// creation input C, and update input U. Every entity kind realises the
// same contract; search and analysis are optional capabilities declared
// by implementing Searcher and Analyzer.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or service package
package driving
