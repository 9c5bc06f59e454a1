// Package mcp provides an MCP (Model Context Protocol) server adapter
// for StratKB. It lets AI assistants search the knowledge base and read
// its quality and source metadata.
package mcp

import "errors"

// ErrMissingSearcher is returned when the search capability is not provided.
var ErrMissingSearcher = errors.New("mcp: searcher is required")
