// Package mcp provides an MCP (Model Context Protocol) server adapter for
// quickswitch. Agents can search tabs, history and bookmarks and ask for
// input suggestions.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingSuggestionService is returned when the suggestion service is not provided.
var ErrMissingSuggestionService = errors.New("mcp: suggestion service is required")
