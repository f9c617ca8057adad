package mcp

import (
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the MCP server.
type Ports struct {
	// Search runs the parse and aggregate pipeline.
	Search driving.SearchService

	// Suggest produces input suggestions.
	Suggest driving.SuggestionService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Suggest == nil {
		return ErrMissingSuggestionService
	}
	return nil
}
