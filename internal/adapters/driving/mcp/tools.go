package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"picker input; may contain site:, title: or url: operators"`
	Scope string `json:"scope,omitempty" jsonschema:"one of all, tabs, history, bookmarks (default all)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []ResultOutput `json:"results"`
	Count   int            `json:"count"`
}

// ResultOutput is a single entry of the sectioned result list.
type ResultOutput struct {
	Source     string `json:"source"`
	Title      string `json:"title,omitempty"`
	URL        string `json:"url"`
	TabID      int    `json:"tab_id,omitempty"`
	VisitCount int    `json:"visit_count,omitempty"`
}

// SuggestInput is the input schema for the suggest tool.
type SuggestInput struct {
	Query string `json:"query" jsonschema:"partial picker input"`
}

// SuggestOutput is the output schema for the suggest tool.
type SuggestOutput struct {
	Suggestions []SuggestionOutput `json:"suggestions"`
}

// SuggestionOutput is one suggestion in display order.
type SuggestionOutput struct {
	Text        string `json:"text"`
	Description string `json:"description,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search open tabs, browsing history and bookmarks",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest",
		Description: "Suggest search operators and common domains for partial input",
	}, s.handleSuggest)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	scope, err := domain.ParseFilterScope(input.Scope)
	if err != nil {
		return nil, SearchOutput{}, fmt.Errorf("search: %w", err)
	}

	results := s.ports.Search.Search(ctx, input.Query, scope)
	return nil, toSearchOutput(results), nil
}

// handleSuggest handles the suggest tool invocation.
func (s *Server) handleSuggest(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SuggestInput,
) (*mcp.CallToolResult, SuggestOutput, error) {
	suggestions := s.ports.Suggest.Suggest(input.Query)

	output := SuggestOutput{Suggestions: make([]SuggestionOutput, len(suggestions))}
	for i, sg := range suggestions {
		output.Suggestions[i] = SuggestionOutput{Text: sg.Text, Description: sg.Description}
	}
	return nil, output, nil
}

func toSearchOutput(results domain.ResultList) SearchOutput {
	output := SearchOutput{
		Results: make([]ResultOutput, len(results)),
		Count:   len(results),
	}

	for i, entry := range results {
		out := ResultOutput{
			Source: entry.Source.String(),
			Title:  entry.Candidate.TitleText(),
			URL:    entry.Candidate.Link(),
		}
		switch c := entry.Candidate.(type) {
		case domain.Tab:
			out.TabID = c.ID
		case domain.HistoryEntry:
			out.VisitCount = c.VisitCount
		case domain.LiteralNavigation:
			out.URL = c.Text
		}
		output.Results[i] = out
	}
	return output
}
