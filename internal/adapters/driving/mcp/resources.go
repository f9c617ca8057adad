package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

const uriScheme = "quickswitch://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "tabs",
		Name:        "tabs",
		Description: "Currently open browser tabs",
		MIMEType:    "application/json",
	}, s.handleTabsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "search/{scope}/{query}",
		Name:        "search-results",
		Description: "Sectioned results for a query within a scope",
		MIMEType:    "application/json",
	}, s.handleSearchResource)
}

// handleTabsResource lists every open tab.
func (s *Server) handleTabsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	results := s.ports.Search.Search(ctx, "", domain.ScopeTabs)
	return jsonResource(req.Params.URI, toSearchOutput(results).Results)
}

// handleSearchResource runs a query named by the resource uri.
func (s *Server) handleSearchResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	scopeText, query, ok := parseSearchURI(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	scope, err := domain.ParseFilterScope(scopeText)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	results := s.ports.Search.Search(ctx, query, scope)
	return jsonResource(req.Params.URI, toSearchOutput(results))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// parseSearchURI splits quickswitch://search/{scope}/{query}. The query is
// path-unescaped and may be empty.
func parseSearchURI(uri string) (scope, query string, ok bool) {
	const prefix = uriScheme + "search/"

	rest, found := strings.CutPrefix(uri, prefix)
	if !found {
		return "", "", false
	}

	scope, escaped, found := strings.Cut(rest, "/")
	if !found || scope == "" {
		return "", "", false
	}

	query, err := url.PathUnescape(escaped)
	if err != nil {
		return "", "", false
	}
	return scope, query, true
}
