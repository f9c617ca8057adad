package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

func sampleResults() domain.ResultList {
	return domain.ResultList{
		{Candidate: domain.Tab{ID: 4, Title: "Go", URL: "https://go.dev"}, Source: domain.SourceTab},
		{Candidate: domain.HistoryEntry{
			Title: "Go blog", URL: "https://go.dev/blog", VisitCount: 3, LastVisitTime: time.Unix(100, 0),
		}, Source: domain.SourceHistory},
		{Candidate: domain.Bookmark{ID: "b1", Title: "Spec", URL: "https://go.dev/ref/spec"}, Source: domain.SourceBookmark},
		{Candidate: domain.LiteralNavigation{Text: "go.dev"}, Source: domain.SourceNavigate},
	}
}

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns sectioned results", func(t *testing.T) {
		search := &mockSearchService{results: sampleResults()}
		server, err := NewServer(&Ports{Search: search, Suggest: &mockSuggestionService{}})
		require.NoError(t, err)

		_, output, err := server.handleSearch(ctx, nil, SearchInput{Query: "go"})
		require.NoError(t, err)

		assert.Equal(t, "go", search.lastRaw)
		assert.Equal(t, domain.ScopeAll, search.lastScope)
		require.Equal(t, 4, output.Count)
		assert.Equal(t, ResultOutput{Source: "tab", Title: "Go", URL: "https://go.dev", TabID: 4}, output.Results[0])
		assert.Equal(t, 3, output.Results[1].VisitCount)
		assert.Equal(t, "bookmark", output.Results[2].Source)
		assert.Equal(t, ResultOutput{Source: "navigate", URL: "go.dev"}, output.Results[3])
	})

	t.Run("passes scope", func(t *testing.T) {
		search := &mockSearchService{}
		server, err := NewServer(&Ports{Search: search, Suggest: &mockSuggestionService{}})
		require.NoError(t, err)

		_, output, err := server.handleSearch(ctx, nil, SearchInput{Query: "x", Scope: "History"})
		require.NoError(t, err)

		assert.Equal(t, domain.ScopeHistory, search.lastScope)
		assert.Equal(t, 0, output.Count)
		assert.NotNil(t, output.Results)
	})

	t.Run("rejects unknown scope", func(t *testing.T) {
		server, err := NewServer(validPorts())
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Query: "x", Scope: "downloads"})
		assert.ErrorIs(t, err, domain.ErrInvalidScope)
	})
}

func TestServer_handleSuggest(t *testing.T) {
	suggest := &mockSuggestionService{suggestions: []domain.Suggestion{
		{Text: "site:example.com", Description: "Search by site"},
		{Text: "github.com", Description: "Common domain"},
	}}
	server, err := NewServer(&Ports{Search: &mockSearchService{}, Suggest: suggest})
	require.NoError(t, err)

	_, output, err := server.handleSuggest(context.Background(), nil, SuggestInput{Query: "si"})
	require.NoError(t, err)

	require.Len(t, output.Suggestions, 2)
	assert.Equal(t, SuggestionOutput{Text: "site:example.com", Description: "Search by site"}, output.Suggestions[0])
	assert.Equal(t, "github.com", output.Suggestions[1].Text)
}
