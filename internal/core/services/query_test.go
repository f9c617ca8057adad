package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		operators map[domain.OperatorName]string
		freeText  string
	}{
		{
			name:      "plain text is lower-cased",
			raw:       "  React Docs ",
			operators: map[domain.OperatorName]string{},
			freeText:  "react docs",
		},
		{
			name:      "site operator with free text",
			raw:       "site:github.com react",
			operators: map[domain.OperatorName]string{domain.OperatorSite: "github.com"},
			freeText:  "react",
		},
		{
			name:      "operator prefix is case-insensitive, value keeps case",
			raw:       "TITLE:Inbox mail",
			operators: map[domain.OperatorName]string{domain.OperatorTitle: "Inbox"},
			freeText:  "mail",
		},
		{
			name: "all operators in any position",
			raw:  "foo url:/pulls title:PR site:github.com",
			operators: map[domain.OperatorName]string{
				domain.OperatorSite:  "github.com",
				domain.OperatorTitle: "PR",
				domain.OperatorURL:   "/pulls",
			},
			freeText: "foo",
		},
		{
			name:      "operator only",
			raw:       "site:example.org",
			operators: map[domain.OperatorName]string{domain.OperatorSite: "example.org"},
			freeText:  "",
		},
		{
			name:      "prefix without value is left in free text",
			raw:       "site: react",
			operators: map[domain.OperatorName]string{},
			freeText:  "site: react",
		},
		{
			name:      "second occurrence stays in free text",
			raw:       "site:a.com site:b.com",
			operators: map[domain.OperatorName]string{domain.OperatorSite: "a.com"},
			freeText:  "site:b.com",
		},
		{
			name:      "removal leaves inner whitespace intact",
			raw:       "go site:go.dev docs",
			operators: map[domain.OperatorName]string{domain.OperatorSite: "go.dev"},
			freeText:  "go  docs",
		},
		{
			name:      "empty input",
			raw:       "",
			operators: map[domain.OperatorName]string{},
			freeText:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := ParseQuery(tt.raw)
			assert.Equal(t, tt.operators, q.Operators)
			assert.Equal(t, tt.freeText, q.FreeText)
		})
	}
}

func TestParseQuery_EarlierOperatorWinsOverlap(t *testing.T) {
	// "site:" is extracted first and swallows "url:x" as part of its value;
	// the url operator then finds nothing left to match.
	q := ParseQuery("site:url:x")

	assert.Equal(t, map[domain.OperatorName]string{domain.OperatorSite: "url:x"}, q.Operators)
	assert.Empty(t, q.FreeText)
}

func TestParseQuery_ExtractsExactToken(t *testing.T) {
	tokens := []string{"github.com", "a", "ex-ample.co.uk", "x/y?z=1"}
	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			q := ParseQuery("before url:" + token + " after")
			assert.Equal(t, token, q.Operators[domain.OperatorURL])
			assert.Equal(t, "before  after", q.FreeText)
		})
	}
}

func TestOperatorNames_TableOrder(t *testing.T) {
	assert.Equal(t, []domain.OperatorName{
		domain.OperatorSite, domain.OperatorTitle, domain.OperatorURL,
	}, OperatorNames())
}
