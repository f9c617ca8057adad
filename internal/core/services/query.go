package services

import (
	"strings"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// ParseQuery splits raw input into operators and free text.
//
// Each operator's first "<prefix><non-space run>" occurrence is extracted
// case-insensitively and removed. A repeated prefix stays in the free
// text. The remainder is trimmed and lower-cased.
func ParseQuery(raw string) domain.SearchQuery {
	ops := make(map[domain.OperatorName]string)
	text := raw

	for _, op := range operators {
		loc := op.pattern.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		ops[op.name] = text[loc[2]:loc[3]]
		text = strings.TrimSpace(text[:loc[0]] + text[loc[1]:])
	}

	return domain.SearchQuery{
		Operators: ops,
		FreeText:  strings.ToLower(strings.TrimSpace(text)),
	}
}
