package domain

import (
	"fmt"
	"strings"
)

// FilterScope restricts which sources an update cycle consults.
// The literal navigation entry is offered in every scope.
type FilterScope string

// Available filter scopes.
const (
	ScopeAll       FilterScope = "all"
	ScopeTabs      FilterScope = "tabs"
	ScopeHistory   FilterScope = "history"
	ScopeBookmarks FilterScope = "bookmarks"
)

// scopeOrder is the cycling order used by Next.
var scopeOrder = []FilterScope{ScopeAll, ScopeTabs, ScopeHistory, ScopeBookmarks}

// AllScopes returns every scope in cycling order.
func AllScopes() []FilterScope {
	out := make([]FilterScope, len(scopeOrder))
	copy(out, scopeOrder)
	return out
}

// ParseFilterScope converts a user-supplied string to a FilterScope.
// An empty string yields ScopeAll.
func ParseFilterScope(s string) (FilterScope, error) {
	switch FilterScope(strings.ToLower(strings.TrimSpace(s))) {
	case "", ScopeAll:
		return ScopeAll, nil
	case ScopeTabs:
		return ScopeTabs, nil
	case ScopeHistory:
		return ScopeHistory, nil
	case ScopeBookmarks:
		return ScopeBookmarks, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidScope, s)
	}
}

// IsValid returns true if the scope is recognised.
func (s FilterScope) IsValid() bool {
	switch s {
	case ScopeAll, ScopeTabs, ScopeHistory, ScopeBookmarks:
		return true
	default:
		return false
	}
}

// Includes reports whether the scope consults the given source.
func (s FilterScope) Includes(kind SourceKind) bool {
	switch s {
	case ScopeAll:
		return kind != SourceNavigate
	case ScopeTabs:
		return kind == SourceTab
	case ScopeHistory:
		return kind == SourceHistory
	case ScopeBookmarks:
		return kind == SourceBookmark
	default:
		return false
	}
}

// Next returns the scope that follows s in cycling order.
func (s FilterScope) Next() FilterScope {
	for i, sc := range scopeOrder {
		if sc == s {
			return scopeOrder[(i+1)%len(scopeOrder)]
		}
	}
	return ScopeAll
}

// String returns the string representation.
func (s FilterScope) String() string {
	return string(s)
}
