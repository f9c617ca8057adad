package services

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// bareDomain matches "label(.label)+" where the final label is two or more letters.
var bareDomain = regexp.MustCompile(`^[\w-]+(\.[\w-]+)*\.[a-z]{2,}$`)

// schemeSeparator detects an explicit "scheme://" prefix.
var schemeSeparator = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// opaqueSchemes are schemes that are complete without "//".
var opaqueSchemes = []string{"about:", "mailto:", "data:", "javascript:"}

// FuzzyMatch reports whether every rune of query appears in text in
// order, ignoring case. An empty query matches everything so that
// operator-only input still surfaces candidates.
func FuzzyMatch(query, text string) bool {
	if query == "" {
		return true
	}

	q := []rune(strings.ToLower(query))
	i := 0
	for _, r := range strings.ToLower(text) {
		if r != q[i] {
			continue
		}
		i++
		if i == len(q) {
			return true
		}
	}
	return false
}

// MatchesOperators reports whether c satisfies every operator in ops.
// An empty set matches. Operator names missing from the table are treated
// as satisfied, so a typo in a programmatic caller silently filters nothing.
func MatchesOperators(c domain.Candidate, ops map[domain.OperatorName]string) bool {
	for name, value := range ops {
		op, ok := lookupOperator(name)
		if !ok {
			continue
		}
		if !op.holds(c, value) {
			return false
		}
	}
	return true
}

// IsLiteralURL reports whether text should be offered as a navigation
// target: an absolute url with a host, or a bare domain such as "example.com".
// Host-less absolute forms like "mailto:a@example.com" are rejected.
func IsLiteralURL(text string) bool {
	if text == "" || strings.ContainsAny(text, " \t\n") {
		return false
	}
	if u, err := url.Parse(text); err == nil && u.Scheme != "" && u.Host != "" {
		return true
	}
	return bareDomain.MatchString(strings.ToLower(text))
}

// WithScheme returns target with "https://" prepended when it has no scheme.
func WithScheme(target string) string {
	if target == "" || schemeSeparator.MatchString(target) {
		return target
	}
	lower := strings.ToLower(target)
	for _, s := range opaqueSchemes {
		if strings.HasPrefix(lower, s) {
			return target
		}
	}
	return "https://" + target
}

// hostOf returns the lower-cased host of raw, without port.
// Malformed urls and urls without a host report false.
func hostOf(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}
	return strings.ToLower(u.Hostname()), true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
