package services

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

// operator is one row of the operator table: its name, the pattern that
// extracts its value from raw input, and the predicate it applies.
type operator struct {
	name    domain.OperatorName
	pattern *regexp.Regexp
	holds   func(c domain.Candidate, value string) bool
}

// operators is ordered. Extraction follows this order, so when two
// prefixes could match overlapping text the earlier one wins and later
// ones re-scan what remains.
var operators = []operator{
	newOperator(domain.OperatorSite, siteHolds),
	newOperator(domain.OperatorTitle, titleHolds),
	newOperator(domain.OperatorURL, urlHolds),
}

func newOperator(name domain.OperatorName, holds func(domain.Candidate, string) bool) operator {
	return operator{
		name:    name,
		pattern: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(name.Prefix()) + `(\S+)`),
		holds:   holds,
	}
}

// lookupOperator finds an operator by name.
func lookupOperator(name domain.OperatorName) (operator, bool) {
	for _, op := range operators {
		if op.name == name {
			return op, true
		}
	}
	return operator{}, false
}

// OperatorNames returns the registered operator names in table order.
func OperatorNames() []domain.OperatorName {
	names := make([]domain.OperatorName, len(operators))
	for i, op := range operators {
		names[i] = op.name
	}
	return names
}

func siteHolds(c domain.Candidate, value string) bool {
	link := c.Link()
	if link == "" {
		return false
	}
	host, ok := hostOf(link)
	if !ok {
		return false
	}
	return strings.Contains(host, strings.ToLower(value))
}

func titleHolds(c domain.Candidate, value string) bool {
	title := c.TitleText()
	if title == "" {
		return false
	}
	return containsFold(title, value)
}

func urlHolds(c domain.Candidate, value string) bool {
	link := c.Link()
	if link == "" {
		return false
	}
	return containsFold(link, value)
}
