package domain

// OperatorName identifies a query operator such as "site".
type OperatorName string

// Registered operators.
const (
	// OperatorSite restricts candidates to urls whose host contains the value.
	OperatorSite OperatorName = "site"

	// OperatorTitle restricts candidates to titles containing the value.
	OperatorTitle OperatorName = "title"

	// OperatorURL restricts candidates to urls containing the value.
	OperatorURL OperatorName = "url"
)

// Prefix returns the text that introduces the operator in raw input.
func (o OperatorName) Prefix() string {
	return string(o) + ":"
}

// String returns the string representation.
func (o OperatorName) String() string {
	return string(o)
}

// SearchQuery is the structured form of one raw input string.
type SearchQuery struct {
	// Operators maps each extracted operator to its value.
	// At most one value per operator.
	Operators map[OperatorName]string

	// FreeText is the lower-cased residual text after operator extraction.
	FreeText string
}

// HasOperators reports whether any operator was extracted.
func (q SearchQuery) HasOperators() bool {
	return len(q.Operators) > 0
}

// IsEmpty reports whether the query carries neither operators nor free text.
func (q SearchQuery) IsEmpty() bool {
	return q.FreeText == "" && len(q.Operators) == 0
}
