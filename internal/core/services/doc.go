// Package services implements the driving ports on top of the driven ones.
//
// Input flows through the engine in this order:
//
//   - ParseQuery splits raw input into operators and free text
//   - FuzzyMatch and MatchesOperators test each candidate
//   - SearchService aggregates tabs, history and bookmarks into sections
//   - Reduce moves the selection and turns activation into effects
//   - SuggestionService completes partial operators and domains
//
// Picker owns the state between keystrokes and drops results from
// superseded cycles.
package services
