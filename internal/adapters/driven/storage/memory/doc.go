// Package memory provides in-memory implementations of the driven ports.
//
// The stores back the picker when a persistent source cannot be opened and
// serve as fixtures in tests. Free-text lookups split the query on
// whitespace and require every word to appear in the title or url,
// ignoring case, which mirrors the SQLite store.
package memory
