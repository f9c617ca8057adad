// Package domain holds the quickswitch data model: parsed queries, the
// candidates they match (tabs, history entries, bookmarks and literal
// navigation targets), the sectioned ResultList, selection state with the
// events and effects that drive it, suggestions and settings.
//
// Everything else in the module depends on domain. It imports only the
// standard library.
package domain
