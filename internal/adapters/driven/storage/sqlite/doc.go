// Package sqlite stores imported history and bookmarks in a local database
// using the pure Go modernc.org/sqlite driver.
//
// History rows are keyed by url; re-imports add visit counts and keep the
// latest visit. Bookmarks are keyed by id and keep their first position.
// Schema changes ship as numbered up/down migration pairs embedded from
// migrations/, with applied versions recorded in schema_migrations.
//
// The database opens in WAL mode so the picker can read during an import.
package sqlite
