// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Candidate Sources
//
// Each source may fail independently; the aggregator omits the affected
// section rather than aborting the cycle:
//
//   - TabSource: Snapshot of currently open tabs
//   - HistorySource: Free-text history lookup over a trailing window
//   - BookmarkSource: Free-text bookmark lookup
//
// # Other Interfaces
//
//   - Browser: Side-effecting actions on tabs and windows
//   - HistoryStore, BookmarkStore: Writable local store used by import
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
