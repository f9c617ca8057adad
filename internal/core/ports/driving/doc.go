// Package driving holds the interfaces the CLI, the picker TUI and the MCP
// server call into. Each one is implemented by a service in
// internal/core/services; adapters never reach past these ports.
//
// The Picker port is the only stateful one. It owns the input, the result
// list and the selection, and issues a Cycle per edit so callers can run
// searches asynchronously and apply only the latest.
package driving
