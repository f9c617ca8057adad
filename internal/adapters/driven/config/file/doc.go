// Package file provides the TOML-backed configuration store.
//
// Settings live in <config-dir>/config.toml as nested tables:
//
//	[history]
//	lookback_days = 30
//
// and are addressed with flattened dot keys such as "history.lookback_days".
package file
