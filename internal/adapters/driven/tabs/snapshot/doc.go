// Package snapshot provides a TabSource backed by a JSON snapshot file.
//
// A browser extension or helper script writes the currently open tabs to
// the snapshot file as a JSON array:
//
//	[{"id": 12, "window_id": 1, "title": "Go", "url": "https://go.dev"}]
//
// The source reloads the file whenever it changes, so the picker always
// sees the latest tab set without re-reading the file on every keystroke.
// A missing file is treated as no open tabs.
package snapshot
