package domain

import "time"

// HistoryBackend identifies where history and bookmarks are read from.
type HistoryBackend string

// Available history backends.
const (
	// HistoryBackendStore reads the local quickswitch SQLite store.
	HistoryBackendStore HistoryBackend = "store"

	// HistoryBackendFirefox reads a Firefox profile's places.sqlite.
	HistoryBackendFirefox HistoryBackend = "firefox"
)

// IsValid returns true if the backend is recognised.
func (b HistoryBackend) IsValid() bool {
	return b == HistoryBackendStore || b == HistoryBackendFirefox
}

// String returns the string representation.
func (b HistoryBackend) String() string {
	return string(b)
}

// DefaultCommonDomains is the shortlist offered as domain suggestions.
var DefaultCommonDomains = []string{"github.com", "youtube.com", "google.com", "twitter.com"}

// SearchSettings holds aggregation configuration.
type SearchSettings struct {
	// DefaultScope is the filter scope a new picker starts in.
	DefaultScope FilterScope
}

// HistorySettings holds history section configuration.
type HistorySettings struct {
	// LookbackDays is the trailing window passed to the history source.
	LookbackDays int

	// MaxResults is how many entries the history source is asked for.
	MaxResults int

	// Limit is how many entries the history section keeps after ranking.
	Limit int
}

// Lookback returns the lookback window as a duration.
func (h HistorySettings) Lookback() time.Duration {
	return time.Duration(h.LookbackDays) * 24 * time.Hour
}

// BookmarkSettings holds bookmark section configuration.
type BookmarkSettings struct {
	// Limit is how many bookmarks the section keeps.
	Limit int
}

// SuggestionSettings holds suggestion engine configuration.
type SuggestionSettings struct {
	// CommonDomains is the shortlist used for domain suggestions.
	CommonDomains []string
}

// SourceSettings selects and locates the candidate sources.
type SourceSettings struct {
	// TabsSnapshot is the JSON file holding the open-tab snapshot.
	// Empty means <config-dir>/tabs.json.
	TabsSnapshot string

	// History selects the history and bookmark backend.
	History HistoryBackend

	// FirefoxProfile is the profile directory containing places.sqlite.
	FirefoxProfile string
}

// BrowserSettings holds the commands used to act on results.
// Each command is split on whitespace; a "{url}" or "{id}" token is
// replaced, otherwise the url is appended.
type BrowserSettings struct {
	// OpenCommand opens a url in a tab. Empty uses the OS default opener.
	OpenCommand string

	// WindowCommand opens a url in a new window. Empty falls back to OpenCommand.
	WindowCommand string

	// ActivateCommand focuses an existing tab. Empty reopens the tab url.
	ActivateCommand string
}

// AppSettings holds all application settings.
type AppSettings struct {
	Search      SearchSettings
	History     HistorySettings
	Bookmarks   BookmarkSettings
	Suggestions SuggestionSettings
	Sources     SourceSettings
	Browser     BrowserSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	domains := make([]string, len(DefaultCommonDomains))
	copy(domains, DefaultCommonDomains)

	return AppSettings{
		Search: SearchSettings{
			DefaultScope: ScopeAll,
		},
		History: HistorySettings{
			LookbackDays: 30,
			MaxResults:   10,
			Limit:        5,
		},
		Bookmarks: BookmarkSettings{
			Limit: 5,
		},
		Suggestions: SuggestionSettings{
			CommonDomains: domains,
		},
		Sources: SourceSettings{
			History: HistoryBackendStore,
		},
	}
}
