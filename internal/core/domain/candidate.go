package domain

import "time"

// SourceKind identifies which section a candidate belongs to.
type SourceKind string

// Candidate sources.
const (
	SourceTab      SourceKind = "tab"
	SourceHistory  SourceKind = "history"
	SourceBookmark SourceKind = "bookmark"
	SourceNavigate SourceKind = "navigate"
)

// String returns the string representation.
func (k SourceKind) String() string {
	return string(k)
}

// Label returns the section heading used when rendering results.
func (k SourceKind) Label() string {
	switch k {
	case SourceTab:
		return "Open Tabs"
	case SourceHistory:
		return "History"
	case SourceBookmark:
		return "Bookmarks"
	case SourceNavigate:
		return "Go To"
	default:
		return "Unknown"
	}
}

// Candidate is any item eligible for display as a result.
// Candidates are owned by the source that produced them and are never
// mutated by the core.
type Candidate interface {
	// Kind returns the source this candidate came from.
	Kind() SourceKind

	// TitleText returns the display title, empty when the candidate has none.
	TitleText() string

	// Link returns the candidate's url, empty when it has none.
	Link() string
}

// Tab is a currently open browser tab.
type Tab struct {
	ID         int    `json:"id"`
	WindowID   int    `json:"window_id,omitempty"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	FavIconURL string `json:"favicon_url,omitempty"`
}

// Kind implements Candidate.
func (t Tab) Kind() SourceKind { return SourceTab }

// TitleText implements Candidate.
func (t Tab) TitleText() string { return t.Title }

// Link implements Candidate.
func (t Tab) Link() string { return t.URL }

// HistoryEntry is a previously visited page.
type HistoryEntry struct {
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	FavIconURL    string    `json:"favicon_url,omitempty"`
	VisitCount    int       `json:"visit_count"`
	LastVisitTime time.Time `json:"last_visit_time"`
}

// Kind implements Candidate.
func (h HistoryEntry) Kind() SourceKind { return SourceHistory }

// TitleText implements Candidate.
func (h HistoryEntry) TitleText() string { return h.Title }

// Link implements Candidate.
func (h HistoryEntry) Link() string { return h.URL }

// Bookmark is a saved page. Folders are never returned as bookmarks.
type Bookmark struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	FavIconURL string `json:"favicon_url,omitempty"`
}

// Kind implements Candidate.
func (b Bookmark) Kind() SourceKind { return SourceBookmark }

// TitleText implements Candidate.
func (b Bookmark) TitleText() string { return b.Title }

// Link implements Candidate.
func (b Bookmark) Link() string { return b.URL }

// LiteralNavigation is the "go to this text" entry offered when the
// free text looks like a url or bare domain. It has no title and no url;
// the target is derived from Text at activation time.
type LiteralNavigation struct {
	Text string `json:"text"`
}

// Kind implements Candidate.
func (l LiteralNavigation) Kind() SourceKind { return SourceNavigate }

// TitleText implements Candidate.
func (l LiteralNavigation) TitleText() string { return "" }

// Link implements Candidate.
func (l LiteralNavigation) Link() string { return "" }
