package driving

import (
	"context"
	"io"
)

// ImportService loads history and bookmarks into the local store.
type ImportService interface {
	// ImportHistory reads a JSON array of history entries from r.
	// Returns the number of entries recorded.
	ImportHistory(ctx context.Context, r io.Reader) (int, error)

	// ImportBookmarks reads a JSON array of bookmarks from r.
	// Returns the number of bookmarks saved.
	ImportBookmarks(ctx context.Context, r io.Reader) (int, error)

	// ImportBookmarksHTML reads a Netscape bookmark file, the export
	// format shared by the major browsers.
	// Returns the number of bookmarks saved.
	ImportBookmarksHTML(ctx context.Context, r io.Reader) (int, error)
}
