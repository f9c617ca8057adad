package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportCmd_HistoryFromFile(t *testing.T) {
	env := setupTestServices(t)
	path := filepath.Join(env.dir, "history.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"url": "https://go.dev/doc", "title": "Docs", "visit_count": 4},
		{"url": "https://go.dev/play", "title": "Playground"}
	]`), 0600))

	out, err := execute(t, "import", "history", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 history entries")

	entries, err := env.store.HistoryStore().SearchHistory(context.Background(), "go.dev", 0, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestImportCmd_BookmarksFromStdin(t *testing.T) {
	env := setupTestServices(t)

	out, err := executeWithInput(t, `[{"url": "https://go.dev/ref/spec", "title": "Spec"}]`,
		"import", "bookmarks", "-")

	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 bookmarks")

	bookmarks, err := env.store.BookmarkStore().SearchBookmarks(context.Background(), "spec")
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)
	assert.NotEmpty(t, bookmarks[0].ID)
}

func TestImportCmd_MissingFile(t *testing.T) {
	env := setupTestServices(t)

	_, err := execute(t, "import", "history", filepath.Join(env.dir, "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening")
}

func TestImportCmd_InvalidJSON(t *testing.T) {
	setupTestServices(t)

	_, err := executeWithInput(t, "{not json", "import", "history", "-")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "importing history entries")
}

func TestImportCmd_BookmarksHTMLByExtension(t *testing.T) {
	env := setupTestServices(t)
	path := filepath.Join(env.dir, "bookmarks.html")
	require.NoError(t, os.WriteFile(path, []byte(`<DL><p>
		<DT><A HREF="https://go.dev/blog/">The Go Blog</A>
		<DT><A HREF="place:sort=8">Recent</A>
	</DL>`), 0600))

	out, err := execute(t, "import", "bookmarks", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 bookmarks")

	bookmarks, err := env.store.BookmarkStore().SearchBookmarks(context.Background(), "blog")
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, "The Go Blog", bookmarks[0].Title)
}

func TestImportCmd_BookmarksHTMLFromStdin(t *testing.T) {
	setupTestServices(t)

	out, err := executeWithInput(t, `<DT><A HREF="https://go.dev/">Go</A>`,
		"import", "bookmarks", "--format", "html", "-")

	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 bookmarks")
}

func TestImportCmd_UnknownFormat(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "import", "bookmarks", "--format", "csv", "-")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown bookmark format")
}
