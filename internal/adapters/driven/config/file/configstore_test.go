package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*ConfigStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	return store, dir
}

func TestNewConfigStore_Paths(t *testing.T) {
	store, dir := newTestStore(t)

	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
	assert.Equal(t, dir, store.Dir())
}

func TestNewConfigStore_CreatesNestedDirectory(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "a", "b")

	store, err := NewConfigStore(nested)
	require.NoError(t, err)

	info, err := os.Stat(store.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/quickswitch")
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestDefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".quickswitch"), dir)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Set("search.default_scope", "tabs"))
	require.NoError(t, store.Set("history.limit", 7))
	require.NoError(t, store.Set("debug.enabled", true))
	require.NoError(t, store.Set("suggestions.common_domains", []string{"go.dev", "github.com"}))

	assert.Equal(t, "tabs", store.GetString("search.default_scope"))
	assert.Equal(t, 7, store.GetInt("history.limit"))
	assert.Equal(t, []string{"go.dev", "github.com"}, store.GetStringSlice("suggestions.common_domains"))

	// Wrong types read as zero values
	assert.Empty(t, store.GetString("history.limit"))
	assert.Zero(t, store.GetInt("search.default_scope"))
	assert.Nil(t, store.GetStringSlice("history.limit"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_PersistsNestedTables(t *testing.T) {
	store, dir := newTestStore(t)

	require.NoError(t, store.Set("history.lookback_days", 14))
	require.NoError(t, store.Set("history.limit", 3))
	require.NoError(t, store.Set("search.default_scope", "bookmarks"))
	require.NoError(t, store.Set("suggestions.common_domains", []string{"go.dev"}))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "[history]")
	assert.Contains(t, content, "lookback_days = 14")
	assert.Contains(t, content, "[search]")
	assert.NotContains(t, content, `"history.limit"`)

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 14, reloaded.GetInt("history.lookback_days"))
	assert.Equal(t, 3, reloaded.GetInt("history.limit"))
	assert.Equal(t, "bookmarks", reloaded.GetString("search.default_scope"))
	assert.Equal(t, []string{"go.dev"}, reloaded.GetStringSlice("suggestions.common_domains"))
}

func TestConfigStore_LoadsHandWrittenFile(t *testing.T) {
	dir := t.TempDir()
	content := `
# quickswitch settings
[history]
max_results = 25

[browser]
open_command = "firefox --new-tab {url}"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 25, store.GetInt("history.max_results"))
	assert.Equal(t, "firefox --new-tab {url}", store.GetString("browser.open_command"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Set("history.limit", 5))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_NoTempFilesLeft(t *testing.T) {
	store, dir := newTestStore(t)
	require.NoError(t, store.Set("history.limit", 5))
	require.NoError(t, store.Save())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "config.toml", entries[0].Name())
}

func TestConfigStore_EmptyAndCommentOnlyFiles(t *testing.T) {
	for name, content := range map[string]string{
		"empty":        "",
		"comment only": "# nothing here\n\n",
	} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

			store, err := NewConfigStore(dir)
			require.NoError(t, err)
			_, ok := store.Get("history.limit")
			assert.False(t, ok)
		})
	}
}

func TestConfigStore_CorruptedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not [valid toml {{"), 0600))

	store, err := NewConfigStore(dir)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_SetConflictRollsBack(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Set("history.limit", 5))

	err := store.Set("history", "flat")
	assert.Error(t, err)

	_, ok := store.Get("history")
	assert.False(t, ok)
	assert.Equal(t, 5, store.GetInt("history.limit"))
}

func TestConfigStore_UnmarshallableValue(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Set("history.limit", 5))

	assert.Error(t, store.Set("bad", make(chan int)))
	assert.Equal(t, 5, store.GetInt("history.limit"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, _ := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := "concurrency.key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_, _ = store.Get(key)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		assert.Equal(t, i, store.GetInt("concurrency.key"+string(rune('0'+i))))
	}
}

func TestUnflattenMap(t *testing.T) {
	got, err := unflattenMap(map[string]any{
		"a.b":   1,
		"a.c.d": "x",
		"e":     true,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"a": map[string]any{
			"b": 1,
			"c": map[string]any{"d": "x"},
		},
		"e": true,
	}, got)

	assert.Equal(t, map[string]any{"a.b": 1, "a.c.d": "x", "e": true}, flattenMap(got, ""))

	_, err = unflattenMap(map[string]any{"a": 1, "a.b": 2})
	assert.Error(t, err)
}
