package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
)

func TestSettingsCmd_ListShowsEveryKey(t *testing.T) {
	env := setupTestServices(t)

	out, err := execute(t, "settings")

	require.NoError(t, err)
	for _, key := range env.services.Settings.Keys() {
		assert.Contains(t, out, key)
	}
	assert.Contains(t, out, "github.com,youtube.com,google.com,twitter.com")
	assert.Contains(t, out, "(default)")
}

func TestSettingsCmd_SetThenGet(t *testing.T) {
	env := setupTestServices(t)

	out, err := execute(t, "settings", "set", "history.limit", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Set history.limit = 8")

	out, err = execute(t, "settings", "get", "history.limit")
	require.NoError(t, err)
	assert.Equal(t, "8\n", out)

	data, err := os.ReadFile(filepath.Join(env.dir, "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "limit = 8")
}

func TestSettingsCmd_SetRejectsInvalid(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "settings", "set", "search.default_scope", "downloads")
	assert.ErrorIs(t, err, domain.ErrInvalidScope)

	_, err = execute(t, "settings", "set", "history.limit", "-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsCmd_GetUnknownKey(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "settings", "get", "nope.key")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsCmd_ArgCounts(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "settings", "set", "history.limit")
	assert.Error(t, err)

	_, err = execute(t, "settings", "get")
	assert.Error(t, err)
}
