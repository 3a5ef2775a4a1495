package preset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/dirprofile/internal/preset"
	"github.com/hbjs97/dirprofile/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAssignments_Valid(t *testing.T) {
	path := testutil.TempFile(t, "presets.json", `{"/tmp/a": "Tango Dark", "/tmp/b": "Smoooooth"}`)
	as, exists, err := preset.LoadAssignments(path)

	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, preset.Assignments{"/tmp/a": "Tango Dark", "/tmp/b": "Smoooooth"}, as)
}

func TestLoadAssignments_MissingFile(t *testing.T) {
	as, exists, err := preset.LoadAssignments(filepath.Join(t.TempDir(), "presets.json"))
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Empty(t, as)
	assert.NotNil(t, as)
}

func TestLoadAssignments_Invalid(t *testing.T) {
	path := testutil.TempFile(t, "presets.json", `["not", "a", "map"]`)
	_, _, err := preset.LoadAssignments(path)
	assert.Error(t, err)
}

func TestAssignments_Delete(t *testing.T) {
	as := preset.Assignments{"/tmp/a": "Tango Dark"}
	assert.True(t, as.Delete("/tmp/a"))
	assert.False(t, as.Delete("/tmp/a"))
	assert.Empty(t, as)
}

func TestAssignments_InUseExcept(t *testing.T) {
	as := preset.Assignments{
		"/tmp/a": "Tango Dark",
		"/tmp/b": "Smoooooth",
		"/tmp/c": "Tango Dark",
	}
	used := as.InUseExcept("/tmp/b")
	assert.Len(t, used, 1)
	assert.Contains(t, used, "Tango Dark")
	assert.NotContains(t, used, "Smoooooth")
}

func TestAssignments_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "presets.json")
	as := preset.Assignments{"/tmp/a": "Tango Dark"}
	require.NoError(t, as.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"/tmp/a\": \"Tango Dark\"\n}\n", string(data))

	loaded, _, err := preset.LoadAssignments(path)
	require.NoError(t, err)
	assert.Equal(t, as, loaded)
}
