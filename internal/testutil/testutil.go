// Package testutil provides common test helpers for the dirprofile project.
package testutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// DefaultGUID is the default bookmark id returned by RegisterHostDefaults.
const DefaultGUID = "5F4E3D2C-1B0A-4998-8776-655443322110"

// Env holds the file locations of an isolated test environment.
type Env struct {
	Dir             string
	ConfigPath      string
	StorePath       string
	AssignmentsPath string
	CatalogPath     string
}

// SetupTestEnv creates a temporary directory with a config.toml whose store,
// assignment and catalog paths all point inside it. The catalog file exists
// (its content is irrelevant because plutil output is faked).
func SetupTestEnv(t *testing.T) Env {
	t.Helper()

	dir := t.TempDir()
	env := Env{
		Dir:             dir,
		ConfigPath:      filepath.Join(dir, "config.toml"),
		StorePath:       filepath.Join(dir, "DynamicProfiles", "dirprofile.json"),
		AssignmentsPath: filepath.Join(dir, "presets.json"),
		CatalogPath:     filepath.Join(dir, "ColorPresets.plist"),
	}

	content := fmt.Sprintf(`store_path = %q
assignments_path = %q
catalog_path = %q
preferences_path = %q
command_timeout_seconds = 5
log_level = "error"
`, env.StorePath, env.AssignmentsPath, env.CatalogPath, filepath.Join(dir, "com.googlecode.iterm2.plist"))

	if err := os.WriteFile(env.ConfigPath, []byte(content), 0600); err != nil {
		t.Fatalf("SetupTestEnv: write config failed: %v", err)
	}
	if err := os.WriteFile(env.CatalogPath, []byte("<plist/>"), 0600); err != nil {
		t.Fatalf("SetupTestEnv: write catalog failed: %v", err)
	}
	return env
}

// TempGitRepo creates a temporary git repository on branch "trunk" and
// returns its path. The repository is automatically cleaned up.
func TempGitRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	cmds := [][]string{
		{"git", "init", "-b", "trunk"},
		{"git", "config", "user.name", "test-user"},
		{"git", "config", "user.email", "test@example.com"},
	}

	for _, args := range cmds {
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("TempGitRepo: %s failed: %v\n%s", args[0], err, out)
		}
	}

	return dir
}

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()
	return TempFile(t, "config.toml", content)
}

// TempFile creates a temporary file with the given name and content and
// returns its path.
func TempFile(t *testing.T, name, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempFile: write failed: %v", err)
	}

	return path
}

// BookmarksJSON returns a bookmark list containing the default profile and one other.
func BookmarksJSON() string {
	return fmt.Sprintf(`[
	{
		"Name": "Default",
		"Guid": %q,
		"Columns": 80,
		"Rows": 25,
		"Normal Font": "Monaco 12",
		"Background Color": {"Red Component": 0, "Green Component": 0, "Blue Component": 0}
	},
	{
		"Name": "Other",
		"Guid": "00000000-0000-0000-0000-000000000000",
		"Columns": 120
	}
]`, DefaultGUID)
}

// CatalogJSON returns a color-preset catalog with every built-in preset name.
func CatalogJSON() string {
	return `{
	"Solarized Dark": {"Background Color": {"Red Component": 0.0, "Green Component": 0.168, "Blue Component": 0.211}, "Cursor Color": {"Red Component": 0.5}},
	"Tango Dark": {"Background Color": {"Red Component": 0.0, "Green Component": 0.0, "Blue Component": 0.0}},
	"Pastel (Dark Background)": {"Background Color": {"Red Component": 0.0, "Green Component": 0.0, "Blue Component": 0.0}},
	"Smoooooth": {"Background Color": {"Red Component": 0.078, "Green Component": 0.098, "Blue Component": 0.117}},
	"Dark Background": {"Background Color": {"Red Component": 0.0, "Green Component": 0.0, "Blue Component": 0.0}},
	"Solarized Light": {"Background Color": {"Red Component": 0.992, "Green Component": 0.964, "Blue Component": 0.890}}
}`
}

// RegisterHostDefaults registers successful host-application queries on fc:
// default bookmark id, bookmark list and color-preset catalog. The git branch
// and active-profile queries are left unregistered (and therefore fail).
func RegisterHostDefaults(fc *FakeCommander) {
	fc.Register("defaults read com.googlecode.iterm2", DefaultGUID+"\n")
	fc.Register("plutil -extract", BookmarksJSON())
	fc.Register("plutil -convert", CatalogJSON())
}
