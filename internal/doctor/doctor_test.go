package doctor_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/dirprofile/internal/config"
	"github.com/hbjs97/dirprofile/internal/doctor"
	"github.com/hbjs97/dirprofile/internal/iterm"
	"github.com/hbjs97/dirprofile/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func find(t *testing.T, results []doctor.DiagResult, name string) doctor.DiagResult {
	t.Helper()
	for _, r := range results {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("no result named %q", name)
	return doctor.DiagResult{}
}

func TestCheckBinaries_AllPresent(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("which", "/usr/bin/x\n")

	results := doctor.CheckBinaries(context.Background(), fake)
	require.Len(t, results, 4)
	for _, r := range results {
		assert.Equal(t, doctor.StatusOK, r.Status, "check %s should be OK", r.Name)
	}
}

func TestCheckBinaries_Missing(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("which", "/usr/bin/x\n")
	fake.RegisterFailure("which plutil", "")
	fake.RegisterFailure("which git", "")

	results := doctor.CheckBinaries(context.Background(), fake)

	plutil := find(t, results, "plutil")
	assert.Equal(t, doctor.StatusFail, plutil.Status)
	assert.NotEmpty(t, plutil.Fix)

	git := find(t, results, "git")
	assert.Equal(t, doctor.StatusWarn, git.Status)
}

func TestCheckCatalog(t *testing.T) {
	path := testutil.TempFile(t, "ColorPresets.plist", "<plist/>")
	assert.Equal(t, doctor.StatusOK, doctor.CheckCatalog(path).Status)

	missing := doctor.CheckCatalog(filepath.Join(t.TempDir(), "missing.plist"))
	assert.Equal(t, doctor.StatusFail, missing.Status)
	assert.Contains(t, missing.Fix, "catalog_path")
}

func TestCheckDefaultProfile(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("defaults read", testutil.DefaultGUID+"\n")
	r := doctor.CheckDefaultProfile(context.Background(), iterm.NewAdapter(fake, "/prefs.plist"))
	assert.Equal(t, doctor.StatusOK, r.Status)
	assert.Equal(t, testutil.DefaultGUID, r.Message)

	fake = testutil.NewFakeCommander()
	fake.RegisterFailure("defaults read", "does not exist")
	r = doctor.CheckDefaultProfile(context.Background(), iterm.NewAdapter(fake, "/prefs.plist"))
	assert.Equal(t, doctor.StatusFail, r.Status)
}

func TestCheckStoreDir(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, doctor.StatusOK, doctor.CheckStoreDir(filepath.Join(dir, "dirprofile.json")).Status)
	assert.Equal(t, doctor.StatusWarn, doctor.CheckStoreDir(filepath.Join(dir, "missing", "dirprofile.json")).Status)
}

func TestRunAll(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	t.Setenv("HOME", env.Dir)
	cfg, err := config.Load(env.ConfigPath)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.StorePath), 0700))

	fake := testutil.NewFakeCommander()
	fake.DefaultResponse = &testutil.Response{Stdout: "ok", Success: true}

	results := doctor.RunAll(context.Background(), fake, cfg)
	assert.Len(t, results, 7)
	for _, r := range results {
		assert.NotEmpty(t, r.Name)
		assert.Equal(t, doctor.StatusOK, r.Status, r.Name)
	}
}
