package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useSQLite points the CLI at a fresh SQLite file
func useSQLite(t *testing.T) {
	t.Helper()
	t.Setenv("STORAGE", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "lootwheel.db"))
	t.Setenv("GUILD_ID", "guild-1")
	t.Setenv("HTTP_ADDR", "")
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "lootctl dev")
}

func TestSeedShowAndHistory(t *testing.T) {
	useSQLite(t)

	out, err := runCLI(t, "seed", "../../configs/seed.example.yaml")
	require.NoError(t, err)
	assert.Equal(t, "members: 24 added, 0 skipped\nitems: 5 added, 0 skipped\n", out)

	out, err = runCLI(t, "seed", "../../configs/seed.example.yaml")
	require.NoError(t, err)
	assert.Equal(t, "members: 0 added, 24 skipped\nitems: 0 added, 5 skipped\n", out)

	out, err = runCLI(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "CoC [legendary]")
	assert.Contains(t, out, "up now:")

	out, err = runCLI(t, "history")
	require.NoError(t, err)
	assert.Equal(t, "no actions recorded\n", out)
}

func TestExportImport(t *testing.T) {
	useSQLite(t)

	_, err := runCLI(t, "seed", "../../configs/seed.example.yaml")
	require.NoError(t, err)

	snapshot := filepath.Join(t.TempDir(), "snapshot.json")
	_, err = runCLI(t, "export", "--out", snapshot)
	require.NoError(t, err)

	out, err := runCLI(t, "--guild", "guild-2", "import", snapshot)
	require.NoError(t, err)
	assert.Equal(t, "imported 5 item(s) and 24 member(s) into guild-2\n", out)

	out, err = runCLI(t, "--guild", "guild-2", "export")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"), out)
}

func TestResetDaily(t *testing.T) {
	useSQLite(t)

	_, err := runCLI(t, "seed", "../../configs/seed.example.yaml")
	require.NoError(t, err)

	out, err := runCLI(t, "reset-daily")
	require.NoError(t, err)
	assert.Equal(t, "reset guild-1, 0 action(s) were counted today\n", out)

	out, err = runCLI(t, "reset-daily", "--all")
	require.NoError(t, err)
	assert.Equal(t, "reset 1 guild(s)\n", out)
}

func TestGuildRequired(t *testing.T) {
	useSQLite(t)
	t.Setenv("GUILD_ID", "")

	_, err := runCLI(t, "show")
	assert.ErrorContains(t, err, "a guild is required")
}

func TestImportRejectsBadSnapshot(t *testing.T) {
	useSQLite(t)

	_, err := runCLI(t, "import", "does-not-exist.json")
	assert.ErrorContains(t, err, "read snapshot")
}
