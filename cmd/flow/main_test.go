package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flow/internal/storage"
)

var testLevelsDir, _ = filepath.Abs(filepath.Join("..", "..", "internal", "games", "flow", "testdata", "levels"))

// execute runs the root command in an isolated home and working directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	flagConfig, flagLevels, flagDBPath, flagTheme, flagVerbose = "", "", "", "", false
	flagShowLayout, flagExportYAML, flagDefaultConfig = false, false, false
	flagRecordsLimit, flagRecordsClear, flagRecordsRecent = 10, false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListBuiltin(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "03-classic")
	assert.Contains(t, out, "6x6")
	assert.Contains(t, out, "06-marathon")
}

func TestListDirectory(t *testing.T) {
	out, err := execute(t, "list", "--levels", testLevelsDir)
	require.NoError(t, err)
	assert.Contains(t, out, "lvl01")
	assert.Contains(t, out, "Intro")
	assert.NotContains(t, out, "03-classic")
}

func TestCheck(t *testing.T) {
	good := filepath.Join(testLevelsDir, "lvl01.yaml")
	bad := filepath.Join(testLevelsDir, "broken-unpaired.yaml")

	out, err := execute(t, "check", "--layout", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok    "+good+"  (lvl01, 3x3, 2 flows, 5 empty)")
	assert.Contains(t, out, "┌───────┐-")

	out, err = execute(t, "check", good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out, "FAIL  "+bad)
}

func TestCheckExportsYAML(t *testing.T) {
	txt := filepath.Join(testLevelsDir, "lvl02.txt")

	out, err := execute(t, "check", "--yaml", txt)
	require.NoError(t, err)
	assert.Contains(t, out, "# "+txt+"\n")
	assert.Contains(t, out, "id: lvl02\n")
	assert.Contains(t, out, "layout: |\n")
	assert.Contains(t, out, "A..A\n")
	assert.Contains(t, out, "B..B\n")
	assert.NotContains(t, out, "ok    ")

	yamlPath := filepath.Join(t.TempDir(), "lvl02.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(strings.SplitN(out, "\n", 2)[1]), 0o644))
	out, err = execute(t, "check", yamlPath)
	require.NoError(t, err)
	assert.Contains(t, out, "(lvl02, 4x2, 2 flows, 4 empty)")
}

func TestCompleteLevelIDs(t *testing.T) {
	out, err := execute(t, "__complete", "play", "")
	require.NoError(t, err)
	assert.Contains(t, out, "01-warmup\n")
	assert.Contains(t, out, "06-marathon\n")

	out, err = execute(t, "__complete", "records", "--levels", testLevelsDir, "")
	require.NoError(t, err)
	assert.Contains(t, out, "lvl01\n")
	assert.NotContains(t, out, "03-classic")

	out, err = execute(t, "__complete", "play", "01-warmup", "")
	require.NoError(t, err)
	assert.NotContains(t, out, "02-crossroads")
}

func TestRecordsText(t *testing.T) {
	db := filepath.Join(t.TempDir(), "records.db")

	out, err := execute(t, "records", "03-classic", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No solves recorded yet.")

	out, err = execute(t, "records", "03-classic", "--db", db, "--clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared records for 03-classic")
}

func TestRecordsRecent(t *testing.T) {
	db := filepath.Join(t.TempDir(), "records.db")
	store, err := storage.Open(db)
	require.NoError(t, err)
	_, err = store.SaveRecord(storage.Record{LevelID: "01-warmup", Moves: 7, Duration: 12 * time.Second, Player: "ada"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	out, err := execute(t, "records", "--recent", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "01-warmup")
	assert.Contains(t, out, "ada")
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config", "--theme", "neon")
	require.NoError(t, err)
	assert.Contains(t, out, "theme: neon")

	_, err = execute(t, "config", "--theme", "sepia")
	assert.Error(t, err)

	out, err = execute(t, "config", "--default")
	require.NoError(t, err)
	assert.Contains(t, out, "show_help: true")
}
