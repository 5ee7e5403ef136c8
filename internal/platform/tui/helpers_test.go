package tui

import (
	"path/filepath"
	"regexp"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flow/internal/core"
	"github.com/vovakirdan/tui-flow/internal/games/flow/levels"
	"github.com/vovakirdan/tui-flow/internal/games/flow/levels/formats"
	"github.com/vovakirdan/tui-flow/internal/storage"
)

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// testLevels returns two one-row levels. "line" is solved by grabbing
// the first cell and moving right twice.
func testLevels(t *testing.T) []levels.Level {
	t.Helper()
	var out []levels.Level
	for _, p := range []formats.Level{
		{ID: "line", Name: "Line", Layout: "A.A"},
		{ID: "pair", Name: "Pair", Layout: "AB\nAB"},
	} {
		l, err := levels.FromParsed(p)
		require.NoError(t, err)
		out = append(out, l)
	}
	return out
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig(levelID string) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.LevelID = levelID
	return cfg
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

// isQuit runs cmd and reports whether it asks the program to exit.
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
