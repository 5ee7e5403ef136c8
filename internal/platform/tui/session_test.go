package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sendSession(m SessionModel, msgs ...tea.Msg) (SessionModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(SessionModel)
	}
	return m, cmd
}

func TestSessionMenuPlayMenu(t *testing.T) {
	store := openStore(t)
	m := NewSessionModel(testLevels(t), testConfig(""), PlayOptions{Store: store, Player: "ana"})
	assert.Equal(t, screenMenu, m.current)

	m, cmd := sendSession(m, keyEnter)
	require.Equal(t, screenPlay, m.current)
	assert.False(t, isQuit(cmd), "picker quit is swallowed by the session")
	require.NotNil(t, m.Playing())
	assert.Equal(t, "line", m.Playing().Game().State().LevelID)

	m, _ = sendSession(m, keySpace, keyRight, keyRight)
	assert.True(t, m.Playing().Game().State().Solved)
	assert.Contains(t, stripANSI(m.View()), "Solved!")

	m, cmd = sendSession(m, keyEsc)
	assert.Equal(t, screenMenu, m.current)
	assert.Nil(t, m.Playing())
	assert.False(t, isQuit(cmd))
	assert.Contains(t, stripANSI(m.View()), "best 2", "menu reloads best results")

	records, err := store.TopRecords("line", 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ana", records[0].Player)
}

func TestSessionRecords(t *testing.T) {
	m := NewSessionModel(testLevels(t), testConfig(""), PlayOptions{})

	m, _ = sendSession(m, keyDown, keyEnter, keyEsc)
	require.Equal(t, screenPlay, m.current, "back is ignored while playing")

	m, _ = sendSession(m, runes("p"), keyEsc, keyTab)
	require.Equal(t, screenRecords, m.current)
	lvl, _ := m.records.CurrentLevel()
	assert.Equal(t, "pair", lvl.ID, "records open at the last played level")

	m, _ = sendSession(m, keyEsc)
	assert.Equal(t, screenMenu, m.current)
	assert.Equal(t, 1, m.menu.cursor, "menu keeps the last played level")
}

func TestSessionMenuBackStays(t *testing.T) {
	m := NewSessionModel(testLevels(t), testConfig(""), PlayOptions{})
	m, cmd := sendSession(m, keyEsc)
	assert.Equal(t, screenMenu, m.current)
	assert.False(t, isQuit(cmd))
	assert.False(t, m.quitting)
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(testLevels(t), testConfig(""), PlayOptions{})
	m, cmd := sendSession(m, keyEnter, runes("q"))
	assert.True(t, isQuit(cmd))
	assert.Empty(t, m.View())
}

func TestSessionResize(t *testing.T) {
	m := NewSessionModel(testLevels(t), testConfig(""), PlayOptions{})
	m, _ = sendSession(m, tea.WindowSizeMsg{Width: 120, Height: 40}, keyEnter)
	assert.Equal(t, 120, m.Playing().screen.Width())
	assert.Equal(t, 40, m.Playing().screen.Height())
}
