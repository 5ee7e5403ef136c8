package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-flow/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runes("w"), core.ActionUp, false},
		{"k", runes("k"), core.ActionUp, false},
		{"arrow down", keyDown, core.ActionDown, false},
		{"s", runes("s"), core.ActionDown, false},
		{"a", runes("a"), core.ActionLeft, false},
		{"h", runes("h"), core.ActionLeft, false},
		{"arrow right", keyRight, core.ActionRight, false},
		{"l", runes("l"), core.ActionRight, false},
		{"space", keySpace, core.ActionConfirm, false},
		{"enter", keyEnter, core.ActionConfirm, false},
		{"r", runes("r"), core.ActionRestart, false},
		{"p", runes("p"), core.ActionPause, false},
		{"esc", keyEsc, core.ActionBack, false},
		{"b", runes("b"), core.ActionBack, false},
		{"q", runes("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runes("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()

	frame := core.NewInputFrame()
	assert.False(t, km.MapKeyToFrame(keyRight, &frame))
	assert.True(t, frame.Has(core.ActionRight))

	frame = core.NewInputFrame()
	assert.False(t, km.MapKeyToFrame(runes("x"), &frame))
	assert.True(t, frame.Empty())
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runes("k"), MenuActionUp},
		{keyDown, MenuActionDown},
		{keyEnter, MenuActionSelect},
		{keySpace, MenuActionSelect},
		{keyEsc, MenuActionBack},
		{keyTab, MenuActionRecords},
		{runes("q"), MenuActionQuit},
		{runes("x"), MenuActionNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, km.MapKeyToMenuAction(tt.msg), tt.msg.String())
	}
}
