package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flow/internal/games/flow/levels"
	"github.com/vovakirdan/tui-flow/internal/storage"
)

// menuChrome is the number of lines used by the title, subtitle and footer.
const menuChrome = 10

// LevelMenuModel is the level picker shown before play.
type LevelMenuModel struct {
	levels       []levels.Level
	best         map[string]*storage.LevelStats
	cursor       int
	scrollOffset int
	width        int
	height       int
	keyMapper    *KeyMapper
	theme        Theme

	selected    string
	quitting    bool
	back        bool
	wantRecords bool
}

// NewLevelMenuModel creates a level picker. A nil store hides the best column.
func NewLevelMenuModel(lvls []levels.Level, store *storage.Store, theme Theme, width, height int) LevelMenuModel {
	m := LevelMenuModel{
		levels:    lvls,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		theme:     theme,
	}
	if store != nil {
		if stats, err := store.AllLevelStats(); err == nil {
			m.best = stats
		}
	}
	return m
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		if len(m.levels) > 0 {
			m.selected = m.levels[m.cursor].ID
			return m, tea.Quit
		}
	case MenuActionRecords:
		m.wantRecords = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

func (m LevelMenuModel) visibleItems() int {
	return max(m.height-menuChrome, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *LevelMenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the level selection.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("F L O W"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Select a level:"), m.width))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("No levels found"), m.width))
		b.WriteString("\n")
	}

	start := m.scrollOffset
	end := min(start+m.visibleItems(), len(m.levels))

	if start > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		b.WriteString(centerText(m.renderItem(i), m.width))
		b.WriteString("\n")
	}
	if end < len(m.levels) {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := m.theme.HUDControls.Render("Up/Down: Navigate  |  Enter: Play  |  Tab: Records  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// renderItem formats one level row: number, name, size and best result.
func (m LevelMenuModel) renderItem(i int) string {
	lvl := m.levels[i]
	stats := lvl.Stats()

	cursor := "  "
	style := m.theme.MenuItemNormal
	if i == m.cursor {
		cursor = "> "
		style = m.theme.MenuItemActive
	}

	line := fmt.Sprintf("%s%2d. %-16s %dx%d  %d flows", cursor, i+1, lvl.Name, stats.Width, stats.Height, stats.Flows)
	if best, ok := m.best[lvl.ID]; ok && best.Solves > 0 {
		solved := m.theme.MenuItemSolved
		if i == m.cursor {
			solved = solved.Bold(true)
		}
		return style.Render(line) + solved.Render(fmt.Sprintf("  best %d", best.BestMoves))
	}
	return style.Render(line)
}

// Selected returns the chosen level id, or "" while still choosing.
func (m LevelMenuModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}

// WantsRecords returns true if user asked for the records board.
func (m LevelMenuModel) WantsRecords() bool {
	return m.wantRecords
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
