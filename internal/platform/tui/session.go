package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flow/internal/core"
	"github.com/vovakirdan/tui-flow/internal/games/flow"
	"github.com/vovakirdan/tui-flow/internal/games/flow/levels"
	"github.com/vovakirdan/tui-flow/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenPlay
	screenRecords
)

// SessionModel manages the full session flow: menu -> level -> menu.
// This is the top-level model used for SSH sessions and `flow menu`.
type SessionModel struct {
	levels   []levels.Level
	store    *storage.Store
	config   core.RuntimeConfig
	opts     PlayOptions
	current  sessionScreen
	menu     LevelMenuModel
	play     *PlayModel
	records  RecordsModel
	lastID   string
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(lvls []levels.Level, cfg core.RuntimeConfig, opts PlayOptions) SessionModel {
	opts.InSession = true
	if opts.Theme.Palette == nil {
		opts.Theme = DefaultTheme()
	}
	return SessionModel{
		levels: lvls,
		store:  opts.Store,
		config: cfg,
		opts:   opts,
		menu:   NewLevelMenuModel(lvls, opts.Store, opts.Theme, cfg.ScreenW, cfg.ScreenH),
		lastID: cfg.LevelID,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenPlay:
		return m.updatePlay(msg)
	case screenRecords:
		return m.updateRecords(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates while the level picker is shown.
// The picker ends itself with tea.Quit, so its command is dropped on
// every transition.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(LevelMenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsRecords():
		m.records = NewRecordsModel(m.levels, m.store, m.opts.Theme, m.lastID, m.config.ScreenW, m.config.ScreenH)
		m.current = screenRecords
		return m, m.records.Init()

	case m.menu.Selected() != "":
		m.lastID = m.menu.Selected()
		cfg := m.config
		cfg.LevelID = m.lastID
		play := NewPlayModel(flow.New(m.levels), cfg, m.opts)
		m.play = &play
		m.current = screenPlay
		return m, m.play.Init()

	case m.menu.WantsBack():
		// Nothing above the picker; stay on it.
		return m.showMenu()
	}

	return m, cmd
}

// updatePlay handles updates while a level is in play.
func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.play.Update(msg)
	if playModel, ok := newModel.(PlayModel); ok {
		m.play = &playModel
	}

	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.play.BackToMenu() {
		m.play = nil
		return m.showMenu()
	}
	return m, cmd
}

// updateRecords handles updates while the records board is shown.
func (m SessionModel) updateRecords(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.records.Update(msg)
	if recordsModel, ok := newModel.(RecordsModel); ok {
		m.records = recordsModel
	}

	if m.records.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.records.IsGoingBack() {
		return m.showMenu()
	}
	return m, cmd
}

// showMenu rebuilds the picker so best results are current.
func (m SessionModel) showMenu() (tea.Model, tea.Cmd) {
	m.menu = NewLevelMenuModel(m.levels, m.store, m.opts.Theme, m.config.ScreenW, m.config.ScreenH)
	for i, l := range m.levels {
		if l.ID == m.lastID {
			m.menu.cursor = i
			m.menu.updateScroll()
		}
	}
	m.current = screenMenu
	return m, m.menu.Init()
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenPlay:
		return m.play.View()
	case screenRecords:
		return m.records.View()
	default:
		return m.menu.View()
	}
}

// Playing returns the active play model, or nil outside a level.
func (m SessionModel) Playing() *PlayModel {
	return m.play
}

// RunSession runs a local session until the player quits.
func RunSession(lvls []levels.Level, cfg core.RuntimeConfig, opts PlayOptions) error {
	p := tea.NewProgram(
		NewSessionModel(lvls, cfg, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
