package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flow/internal/core"
	"github.com/vovakirdan/tui-flow/internal/games/flow"
	"github.com/vovakirdan/tui-flow/internal/storage"
)

// PlayOptions configures a PlayModel.
type PlayOptions struct {
	Store    *storage.Store // Nil disables solve records
	Theme    Theme
	Player   string
	ShowHelp bool
	Hooks    flow.Hooks

	// ScreenshotDir is where ctrl+s writes; empty means ~/.flow/screenshots.
	ScreenshotDir string

	// InSession keeps the program running when the player goes back,
	// so a parent model can show the level menu again.
	InSession bool

	// Now overrides the clock used to time solves.
	Now func() time.Time
}

// PlayModel is the Bubble Tea model for playing Flow levels.
// Every key press is one game step; there is no tick loop.
type PlayModel struct {
	game      *flow.Game
	screen    *core.Screen
	opts      PlayOptions
	theme     Theme
	keyMapper *KeyMapper
	help      help.Model
	config    core.RuntimeConfig

	started     time.Time
	recordSaved bool
	lastRecord  *storage.Record
	newBest     bool
	saveErr     error
	screenshot  string

	quitting   bool
	backToMenu bool
}

// NewPlayModel creates a play model and starts cfg.LevelID.
func NewPlayModel(game *flow.Game, cfg core.RuntimeConfig, opts PlayOptions) PlayModel {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	game.SetHooks(opts.Hooks)

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	m := PlayModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:      opts,
		theme:     opts.Theme,
		keyMapper: NewKeyMapper(),
		help:      h,
		config:    cfg,
		started:   opts.Now(),
	}
	if m.theme.Palette == nil {
		m.theme = DefaultTheme()
	}

	game.Reset(cfg)
	m.layout()
	return m
}

// Init initializes the model.
func (m PlayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil
	}
	return m, nil
}

// layout gives the game everything above the help footer.
func (m *PlayModel) layout() {
	gameH := m.config.ScreenH
	if m.opts.ShowHelp {
		gameH -= lipgloss.Height(m.help.View(m.keyMapper.Keys()))
	}
	gameH = max(gameH, 0)
	m.screen.Resize(m.config.ScreenW, gameH)
	m.game.Resize(m.config.ScreenW, gameH)
}

// handleKey processes one key press.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.screenshot, m.saveErr = m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	frame := core.NewInputFrame()
	if m.keyMapper.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		return m, tea.Quit
	}
	if frame.Empty() {
		return m, nil
	}

	state := m.game.State()
	if frame.Has(core.ActionBack) {
		if state.Solved || state.Paused {
			m.backToMenu = true
			if !m.opts.InSession {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	result := m.game.Step(frame)
	if frame.Has(core.ActionRestart) {
		m.startTimer()
	}
	if result.JustSolved {
		m.saveRecord(result.State)
	}
	return m, nil
}

// SelectLevel switches to another level and restarts the timer.
func (m *PlayModel) SelectLevel(id string) error {
	if err := m.game.SelectLevel(id); err != nil {
		return err
	}
	m.config.LevelID = id
	m.backToMenu = false
	m.startTimer()
	m.layout()
	return nil
}

func (m *PlayModel) startTimer() {
	m.started = m.opts.Now()
	m.recordSaved = false
	m.newBest = false
}

// saveRecord stores the solve once per attempt.
func (m *PlayModel) saveRecord(state core.GameState) {
	if m.recordSaved || m.opts.Store == nil {
		return
	}
	m.recordSaved = true

	rec := storage.Record{
		LevelID:  state.LevelID,
		Moves:    state.Moves,
		Duration: m.opts.Now().Sub(m.started),
		Player:   m.opts.Player,
	}
	best, hadBest, err := m.opts.Store.BestRecord(rec.LevelID)
	if err != nil {
		m.saveErr = err
		return
	}
	id, err := m.opts.Store.SaveRecord(rec)
	if err != nil {
		m.saveErr = err
		return
	}
	rec.ID = id
	m.lastRecord = &rec

	if !hadBest || beats(rec, best) {
		m.newBest = true
		m.game.SetStatus(fmt.Sprintf("New best! %d moves in %s", rec.Moves, formatDuration(rec.Duration)))
	}
}

// beats reports whether a ranks above b: fewer moves, then less time.
func beats(a, b storage.Record) bool {
	if a.Moves != b.Moves {
		return a.Moves < b.Moves
	}
	return a.Duration < b.Duration
}

// saveScreenshot writes the plain-text board to the screenshot directory.
func (m PlayModel) saveScreenshot() (string, error) {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("screenshot: %w", err)
		}
		dir = filepath.Join(home, ".flow", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	snap := m.game.Snapshot()
	timestamp := m.opts.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", snap.LevelID, timestamp))
	if err := os.WriteFile(path, []byte(snap.Text()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the game and the help footer.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen, &m.theme)
	if m.opts.ShowHelp {
		view += "\n" + m.theme.Help.Render(m.help.View(m.keyMapper.Keys()))
	}
	return view
}

// Game returns the game being played.
func (m PlayModel) Game() *flow.Game {
	return m.game
}

// LastRecord returns the record saved for the latest solve, if any.
func (m PlayModel) LastRecord() (storage.Record, bool) {
	if m.lastRecord == nil {
		return storage.Record{}, false
	}
	return *m.lastRecord, true
}

// NewBest reports whether the latest solve beat the level's previous best.
func (m PlayModel) NewBest() bool {
	return m.newBest
}

// Err returns the last record or screenshot error.
func (m PlayModel) Err() error {
	return m.saveErr
}

// Screenshot returns the path of the last screenshot written.
func (m PlayModel) Screenshot() string {
	return m.screenshot
}

// IsQuitting returns true if user requested to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the level menu.
func (m PlayModel) BackToMenu() bool {
	return m.backToMenu
}

// RunPlay runs a standalone play session.
// It reports whether the player asked to go back to the level menu.
func RunPlay(game *flow.Game, cfg core.RuntimeConfig, opts PlayOptions) (back bool, err error) {
	opts.InSession = false
	model := NewPlayModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(PlayModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
