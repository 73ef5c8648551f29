package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fuego-arcade/internal/arcade"
	"github.com/vovakirdan/fuego-arcade/internal/core"
	"github.com/vovakirdan/fuego-arcade/internal/input"
	"github.com/vovakirdan/fuego-arcade/internal/registry"
	"github.com/vovakirdan/fuego-arcade/internal/scene"
	"github.com/vovakirdan/fuego-arcade/internal/sched"
)

// releaseAfter is how long a gameplay key counts as held after its last
// press. Terminals report no key releases, only presses and autorepeats.
const releaseAfter = 120 * time.Millisecond

// hudLines is the number of rows below the play field.
const hudLines = 2

// Model is the Bubble Tea model for running one arcade game. It owns the
// surface, scheduler loop and input dispatcher the game is mounted on.
type Model struct {
	game   registry.Game
	scene  *scene.Scene
	loop   *sched.Loop
	input  *input.Dispatcher
	keys   KeyMap
	help   help.Model
	logger *log.Logger
	config core.RuntimeConfig

	held       map[core.Action]time.Time // last press per held gameplay action
	embedded   bool                      // back returns to a menu instead of quitting
	quitting   bool
	backToMenu bool
}

// NewModel mounts the game on a fresh surface sized to the terminal.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	m := Model{
		game:   game,
		scene:  scene.New(cfg.ScreenW, fieldHeight(cfg.ScreenH), scene.TerminalViewport(halfHeight(game))),
		loop:   sched.NewLoop(logger),
		input:  input.NewDispatcher(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		config: cfg,
		held:   make(map[core.Action]time.Time),
	}

	err := game.Mount(arcade.Env{
		Surface: m.scene,
		Loop:    m.loop,
		Input:   m.input,
		Logger:  logger,
		Seed:    cfg.Seed,
	})
	if err != nil {
		return Model{}, fmt.Errorf("tui: mount %s: %w", game.ID(), err)
	}
	return m, nil
}

// halfHeight returns the vertical extent the game wants on screen.
func halfHeight(game registry.Game) float64 {
	if w, ok := game.(interface{ HalfHeight() float64 }); ok {
		return w.HalfHeight()
	}
	return 4
}

func fieldHeight(h int) int {
	return max(h-hudLines, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey routes keys either to the arcade controls or to the game's
// input dispatcher.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Shot) {
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.GameAction(msg); a {
	case core.ActionQuit:
		m.teardown(now)
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.teardown(now)
		if !m.embedded {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true

	case core.ActionRestart:
		m.input.ReleaseAll(now)
		clear(m.held)
		m.game.Restart()

	default:
		if a.Gameplay() {
			m.input.KeyDown(a, now)
			m.held[a] = now
		}
	}

	return m, nil
}

// handleResize keeps the vertical extent fixed and lets the game field
// widen or narrow with the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.scene.Resize(msg.Width, fieldHeight(msg.Height))
	m.scene.Render()
	return m, nil
}

// handleTick releases keys whose autorepeat stopped, runs one scheduler
// frame and redraws so expired effects disappear even after a loss.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}
	m.releaseStale(now)
	m.loop.RunFrame(now)
	m.scene.Render()
	return m, tickCmd(m.config.TickRate)
}

// teardown releases held keys, unmounts the game and frees the scene.
// Repeated calls are no-ops.
func (m Model) teardown(now time.Time) {
	m.input.ReleaseAll(now)
	m.game.Unmount()
	m.scene.Close()
}

func (m Model) releaseStale(now time.Time) {
	for a, at := range m.held {
		if now.Sub(at) >= releaseAfter {
			m.input.KeyUp(a, now)
			delete(m.held, a)
		}
	}
}

// saveScreenshot saves the current frame to a file.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.scene.Frame().String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	frame := m.scene.Frame()
	if st := m.game.State(); st.GameOver() {
		drawBanner(frame, st.Message, core.ColorBrightRed)
	}
	return RenderScreen(frame) + "\n" + m.hud()
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(game, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	model.teardown(time.Now())
	return err
}
