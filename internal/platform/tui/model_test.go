package tui

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fuego-arcade/internal/config"
	"github.com/vovakirdan/fuego-arcade/internal/core"
	"github.com/vovakirdan/fuego-arcade/internal/games/dodger"
	"github.com/vovakirdan/fuego-arcade/internal/registry"
	"github.com/vovakirdan/fuego-arcade/internal/scene"
)

func newTestModel(t *testing.T) (Model, *dodger.Game) {
	t.Helper()
	cfg := config.DefaultDodgerConfig()
	cfg.Obstacles.SpawnChance = 0
	cfg.Input.Mode = config.InputStep
	g := dodger.New(cfg)

	m, err := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m, g
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGameActionMapping(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeft},
		{"a", keyRunes("a"), core.ActionMoveLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRight},
		{"d", keyRunes("d"), core.ActionMoveRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"r", keyRunes("r"), core.ActionRestart},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack},
		{"q", keyRunes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"x", keyRunes("x"), core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.GameAction(tt.msg); got != tt.want {
				t.Errorf("GameAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMenuActionMapping(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{keyRunes("k"), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{keyRunes("j"), core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{keyRunes("b"), core.ActionBack},
		{keyRunes("q"), core.ActionQuit},
	}
	for _, tt := range tests {
		if got := keys.MenuAction(tt.msg); got != tt.want {
			t.Errorf("MenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestKeyMovesPlayer(t *testing.T) {
	m, g := newTestModel(t)
	start := g.Player().Pos.X

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyRight}, time.Now())
	m = next.(Model)

	if x := g.Player().Pos.X; x <= start {
		t.Errorf("x = %v after right, expected more than %v", x, start)
	}
	if !m.input.Held(core.ActionMoveRight) {
		t.Error("right should be held until its autorepeat stops")
	}
}

func TestStaleKeyReleased(t *testing.T) {
	m, _ := newTestModel(t)
	now := time.Now()

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyLeft}, now)
	m = next.(Model)
	next, _ = m.handleTick(now.Add(releaseAfter / 2))
	m = next.(Model)
	if !m.input.Held(core.ActionMoveLeft) {
		t.Fatal("key released before its hold window")
	}

	next, _ = m.handleTick(now.Add(2 * releaseAfter))
	m = next.(Model)
	if m.input.Held(core.ActionMoveLeft) {
		t.Error("key still held after its autorepeat stopped")
	}
}

func TestTickRunsFrame(t *testing.T) {
	m, g := newTestModel(t)

	next, cmd := m.handleTick(time.Now())
	m = next.(Model)

	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
	if tick := g.Session().Tick; tick != 1 {
		t.Errorf("session tick = %d, expected 1", tick)
	}
	if m.loop.Frames() != 1 {
		t.Errorf("frames = %d, expected 1", m.loop.Frames())
	}
}

func TestRestartKey(t *testing.T) {
	m, g := newTestModel(t)
	first := g.State().Session

	next, _ := m.handleKey(keyRunes("r"), time.Now())
	m = next.(Model)

	st := g.State()
	if st.Session == first {
		t.Error("restart kept the old session")
	}
	if !st.Running() {
		t.Errorf("phase after restart = %v", st.Phase)
	}
	if m.IsQuitting() {
		t.Error("restart should not quit")
	}
}

func TestQuitUnmounts(t *testing.T) {
	m, g := newTestModel(t)

	next, cmd := m.handleKey(keyRunes("q"), time.Now())
	m = next.(Model)

	if !m.IsQuitting() || cmd == nil {
		t.Fatal("q did not quit")
	}
	if g.Session().Running() {
		t.Error("session still running after quit")
	}
	if m.input.Listeners() != 0 {
		t.Errorf("%d listeners left after quit", m.input.Listeners())
	}
	if n := m.scene.Live(); n != 0 {
		t.Errorf("%d primitives left after quit", n)
	}
	if _, err := m.scene.CreatePrimitive(scene.Primitive{Kind: scene.KindBox}, core.V(0, 0)); !errors.Is(err, scene.ErrClosed) {
		t.Errorf("scene still open after quit: err = %v", err)
	}
}

func TestBackReturnsToMenuWhenEmbedded(t *testing.T) {
	m, _ := newTestModel(t)
	m.embedded = true

	next, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEscape}, time.Now())
	m = next.(Model)

	if !m.BackToMenu() || m.IsQuitting() {
		t.Errorf("back = %v quitting = %v, expected back to menu", m.BackToMenu(), m.IsQuitting())
	}
	if cmd != nil {
		t.Error("back to menu should not quit the program")
	}
	if n := m.scene.Live(); n != 0 {
		t.Errorf("%d primitives left after leaving the game", n)
	}
}

func TestResizeKeepsHUDRows(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	if w, h := m.scene.Size(); w != 120 || h != 40-hudLines {
		t.Errorf("field = %dx%d, expected 120x%d", w, h, 40-hudLines)
	}
}

func TestViewShowsHUD(t *testing.T) {
	m, _ := newTestModel(t)
	m.scene.Render()

	view := m.View()
	for _, want := range []string{"Falling Blocks", "Score: 0"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	m := NewSessionModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, registry.Options{}, log.New(io.Discard))
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SessionModel)
	if m.game == nil {
		t.Fatal("enter did not start a game")
	}
	return m
}

func TestSessionCloseTearsDownRunningGame(t *testing.T) {
	m := newTestSession(t)
	game, sc := m.game, m.game.scene
	if sc.Live() == 0 {
		t.Fatal("expected live primitives while playing")
	}

	// The connection drops mid-game: no key reached the model.
	m.Close()
	m.Close()

	if n := sc.Live(); n != 0 {
		t.Errorf("%d primitives left after the connection closed", n)
	}
	if n := game.input.Listeners(); n != 0 {
		t.Errorf("%d listeners left after the connection closed", n)
	}
}

func TestSessionBackToMenuReleasesGame(t *testing.T) {
	m := newTestSession(t)
	sc := m.game.scene

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = next.(SessionModel)

	if m.game != nil {
		t.Fatal("escape did not return to the menu")
	}
	if n := sc.Live(); n != 0 {
		t.Errorf("%d primitives left after returning to the menu", n)
	}
	if m.active.model != nil {
		t.Error("session still tracks the finished game")
	}
	m.Close()
}

func TestSessionCloseWithoutGame(t *testing.T) {
	m := NewSessionModel(core.DefaultConfig(), registry.Options{}, log.New(io.Discard))
	m.Close()
}

func TestViewShowsLossBanner(t *testing.T) {
	m, g := newTestModel(t)
	g.Session().Lose("crashed")
	m.scene.Render()

	view := m.View()
	if !strings.Contains(view, "crashed") {
		t.Errorf("view missing the loss message:\n%s", view)
	}
	if !strings.Contains(view, "GAME OVER") {
		t.Error("HUD does not flag the loss")
	}
	if !strings.ContainsRune(view, '┌') {
		t.Error("loss message not boxed")
	}
}
