// Package arcade is the game state machine shared by every game.
//
// A game supplies Rules: how the world is set up and how one tick moves it.
// The Machine owns everything else: mounting onto a surface, the Idle to
// Running to GameOver lifecycle, collision checks, the loss burst, teardown
// and restart. Each mount or restart starts a Session with a fresh ID;
// ticks scheduled for an older Session find the ID changed and do nothing.
package arcade

import (
	"errors"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fuego-arcade/internal/config"
	"github.com/vovakirdan/fuego-arcade/internal/core"
	"github.com/vovakirdan/fuego-arcade/internal/effects"
	"github.com/vovakirdan/fuego-arcade/internal/entity"
	"github.com/vovakirdan/fuego-arcade/internal/input"
	"github.com/vovakirdan/fuego-arcade/internal/scene"
	"github.com/vovakirdan/fuego-arcade/internal/sched"
)

var (
	// ErrNoSurface is returned by Mount without a rendering surface.
	ErrNoSurface = errors.New("arcade: no surface")

	// ErrNoLoop is returned by Mount without a frame loop.
	ErrNoLoop = errors.New("arcade: no frame loop")
)

// Env is what a host hands a game when mounting it.
type Env struct {
	Surface scene.Surface
	Loop    *sched.Loop
	Input   *input.Dispatcher // nil gets a private dispatcher
	Logger  *log.Logger       // nil uses the default logger
	Seed    int64
}

// Rules is the game-specific part of a Machine.
type Rules interface {
	ID() string
	Title() string

	// Setup spawns the player and the initial world and binds input
	// through s.On. It runs once per session, before the first tick.
	Setup(s *Session)

	// Integrate moves the player and the obstacles by one tick. It may
	// end the run with s.Lose, e.g. when the player leaves the field.
	Integrate(s *Session)

	// Advance spawns, despawns and scores. It runs only on ticks that
	// ended without a loss.
	Advance(s *Session)

	// LossMessage is shown when the player collides with an obstacle.
	LossMessage() string

	// Burst configures the effect fired on a loss.
	Burst() config.BurstConfig
}

// Machine runs Rules through mount, tick, loss, restart and unmount.
type Machine struct {
	rules   Rules
	env     Env
	mounted bool
	nextID  uint64
	session *Session
}

// New creates an unmounted machine.
func New(rules Rules) *Machine {
	return &Machine{rules: rules}
}

// ID returns the game ID.
func (m *Machine) ID() string { return m.rules.ID() }

// Title returns the display name.
func (m *Machine) Title() string { return m.rules.Title() }

// Mount attaches the game to env and starts a session. Mounting again on
// the same surface is a no-op; a different surface remounts.
func (m *Machine) Mount(env Env) error {
	if env.Surface == nil {
		return ErrNoSurface
	}
	if env.Loop == nil {
		return ErrNoLoop
	}
	if m.mounted {
		if env.Surface == m.env.Surface {
			return nil
		}
		m.Unmount()
	}

	if env.Input == nil {
		env.Input = input.NewDispatcher()
	}
	if env.Logger == nil {
		env.Logger = log.Default()
	}
	m.env = env
	m.mounted = true
	m.start()
	return nil
}

// Unmount tears the current session down. Calling it again, or before
// Mount, is a no-op. The final state stays readable through State.
func (m *Machine) Unmount() {
	if !m.mounted {
		return
	}
	m.mounted = false
	m.stop()
}

// Restart replaces the current session with a fresh one. It is a no-op
// while unmounted.
func (m *Machine) Restart() {
	if !m.mounted {
		return
	}
	m.stop()
	m.env.Logger.Debug("session restart", "game", m.rules.ID())
	m.start()
}

// State returns the current session's state, or the Idle state before the
// first mount.
func (m *Machine) State() core.GameState {
	if m.session == nil {
		return core.GameState{Phase: core.PhaseIdle}
	}
	return m.session.State()
}

// Session exposes the current session.
func (m *Machine) Session() *Session {
	return m.session
}

// Input returns the dispatcher the machine is bound to.
func (m *Machine) Input() *input.Dispatcher {
	return m.env.Input
}

func (m *Machine) start() {
	m.nextID++
	id := m.nextID
	logger := m.env.Logger.With("game", m.rules.ID())
	rng := rand.New(rand.NewSource(m.env.Seed + int64(id)))

	s := &Session{
		ID:         id,
		Store:      entity.NewStore(m.env.Surface, logger),
		Effects:    effects.New(m.env.Surface, m.env.Loop, rng, m.rules.Burst()),
		Rand:       rng,
		Logger:     logger,
		Loop:       m.env.Loop,
		phase:      core.PhaseIdle,
		dispatcher: m.env.Input,
	}
	m.session = s

	m.rules.Setup(s)
	s.Store.Sync()
	m.env.Surface.Render()

	s.phase = core.PhaseRunning
	s.ticker = sched.Start(m.env.Loop, func() { m.tick(id) })
	logger.Debug("session started", "session", id)
}

func (m *Machine) stop() {
	if s := m.session; s != nil && !s.closed {
		s.teardown()
		m.env.Surface.Render()
		s.Logger.Debug("session ended", "session", s.ID, "score", s.score)
	}
}

// tick advances the session with the given ID by one step.
func (m *Machine) tick(id uint64) {
	s := m.session
	if s == nil || s.ID != id || !s.Running() {
		return
	}
	s.Tick++

	m.rules.Integrate(s)
	if s.Running() {
		if hit := s.Store.Hit(); hit != nil {
			s.Lose(m.rules.LossMessage())
		}
	}
	if s.Running() {
		m.rules.Advance(s)
	}
	if s.closed {
		return
	}
	s.Store.Sync()
	m.env.Surface.Render()
}
