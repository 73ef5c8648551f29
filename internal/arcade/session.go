package arcade

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fuego-arcade/internal/core"
	"github.com/vovakirdan/fuego-arcade/internal/effects"
	"github.com/vovakirdan/fuego-arcade/internal/entity"
	"github.com/vovakirdan/fuego-arcade/internal/input"
	"github.com/vovakirdan/fuego-arcade/internal/sched"
)

// Session is one run of a game, from mount or restart until teardown.
// Everything a run allocates hangs off its Session, so teardown is a
// matter of releasing these fields.
type Session struct {
	ID      uint64
	Store   *entity.Store
	Effects *effects.Effects
	Rand    *rand.Rand
	Logger  *log.Logger
	Loop    *sched.Loop

	// Tick counts completed simulation steps.
	Tick uint64

	phase   core.Phase
	score   int
	message string

	dispatcher *input.Dispatcher
	ticker     *sched.Handle
	subs       []*input.Subscription
	closed     bool
}

// Phase returns the session phase.
func (s *Session) Phase() core.Phase { return s.phase }

// Score returns the session score.
func (s *Session) Score() int { return s.score }

// Message returns the loss message, empty while running.
func (s *Session) Message() string { return s.message }

// Running reports whether the simulation is live.
func (s *Session) Running() bool {
	return s.phase == core.PhaseRunning && !s.closed
}

// State returns a snapshot for the platform.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:   s.score,
		Phase:   s.phase,
		Message: s.message,
		Session: s.ID,
	}
}

// Lose ends the run: it records the message, fires the burst at the
// player, and stops the ticker. Only the first call has an effect.
func (s *Session) Lose(msg string) {
	if !s.Running() {
		return
	}
	s.phase = core.PhaseGameOver
	s.message = msg
	s.ticker.Cancel()

	if p := s.Store.Player(); p != nil {
		if err := s.Effects.Burst(p.Pos); err != nil {
			s.Logger.Warn("loss burst skipped", "session", s.ID, "err", err)
		}
	}
	s.Logger.Info("game over", "session", s.ID, "score", s.score, "ticks", s.Tick)
}

// Consume scores an obstacle once. It reports whether the score changed.
func (s *Session) Consume(e *entity.Entity) bool {
	if !s.Running() || e == nil || e.Consumed {
		return false
	}
	e.Consumed = true
	s.score++
	return true
}

// On subscribes h to an action for the lifetime of the session. Events
// arriving after the run has ended are dropped.
func (s *Session) On(a core.Action, h input.Handler) {
	sub := s.dispatcher.On(a, func(ev input.Event) {
		if s.Running() {
			h(ev)
		}
	})
	s.subs = append(s.subs, sub)
}

// teardown releases the session's resources. Safe to call more than once
// and from inside a tick.
func (s *Session) teardown() {
	if s.closed {
		return
	}
	s.closed = true
	s.ticker.Cancel()
	for _, sub := range s.subs {
		sub.Remove()
	}
	s.subs = nil
	s.Effects.Close()
	s.Store.Clear()
}
