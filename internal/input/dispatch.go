// Package input routes logical key events to game handlers.
//
// Each game instance owns one Dispatcher: a terminal, an SSH connection and
// a desktop window each build their own, so handlers registered by one
// session never see another session's keys.
package input

import (
	"time"

	"github.com/vovakirdan/fuego-arcade/internal/core"
)

// Event is a logical key transition.
type Event struct {
	Action core.Action
	Down   bool
	Repeat bool // key-down while the action is already held
	At     time.Time
}

// Handler receives events for the action it subscribed to.
type Handler func(Event)

// Subscription is a registered handler. Remove detaches it.
type Subscription struct {
	d       *Dispatcher
	action  core.Action
	handler Handler
	removed bool
}

// Remove detaches the handler. Removing twice is a no-op.
func (s *Subscription) Remove() {
	if s == nil || s.removed {
		return
	}
	s.removed = true
	subs := s.d.subs[s.action]
	for i, o := range subs {
		if o == s {
			s.d.subs[s.action] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
}

// Dispatcher fans key events out to subscribers and tracks which actions
// are held.
type Dispatcher struct {
	subs map[core.Action][]*Subscription
	held map[core.Action]bool
}

// NewDispatcher creates a dispatcher with no subscribers.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		subs: make(map[core.Action][]*Subscription),
		held: make(map[core.Action]bool),
	}
}

// On subscribes h to events for action a.
func (d *Dispatcher) On(a core.Action, h Handler) *Subscription {
	s := &Subscription{d: d, action: a, handler: h}
	d.subs[a] = append(d.subs[a], s)
	return s
}

// Dispatch delivers ev to every current subscriber of its action. Handlers
// removed by an earlier handler in the same dispatch are skipped.
func (d *Dispatcher) Dispatch(ev Event) {
	subs := d.subs[ev.Action]
	if len(subs) == 0 {
		return
	}
	snapshot := make([]*Subscription, len(subs))
	copy(snapshot, subs)
	for _, s := range snapshot {
		if !s.removed {
			s.handler(ev)
		}
	}
}

// KeyDown records a press and dispatches it. A press while the action is
// already held is marked as a repeat.
func (d *Dispatcher) KeyDown(a core.Action, at time.Time) {
	repeat := d.held[a]
	d.held[a] = true
	d.Dispatch(Event{Action: a, Down: true, Repeat: repeat, At: at})
}

// KeyUp records a release and dispatches it. Releases of actions that are
// not held are dropped.
func (d *Dispatcher) KeyUp(a core.Action, at time.Time) {
	if !d.held[a] {
		return
	}
	delete(d.held, a)
	d.Dispatch(Event{Action: a, At: at})
}

// ReleaseAll sends a key-up for every held action.
func (d *Dispatcher) ReleaseAll(at time.Time) {
	for a := range d.held {
		d.KeyUp(a, at)
	}
}

// Held reports whether action a is currently down.
func (d *Dispatcher) Held(a core.Action) bool {
	return d.held[a]
}

// Listeners returns the number of live subscriptions.
func (d *Dispatcher) Listeners() int {
	n := 0
	for _, subs := range d.subs {
		n += len(subs)
	}
	return n
}
