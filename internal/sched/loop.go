// Package sched provides the cooperative frame scheduler the games run on.
//
// A Loop is a single-threaded queue of frame callbacks and timers. The host
// (a Bubble Tea tick, an Ebiten Update) calls RunFrame once per display
// refresh; nothing in this package starts goroutines or sleeps. A Loop is
// not safe for concurrent use: every call must come from the host's event
// goroutine, which is what makes the games free of locks.
package sched

import (
	"sort"
	"time"

	"github.com/charmbracelet/log"
)

// FrameID identifies a pending frame callback.
type FrameID uint64

// TimerID identifies a pending timer.
type TimerID uint64

type timer struct {
	id TimerID
	at time.Time
	fn func()
}

// Loop runs frame callbacks and timers on the caller's goroutine.
type Loop struct {
	logger *log.Logger

	nextID uint64
	now    time.Time
	frames uint64

	pending map[FrameID]func()
	order   []FrameID
	timers  map[TimerID]*timer
}

// NewLoop creates an empty loop whose clock starts at the current time.
// A nil logger uses the package default.
func NewLoop(logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.Default()
	}
	return &Loop{
		logger:  logger,
		now:     time.Now(),
		pending: make(map[FrameID]func()),
		timers:  make(map[TimerID]*timer),
	}
}

// RequestFrame schedules fn to run once on the next RunFrame.
func (l *Loop) RequestFrame(fn func()) FrameID {
	l.nextID++
	id := FrameID(l.nextID)
	l.pending[id] = fn
	l.order = append(l.order, id)
	return id
}

// CancelFrame drops a pending frame callback. Unknown or already-run IDs
// are ignored.
func (l *Loop) CancelFrame(id FrameID) {
	delete(l.pending, id)
}

// AfterFunc schedules fn to run on the first RunFrame at or after now+d.
func (l *Loop) AfterFunc(d time.Duration, fn func()) TimerID {
	l.nextID++
	id := TimerID(l.nextID)
	l.timers[id] = &timer{id: id, at: l.now.Add(d), fn: fn}
	return id
}

// CancelTimer stops a pending timer. Returns false if it already fired or
// was cancelled.
func (l *Loop) CancelTimer(id TimerID) bool {
	if _, ok := l.timers[id]; !ok {
		return false
	}
	delete(l.timers, id)
	return true
}

// RunFrame advances the loop clock to now and runs, in order, every frame
// callback requested before this call, then every timer that is due.
// Callbacks requested while the frame runs wait for the next frame.
func (l *Loop) RunFrame(now time.Time) {
	if now.After(l.now) {
		l.now = now
	}
	l.frames++

	batch := l.order
	l.order = nil
	for _, id := range batch {
		fn, ok := l.pending[id]
		if !ok {
			continue // cancelled
		}
		delete(l.pending, id)
		l.invoke("frame", fn)
	}

	for _, t := range l.due() {
		if _, ok := l.timers[t.id]; !ok {
			continue // cancelled by an earlier timer in this batch
		}
		delete(l.timers, t.id)
		l.invoke("timer", t.fn)
	}
}

// due returns the timers whose deadline has passed, earliest first.
func (l *Loop) due() []*timer {
	var out []*timer
	for _, t := range l.timers {
		if !t.at.After(l.now) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].at.Equal(out[j].at) {
			return out[i].id < out[j].id
		}
		return out[i].at.Before(out[j].at)
	})
	return out
}

// invoke runs fn, recovering and logging a panic so one failing callback
// cannot stop the loop.
func (l *Loop) invoke(kind string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("callback panicked", "kind", kind, "frame", l.frames, "panic", r)
		}
	}()
	fn()
}

// Now returns the loop clock: the latest time passed to RunFrame.
func (l *Loop) Now() time.Time {
	return l.now
}

// Frames returns how many times RunFrame has been called.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Pending returns the number of queued frame callbacks and timers.
func (l *Loop) Pending() int {
	return len(l.pending) + len(l.timers)
}
