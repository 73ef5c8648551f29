package sched

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func newTestLoop() *Loop {
	return NewLoop(log.New(io.Discard))
}

func TestFrameCallbacksRunOnce(t *testing.T) {
	l := newTestLoop()
	calls := 0
	l.RequestFrame(func() { calls++ })

	l.RunFrame(l.Now())
	l.RunFrame(l.Now())

	if calls != 1 {
		t.Errorf("frame callback ran %d times, expected 1", calls)
	}
	if l.Pending() != 0 {
		t.Errorf("Pending() = %d after run, expected 0", l.Pending())
	}
}

func TestFrameRequestedDuringFrameWaits(t *testing.T) {
	l := newTestLoop()
	var order []string
	l.RequestFrame(func() {
		order = append(order, "first")
		l.RequestFrame(func() { order = append(order, "second") })
	})

	l.RunFrame(l.Now())
	if len(order) != 1 {
		t.Fatalf("nested request should wait for the next frame, got %v", order)
	}
	l.RunFrame(l.Now())
	if len(order) != 2 || order[1] != "second" {
		t.Errorf("order = %v, expected [first second]", order)
	}
}

func TestCancelFrameIdempotent(t *testing.T) {
	l := newTestLoop()
	ran := false
	id := l.RequestFrame(func() { ran = true })

	l.CancelFrame(id)
	l.CancelFrame(id)
	l.CancelFrame(FrameID(9999))
	l.RunFrame(l.Now())

	if ran {
		t.Error("cancelled frame callback ran")
	}
}

func TestCancelLaterFrameFromEarlierOne(t *testing.T) {
	l := newTestLoop()
	ran := false
	var second FrameID
	l.RequestFrame(func() { l.CancelFrame(second) })
	second = l.RequestFrame(func() { ran = true })

	l.RunFrame(l.Now())
	if ran {
		t.Error("frame cancelled within the same batch should not run")
	}
}

func TestTimersFireWhenDue(t *testing.T) {
	l := newTestLoop()
	start := l.Now()
	var fired []string

	l.AfterFunc(200*time.Millisecond, func() { fired = append(fired, "late") })
	l.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "early") })

	l.RunFrame(start.Add(50 * time.Millisecond))
	if len(fired) != 0 {
		t.Fatalf("no timer should be due yet, got %v", fired)
	}

	l.RunFrame(start.Add(250 * time.Millisecond))
	if len(fired) != 2 || fired[0] != "early" || fired[1] != "late" {
		t.Errorf("fired = %v, expected [early late]", fired)
	}
}

func TestCancelTimer(t *testing.T) {
	l := newTestLoop()
	ran := false
	id := l.AfterFunc(time.Millisecond, func() { ran = true })

	if !l.CancelTimer(id) {
		t.Error("first CancelTimer should report true")
	}
	if l.CancelTimer(id) {
		t.Error("second CancelTimer should report false")
	}
	l.RunFrame(l.Now().Add(time.Second))
	if ran {
		t.Error("cancelled timer ran")
	}
}

func TestClockIsMonotonic(t *testing.T) {
	l := newTestLoop()
	start := l.Now()
	l.RunFrame(start.Add(time.Second))
	l.RunFrame(start)

	if !l.Now().Equal(start.Add(time.Second)) {
		t.Errorf("clock went backwards: %v", l.Now())
	}
	if l.Frames() != 2 {
		t.Errorf("Frames() = %d, expected 2", l.Frames())
	}
}

func TestPanickingCallbackDoesNotStopLoop(t *testing.T) {
	l := newTestLoop()
	ran := false
	l.RequestFrame(func() { panic("boom") })
	l.RequestFrame(func() { ran = true })

	l.RunFrame(l.Now())
	if !ran {
		t.Error("callback after a panicking one should still run")
	}
}
