package sched

// Handle controls one self-chaining tick started with Start.
type Handle struct {
	loop      *Loop
	tick      func()
	frame     FrameID
	ticks     uint64
	cancelled bool
}

// Start begins invoking tick once per frame until the handle is cancelled.
// The first invocation happens on the next RunFrame.
func Start(loop *Loop, tick func()) *Handle {
	h := &Handle{loop: loop, tick: tick}
	h.frame = loop.RequestFrame(h.run)
	return h
}

// run re-registers the next frame before calling tick, so a tick that
// panics is logged by the loop and still gets the following frame. A tick
// that cancels its own handle drops that next frame.
func (h *Handle) run() {
	if h.cancelled {
		return
	}
	h.frame = h.loop.RequestFrame(h.run)
	h.ticks++
	h.loop.invoke("tick", h.tick)
}

// Cancel stops future ticks. Safe to call more than once, and on nil.
func (h *Handle) Cancel() {
	if h == nil || h.cancelled {
		return
	}
	h.cancelled = true
	h.loop.CancelFrame(h.frame)
}

// Active reports whether the handle will tick again.
func (h *Handle) Active() bool {
	return h != nil && !h.cancelled
}

// Ticks returns how many times tick has been invoked.
func (h *Handle) Ticks() uint64 {
	if h == nil {
		return 0
	}
	return h.ticks
}
