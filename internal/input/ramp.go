package input

import (
	"time"

	"github.com/vovakirdan/fuego-arcade/internal/config"
)

// Ramp turns key presses into a lateral speed that grows with input
// intensity. Two paths raise it: holding the key (each repeated key-down
// adds HoldStep) and tapping quickly (each press that follows the previous
// one within the tap window adds TapStep). Both are capped by MaxSpeed.
//
// A release drops the speed back to BaseSpeed and clears the hold counter.
// The tap streak survives the release so rapid tapping keeps its ramp; it
// is broken only by a pause longer than the tap window.
type Ramp struct {
	cfg    config.RampConfig
	window time.Duration

	speed     float64
	down      bool
	held      int
	streak    int
	lastPress time.Time
}

// NewRamp creates a ramp at its base speed.
func NewRamp(cfg config.RampConfig) *Ramp {
	return &Ramp{
		cfg:    cfg,
		window: time.Duration(cfg.TapWindowMs) * time.Millisecond,
		speed:  cfg.BaseSpeed,
	}
}

// Press registers a key-down at the given time and returns the speed to
// move with.
func (r *Ramp) Press(at time.Time) float64 {
	if r.down {
		r.held++
	} else {
		if !r.lastPress.IsZero() && at.Sub(r.lastPress) <= r.window {
			r.streak++
		} else {
			r.streak = 0
		}
		r.down = true
	}
	r.lastPress = at

	r.speed = r.cfg.BaseSpeed + float64(r.streak)*r.cfg.TapStep + float64(r.held)*r.cfg.HoldStep
	r.speed = min(r.speed, r.cfg.MaxSpeed)
	return r.speed
}

// Release registers a key-up.
func (r *Ramp) Release() {
	r.down = false
	r.held = 0
	r.speed = r.cfg.BaseSpeed
}

// Speed returns the current speed.
func (r *Ramp) Speed() float64 {
	return r.speed
}

// Reset returns the ramp to its initial state, streak included.
func (r *Ramp) Reset() {
	r.Release()
	r.streak = 0
	r.lastPress = time.Time{}
}
