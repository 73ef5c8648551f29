// Package effects draws short-lived particle bursts.
package effects

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/fuego-arcade/internal/config"
	"github.com/vovakirdan/fuego-arcade/internal/core"
	"github.com/vovakirdan/fuego-arcade/internal/scene"
	"github.com/vovakirdan/fuego-arcade/internal/sched"
)

// pointPool recycles burst point buffers across sessions.
var pointPool = sync.Pool{
	New: func() any {
		buf := make([]core.Vec3, 0, 128)
		return &buf
	},
}

type burst struct {
	handle   scene.Handle
	timer    sched.TimerID
	points   *[]core.Vec3
	disposed bool
}

// Effects owns the bursts of one session.
type Effects struct {
	surface scene.Surface
	loop    *sched.Loop
	rng     *rand.Rand
	cfg     config.BurstConfig
	glyph   rune
	color   core.Color

	active map[*burst]struct{}
}

// New creates an effects owner. Bursts draw on surface and expire on loop.
func New(surface scene.Surface, loop *sched.Loop, rng *rand.Rand, cfg config.BurstConfig) *Effects {
	glyph := '*'
	if r := []rune(cfg.Glyph); len(r) > 0 {
		glyph = r[0]
	}
	color, ok := core.ParseColor(cfg.Color)
	if !ok {
		color = core.ColorBrightYellow
	}
	return &Effects{
		surface: surface,
		loop:    loop,
		rng:     rng,
		cfg:     cfg,
		glyph:   glyph,
		color:   color,
		active:  make(map[*burst]struct{}),
	}
}

// Burst scatters the configured number of points in the plane around at
// and removes them after the configured time to live.
func (fx *Effects) Burst(at core.Vec3) error {
	buf := pointPool.Get().(*[]core.Vec3)
	pts := (*buf)[:0]
	half := fx.cfg.Spread / 2
	for i := 0; i < fx.cfg.Count; i++ {
		pts = append(pts, core.Vec3{
			X: (fx.rng.Float64()*2 - 1) * half,
			Y: (fx.rng.Float64()*2 - 1) * half,
		})
	}
	*buf = pts

	h, err := fx.surface.CreatePrimitive(scene.Primitive{
		Kind:   scene.KindPoints,
		Color:  fx.color,
		Glyph:  fx.glyph,
		Points: pts,
	}, at)
	if err != nil {
		*buf = (*buf)[:0]
		pointPool.Put(buf)
		return err
	}

	b := &burst{handle: h, points: buf}
	b.timer = fx.loop.AfterFunc(time.Duration(fx.cfg.TTLMs)*time.Millisecond, func() {
		fx.dispose(b)
	})
	fx.active[b] = struct{}{}
	return nil
}

// dispose releases a burst once; the buffer goes back to the pool only
// after the surface has let go of it.
func (fx *Effects) dispose(b *burst) {
	if b.disposed {
		return
	}
	b.disposed = true
	fx.loop.CancelTimer(b.timer)
	fx.surface.Dispose(b.handle)
	delete(fx.active, b)

	*b.points = (*b.points)[:0]
	pointPool.Put(b.points)
	b.points = nil
}

// Active returns the number of bursts still on screen.
func (fx *Effects) Active() int {
	return len(fx.active)
}

// Close cancels pending expiries and disposes every burst now.
func (fx *Effects) Close() {
	for b := range fx.active {
		fx.dispose(b)
	}
}
