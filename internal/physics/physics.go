// Package physics holds the per-tick kinematics shared by the games:
// axis-aligned overlap tests, gravity, the one-shot jump and clamped
// lateral movement. Everything works in world units per tick; there is no
// time delta.
package physics

import (
	"math"

	"github.com/vovakirdan/fuego-arcade/internal/core"
)

// Box is an axis-aligned bounding box given by its center and half extents.
type Box struct {
	Center core.Vec3
	Half   core.Vec3
}

// Overlaps reports whether a and b intersect. On each axis the distance
// between centers must be strictly less than the summed half extents, so
// boxes with no extent on X or Y never collide. Z is ignored only when both
// boxes are flat on it.
func Overlaps(a, b Box) bool {
	if !axisOverlaps(a.Center.X, b.Center.X, a.Half.X+b.Half.X) ||
		!axisOverlaps(a.Center.Y, b.Center.Y, a.Half.Y+b.Half.Y) {
		return false
	}
	if a.Half.Z == 0 && b.Half.Z == 0 {
		return true
	}
	return axisOverlaps(a.Center.Z, b.Center.Z, a.Half.Z+b.Half.Z)
}

func axisOverlaps(ca, cb, reach float64) bool {
	return math.Abs(ca-cb) < reach
}

// ToleranceHalf returns half extents that make two boxes collide when their
// centers are closer than tx and ty on the respective axes.
func ToleranceHalf(tx, ty float64) core.Vec3 {
	return core.Vec3{X: tx / 2, Y: ty / 2}
}

// Fall applies one tick of gravity: the velocity integrates the acceleration
// and the position integrates the new velocity.
func Fall(y, vy, gravity float64) (float64, float64) {
	vy += gravity
	return y + vy, vy
}

// Jump is a floor-bound vertical body that may only jump while grounded.
type Jump struct {
	Floor    float64
	Airborne bool
}

// Launch sets the upward velocity if the body is grounded. It reports
// whether the jump started.
func (j *Jump) Launch(vy *float64, impulse float64) bool {
	if j.Airborne {
		return false
	}
	*vy = impulse
	j.Airborne = true
	return true
}

// Step integrates one airborne tick and lands the body on the floor. The
// position moves with the current velocity before gravity is applied, so
// the launch tick rises by the full impulse. A grounded body is left
// untouched.
func (j *Jump) Step(y, vy *float64, gravity float64) {
	if !j.Airborne {
		return
	}
	*y += *vy
	*vy += gravity
	if *y <= j.Floor {
		*y = j.Floor
		*vy = 0
		j.Airborne = false
	}
}

// Lateral moves x by dx and clamps the result to [min, max].
func Lateral(x, dx, min, max float64) float64 {
	return core.ClampF(x+dx, min, max)
}

// Scroll moves x left by one tick of a constant scroll speed.
func Scroll(x, speed float64) float64 {
	return x - speed
}
