package core

import "testing"

func TestVecArithmetic(t *testing.T) {
	a := Vec3{X: 1, Y: -2, Z: 3}
	b := V(0.5, 0.5)

	if got := a.Add(b); got != (Vec3{X: 1.5, Y: -1.5, Z: 3}) {
		t.Errorf("Add() = %+v", got)
	}
	if got := a.Sub(b); got != (Vec3{X: 0.5, Y: -2.5, Z: 3}) {
		t.Errorf("Sub() = %+v", got)
	}
	if got := a.Scale(2); got != (Vec3{X: 2, Y: -4, Z: 6}) {
		t.Errorf("Scale() = %+v", got)
	}
	if got := a.Abs(); got != (Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Abs() = %+v", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.5, -3, 3, 0.5},
		{-3.5, -3, 3, -3},
		{3.01, -3, 3, 3},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{
		PhaseIdle:     "Idle",
		PhaseRunning:  "Running",
		PhaseGameOver: "GameOver",
		Phase(42):     "Unknown",
	}
	for p, want := range tests {
		if got := p.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, expected %q", int(p), got, want)
		}
	}
}

func TestActionGameplay(t *testing.T) {
	for _, a := range []Action{ActionMoveLeft, ActionMoveRight, ActionJump} {
		if !a.Gameplay() {
			t.Errorf("%v should be a gameplay action", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionRestart, ActionQuit, ActionBack} {
		if a.Gameplay() {
			t.Errorf("%v should not be a gameplay action", a)
		}
	}
}
