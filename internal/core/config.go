package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driving the scheduler (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the lifecycle stage of one play-through.
type Phase int

const (
	PhaseIdle     Phase = iota // constructed, not ticking yet
	PhaseRunning               // scheduler active, score accruing
	PhaseGameOver              // scheduler cancelled, score frozen
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState is the observable state of a game for display.
type GameState struct {
	Score   int    // Current score
	Phase   Phase  // Current phase
	Message string // Shown on loss, empty otherwise
	Session uint64 // Identifier of the session this state belongs to
}

// GameOver reports whether the session has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Running reports whether the session is ticking.
func (s GameState) Running() bool {
	return s.Phase == PhaseRunning
}
