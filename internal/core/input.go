package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left arrow, A - lateral movement
	ActionMoveRight        // Right arrow, D - lateral movement
	ActionJump             // Space, Up, W - jump or flap
	ActionUp               // menu navigation
	ActionDown             // menu navigation
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart the session
	ActionQuit             // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionJump:
		return "Jump"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Gameplay reports whether the action is routed to the running game
// rather than handled by the platform.
func (a Action) Gameplay() bool {
	switch a {
	case ActionMoveLeft, ActionMoveRight, ActionJump:
		return true
	}
	return false
}
