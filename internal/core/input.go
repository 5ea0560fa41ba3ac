package core

// Action represents a semantic input event, abstracted from physical key presses
// and pointer clicks. Actions carry no payload.
type Action int

const (
	ActionNone    Action = iota
	ActionPrimary        // Space, Up, W - restart after game over, jump otherwise
	ActionJump           // Pointer press on the actor - jump only
	ActionHelp           // ? - toggle the full help view
	ActionQuit           // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPrimary:
		return "Primary"
	case ActionJump:
		return "Jump"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
