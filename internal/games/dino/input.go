package dino

import "github.com/vovakirdan/tui-dino/internal/core"

// InputOutcome describes what an input event did to the round.
type InputOutcome int

const (
	InputIgnored InputOutcome = iota
	InputJumped
	InputRestarted
)

// String returns a human-readable name for the outcome.
func (o InputOutcome) String() string {
	switch o {
	case InputIgnored:
		return "Ignored"
	case InputJumped:
		return "Jumped"
	case InputRestarted:
		return "Restarted"
	default:
		return "Unknown"
	}
}

// InputRouter maps discrete input actions onto the round.
type InputRouter struct {
	round *Round
}

// NewInputRouter creates a router for r.
func NewInputRouter(r *Round) InputRouter {
	return InputRouter{round: r}
}

// Handle applies a single action immediately.
//
// ActionPrimary restarts a finished round and jumps otherwise. ActionJump
// (pointer on the actor) only ever jumps. Everything else is ignored, so a
// finished round accepts nothing but the restart key.
func (ir InputRouter) Handle(a core.Action) InputOutcome {
	switch a {
	case core.ActionPrimary:
		if ir.round.State() == GameOver {
			if ir.round.Restart() {
				return InputRestarted
			}
			return InputIgnored
		}
		return ir.jump()
	case core.ActionJump:
		return ir.jump()
	}
	return InputIgnored
}

func (ir InputRouter) jump() InputOutcome {
	if ir.round.Jump() {
		return InputJumped
	}
	return InputIgnored
}
