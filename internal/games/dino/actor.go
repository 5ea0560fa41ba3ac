package dino

// JumpState governs whether a new jump impulse is accepted.
type JumpState int

const (
	Grounded JumpState = iota
	Airborne
)

// String returns a human-readable name for the jump state.
func (s JumpState) String() string {
	switch s {
	case Grounded:
		return "Grounded"
	case Airborne:
		return "Airborne"
	default:
		return "Unknown"
	}
}

// ActorController gates jump commands to the actor's physics body so that at
// most one impulse is in flight at a time. It owns only the jump state.
type ActorController struct {
	body          PhysicsBody
	state         JumpState
	locked        bool    // Set while the round is over
	cleared       bool    // Body observed above the threshold since the last jump
	jumpVelocity  float64 // Upward velocity issued on jump
	groundContact float64 // Center height at or below which a falling body has landed
}

// NewActorController creates a grounded controller for body.
func NewActorController(body PhysicsBody, jumpVelocity, groundContact float64) *ActorController {
	return &ActorController{
		body:          body,
		jumpVelocity:  jumpVelocity,
		groundContact: groundContact,
	}
}

// Jump issues a single upward velocity command and marks the actor airborne.
// Returns false without touching the body while airborne or locked.
func (a *ActorController) Jump() bool {
	if a.locked || a.state == Airborne {
		return false
	}
	a.body.SetVerticalVelocity(a.jumpVelocity)
	a.state = Airborne
	a.cleared = false
	return true
}

// Refresh feeds the latest physics-reported height to the controller.
// An airborne actor lands when the height crosses the ground-contact
// threshold downward; landing restores the body's neutral orientation.
// Returns true on the tick the actor lands.
func (a *ActorController) Refresh(y float64) bool {
	if a.state != Airborne {
		return false
	}
	if y > a.groundContact {
		a.cleared = true
		return false
	}
	if !a.cleared {
		// Still on the way up from the ground
		return false
	}
	a.state = Grounded
	a.cleared = false
	a.body.ResetRotation()
	return true
}

// Lock rejects jumps until the next Reset.
func (a *ActorController) Lock() {
	a.locked = true
}

// Reset returns the controller to Grounded and accepts jumps again.
func (a *ActorController) Reset() {
	a.state = Grounded
	a.cleared = false
	a.locked = false
}

// State returns the current jump state.
func (a *ActorController) State() JumpState {
	return a.state
}
