package physics

import (
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/tui-dino/internal/core"
)

// Body is the actor's rigid body. Only vertical motion and pitch are
// simulated; the horizontal position is fixed.
type Body struct {
	obj      *resolv.Object
	x, y     float64
	vy       float64
	rotation float64
	w, h     float64
}

// VerticalPosition returns the body's center height.
func (b *Body) VerticalPosition() float64 {
	return b.y
}

// VerticalVelocity returns the body's vertical speed.
func (b *Body) VerticalVelocity() float64 {
	return b.vy
}

// SetVerticalVelocity overwrites the body's vertical speed.
func (b *Body) SetVerticalVelocity(v float64) {
	b.vy = v
}

// Rotation returns the body's pitch in radians.
func (b *Body) Rotation() float64 {
	return b.rotation
}

// ResetRotation levels the body.
func (b *Body) ResetRotation() {
	b.rotation = 0
}

// Box returns the body's bounds in world units.
func (b *Body) Box() core.Box {
	return core.NewBox(b.x, b.y, b.w, b.h)
}
