package dino

// PhysicsBody is the actor's rigid body as owned by the physics engine.
// The controller reads it back each tick and issues one-shot commands;
// it never stores position or velocity itself.
type PhysicsBody interface {
	// VerticalPosition returns the body's current center height.
	VerticalPosition() float64

	// SetVerticalVelocity replaces the body's vertical velocity.
	SetVerticalVelocity(v float64)

	// ResetRotation restores the neutral orientation.
	ResetRotation()
}

// ObstacleSpace mirrors live obstacles into the physics engine.
type ObstacleSpace interface {
	// PlaceObstacle creates the obstacle's body or moves it to o's position.
	PlaceObstacle(o Obstacle, shape Shape)

	// RemoveObstacle destroys the obstacle's body. Unknown ids are ignored.
	RemoveObstacle(id ObstacleID)
}

// Contact is a single actor/obstacle contact reported by the physics engine.
type Contact struct {
	Obstacle ObstacleID
}

// ContactHandler receives contacts from a CollisionSource.
type ContactHandler func(Contact)

// CollisionSource delivers the physics engine's contact stream.
type CollisionSource interface {
	// OnContact subscribes h to every contact and returns a function that
	// cancels the subscription.
	OnContact(h ContactHandler) (cancel func())
}
