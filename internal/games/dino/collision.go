package dino

// CollisionResolver turns physics contacts into game-over signals.
// It holds a single subscription on the collision source for the whole Round,
// so obstacles never carry their own callbacks.
type CollisionResolver struct {
	round  *Round
	cancel func()
}

// attach subscribes the resolver to src.
func (c *CollisionResolver) attach(r *Round, src CollisionSource) {
	c.round = r
	c.cancel = src.OnContact(c.OnObstacleContact)
}

// detach cancels the subscription. Safe to call more than once.
func (c *CollisionResolver) detach() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// OnObstacleContact forwards every contact to the round. Repeated contacts
// in the same frame collapse into the round's single Running -> GameOver
// transition.
func (c *CollisionResolver) OnObstacleContact(Contact) {
	if c.round == nil {
		return
	}
	c.round.NotifyCollision()
}
