package config

import (
	"errors"
	"fmt"
)

// Validate reports every parameter that would make the run ill-defined.
func (c DinoConfig) Validate() error {
	var errs []error

	if c.Physics.Gravity >= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be negative, got %g", c.Physics.Gravity))
	}
	if c.Physics.JumpVelocity <= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_velocity must be positive, got %g", c.Physics.JumpVelocity))
	}
	if c.Actor.Width <= 0 || c.Actor.Height <= 0 {
		errs = append(errs, fmt.Errorf("actor size must be positive, got %gx%g", c.Actor.Width, c.Actor.Height))
	}
	if rest := c.RestHeight(); c.Actor.GroundContactHeight < rest {
		errs = append(errs, fmt.Errorf("actor.ground_contact_height (%g) must not be below the resting height (%g)", c.Actor.GroundContactHeight, rest))
	} else if c.Physics.Gravity < 0 && c.Actor.GroundContactHeight >= c.JumpApex() {
		errs = append(errs, fmt.Errorf("actor.ground_contact_height (%g) must be below the jump apex (%g)", c.Actor.GroundContactHeight, c.JumpApex()))
	}
	if c.Obstacles.Speed <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.speed must be positive, got %g", c.Obstacles.Speed))
	}
	if c.Obstacles.Radius <= 0 || c.Obstacles.Height <= 0 {
		errs = append(errs, fmt.Errorf("obstacle shape must be positive, got radius %g height %g", c.Obstacles.Radius, c.Obstacles.Height))
	}
	if c.Obstacles.DespawnX >= c.Obstacles.SpawnX {
		errs = append(errs, fmt.Errorf("obstacles.despawn_x (%g) must be behind spawn_x (%g)", c.Obstacles.DespawnX, c.Obstacles.SpawnX))
	}
	if c.Obstacles.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_interval must be positive, got %s", c.Obstacles.SpawnInterval))
	}
	if c.Frame.FPS <= 0 {
		errs = append(errs, fmt.Errorf("frame.fps must be positive, got %d", c.Frame.FPS))
	}
	if c.Frame.MaxDelta <= 0 {
		errs = append(errs, fmt.Errorf("frame.max_delta must be positive, got %s", c.Frame.MaxDelta))
	}
	if c.View.MaxX <= c.View.MinX {
		errs = append(errs, fmt.Errorf("view.max_x (%g) must exceed view.min_x (%g)", c.View.MaxX, c.View.MinX))
	}
	if c.View.MaxY <= c.Physics.GroundY {
		errs = append(errs, fmt.Errorf("view.max_y (%g) must be above physics.ground_y (%g)", c.View.MaxY, c.Physics.GroundY))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid dino config: %w", errors.Join(errs...))
	}
	return nil
}
