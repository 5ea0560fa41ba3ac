// Package config provides YAML-based game configuration loading for the runner.
package config

import "time"

// DinoConfig contains all tunable parameters of a run.
// World units are y-up; x grows toward incoming obstacles.
type DinoConfig struct {
	Physics   PhysicsConfig  `yaml:"physics"`
	Actor     ActorConfig    `yaml:"actor"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Frame     FrameConfig    `yaml:"frame"`
	View      ViewConfig     `yaml:"view"`
}

// PhysicsConfig defines the physics engine's world parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // Vertical acceleration, units/s² (negative = down)
	JumpVelocity float64 `yaml:"jump_velocity"` // Upward velocity set by a jump, units/s
	GroundY      float64 `yaml:"ground_y"`      // Height of the ground plane
}

// ActorConfig defines the player's body and grounding threshold.
type ActorConfig struct {
	X                   float64 `yaml:"x"`
	Width               float64 `yaml:"width"`
	Height              float64 `yaml:"height"`
	GroundContactHeight float64 `yaml:"ground_contact_height"` // Center height at or below which the actor counts as landed
}

// ObstacleConfig defines obstacle shape, motion and spawn cadence.
type ObstacleConfig struct {
	Speed         float64       `yaml:"speed"`     // Units per second toward the actor
	SpawnX        float64       `yaml:"spawn_x"`   // Horizontal spawn position
	Y             float64       `yaml:"y"`         // Fixed center height
	DespawnX      float64       `yaml:"despawn_x"` // Obstacles left of this are removed
	Radius        float64       `yaml:"radius"`
	Height        float64       `yaml:"height"`
	SpawnInterval time.Duration `yaml:"spawn_interval"` // Wall-clock spawn cadence
}

// FrameConfig defines the frame driver's timing.
type FrameConfig struct {
	FPS      int           `yaml:"fps"`
	MaxDelta time.Duration `yaml:"max_delta"` // Longer frames are clamped to this
}

// ViewConfig defines the visible world window for terminal rendering.
type ViewConfig struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"` // Highest world height that fits on screen
}

// RestHeight returns the actor's center height when standing on the ground.
func (c DinoConfig) RestHeight() float64 {
	return c.Physics.GroundY + c.Actor.Height/2
}

// JumpApex returns the highest center height a jump from rest reaches.
func (c DinoConfig) JumpApex() float64 {
	v := c.Physics.JumpVelocity
	return c.RestHeight() + v*v/(2*-c.Physics.Gravity)
}
