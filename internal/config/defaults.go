package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultDinoConfig returns the default Dino Runner configuration.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		Physics: PhysicsConfig{
			Gravity:      -9.81,
			JumpVelocity: 7.5,
			GroundY:      -2,
		},
		Actor: ActorConfig{
			X:                   -5,
			Width:               0.8,
			Height:              1.2,
			GroundContactHeight: -1.2,
		},
		Obstacles: ObstacleConfig{
			Speed:         3.0,
			SpawnX:        15,
			Y:             -1.4,
			DespawnX:      -10,
			Radius:        0.3,
			Height:        1.2,
			SpawnInterval: 2 * time.Second,
		},
		Frame: FrameConfig{
			FPS:      60,
			MaxDelta: 250 * time.Millisecond,
		},
		View: ViewConfig{
			MinX: -8,
			MaxX: 16,
			MaxY: 3,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDinoYAML
}
