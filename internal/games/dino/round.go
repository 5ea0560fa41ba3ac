// Package dino implements the game-loop core of a side-scrolling runner.
// The player's actor jumps over obstacles that move toward it at constant
// speed; any contact ends the round and freezes the score.
//
// The core owns only logical state. Positions and velocities belong to the
// physics engine, reached through PhysicsBody, ObstacleSpace and
// CollisionSource. A Round is not safe for concurrent use; hosts that deliver
// input, timers or contacts on different goroutines must serialize calls.
package dino

import (
	"math"

	"github.com/vovakirdan/tui-dino/internal/config"
)

// RoundState is the top-level state of a round.
type RoundState int

const (
	Running RoundState = iota
	GameOver
)

// String returns a human-readable name for the round state.
func (s RoundState) String() string {
	switch s {
	case Running:
		return "Running"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Snapshot is the read-only view of a round handed to the presentation layer.
type Snapshot struct {
	State     RoundState
	Score     int
	Life      int // Incremented by every restart
	Jump      JumpState
	Obstacles []Obstacle
	Shape     Shape
}

// Round coordinates the obstacle registry, actor controller and score
// accumulator, and gates all of them on its Running/GameOver state.
type Round struct {
	state      RoundState
	life       int
	speed      float64
	closed     bool
	body       PhysicsBody
	obstacles  *ObstacleRegistry
	actor      *ActorController
	score      ScoreAccumulator
	resolver   CollisionResolver
	onGameOver []func(Snapshot)
}

// NewRound creates a Running round wired to the given physics collaborators.
// The round subscribes to contacts; call Close before discarding it.
func NewRound(cfg config.DinoConfig, body PhysicsBody, space ObstacleSpace, contacts CollisionSource) *Round {
	shape := Shape{Radius: cfg.Obstacles.Radius, Height: cfg.Obstacles.Height}

	r := &Round{
		state: Running,
		speed: cfg.Obstacles.Speed,
		body:  body,
		obstacles: NewObstacleRegistry(
			cfg.Obstacles.SpawnX,
			cfg.Obstacles.Y,
			cfg.Obstacles.DespawnX,
			shape,
			space,
		),
		actor: NewActorController(body, cfg.Physics.JumpVelocity, cfg.Actor.GroundContactHeight),
	}
	r.resolver.attach(r, contacts)
	return r
}

// Tick advances the round by dt seconds: obstacles move, the actor's jump
// state is refreshed from the body, then the score grows by one.
// Does nothing once the round is over.
func (r *Round) Tick(dt float64) {
	if r.closed || r.state == GameOver {
		return
	}
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}

	r.obstacles.Advance(dt, r.speed)
	r.actor.Refresh(r.body.VerticalPosition())
	r.score.Increment()
}

// Spawn adds an obstacle at the spawn position.
// Returns false, spawning nothing, once the round is over.
func (r *Round) Spawn() (Obstacle, bool) {
	if r.closed || r.state == GameOver {
		return Obstacle{}, false
	}
	return r.obstacles.Spawn()
}

// SpawnForLife spawns only if life is still the current life, so timer
// firings scheduled before a restart are dropped.
func (r *Round) SpawnForLife(life int) (Obstacle, bool) {
	if life != r.life {
		return Obstacle{}, false
	}
	return r.Spawn()
}

// Jump asks the actor controller for a jump.
// Returns true if an impulse was issued.
func (r *Round) Jump() bool {
	if r.closed || r.state == GameOver {
		return false
	}
	return r.actor.Jump()
}

// NotifyCollision ends the round on its first call per life: spawning stops,
// the score freezes and game-over observers run. Later calls do nothing.
// Returns true on the call that ended the round.
func (r *Round) NotifyCollision() bool {
	if r.closed || r.state == GameOver {
		return false
	}

	r.state = GameOver
	r.obstacles.Halt()
	r.actor.Lock()

	if len(r.onGameOver) > 0 {
		snap := r.Snapshot()
		for _, fn := range r.onGameOver {
			fn(snap)
		}
	}
	return true
}

// Restart begins a new life: score zero, empty registry, grounded actor.
// Ignored while Running so a stray key cannot reset a round in progress.
// Returns true if the round restarted.
func (r *Round) Restart() bool {
	if r.closed || r.state == Running {
		return false
	}

	r.score.Reset()
	r.obstacles.Clear()
	r.actor.Reset()
	r.state = Running
	r.life++
	return true
}

// OnGameOver registers fn to observe every Running -> GameOver transition.
func (r *Round) OnGameOver(fn func(Snapshot)) {
	r.onGameOver = append(r.onGameOver, fn)
}

// Close detaches the round from the physics engine: the contact subscription
// is cancelled and every obstacle body is removed. A closed round ignores
// all further calls.
func (r *Round) Close() {
	if r.closed {
		return
	}
	r.resolver.detach()
	r.obstacles.Clear()
	r.obstacles.Halt()
	r.closed = true
}

// State returns the current round state.
func (r *Round) State() RoundState {
	return r.state
}

// Score returns the current score.
func (r *Round) Score() int {
	return r.score.Value()
}

// Life returns the number of restarts since the round was created.
func (r *Round) Life() int {
	return r.life
}

// JumpState returns the actor's jump state.
func (r *Round) JumpState() JumpState {
	return r.actor.State()
}

// Snapshot returns a copy of the state the presentation layer may observe.
func (r *Round) Snapshot() Snapshot {
	return Snapshot{
		State:     r.state,
		Score:     r.score.Value(),
		Life:      r.life,
		Jump:      r.actor.State(),
		Obstacles: r.obstacles.Obstacles(),
		Shape:     r.obstacles.Shape(),
	}
}
