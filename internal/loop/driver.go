// Package loop is the frame driver that binds a dino.Round to a physics.World.
// Every entry point takes one lock, so frames, spawn timers, input events
// and contacts delivered from different goroutines are applied one at a time.
package loop

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/games/dino"
	"github.com/vovakirdan/tui-dino/internal/physics"
)

// FrameResult is what a host needs after one frame.
type FrameResult struct {
	Scene dino.Scene
	Ended bool // The round ended during this frame
}

// Driver owns a round and the world it runs in.
type Driver struct {
	mu       sync.Mutex
	cfg      config.DinoConfig
	logger   *log.Logger
	world    *physics.World
	round    *dino.Round
	router   dino.InputRouter
	cadence  *Cadence
	lifeBase int // Lives used by rounds discarded on rebuild
	ended    bool
}

// NewDriver creates a driver with a fresh round. A nil logger discards output.
func NewDriver(cfg config.DinoConfig, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	d := &Driver{
		cfg:     cfg,
		logger:  logger,
		cadence: NewCadence(cfg.Obstacles.SpawnInterval),
	}
	d.build()
	return d
}

func (d *Driver) build() {
	d.world = physics.New(d.cfg)
	d.round = dino.NewRound(d.cfg, d.world.Actor(), d.world, d.world)
	d.router = dino.NewInputRouter(d.round)
	d.round.OnGameOver(d.gameOver)
}

// gameOver runs under d.mu, from inside World.Step.
func (d *Driver) gameOver(s dino.Snapshot) {
	d.ended = true
	d.cadence.Stop()
	d.logger.Info("game over", "score", s.Score, "life", d.lifeBase+s.Life)
}

// Frame advances the round and then the physics by dt. Negative deltas
// count as zero; deltas above the configured maximum are clamped.
func (d *Driver) Frame(dt time.Duration) FrameResult {
	d.mu.Lock()
	defer d.mu.Unlock()

	secs := core.ClampF(dt.Seconds(), 0, d.cfg.Frame.MaxDelta.Seconds())

	d.ended = false
	d.round.Tick(secs)
	d.world.Step(secs)

	return FrameResult{Scene: d.scene(), Ended: d.ended}
}

// SpawnDue spawns an obstacle if the driver's own cadence says one is due at
// now. The cadence starts on the first call of each life and stops at game
// over. Returns true if an obstacle was spawned.
func (d *Driver) SpawnDue(now time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.round.State() != dino.Running {
		return false
	}
	if !d.cadence.Running() {
		d.cadence.Start(now)
	}
	if !d.cadence.Due(now) {
		return false
	}
	_, ok := d.round.Spawn()
	return ok
}

// Spawn spawns an obstacle for a timer the host scheduled during life.
// Firings from an earlier life are dropped.
func (d *Driver) Spawn(life int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if life != d.life() {
		return false
	}
	_, ok := d.round.Spawn()
	return ok
}

// Input routes one input action to the round.
func (d *Driver) Input(a core.Action) dino.InputOutcome {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := d.router.Handle(a)
	if out == dino.InputRestarted {
		d.cadence.Stop()
		d.logger.Info("round restarted", "life", d.life())
	}
	return out
}

// Rebuild discards the round and world and starts over with fresh ones, as
// after the render surface was lost. The new round is Running with score zero.
func (d *Driver) Rebuild() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.lifeBase = d.life() + 1
	d.round.Close()
	d.world.Close()
	d.cadence.Stop()
	d.build()
	d.logger.Debug("surface rebuilt", "life", d.life())
}

// Close detaches the round from the world.
func (d *Driver) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.round.Close()
	d.world.Close()
}

// Scene returns the current scene without advancing anything.
func (d *Driver) Scene() dino.Scene {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scene()
}

// Life returns the current life number. It grows on every restart and every
// rebuild, so timers tagged with it go stale on both.
func (d *Driver) Life() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.life()
}

// Config returns the configuration the driver was built with.
func (d *Driver) Config() config.DinoConfig {
	return d.cfg
}

func (d *Driver) life() int {
	return d.lifeBase + d.round.Life()
}

func (d *Driver) scene() dino.Scene {
	a := d.world.Actor()
	snap := d.round.Snapshot()
	snap.Life = d.life()
	return dino.Scene{
		Round:     snap,
		ActorY:    a.VerticalPosition(),
		ActorTilt: a.Rotation(),
	}
}
