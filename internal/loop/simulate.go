package loop

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/games/dino"
)

// SimOptions configures a headless run.
type SimOptions struct {
	Duration time.Duration
	FPS      int             // Frame rate; zero uses the config's
	Jumps    []time.Duration // Primary presses, as offsets from the start
	AutoJump bool            // Jump whenever an obstacle is about to reach the actor
	Logger   *log.Logger
}

// SimResult summarizes a headless run.
type SimResult struct {
	Frames    int
	Spawned   int
	Jumps     int // Accepted jump impulses
	Restarts  int
	Score     int
	State     dino.RoundState
	EndedAt   time.Duration // Offset of the first game over, zero if none
	Obstacles int           // Live obstacles at the end
}

// ErrInvalidSim is returned for options that cannot describe a run.
var ErrInvalidSim = errors.New("invalid simulation options")

// Simulate runs a driver on a virtual clock: frames at a fixed rate, spawns
// from the driver's cadence and presses at the given offsets. The run is
// deterministic for a given config and options.
func Simulate(cfg config.DinoConfig, opts SimOptions) (SimResult, error) {
	fps := opts.FPS
	if fps == 0 {
		fps = cfg.Frame.FPS
	}
	if fps <= 0 {
		return SimResult{}, fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidSim, fps)
	}
	if opts.Duration < 0 {
		return SimResult{}, fmt.Errorf("%w: negative duration %s", ErrInvalidSim, opts.Duration)
	}
	if err := cfg.Validate(); err != nil {
		return SimResult{}, err
	}

	d := NewDriver(cfg, opts.Logger)
	defer d.Close()

	jumps := slices.Clone(opts.Jumps)
	slices.Sort(jumps)
	lead := cfg.Obstacles.Speed * cfg.Physics.JumpVelocity / -cfg.Physics.Gravity

	var res SimResult
	epoch := time.Unix(0, 0)
	frames := int(int64(opts.Duration) * int64(fps) / int64(time.Second))
	dt := time.Second / time.Duration(fps)

	for k := 0; k < frames; k++ {
		at := time.Duration(int64(k) * int64(time.Second) / int64(fps))

		for len(jumps) > 0 && jumps[0] <= at {
			jumps = jumps[1:]
			res.press(d.Input(core.ActionPrimary))
		}
		if opts.AutoJump && obstacleAhead(d.Scene(), cfg.Actor.X, lead) {
			res.press(d.Input(core.ActionJump))
		}

		if d.SpawnDue(epoch.Add(at)) {
			res.Spawned++
		}

		fr := d.Frame(dt)
		res.Frames++
		if fr.Ended && res.EndedAt == 0 {
			res.EndedAt = at + dt
		}
	}

	sc := d.Scene()
	res.Score = sc.Round.Score
	res.State = sc.Round.State
	res.Obstacles = len(sc.Round.Obstacles)
	return res, nil
}

func (r *SimResult) press(out dino.InputOutcome) {
	switch out {
	case dino.InputJumped:
		r.Jumps++
	case dino.InputRestarted:
		r.Restarts++
	}
}

// obstacleAhead reports whether an obstacle's center is within lead units in
// front of the actor, which is where a jump from rest puts the apex over it.
func obstacleAhead(sc dino.Scene, actorX, lead float64) bool {
	if sc.Round.State != dino.Running || sc.Round.Jump != dino.Grounded {
		return false
	}
	for _, o := range sc.Round.Obstacles {
		if dx := o.X - actorX; dx > 0 && dx <= lead {
			return true
		}
	}
	return false
}
