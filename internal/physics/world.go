// Package physics is the runner's physics engine: gravity on the actor, a flat
// ground plane, static obstacle bodies and a contact stream. Broad-phase
// lookups go through a resolv spatial hash; overlaps are confirmed with exact
// box tests.
//
// Resolv works in non-negative y-down space units, so World keeps an origin
// and a scale and converts every body as it moves. A World is not safe for
// concurrent use.
package physics

import (
	"math"
	"slices"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/games/dino"
)

const (
	tagActor    = "actor"
	tagObstacle = "obstacle"
)

const (
	unitsPerWorld = 8    // Resolv space units per world unit
	cellSize      = 8    // One grid cell per world unit
	spaceMargin   = 2.0  // World units of space around the playfield
	pitchPerSpeed = 0.06 // Radians of pitch per unit/s of vertical speed
	maxPitch      = 0.6
)

var (
	_ dino.PhysicsBody     = (*Body)(nil)
	_ dino.ObstacleSpace   = (*World)(nil)
	_ dino.CollisionSource = (*World)(nil)
)

// World owns the actor body, the obstacle bodies and the contact subscribers.
type World struct {
	gravity float64
	rest    float64

	space   *resolv.Space
	originX float64 // World x at space x = 0
	originY float64 // World y at space y = 0

	actor     *Body
	obstacles map[dino.ObstacleID]*obstacleBody

	subs    []subscription
	nextSub uint64
	closed  bool
}

type obstacleBody struct {
	obj *resolv.Object
	box core.Box
}

type subscription struct {
	id uint64
	fn dino.ContactHandler
}

// New creates a world sized for cfg with the actor resting on the ground.
func New(cfg config.DinoConfig) *World {
	minX := math.Min(math.Min(cfg.Obstacles.DespawnX, cfg.View.MinX), cfg.Actor.X-cfg.Actor.Width) - spaceMargin
	maxX := math.Max(cfg.Obstacles.SpawnX+cfg.Obstacles.Radius, cfg.View.MaxX) + spaceMargin
	minY := cfg.Physics.GroundY - spaceMargin
	maxY := math.Max(cfg.View.MaxY, cfg.JumpApex()+cfg.Actor.Height) + spaceMargin

	w := &World{
		gravity:   cfg.Physics.Gravity,
		rest:      cfg.RestHeight(),
		originX:   minX,
		originY:   maxY,
		obstacles: make(map[dino.ObstacleID]*obstacleBody),
	}
	w.space = resolv.NewSpace(
		int(math.Ceil((maxX-minX)*unitsPerWorld)),
		int(math.Ceil((maxY-minY)*unitsPerWorld)),
		cellSize, cellSize,
	)

	w.actor = &Body{
		x: cfg.Actor.X,
		y: w.rest,
		w: cfg.Actor.Width,
		h: cfg.Actor.Height,
	}
	w.actor.obj = w.newObject(w.actor.Box(), tagActor)
	w.space.Add(w.actor.obj)
	return w
}

// Actor returns the actor's body.
func (w *World) Actor() *Body {
	return w.actor
}

// Step advances the simulation by dt seconds and reports every obstacle the
// actor overlaps afterwards, one contact per obstacle, in id order.
func (w *World) Step(dt float64) {
	if w.closed {
		return
	}
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}

	a := w.actor
	a.vy += w.gravity * dt
	a.y += a.vy * dt
	if a.y <= w.rest {
		// Resting flat on the ground
		a.y = w.rest
		a.rotation = 0
		if a.vy < 0 {
			a.vy = 0
		}
	} else {
		a.rotation = core.ClampF(a.vy*pitchPerSpeed, -maxPitch, maxPitch)
	}
	w.move(a.obj, a.Box())

	w.emit(w.contacts())
}

// contacts returns the ids of obstacles overlapping the actor.
func (w *World) contacts() []dino.ObstacleID {
	col := w.actor.obj.Check(0, 0, tagObstacle)
	if col == nil {
		return nil
	}

	box := w.actor.Box()
	var ids []dino.ObstacleID
	for _, obj := range col.Objects {
		id, ok := obj.Data.(dino.ObstacleID)
		if !ok {
			continue
		}
		if ob := w.obstacles[id]; ob != nil && box.Overlaps(ob.box) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

func (w *World) emit(ids []dino.ObstacleID) {
	if len(ids) == 0 || len(w.subs) == 0 {
		return
	}
	// Handlers may cancel themselves
	subs := slices.Clone(w.subs)
	for _, id := range ids {
		for _, s := range subs {
			s.fn(dino.Contact{Obstacle: id})
		}
	}
}

// PlaceObstacle creates the body for o or moves it to o's position.
func (w *World) PlaceObstacle(o dino.Obstacle, shape dino.Shape) {
	if w.closed {
		return
	}
	box := core.NewBox(o.X, o.Y, shape.Radius*2, shape.Height)

	ob, ok := w.obstacles[o.ID]
	if !ok {
		ob = &obstacleBody{obj: w.newObject(box, tagObstacle)}
		ob.obj.Data = o.ID
		w.obstacles[o.ID] = ob
		w.space.Add(ob.obj)
	}
	ob.box = box
	w.move(ob.obj, box)
}

// RemoveObstacle destroys the body for id, if any.
func (w *World) RemoveObstacle(id dino.ObstacleID) {
	ob, ok := w.obstacles[id]
	if !ok {
		return
	}
	w.space.Remove(ob.obj)
	delete(w.obstacles, id)
}

// ObstacleCount returns the number of live obstacle bodies.
func (w *World) ObstacleCount() int {
	return len(w.obstacles)
}

// OnContact subscribes h to actor/obstacle contacts. The returned function
// cancels the subscription and may be called more than once.
func (w *World) OnContact(h dino.ContactHandler) func() {
	id := w.nextSub
	w.nextSub++
	w.subs = append(w.subs, subscription{id: id, fn: h})

	return func() {
		w.subs = slices.DeleteFunc(w.subs, func(s subscription) bool { return s.id == id })
	}
}

// Subscribers returns the number of live contact subscriptions.
func (w *World) Subscribers() int {
	return len(w.subs)
}

// Close removes every body and subscription. A closed world ignores
// further steps and placements.
func (w *World) Close() {
	if w.closed {
		return
	}
	w.closed = true
	for id := range w.obstacles {
		w.RemoveObstacle(id)
	}
	w.space.Remove(w.actor.obj)
	w.subs = nil
}

func (w *World) newObject(b core.Box, tag string) *resolv.Object {
	x, y := w.toSpace(b)
	return resolv.NewObject(x, y, b.HW*2*unitsPerWorld, b.HH*2*unitsPerWorld, tag)
}

func (w *World) move(obj *resolv.Object, b core.Box) {
	obj.X, obj.Y = w.toSpace(b)
	obj.Update()
}

// toSpace returns the space position of the top-left corner of b.
func (w *World) toSpace(b core.Box) (float64, float64) {
	return (b.Left() - w.originX) * unitsPerWorld, (w.originY - b.Top()) * unitsPerWorld
}
