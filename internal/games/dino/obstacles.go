package dino

// ObstacleID identifies an obstacle for the lifetime of a Round.
// Ids are assigned in increasing order and never reused, even across restarts.
type ObstacleID uint64

// Obstacle is a live obstacle moving toward the actor.
type Obstacle struct {
	ID ObstacleID
	X  float64 // Horizontal center position (world units)
	Y  float64 // Fixed center height
}

// Shape is the cylinder every obstacle shares.
type Shape struct {
	Radius float64
	Height float64
}

// ObstacleRegistry owns the set of live obstacles: it spawns, advances and
// prunes them, mirroring every change into the physics engine.
type ObstacleRegistry struct {
	live     []Obstacle
	nextID   ObstacleID
	halted   bool
	spawnX   float64
	y        float64
	despawnX float64
	shape    Shape
	space    ObstacleSpace
}

// NewObstacleRegistry creates an empty registry.
func NewObstacleRegistry(spawnX, y, despawnX float64, shape Shape, space ObstacleSpace) *ObstacleRegistry {
	return &ObstacleRegistry{
		live:     make([]Obstacle, 0, 8),
		nextID:   1,
		spawnX:   spawnX,
		y:        y,
		despawnX: despawnX,
		shape:    shape,
		space:    space,
	}
}

// Spawn appends a new obstacle at the spawn position.
// Returns false without spawning while the registry is halted.
func (r *ObstacleRegistry) Spawn() (Obstacle, bool) {
	if r.halted {
		return Obstacle{}, false
	}

	o := Obstacle{ID: r.nextID, X: r.spawnX, Y: r.y}
	r.nextID++
	r.live = append(r.live, o)
	r.space.PlaceObstacle(o, r.shape)
	return o, true
}

// Advance moves every obstacle left by speed*dt, then removes those
// that passed the despawn threshold.
func (r *ObstacleRegistry) Advance(dt, speed float64) {
	step := speed * dt

	kept := r.live[:0]
	for _, o := range r.live {
		o.X -= step
		if o.X < r.despawnX {
			r.space.RemoveObstacle(o.ID)
			continue
		}
		r.space.PlaceObstacle(o, r.shape)
		kept = append(kept, o)
	}
	// Drop references left in the tail
	for i := len(kept); i < len(r.live); i++ {
		r.live[i] = Obstacle{}
	}
	r.live = kept
}

// Halt rejects further spawns until the next Clear.
func (r *ObstacleRegistry) Halt() {
	r.halted = true
}

// Clear removes every obstacle and accepts spawns again.
// The id counter is not reset.
func (r *ObstacleRegistry) Clear() {
	for _, o := range r.live {
		r.space.RemoveObstacle(o.ID)
	}
	r.live = r.live[:0]
	r.halted = false
}

// Contains reports whether id names a live obstacle.
func (r *ObstacleRegistry) Contains(id ObstacleID) bool {
	for _, o := range r.live {
		if o.ID == id {
			return true
		}
	}
	return false
}

// Len returns the number of live obstacles.
func (r *ObstacleRegistry) Len() int {
	return len(r.live)
}

// Obstacles returns a copy of the live obstacles in arrival order.
func (r *ObstacleRegistry) Obstacles() []Obstacle {
	out := make([]Obstacle, len(r.live))
	copy(out, r.live)
	return out
}

// Shape returns the shared obstacle shape.
func (r *ObstacleRegistry) Shape() Shape {
	return r.shape
}
