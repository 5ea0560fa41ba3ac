package dino

import "github.com/vovakirdan/tui-dino/internal/config"

// fakeBody records commands instead of integrating anything.
type fakeBody struct {
	y          float64
	velocities []float64
	resets     int
}

func (b *fakeBody) VerticalPosition() float64     { return b.y }
func (b *fakeBody) SetVerticalVelocity(v float64) { b.velocities = append(b.velocities, v) }
func (b *fakeBody) ResetRotation()                { b.resets++ }

// fakeSpace tracks which obstacle bodies exist.
type fakeSpace struct {
	bodies  map[ObstacleID]Obstacle
	removed []ObstacleID
}

func newFakeSpace() *fakeSpace {
	return &fakeSpace{bodies: make(map[ObstacleID]Obstacle)}
}

func (s *fakeSpace) PlaceObstacle(o Obstacle, _ Shape) { s.bodies[o.ID] = o }

func (s *fakeSpace) RemoveObstacle(id ObstacleID) {
	if _, ok := s.bodies[id]; ok {
		delete(s.bodies, id)
		s.removed = append(s.removed, id)
	}
}

// fakeContacts is a CollisionSource the test fires by hand.
type fakeContacts struct {
	handlers map[int]ContactHandler
	next     int
}

func newFakeContacts() *fakeContacts {
	return &fakeContacts{handlers: make(map[int]ContactHandler)}
}

func (c *fakeContacts) OnContact(h ContactHandler) func() {
	id := c.next
	c.next++
	c.handlers[id] = h
	return func() { delete(c.handlers, id) }
}

func (c *fakeContacts) emit(id ObstacleID) {
	for _, h := range c.handlers {
		h(Contact{Obstacle: id})
	}
}

type fixture struct {
	cfg      config.DinoConfig
	body     *fakeBody
	space    *fakeSpace
	contacts *fakeContacts
	round    *Round
}

func newFixture() *fixture {
	cfg := config.DefaultDinoConfig()
	f := &fixture{
		cfg:      cfg,
		body:     &fakeBody{y: cfg.RestHeight()},
		space:    newFakeSpace(),
		contacts: newFakeContacts(),
	}
	f.round = NewRound(cfg, f.body, f.space, f.contacts)
	return f
}
