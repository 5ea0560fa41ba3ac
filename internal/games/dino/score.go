package dino

// ScoreAccumulator counts the Running ticks since the last reset.
// One unit per simulated frame, so the score rate follows the frame rate.
type ScoreAccumulator struct {
	value int
}

// Increment adds one frame to the score.
func (s *ScoreAccumulator) Increment() {
	s.value++
}

// Reset sets the score back to zero.
func (s *ScoreAccumulator) Reset() {
	s.value = 0
}

// Value returns the current score.
func (s *ScoreAccumulator) Value() int {
	return s.value
}
