package loop

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/games/dino"
)

func TestSimulateFiveSeconds(t *testing.T) {
	res, err := Simulate(config.DefaultDinoConfig(), SimOptions{Duration: 5 * time.Second, FPS: 60})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	if res.Frames != 300 {
		t.Errorf("frames = %d, expected 300", res.Frames)
	}
	// Spawns at 0s, 2s and 4s
	if res.Spawned != 3 {
		t.Errorf("spawned = %d, expected 3", res.Spawned)
	}
	if res.Score != 300 {
		t.Errorf("score = %d, expected 300", res.Score)
	}
	if res.State != dino.Running {
		t.Errorf("state = %s, expected Running", res.State)
	}
	if res.Obstacles != 3 {
		t.Errorf("live obstacles = %d, expected 3", res.Obstacles)
	}
}

func TestSimulateIdleEndsRound(t *testing.T) {
	res, err := Simulate(config.DefaultDinoConfig(), SimOptions{Duration: 10 * time.Second})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	if res.State != dino.GameOver {
		t.Fatalf("state = %s, expected GameOver", res.State)
	}
	// First obstacle reaches the actor after about 6.4s
	if res.EndedAt < 6*time.Second || res.EndedAt > 7*time.Second {
		t.Errorf("ended at %s, expected between 6s and 7s", res.EndedAt)
	}
	if res.Score >= res.Frames {
		t.Errorf("score %d should have frozen before the last of %d frames", res.Score, res.Frames)
	}
}

func TestSimulateScheduledJumps(t *testing.T) {
	res, err := Simulate(config.DefaultDinoConfig(), SimOptions{
		Duration: 3 * time.Second,
		Jumps:    []time.Duration{500 * time.Millisecond, 100 * time.Millisecond, 2500 * time.Millisecond},
	})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	// The press at 500ms lands while airborne
	if res.Jumps != 2 {
		t.Errorf("accepted jumps = %d, expected 2", res.Jumps)
	}
}

func TestSimulateAutoJumpSurvives(t *testing.T) {
	res, err := Simulate(config.DefaultDinoConfig(), SimOptions{Duration: 30 * time.Second, AutoJump: true})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	if res.State != dino.Running {
		t.Errorf("auto-jump run ended at %s with score %d", res.EndedAt, res.Score)
	}
	if res.Jumps < 10 {
		t.Errorf("jumps = %d, expected one per obstacle", res.Jumps)
	}
	if res.Score != res.Frames {
		t.Errorf("score = %d, expected %d", res.Score, res.Frames)
	}
}

func TestSimulateRejectsBadOptions(t *testing.T) {
	cfg := config.DefaultDinoConfig()

	if _, err := Simulate(cfg, SimOptions{Duration: time.Second, FPS: -1}); !errors.Is(err, ErrInvalidSim) {
		t.Errorf("negative fps: got %v, expected ErrInvalidSim", err)
	}
	if _, err := Simulate(cfg, SimOptions{Duration: -time.Second}); !errors.Is(err, ErrInvalidSim) {
		t.Errorf("negative duration: got %v, expected ErrInvalidSim", err)
	}

	cfg.Obstacles.Speed = 0
	if _, err := Simulate(cfg, SimOptions{Duration: time.Second}); err == nil {
		t.Error("invalid config should be rejected")
	}
}
