// Package tui provides the Bubble Tea front end for the runner: frame and
// spawn timers, input mapping, screen rendering and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to advance the game by one frame. It carries the time
// the frame timer fired; the model measures Δt between consecutive ones.
type FrameMsg time.Time

// SpawnMsg is sent when the spawn timer for a life fires.
type SpawnMsg struct {
	Life int
}

// frameCmd returns a command that sends the next frame message at fps.
func frameCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// spawnCmd returns a command that sends a spawn message for life after
// interval, or right away if interval is zero.
func spawnCmd(interval time.Duration, life int) tea.Cmd {
	if interval <= 0 {
		return func() tea.Msg { return SpawnMsg{Life: life} }
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return SpawnMsg{Life: life}
	})
}
