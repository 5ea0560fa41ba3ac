package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/games/dino"
	"github.com/vovakirdan/tui-dino/internal/loop"
)

// helpRows is the number of terminal rows below the play field.
const helpRows = 1

// Model is the Bubble Tea model for one player's game.
type Model struct {
	driver   *loop.Driver
	cfg      config.DinoConfig
	runtime  core.RuntimeConfig
	screen   *core.Screen
	layout   dino.Layout
	keys     *KeyMapper
	help     help.Model
	scene    dino.Scene
	last     time.Time // When the previous frame fired
	sized    bool      // A window size has been received
	quitting bool
}

// NewModel creates a model running a fresh round. A nil logger discards
// the driver's logs.
func NewModel(cfg config.DinoConfig, rt core.RuntimeConfig, logger *log.Logger) Model {
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.Frame.FPS
	}

	d := loop.NewDriver(cfg, logger)
	m := Model{
		driver:  d,
		cfg:     cfg,
		runtime: rt,
		keys:    NewKeyMapper(),
		help:    help.New(),
		scene:   d.Scene(),
	}
	m.resize(rt.ScreenW, rt.ScreenH)
	return m
}

// Init starts the frame loop and the first life's spawn chain.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		frameCmd(m.runtime.TickRate),
		spawnCmd(0, m.driver.Life()),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleInput(m.keys.MapMouse(msg, m.layout.ActorRect(m.scene.ActorY)))

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))

	case SpawnMsg:
		return m.handleSpawn(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.driver.Close()
		return m, tea.Quit
	}
	if action == core.ActionHelp {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m.handleInput(action)
}

// handleInput routes a game action to the driver. A restart begins a new
// spawn chain; the old one goes stale with its life.
func (m Model) handleInput(action core.Action) (tea.Model, tea.Cmd) {
	if action == core.ActionNone {
		return m, nil
	}

	out := m.driver.Input(action)
	m.scene = m.driver.Scene()
	if out == dino.InputRestarted {
		m.last = time.Time{}
		return m, spawnCmd(0, m.driver.Life())
	}
	return m, nil
}

// handleResize processes window size changes. The first size only sets up
// the screen; a later change means the render surface was lost and rebuilt,
// so the round starts over.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	changed := msg.Width != m.runtime.ScreenW || msg.Height != m.runtime.ScreenH
	first := !m.sized
	m.sized = true
	m.resize(msg.Width, msg.Height)

	if first || !changed {
		return m, nil
	}

	m.driver.Rebuild()
	m.scene = m.driver.Scene()
	m.last = time.Time{}
	return m, spawnCmd(0, m.driver.Life())
}

func (m *Model) resize(w, h int) {
	m.runtime.ScreenW = w
	m.runtime.ScreenH = h
	rows := core.Max(h-helpRows, 1)
	if m.screen == nil {
		m.screen = core.NewScreen(w, rows)
	} else {
		m.screen.Resize(w, rows)
	}
	m.layout = dino.NewLayout(m.cfg, w, rows)
	m.help.Width = w
}

// handleFrame advances the game by the time since the previous frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	dt := time.Second / time.Duration(m.runtime.TickRate)
	if !m.last.IsZero() {
		dt = now.Sub(m.last)
	}
	m.last = now

	m.scene = m.driver.Frame(dt).Scene
	return m, frameCmd(m.runtime.TickRate)
}

// handleSpawn spawns for the current life and re-arms the timer. Messages
// for an older life, or arriving after game over, end their chain.
func (m Model) handleSpawn(msg SpawnMsg) (tea.Model, tea.Cmd) {
	if m.quitting || !m.driver.Spawn(msg.Life) {
		return m, nil
	}
	m.scene = m.driver.Scene()
	return m, spawnCmd(m.cfg.Obstacles.SpawnInterval, msg.Life)
}

// Scene returns the last scene the model drew from.
func (m Model) Scene() dino.Scene {
	return m.scene
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	dino.Render(m.screen, m.layout, m.scene)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys)
}

// Run starts the Bubble Tea program with a new model.
func Run(cfg config.DinoConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(cfg, rt, logger),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on the dino jump
	)

	_, err := p.Run()
	return err
}
