package dino

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
)

// Visual characters for rendering
const (
	DinoBody   = '█'
	DinoHead   = '◆'
	DinoTilted = '▚'
	DinoLeg1   = '╱'
	DinoLeg2   = '╲'
	CactusChar = '▓'
	GroundChar = '═'
	DirtChar   = '░'
)

const (
	tiltVisible = 0.05 // Radians of pitch before the sprite shows it
	edgeNudge   = 1e-9
)

// Scene is everything needed to draw one frame: the round's snapshot plus
// the actor's pose as read back from the physics engine.
type Scene struct {
	Round     Snapshot
	ActorY    float64
	ActorTilt float64
}

// Layout maps world coordinates onto a screen of a given size.
// Row 0 holds the score; the ground line is the second row from the bottom.
type Layout struct {
	cfg       config.DinoConfig
	width     int
	height    int
	groundRow int
	colsPer   float64
	rowsPer   float64
}

// NewLayout creates a layout for a width x height screen.
func NewLayout(cfg config.DinoConfig, width, height int) Layout {
	l := Layout{
		cfg:       cfg,
		width:     width,
		height:    height,
		groundRow: core.Max(height-2, 2),
	}
	if span := cfg.View.MaxX - cfg.View.MinX; span > 0 {
		l.colsPer = float64(width) / span
	}
	if span := cfg.View.MaxY - cfg.Physics.GroundY; span > 0 {
		l.rowsPer = float64(l.groundRow-1) / span
	}
	return l
}

// GroundRow returns the screen row of the ground line.
func (l Layout) GroundRow() int {
	return l.groundRow
}

func (l Layout) col(x float64) int {
	return int(math.Floor((x - l.cfg.View.MinX) * l.colsPer))
}

func (l Layout) row(y float64) int {
	return l.groundRow - 1 - int(math.Floor((y-l.cfg.Physics.GroundY)*l.rowsPer))
}

// rect converts a world box to the screen cells it covers, at least one cell.
func (l Layout) rect(b core.Box) core.Rect {
	left := l.col(b.Left() + edgeNudge)
	right := l.col(b.Right() - edgeNudge)
	top := l.row(b.Top() - edgeNudge)
	bottom := l.row(b.Bottom() + edgeNudge)
	if bottom > l.groundRow-1 {
		bottom = l.groundRow - 1
	}
	if right < left {
		right = left
	}
	if bottom < top {
		bottom = top
	}
	return core.NewRect(left, top, right-left+1, bottom-top+1)
}

// ActorRect returns the cells the actor occupies when its center is at y.
func (l Layout) ActorRect(y float64) core.Rect {
	a := l.cfg.Actor
	return l.rect(core.NewBox(a.X, y, a.Width, a.Height))
}

// ObstacleRect returns the cells an obstacle occupies.
func (l Layout) ObstacleRect(o Obstacle, shape Shape) core.Rect {
	return l.rect(core.NewBox(o.X, o.Y, shape.Radius*2, shape.Height))
}

// Render draws the scene into dst.
func Render(dst *core.Screen, l Layout, sc Scene) {
	dst.Clear()

	// Ground
	dst.DrawHLine(0, l.groundRow, dst.Width(), GroundChar, core.ColorGreen)
	for y := l.groundRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), DirtChar, core.ColorYellow)
	}

	for _, o := range sc.Round.Obstacles {
		drawObstacle(dst, l.ObstacleRect(o, sc.Round.Shape))
	}

	drawActor(dst, l.ActorRect(sc.ActorY), sc)

	// HUD
	dst.DrawTextColor(2, 0, fmt.Sprintf(" Points: %d ", sc.Round.Score), core.ColorBrightWhite)

	if sc.Round.State == GameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Space to restart", sc.Round.Score))
	}
}

func drawObstacle(dst *core.Screen, r core.Rect) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColor(x, y, CactusChar, core.ColorBrightGreen)
		}
	}
}

// drawActor fills the actor's cells, with a head in the top-right corner
// and animated legs on the bottom row while grounded.
func drawActor(dst *core.Screen, r core.Rect, sc Scene) {
	body := DinoBody
	if math.Abs(sc.ActorTilt) > tiltVisible {
		body = DinoTilted
	}

	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColor(x, y, body, core.ColorGray)
		}
	}
	dst.SetColor(r.Right()-1, r.Y, DinoHead, core.ColorWhite)

	if r.H < 2 {
		return
	}
	legs := r.Bottom() - 1
	for x := r.X; x < r.Right(); x++ {
		dst.Set(x, legs, ' ')
	}
	switch {
	case sc.Round.Jump == Airborne:
		// In air - legs tucked
		dst.SetColor(r.X, legs, DinoLeg1, core.ColorGray)
		dst.SetColor(r.X+1, legs, DinoLeg2, core.ColorGray)
	case (sc.Round.Score/5)%2 == 0:
		dst.SetColor(r.X, legs, DinoLeg1, core.ColorGray)
		dst.SetColor(r.Right()-1, legs, DinoLeg2, core.ColorGray)
	default:
		dst.SetColor(r.X+1, legs, DinoLeg1, core.ColorGray)
		dst.SetColor(r.Right()-1, legs, DinoLeg2, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorRed)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
