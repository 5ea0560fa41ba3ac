package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dino/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPrimary, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionPrimary, false},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionPrimary, false},
		{"help", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}, core.ActionHelp, false},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%s, %v), expected (%s, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()
	actor := core.NewRect(10, 5, 3, 4)

	tests := []struct {
		name string
		msg  tea.MouseMsg
		want core.Action
	}{
		{"left press on actor", tea.MouseMsg{X: 11, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.ActionJump},
		{"left press on corner", tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.ActionJump},
		{"left press beside actor", tea.MouseMsg{X: 13, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.ActionNone},
		{"release on actor", tea.MouseMsg{X: 11, Y: 6, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, core.ActionNone},
		{"right press on actor", tea.MouseMsg{X: 11, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, core.ActionNone},
		{"motion over actor", tea.MouseMsg{X: 11, Y: 6, Action: tea.MouseActionMotion}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapMouse(tt.msg, actor); got != tt.want {
				t.Errorf("MapMouse() = %s, expected %s", got, tt.want)
			}
		})
	}
}
