package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitrush/fitrush/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
		isQuit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionExert, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")}, core.ActionBack, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")}, core.ActionEasy, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")}, core.ActionMedium, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")}, core.ActionHard, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone, false},
	}

	for _, tc := range tests {
		action, isQuit := km.MapKey(tc.msg)
		if action != tc.expected || isQuit != tc.isQuit {
			t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)",
				tc.msg.String(), action, isQuit, tc.expected, tc.isQuit)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEnter}, &frame); quit {
		t.Error("enter should not be a quit request")
	}
	if !frame.Has(core.ActionConfirm) {
		t.Error("enter should set confirm on the frame")
	}

	if quit := km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame); !quit {
		t.Error("ctrl+c should be a quit request")
	}
}
