package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHelpView_Empty(t *testing.T) {
	h := NewHelp()
	if !strings.Contains(h.View(), "No keybindings registered") {
		t.Error("empty help should say so")
	}
}

func TestHelpView_RendersSections(t *testing.T) {
	h := NewHelp()
	h.SetSize(100, 30)
	h.SetKeymap([][]string{
		{"Tabs", ""},
		{"1/2/3", "Home / Work / Personal"},
		{"", ""},
		{"Tasks", ""},
		{"D", "Remove completed tasks"},
	})

	out := h.View()
	for _, want := range []string{"Keyboard Shortcuts", "Tabs", "Tasks", "1/2/3", "Remove completed tasks", "Press ESC"} {
		if !strings.Contains(out, want) {
			t.Errorf("help view should contain %q", want)
		}
	}
}

func TestHelpUpdate_Close(t *testing.T) {
	h := NewHelp()
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune("?")},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	} {
		_, cmd := h.Update(key)
		if cmd == nil {
			t.Fatalf("%q should close help", key.String())
		}
		if _, ok := cmd().(CloseHelpMsg); !ok {
			t.Errorf("%q: expected CloseHelpMsg", key.String())
		}
	}

	_, cmd := h.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if cmd != nil {
		t.Error("other keys should be ignored")
	}
}
