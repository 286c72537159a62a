package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tabtodo/internal/todo"
)

func TestView_BeforeResize(t *testing.T) {
	a := newTestApp(t)
	a.width = 0
	if got := a.View(); got != "Loading..." {
		t.Errorf("expected loading placeholder, got %q", got)
	}
}

func TestView_Elements(t *testing.T) {
	a := newTestApp(t)
	out := a.View()

	for _, want := range []string{
		"Home", "Work", "Personal",
		"Enter task...",
		addButtonLabel, removeButtonLabel,
		"No tasks in Home yet",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("view should contain %q", want)
		}
	}

	if h := strings.Count(out, "\n") + 1; h != 24 {
		t.Errorf("view should fill the window height, got %d lines", h)
	}
}

func TestView_TasksAndCounts(t *testing.T) {
	a := newTestApp(t)
	addTasks(a, "Buy milk", "Walk dog")
	a.Update(todo.ToggleTask{Tab: todo.Home, Index: 0})
	out := a.View()

	for _, want := range []string{"[x] Buy milk", "[ ] Walk dog", "Home (1/2)", "1 open · 1 done"} {
		if !strings.Contains(out, want) {
			t.Errorf("view should contain %q", want)
		}
	}

	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[a.layout.listTop], "Buy milk") {
		t.Errorf("first task row should be at listTop, got %q", lines[a.layout.listTop])
	}
}

func TestView_ShowsOnlyCurrentTab(t *testing.T) {
	a := newTestApp(t)
	addTasks(a, "home task")
	sendKey(a, "ctrl+n")

	out := a.View()
	if strings.Contains(out, "home task") {
		t.Error("Work view must not show Home tasks")
	}
	if !strings.Contains(out, "No tasks in Work yet") {
		t.Error("Work view should show its empty placeholder")
	}
	if a.layout.tab != todo.Work {
		t.Errorf("layout should record the rendered tab, got %s", a.layout.tab)
	}
}

func TestView_Scrolling(t *testing.T) {
	a := newTestApp(t)
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 16})
	for i := 0; i < 20; i++ {
		addTasks(a, fmt.Sprintf("task %02d", i))
	}

	// Cursor is on the last task after adding
	out := a.View()
	if !strings.Contains(out, "task 19") {
		t.Error("the cursor row should be visible")
	}
	if !strings.Contains(out, "↑") {
		t.Error("expected an indicator for rows above")
	}
	if strings.Contains(out, "↓") {
		t.Error("no rows below the last task")
	}

	sendKey(a, "esc")
	sendKey(a, "g")
	sendKey(a, "g")
	out = a.View()
	if !strings.Contains(out, "task 00") || !strings.Contains(out, "↓") {
		t.Error("jumping to the top should scroll the list back")
	}
	if a.layout.listStart != 0 {
		t.Errorf("expected list to start at 0, got %d", a.layout.listStart)
	}
}

func TestView_StatusBarError(t *testing.T) {
	a := newTestApp(t)
	a.Update(errMsg{err: fmt.Errorf("boom")})
	if !strings.Contains(a.View(), "Error: boom") {
		t.Error("errors should be shown in the status bar")
	}

	sendKey(a, "esc")
	sendKey(a, "esc")
	if a.err != nil {
		t.Error("esc in the list should clear the error")
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"a longer task name", 8, "a longe…"},
		{"日本語テキスト", 7, "日本語…"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		if got := truncateString(tt.in, tt.max); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestRowText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"two\nlines", "two lines"},
		{"crlf\r\nend", "crlf end"},
		{"tab\there", "tab here"},
		{"a very long name\nthat wraps", "a very lon…"},
	}
	for _, tt := range tests {
		if got := rowText(tt.in, 11); got != tt.want {
			t.Errorf("rowText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestKeyState_gg(t *testing.T) {
	var ks KeyState
	km := DefaultKeymap()
	g := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")}

	if action, ok := ks.HandleKey(g, km); !ok || action != "" || !ks.WaitingG {
		t.Fatalf("first g should wait, got %q %v", action, ok)
	}
	if action, _ := ks.HandleKey(g, km); action != "top" {
		t.Errorf("gg should go to top, got %q", action)
	}

	ks.HandleKey(g, km)
	j := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}
	if action, _ := ks.HandleKey(j, km); action != "down" || ks.WaitingG {
		t.Errorf("g then j should move down and cancel, got %q", action)
	}

	if _, ok := ks.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, km); ok {
		t.Error("unbound keys should not be consumed")
	}
}
