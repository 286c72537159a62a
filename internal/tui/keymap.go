package tui

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Keymap contains the key bindings used while the task list has focus.
type Keymap struct {
	// Navigation
	Up     Key
	Down   Key
	Top    Key
	Bottom Key

	// Tabs
	PrevTab     Key
	NextTab     Key
	TabHome     Key
	TabWork     Key
	TabPersonal Key

	// Task actions
	Toggle         Key
	RemoveComplete Key
	Yank           Key
	FocusInput     Key

	// General
	SwitchFocus Key
	Back        Key
	Help        Key
	Hints       Key
	Quit        Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Up:     Key{Key: "k", Help: "up"},
		Down:   Key{Key: "j", Help: "down"},
		Top:    Key{Key: "g", Help: "top (gg)"},
		Bottom: Key{Key: "G", Help: "bottom"},

		PrevTab:     Key{Key: "h", Help: "previous tab"},
		NextTab:     Key{Key: "l", Help: "next tab"},
		TabHome:     Key{Key: "1", Help: "home"},
		TabWork:     Key{Key: "2", Help: "work"},
		TabPersonal: Key{Key: "3", Help: "personal"},

		Toggle:         Key{Key: "x", Help: "toggle"},
		RemoveComplete: Key{Key: "D", Help: "remove completed"},
		Yank:           Key{Key: "y", Help: "copy name"},
		FocusInput:     Key{Key: "a", Help: "new task"},

		SwitchFocus: Key{Key: "tab", Help: "switch focus"},
		Back:        Key{Key: "esc", Help: "back"},
		Help:        Key{Key: "?", Help: "help"},
		Hints:       Key{Key: "f1", Help: "toggle hints"},
		Quit:        Key{Key: "q", Help: "quit"},
	}
}

// KeyState tracks multi-key sequences (like 'gg').
type KeyState struct {
	WaitingG bool // Waiting for second 'g' in 'gg'
}

// HandleKey maps a key press in the task list to an action name.
// Returns the action and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, keymap Keymap) (string, bool) {
	key := msg.String()

	if ks.WaitingG {
		ks.WaitingG = false
		if key == keymap.Top.Key {
			return "top", true
		}
	}

	if key == keymap.Top.Key {
		ks.WaitingG = true
		return "", true
	}

	switch key {
	case keymap.Up.Key, "up":
		return "up", true
	case keymap.Down.Key, "down":
		return "down", true
	case keymap.Bottom.Key, "end":
		return "bottom", true
	case "home":
		return "top", true
	case keymap.PrevTab.Key, "left":
		return "prev_tab", true
	case keymap.NextTab.Key, "right":
		return "next_tab", true
	case keymap.TabHome.Key:
		return "tab_home", true
	case keymap.TabWork.Key:
		return "tab_work", true
	case keymap.TabPersonal.Key:
		return "tab_personal", true
	case keymap.Toggle.Key, " ", "enter":
		return "toggle", true
	case keymap.RemoveComplete.Key:
		return "remove_completed", true
	case keymap.Yank.Key:
		return "yank", true
	case keymap.FocusInput.Key, "i":
		return "focus_input", true
	case keymap.Back.Key:
		return "back", true
	case keymap.Help.Key:
		return "help", true
	case keymap.Hints.Key:
		return "toggle_hints", true
	case keymap.Quit.Key:
		return "quit", true
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k Keymap) HelpItems() [][]string {
	return [][]string{
		{"Tabs", ""},
		{k.TabHome.Key + "/" + k.TabWork.Key + "/" + k.TabPersonal.Key, "Home / Work / Personal"},
		{k.PrevTab.Key + "/" + k.NextTab.Key, "Previous/next tab"},
		{"ctrl+p/ctrl+n", "Previous/next tab (anywhere)"},
		{"", ""},
		{"Navigation", ""},
		{k.Up.Key + "/" + k.Down.Key, "Move up/down"},
		{"gg/" + k.Bottom.Key, "Go to top/bottom"},
		{k.SwitchFocus.Key, "Switch input/list"},
		{"", ""},
		{"Tasks", ""},
		{k.FocusInput.Key + "/i", "Type a new task"},
		{"enter", "Add task (in input)"},
		{k.Toggle.Key + "/space", "Toggle completed"},
		{k.RemoveComplete.Key, "Remove completed tasks"},
		{k.Yank.Key, "Copy task name"},
		{"", ""},
		{"General", ""},
		{k.Hints.Key, "Toggle hints"},
		{k.Help.Key, "Toggle help"},
		{k.Back.Key, "Back / close"},
		{k.Quit.Key + "/ctrl+c", "Quit"},
	}
}
