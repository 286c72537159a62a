// Package tui provides the terminal user interface for tabtodo.
package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/hy4ri/tabtodo/internal/config"
	"github.com/hy4ri/tabtodo/internal/todo"
	"github.com/hy4ri/tabtodo/internal/tui/components"
	"github.com/sirupsen/logrus"
)

// WindowTitle is set on the terminal window at startup.
const WindowTitle = "Task List App"

// Focus is the part of the screen receiving keys.
type Focus int

const (
	FocusInput Focus = iota
	FocusList
)

// App is the Bubble Tea model for the application. It owns the todo.State
// and is the only caller of todo.Apply.
type App struct {
	// Dependencies
	config *config.Config
	log    *logrus.Logger

	// Application state
	state *todo.State

	// View state
	focus     Focus
	cursors   map[todo.Tab]int // cursor per tab
	offsets   map[todo.Tab]int // first visible row per tab
	width     int
	height    int
	showHelp  bool
	showHints bool
	statusMsg string
	err       error

	// Components
	input    textinput.Model
	keyState KeyState
	keymap   Keymap
	helpComp components.Component

	// Hit-test regions from the last render
	layout layout

	// Side effects, replaced in tests
	copyText func(text string) error
	notify   func(title, body string) error
}

// NewApp creates a new App showing startTab.
func NewApp(cfg *config.Config, logger *logrus.Logger, startTab todo.Tab) *App {
	input := textinput.New()
	input.Placeholder = "Enter task..."
	input.Prompt = "> "
	input.Focus()

	help := components.NewHelp()
	keymap := DefaultKeymap()
	help.SetKeymap(keymap.HelpItems())

	app := &App{
		config:    cfg,
		log:       logger,
		state:     todo.New(),
		focus:     FocusInput,
		cursors:   make(map[todo.Tab]int),
		offsets:   make(map[todo.Tab]int),
		showHints: cfg.UI.ShowHints,
		input:     input,
		keymap:    keymap,
		helpComp:  help,
		copyText:  clipboard.WriteAll,
		notify: func(title, body string) error {
			return beeep.Notify(title, body, "")
		},
	}
	if startTab != todo.Home {
		app.dispatch(todo.SwitchTab{Tab: startTab})
	}

	return app
}

// State exposes the application state read-only to callers outside the
// update loop.
func (a *App) State() *todo.State {
	return a.state
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	a.log.WithField("tab", a.state.CurrentTab).Info("tabtodo started")
	return tea.Batch(
		tea.SetWindowTitle(WindowTitle),
		textinput.Blink,
		a.helpComp.Init(),
	)
}

// Message types
type errMsg struct{ err error }
type statusMsg struct{ msg string }
