package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tabtodo/internal/todo"
	"github.com/hy4ri/tabtodo/internal/tui/components"
	"github.com/sirupsen/logrus"
)

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.handleWindowSize(msg)
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKeyMsg(msg)

	case tea.MouseMsg:
		return a, a.handleMouseMsg(msg)

	case todo.Msg:
		return a, a.dispatch(msg)

	case components.CloseHelpMsg:
		a.showHelp = false
		return a, nil

	case statusMsg:
		a.statusMsg = msg.msg
		a.err = nil
		return a, nil

	case errMsg:
		a.log.WithError(msg.err).Warn("side effect failed")
		a.err = msg.err
		return a, nil
	}

	// Forward everything else (cursor blink) to the input
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// dispatch applies msg to the state and keeps the view state consistent
// with the result.
func (a *App) dispatch(msg todo.Msg) tea.Cmd {
	tab := a.state.CurrentTab
	res := todo.Apply(a.state, msg)

	entry := a.log.WithFields(logrus.Fields{
		"msg": fmt.Sprintf("%T", msg),
		"tab": tab,
	})
	if res.Err != nil {
		entry.WithError(res.Err).Debug("message ignored")
		return nil
	}

	a.syncInput()

	switch m := msg.(type) {
	case todo.InputChanged:
		entry.Trace("input changed")
		return nil

	case todo.SwitchTab:
		entry.WithField("to", m.Tab).Debug("switched tab")
		a.keyState.Reset()
		a.statusMsg = ""
		a.err = nil

	case todo.AddTask:
		n := a.state.Len(tab)
		a.cursors[tab] = n - 1
		a.statusMsg = "Task added"
		a.err = nil
		entry.WithField("count", n).Debug("task added")

	case todo.ToggleTask:
		entry.WithField("index", m.Index).Debug("task toggled")

	case todo.RemoveCompletedTasks:
		a.clampCursor()
		if res.Removed == 0 {
			a.statusMsg = "No completed tasks"
			return nil
		}
		a.statusMsg = fmt.Sprintf("Removed %d completed %s", res.Removed, plural(res.Removed, "task"))
		a.err = nil
		entry.WithField("removed", res.Removed).Info("completed tasks removed")
		return a.notifyRemovedCmd(tab, res.Removed)
	}

	return nil
}

// syncInput makes the input widget show the pending input after a
// transition cleared or replaced it.
func (a *App) syncInput() {
	if a.input.Value() != a.state.PendingInput {
		a.input.SetValue(a.state.PendingInput)
	}
}

func (a *App) handleWindowSize(msg tea.WindowSizeMsg) {
	a.width = msg.Width
	a.height = msg.Height

	// frame padding (2) + box border (2) + box padding (2) + prompt + cursor
	w := msg.Width - 6 - len(a.input.Prompt) - 1
	if w < 10 {
		w = 10
	}
	a.input.Width = w
	a.helpComp.SetSize(msg.Width-2*frameLeft, msg.Height)
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return tea.Quit
	}

	if a.showHelp {
		var cmd tea.Cmd
		a.helpComp, cmd = a.helpComp.Update(msg)
		return cmd
	}

	switch key {
	case "ctrl+n":
		return a.dispatch(todo.SwitchTab{Tab: a.state.CurrentTab.Next()})
	case "ctrl+p":
		return a.dispatch(todo.SwitchTab{Tab: a.state.CurrentTab.Prev()})
	case a.keymap.SwitchFocus.Key, "shift+tab":
		if a.focus == FocusInput {
			return a.setFocus(FocusList)
		}
		return a.setFocus(FocusInput)
	}

	if a.focus == FocusInput {
		return a.handleInputKey(msg)
	}
	return a.handleListKey(msg)
}

func (a *App) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		return a.dispatch(todo.AddTask{})
	case tea.KeyEsc:
		return a.setFocus(FocusList)
	}

	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if after := a.input.Value(); after != before {
		a.dispatch(todo.InputChanged{Text: after})
	}
	return cmd
}

func (a *App) handleListKey(msg tea.KeyMsg) tea.Cmd {
	action, ok := a.keyState.HandleKey(msg, a.keymap)
	if !ok {
		return nil
	}

	tab := a.state.CurrentTab
	switch action {
	case "up":
		a.moveCursor(-1)
	case "down":
		a.moveCursor(1)
	case "top":
		a.cursors[tab] = 0
	case "bottom":
		a.cursors[tab] = a.state.Len(tab) - 1
		a.clampCursor()
	case "prev_tab":
		return a.dispatch(todo.SwitchTab{Tab: tab.Prev()})
	case "next_tab":
		return a.dispatch(todo.SwitchTab{Tab: tab.Next()})
	case "tab_home":
		return a.dispatch(todo.SwitchTab{Tab: todo.Home})
	case "tab_work":
		return a.dispatch(todo.SwitchTab{Tab: todo.Work})
	case "tab_personal":
		return a.dispatch(todo.SwitchTab{Tab: todo.Personal})
	case "toggle":
		if a.state.Len(tab) == 0 {
			return nil
		}
		return a.dispatch(todo.ToggleTask{Tab: tab, Index: a.cursors[tab]})
	case "remove_completed":
		return a.dispatch(todo.RemoveCompletedTasks{})
	case "yank":
		if task, ok := a.selectedTask(); ok {
			return a.yankCmd(task.Name)
		}
	case "focus_input":
		return a.setFocus(FocusInput)
	case "back":
		a.statusMsg = ""
		a.err = nil
	case "help":
		a.showHelp = true
	case "toggle_hints":
		a.showHints = !a.showHints
	case "quit":
		return tea.Quit
	}
	return nil
}

func (a *App) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	if a.showHelp {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.moveCursor(-1)
		return nil
	case tea.MouseButtonWheelDown:
		a.moveCursor(1)
		return nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	switch target := a.layout.hit(msg.X, msg.Y); target.kind {
	case hitTab:
		return a.dispatch(todo.SwitchTab{Tab: target.tab})
	case hitInput:
		return a.setFocus(FocusInput)
	case hitAddButton:
		return a.dispatch(todo.AddTask{})
	case hitRemoveButton:
		return a.dispatch(todo.RemoveCompletedTasks{})
	case hitTask:
		a.focus = FocusList
		a.input.Blur()
		a.cursors[target.tab] = target.index
		// The row belongs to the tab that was rendered, which may no
		// longer be current.
		return a.dispatch(todo.ToggleTask{Tab: target.tab, Index: target.index})
	}
	return nil
}

func (a *App) setFocus(f Focus) tea.Cmd {
	a.focus = f
	a.keyState.Reset()
	if f == FocusInput {
		return a.input.Focus()
	}
	a.input.Blur()
	return nil
}

func (a *App) moveCursor(delta int) {
	a.cursors[a.state.CurrentTab] += delta
	a.clampCursor()
}

func (a *App) clampCursor() {
	tab := a.state.CurrentTab
	n := a.state.Len(tab)
	c := a.cursors[tab]
	if c >= n {
		c = n - 1
	}
	if c < 0 {
		c = 0
	}
	a.cursors[tab] = c
}

func (a *App) selectedTask() (todo.Task, bool) {
	tasks := a.state.Active()
	c := a.cursors[a.state.CurrentTab]
	if c < 0 || c >= len(tasks) {
		return todo.Task{}, false
	}
	return tasks[c], true
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// trimmedInput is the name AddTask would create.
func (a *App) trimmedInput() string {
	return strings.TrimSpace(a.state.PendingInput)
}
