package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tabtodo/internal/todo"
)

// yankCmd copies text to the system clipboard.
func (a *App) yankCmd(text string) tea.Cmd {
	copyText := a.copyText
	return func() tea.Msg {
		if err := copyText(text); err != nil {
			return errMsg{fmt.Errorf("copy to clipboard: %w", err)}
		}
		return statusMsg{msg: "Copied: " + text}
	}
}

// notifyRemovedCmd sends a desktop notification after a bulk removal when
// notifications are enabled.
func (a *App) notifyRemovedCmd(tab todo.Tab, removed int) tea.Cmd {
	if !a.config.Notifications.Enabled {
		return nil
	}
	notify := a.notify
	body := fmt.Sprintf("Removed %d completed %s from %s", removed, plural(removed, "task"), tab)
	return func() tea.Msg {
		if err := notify(WindowTitle, body); err != nil {
			return errMsg{fmt.Errorf("send notification: %w", err)}
		}
		return nil
	}
}
