package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/tabtodo/internal/todo"
	"github.com/hy4ri/tabtodo/internal/tui/styles"
)

// frameLeft is the horizontal padding of styles.Frame.
const frameLeft = 1

const (
	addButtonLabel    = "[ Add Task ]"
	removeButtonLabel = "[ Remove Completed Tasks ]"
)

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	frame := styles.Frame(a.config.TabColor(a.state.CurrentTab), a.width, a.height)

	if a.showHelp {
		a.layout = layout{}
		return frame.Render(a.helpComp.View())
	}

	innerWidth := a.width - 2*frameLeft
	l := layout{tab: a.state.CurrentTab}

	var rows []string
	y := 0
	add := func(s string) int {
		top := y
		rows = append(rows, s)
		y += lipgloss.Height(s)
		return top
	}

	top := add(a.renderTabBar(innerWidth, &l))
	for i := range l.tabs {
		l.tabs[i].y = span{top, top + 1}
	}
	add("")

	inputBox := a.renderInput(innerWidth)
	top = add(inputBox)
	l.input = region{
		x: span{frameLeft, frameLeft + lipgloss.Width(inputBox)},
		y: span{top, top + lipgloss.Height(inputBox)},
	}

	buttons, addWidth, removeWidth := a.renderButtons()
	top = add(buttons)
	l.addButton = region{
		x: span{frameLeft, frameLeft + addWidth},
		y: span{top, top + 1},
	}
	removeLeft := frameLeft + addWidth + 1
	l.removeButton = region{
		x: span{removeLeft, removeLeft + removeWidth},
		y: span{top, top + 1},
	}

	add("")
	add(a.renderListHeader())

	statusBar := a.renderStatusBar(innerWidth)
	// two scroll indicator lines around the list
	listRows := a.height - y - 2 - lipgloss.Height(statusBar)
	if listRows < 1 {
		listRows = 1
	}
	add(a.renderTaskList(innerWidth, listRows, y, &l))

	body := strings.Join(rows, "\n")
	if gap := a.height - lipgloss.Height(body) - lipgloss.Height(statusBar); gap > 0 {
		body += strings.Repeat("\n", gap)
	}

	a.layout = l
	return frame.Render(body + "\n" + statusBar)
}

// renderTabBar renders the tab row and records each tab's x span. Tabs
// that do not fit are cut at the right edge rather than wrapped, so the
// row stays a single line.
func (a *App) renderTabBar(width int, l *layout) string {
	x := frameLeft + styles.TabBar.GetPaddingLeft()
	inner := width - styles.TabBar.GetHorizontalPadding()
	limit := x + inner

	var tabStrs []string
	for _, tab := range todo.Tabs() {
		label := tab.Title()
		if done, total := a.state.Counts(tab); total > 0 {
			label = fmt.Sprintf("%s (%d/%d)", label, done, total)
		}

		var rendered string
		if tab == a.state.CurrentTab {
			rendered = styles.TabActive.Render(label)
		} else {
			rendered = styles.Tab.Render(label)
		}

		w := lipgloss.Width(rendered)
		l.tabs = append(l.tabs, region{x: span{min(x, limit), min(x+w, limit)}})
		x += w + 1
		tabStrs = append(tabStrs, rendered)
	}

	row := lipgloss.NewStyle().MaxWidth(inner).Render(strings.Join(tabStrs, " "))
	return styles.TabBar.Width(width).Render(row)
}

func (a *App) renderInput(width int) string {
	style := styles.Input
	if a.focus == FocusInput {
		style = styles.InputFocused
	}
	// Width excludes the border
	return style.Width(width - 2).Render(a.input.View())
}

// renderButtons returns the button row and the width of each button.
func (a *App) renderButtons() (string, int, int) {
	addStyle := styles.Button
	if a.trimmedInput() == "" {
		addStyle = styles.ButtonDisabled
	}
	removeStyle := styles.Button
	if done, _ := a.state.Counts(a.state.CurrentTab); done == 0 {
		removeStyle = styles.ButtonDisabled
	}

	addBtn := addStyle.Render(addButtonLabel)
	removeBtn := removeStyle.Render(removeButtonLabel)
	return addBtn + " " + removeBtn, lipgloss.Width(addBtn), lipgloss.Width(removeBtn)
}

func (a *App) renderListHeader() string {
	tab := a.state.CurrentTab
	done, total := a.state.Counts(tab)
	return styles.Title.Render(tab.Title()) +
		styles.Subtitle.Render(fmt.Sprintf("  %d open · %d done", total-done, done))
}

// renderTaskList renders at most rows tasks around the cursor, framed by
// scroll indicator lines. top is the y of the first indicator line.
func (a *App) renderTaskList(width, rows, top int, l *layout) string {
	tab := a.state.CurrentTab
	tasks := a.state.Active()

	l.listTop = top + 1
	l.listRows = rows

	if len(tasks) == 0 {
		l.listCount = 0
		return "\n" + styles.TaskEmpty.Render(fmt.Sprintf("No tasks in %s yet", tab.Title())) + "\n"
	}

	cursor := a.cursors[tab]
	if cursor >= len(tasks) {
		cursor = len(tasks) - 1
	}

	offset := a.offsets[tab]
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+rows {
		offset = cursor - rows + 1
	}
	if maxOffset := len(tasks) - rows; offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	a.offsets[tab] = offset

	end := offset + rows
	if end > len(tasks) {
		end = len(tasks)
	}
	l.listStart = offset
	l.listCount = end - offset

	var b strings.Builder
	if offset > 0 {
		b.WriteString(styles.ScrollIndicator.Render(fmt.Sprintf("↑ %d more", offset)))
	}
	b.WriteString("\n")

	nameWidth := width - 8 // indent + border + checkbox + space
	for i := offset; i < end; i++ {
		t := tasks[i]
		check := styles.CheckboxUnchecked
		name := rowText(t.Name, nameWidth)
		if t.Completed {
			check = styles.CheckboxChecked
			name = styles.TaskCompleted.Render(name)
		}
		line := check + " " + name

		if a.focus == FocusList && i == cursor {
			b.WriteString(styles.TaskSelected.Render(line))
		} else {
			b.WriteString(styles.TaskItem.Render(line))
		}
		b.WriteString("\n")
	}

	if rest := len(tasks) - end; rest > 0 {
		b.WriteString(styles.ScrollIndicator.Render(fmt.Sprintf("↓ %d more", rest)))
	}

	return b.String()
}

func (a *App) renderStatusBar(width int) string {
	left := ""
	if a.err != nil {
		errStr := strings.ReplaceAll(a.err.Error(), "\n", " ")
		left = styles.StatusBarError.Render(truncateString("Error: "+errStr, width/2))
	} else if a.statusMsg != "" {
		msgStr := strings.ReplaceAll(a.statusMsg, "\n", " ")
		left = styles.StatusBarSuccess.Render(truncateString(msgStr, width/2))
	}

	var right string
	if a.showHints {
		hints := a.getContextualHints()
		hints = append(hints, styles.StatusBarKey.Render("F1")+styles.StatusBarText.Render(":hide"))
		right = strings.Join(hints, " ")
	} else {
		right = styles.StatusBarKey.Render("F1") + styles.StatusBarText.Render(":keys")
	}

	padding := styles.StatusBar.GetHorizontalFrameSize()
	if lipgloss.Width(left)+lipgloss.Width(right)+padding+1 > width {
		right = styles.StatusBarKey.Render("?") + styles.StatusBarText.Render(":help")
	}
	spacing := width - lipgloss.Width(left) - lipgloss.Width(right) - padding
	if spacing < 1 {
		spacing = 1
	}

	return styles.StatusBar.Render(left + strings.Repeat(" ", spacing) + right)
}

func (a *App) getContextualHints() []string {
	hint := func(key, desc string) string {
		return styles.StatusBarKey.Render(key) + styles.StatusBarText.Render(":"+desc)
	}

	if a.focus == FocusInput {
		return []string{
			hint("enter", "add"),
			hint("tab", "list"),
			hint("ctrl+n", "next tab"),
			hint("ctrl+c", "quit"),
		}
	}

	k := a.keymap
	return []string{
		hint(k.Toggle.Key, "toggle"),
		hint(k.RemoveComplete.Key, "clear done"),
		hint(k.FocusInput.Key, "new"),
		hint("1-3", "tabs"),
		hint(k.Help.Key, "help"),
		hint(k.Quit.Key, "quit"),
	}
}
