// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#DDDDDD", Dark: "#BBBBBB"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.Color("#FFFFFF")

	// Special colors
	ErrorColor   = lipgloss.Color("#FFD7D7")
	SuccessColor = lipgloss.Color("#D7FFD7")
)

// Base styles
var (
	// Title is the style for section titles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Task styles
var (
	// TaskItem is the base style for a task item
	TaskItem = lipgloss.NewStyle().
			PaddingLeft(2)

	// TaskSelected is the style for the task under the cursor
	TaskSelected = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeftForeground(Highlight).
			Bold(true)

	// TaskCompleted is applied on top of the item style for completed tasks
	TaskCompleted = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)

	// TaskEmpty is the placeholder shown for an empty list
	TaskEmpty = lipgloss.NewStyle().
			PaddingLeft(2).
			Italic(true).
			Foreground(Subtle)

	// ScrollIndicator shows there's more content above or below
	ScrollIndicator = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true).
			PaddingLeft(2)
)

// Checkbox glyphs
const (
	CheckboxUnchecked = "[ ]"
	CheckboxChecked   = "[x]"
)

// Tab bar styles
var (
	// TabBar is the container for the tab bar
	TabBar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Subtle).
		PaddingLeft(1).
		PaddingRight(1)

	// Tab is for inactive tabs
	Tab = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(Subtle)

	// TabActive is for the active tab
	TabActive = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Reverse(true)
)

// Input styles
var (
	// Input is the style for the task input box
	Input = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	// InputFocused is for the focused input box
	InputFocused = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)
)

// Button styles
var (
	Button = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(Highlight).
		Bold(true)

	ButtonDisabled = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(Subtle).
			Faint(true)
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Padding(0, 1)

	// StatusBarKey is for keyboard shortcut hints
	StatusBarKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)

	// StatusBarText is for status bar descriptions
	StatusBarText = lipgloss.NewStyle().
			Foreground(Subtle)

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	// SectionHeader is for help section titles
	SectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle).
			Underline(true)
)

// Dialog is the base style for dialog boxes
var Dialog = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(Highlight).
	Padding(1, 2)

// Frame returns the full-screen style painted with the active tab's
// background color.
func Frame(background string, width, height int) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(background)).
		Foreground(Highlight).
		Width(width).
		Height(height).
		Padding(0, 1)
}
