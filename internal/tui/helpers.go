package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// rowText renders a task name as a single list row no wider than width.
// Each task must occupy exactly one screen line for click hit-testing.
func rowText(name string, width int) string {
	return truncateString(lineBreaks.Replace(name), width)
}

// truncateString cuts s to maxLen cells, ending in "…" when shortened.
func truncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxLen {
		return s
	}
	return runewidth.Truncate(s, maxLen, "…")
}
