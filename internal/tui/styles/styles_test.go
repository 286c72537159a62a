package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFrame(t *testing.T) {
	f := Frame("#006400", 80, 24)

	if got := f.GetBackground(); got != lipgloss.Color("#006400") {
		t.Errorf("expected background #006400, got %v", got)
	}
	if f.GetWidth() != 80 || f.GetHeight() != 24 {
		t.Errorf("expected 80x24, got %dx%d", f.GetWidth(), f.GetHeight())
	}
}

func TestCheckboxGlyphsSameWidth(t *testing.T) {
	if lipgloss.Width(CheckboxChecked) != lipgloss.Width(CheckboxUnchecked) {
		t.Error("checkbox glyphs must have the same width so rows stay aligned")
	}
}
