package todo

import (
	"errors"
	"fmt"
	"strings"
)

// Tab selects one of the task lists.
type Tab int

const (
	Home Tab = iota
	Work
	Personal

	tabCount = int(Personal) + 1
)

// ErrUnknownTab is returned for names or values that are not a Tab.
var ErrUnknownTab = errors.New("unknown tab")

var tabTitles = [tabCount]string{"Home", "Work", "Personal"}

// Tabs returns all tabs in display order.
func Tabs() []Tab {
	return []Tab{Home, Work, Personal}
}

// Valid reports whether t is one of the defined tabs.
func (t Tab) Valid() bool {
	return t >= 0 && int(t) < tabCount
}

// Title returns the display name of the tab.
func (t Tab) Title() string {
	if !t.Valid() {
		return fmt.Sprintf("Tab(%d)", int(t))
	}
	return tabTitles[t]
}

func (t Tab) String() string {
	return t.Title()
}

// Next returns the tab to the right, wrapping around.
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % tabCount)
}

// Prev returns the tab to the left, wrapping around.
func (t Tab) Prev() Tab {
	return Tab((int(t) + tabCount - 1) % tabCount)
}

// ParseTab converts a name like "work" into a Tab. Case and surrounding
// whitespace are ignored.
func ParseTab(name string) (Tab, error) {
	name = strings.TrimSpace(name)
	for i, title := range tabTitles {
		if strings.EqualFold(name, title) {
			return Tab(i), nil
		}
	}
	return Home, fmt.Errorf("%w: %q", ErrUnknownTab, name)
}
