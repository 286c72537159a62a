package tui

import "github.com/hy4ri/tabtodo/internal/todo"

type hitKind int

const (
	hitNone hitKind = iota
	hitTab
	hitInput
	hitAddButton
	hitRemoveButton
	hitTask
)

// hitTarget is what a mouse click landed on.
type hitTarget struct {
	kind  hitKind
	tab   todo.Tab
	index int
}

// span is the half-open interval [from, to).
type span struct{ from, to int }

func (s span) contains(v int) bool {
	return v >= s.from && v < s.to
}

type region struct{ x, y span }

func (r region) contains(x, y int) bool {
	return r.x.contains(x) && r.y.contains(y)
}

// layout records where the last View placed each clickable element.
type layout struct {
	tab          todo.Tab // tab that was on screen
	tabs         []region // in todo.Tabs() order
	input        region
	addButton    region
	removeButton region

	listTop   int // y of the first task row
	listRows  int // rows available to the list
	listStart int // index of the task in the first row
	listCount int // task rows actually drawn
}

func (l layout) hit(x, y int) hitTarget {
	tabs := todo.Tabs()
	for i, r := range l.tabs {
		if i < len(tabs) && r.contains(x, y) {
			return hitTarget{kind: hitTab, tab: tabs[i]}
		}
	}

	switch {
	case l.input.contains(x, y):
		return hitTarget{kind: hitInput}
	case l.addButton.contains(x, y):
		return hitTarget{kind: hitAddButton}
	case l.removeButton.contains(x, y):
		return hitTarget{kind: hitRemoveButton}
	}

	if row := y - l.listTop; row >= 0 && row < l.listCount {
		return hitTarget{kind: hitTask, tab: l.tab, index: l.listStart + row}
	}

	return hitTarget{kind: hitNone}
}
