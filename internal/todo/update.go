package todo

import (
	"errors"
	"fmt"
	"strings"
)

// Reasons a message can be ignored. None of them is a failure; Apply
// reports them so callers can log what happened.
var (
	ErrEmptyName       = errors.New("task name is empty")
	ErrStaleTab        = errors.New("toggle issued for another tab")
	ErrIndexOutOfRange = errors.New("task index out of range")
	ErrUnknownMsg      = errors.New("unknown message")
)

// Result describes the effect of one Apply call.
type Result struct {
	// Changed is true when the state was modified.
	Changed bool

	// Removed is the number of tasks dropped by RemoveCompletedTasks.
	Removed int

	// Err is set when the message was ignored.
	Err error
}

func ignored(err error) Result {
	return Result{Err: err}
}

// Apply is the only function that mutates s. It never panics on bad input:
// invalid messages leave s untouched and come back with Result.Err set.
func Apply(s *State, msg Msg) Result {
	switch m := msg.(type) {
	case InputChanged:
		s.PendingInput = m.Text
		return Result{Changed: true}

	case SwitchTab:
		if !m.Tab.Valid() {
			return ignored(fmt.Errorf("%w: %d", ErrUnknownTab, int(m.Tab)))
		}
		s.CurrentTab = m.Tab
		return Result{Changed: true}

	case AddTask:
		return addTask(s)

	case ToggleTask:
		return toggleTask(s, m)

	case RemoveCompletedTasks:
		return removeCompleted(s)
	}

	return ignored(fmt.Errorf("%w: %T", ErrUnknownMsg, msg))
}

func addTask(s *State) Result {
	if !s.CurrentTab.Valid() {
		return ignored(ErrUnknownTab)
	}
	name := strings.TrimSpace(s.PendingInput)
	if name == "" {
		return ignored(ErrEmptyName)
	}

	list := s.list()
	*list = append(*list, Task{Name: name})
	s.PendingInput = ""
	return Result{Changed: true}
}

func toggleTask(s *State, m ToggleTask) Result {
	if m.Tab != s.CurrentTab {
		return ignored(fmt.Errorf("%w: issued for %s, current is %s", ErrStaleTab, m.Tab, s.CurrentTab))
	}
	if !s.CurrentTab.Valid() {
		return ignored(ErrUnknownTab)
	}

	list := *s.list()
	if m.Index < 0 || m.Index >= len(list) {
		return ignored(fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, m.Index, len(list)))
	}
	list[m.Index].Completed = !list[m.Index].Completed
	return Result{Changed: true}
}

func removeCompleted(s *State) Result {
	if !s.CurrentTab.Valid() {
		return ignored(ErrUnknownTab)
	}

	list := s.list()
	kept := (*list)[:0]
	for _, t := range *list {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	removed := len(*list) - len(kept)

	// Zero the dropped tail.
	for i := len(kept); i < len(*list); i++ {
		(*list)[i] = Task{}
	}
	*list = kept

	return Result{Changed: removed > 0, Removed: removed}
}
