// Package todo holds the tabbed task lists and the message-driven update
// function that is the only way to change them.
package todo

// Task is a single to-do item.
type Task struct {
	Name      string
	Completed bool
}

// State is the whole application state rendered by the view layer.
type State struct {
	// CurrentTab selects the list that add, toggle and remove apply to.
	CurrentTab Tab

	// PendingInput is the text being composed for the next task.
	PendingInput string

	tasks [tabCount][]Task
}

// New returns the initial state: Home tab, empty input, empty lists.
func New() *State {
	return &State{CurrentTab: Home}
}

// Tasks returns a copy of the list for tab. Unknown tabs yield nil.
func (s *State) Tasks(tab Tab) []Task {
	if !tab.Valid() {
		return nil
	}
	list := s.tasks[tab]
	if len(list) == 0 {
		return nil
	}
	out := make([]Task, len(list))
	copy(out, list)
	return out
}

// Active returns a copy of the current tab's list.
func (s *State) Active() []Task {
	return s.Tasks(s.CurrentTab)
}

// Len returns the number of tasks in tab.
func (s *State) Len(tab Tab) int {
	if !tab.Valid() {
		return 0
	}
	return len(s.tasks[tab])
}

// Counts returns how many tasks in tab are completed, and the total.
func (s *State) Counts(tab Tab) (done, total int) {
	if !tab.Valid() {
		return 0, 0
	}
	for _, t := range s.tasks[tab] {
		if t.Completed {
			done++
		}
	}
	return done, len(s.tasks[tab])
}

// list returns the mutable list for the current tab.
func (s *State) list() *[]Task {
	return &s.tasks[s.CurrentTab]
}
