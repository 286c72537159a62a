package todo

// Msg is a user intent consumed by Apply. The set of variants is closed.
type Msg interface {
	todoMsg()
}

// InputChanged replaces the pending input with Text.
type InputChanged struct {
	Text string
}

// SwitchTab makes Tab the current tab.
type SwitchTab struct {
	Tab Tab
}

// AddTask appends the trimmed pending input to the current tab's list.
type AddTask struct{}

// ToggleTask flips the completion flag of the task at Index. Tab is the tab
// that was on screen when the message was created; if it no longer matches
// the current tab the message is dropped.
type ToggleTask struct {
	Tab   Tab
	Index int
}

// RemoveCompletedTasks drops every completed task from the current tab.
type RemoveCompletedTasks struct{}

func (InputChanged) todoMsg()         {}
func (SwitchTab) todoMsg()            {}
func (AddTask) todoMsg()              {}
func (ToggleTask) todoMsg()           {}
func (RemoveCompletedTasks) todoMsg() {}
