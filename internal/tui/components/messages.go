package components

// CloseHelpMsg is emitted when the help overlay asks to be dismissed.
type CloseHelpMsg struct{}
