package tui

// SwitchScreenMsg requests a screen change
type SwitchScreenMsg struct {
	Screen Screen
}

// RefreshDataMsg tells a screen to re-read the session state
type RefreshDataMsg struct{}

// ErrorMsg carries error information
type ErrorMsg struct {
	Err error
}

// exportDoneMsg reports the outcome of a share or export action
type exportDoneMsg struct {
	what string // "WhatsApp", "Email", "Print"
	path string // file path for print exports
	err  error
}
