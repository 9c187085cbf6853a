package tui

import tea "github.com/charmbracelet/bubbletea"

// NavigateTo switches the login-flow router to another page. An optional
// Payload is re-dispatched after the switch so the target page can react
// to it.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult reports the outcome of the async login command.
type LoginResult struct {
	Err   error
	Email string
}

// RegisterResult reports the outcome of the async registration command.
type RegisterResult struct {
	Err   error
	Email string
}

// RegisterSuccessNotice is delivered to the menu page after a successful
// registration so it can show a confirmation line.
type RegisterSuccessNotice struct {
	Email string
}

// UnlockResult reports the outcome of the passphrase prompt.
type UnlockResult struct {
	Err error
}
