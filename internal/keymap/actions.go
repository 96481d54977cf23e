// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Session actions
	ActionBegin    Action = "begin"
	ActionEnd      Action = "end"
	ActionNext     Action = "next"
	ActionPrevious Action = "previous"

	// Volume actions
	ActionVolumeUp   Action = "volume_up"
	ActionVolumeDown Action = "volume_down"
)
