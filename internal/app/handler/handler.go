// Package handler provides a result type and chain function for action
// handlers.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundboard/internal/keymap"
)

// Result represents the outcome of an action handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler doesn't handle the action.
var NotHandled = Result{}

// Handled creates a Result indicating the action was handled with a command.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// HandledNoCmd is a convenience for handlers that handle but return no command.
var HandledNoCmd = Result{Handled: true}

// Handler attempts to handle a resolved action.
type Handler func(action keymap.Action) Result

// Chain offers action to each handler in order until one handles it.
// An empty action is never handled.
func Chain(action keymap.Action, handlers ...Handler) (bool, tea.Cmd) {
	if action == "" {
		return false, nil
	}
	for _, h := range handlers {
		if r := h(action); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
