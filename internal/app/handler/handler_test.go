package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/soundboard/internal/keymap"
)

func only(want keymap.Action, r Result, calls *[]keymap.Action) Handler {
	return func(action keymap.Action) Result {
		*calls = append(*calls, action)
		if action == want {
			return r
		}
		return NotHandled
	}
}

func TestResults(t *testing.T) {
	if NotHandled.Handled || NotHandled.Cmd != nil {
		t.Error("NotHandled should be the zero Result")
	}
	if !HandledNoCmd.Handled || HandledNoCmd.Cmd != nil {
		t.Error("HandledNoCmd should be handled without a command")
	}

	cmd := func() tea.Msg { return "test" }
	r := Handled(cmd)
	if !r.Handled || r.Cmd == nil {
		t.Error("Handled(cmd) should carry the command")
	}
	if r := Handled(nil); !r.Handled || r.Cmd != nil {
		t.Error("Handled(nil) should be handled without a command")
	}
}

func TestChain_NoHandlers(t *testing.T) {
	handled, cmd := Chain(keymap.ActionBegin)
	if handled || cmd != nil {
		t.Error("Chain with no handlers should not handle")
	}
}

func TestChain_EmptyAction(t *testing.T) {
	var calls []keymap.Action
	handled, _ := Chain("", only("", HandledNoCmd, &calls))
	if handled {
		t.Error("empty action should not be handled")
	}
	if len(calls) != 0 {
		t.Errorf("no handler should run for an empty action, got %v", calls)
	}
}

func TestChain_Order(t *testing.T) {
	t.Run("first matching handler wins", func(t *testing.T) {
		var calls []keymap.Action
		quit := func() tea.Msg { return tea.QuitMsg{} }

		handled, cmd := Chain(keymap.ActionQuit,
			only(keymap.ActionHelp, HandledNoCmd, &calls),
			only(keymap.ActionQuit, Handled(quit), &calls),
			only(keymap.ActionQuit, HandledNoCmd, &calls),
		)

		if !handled {
			t.Fatal("expected quit to be handled")
		}
		if cmd == nil {
			t.Fatal("expected the command from the second handler")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("expected the quit command")
		}
		if len(calls) != 2 {
			t.Errorf("expected 2 handlers to run, got %d", len(calls))
		}
	})

	t.Run("every handler sees the action", func(t *testing.T) {
		var calls []keymap.Action

		handled, cmd := Chain(keymap.ActionNext,
			only(keymap.ActionBegin, HandledNoCmd, &calls),
			only(keymap.ActionEnd, HandledNoCmd, &calls),
			only(keymap.ActionVolumeUp, HandledNoCmd, &calls),
		)

		if handled || cmd != nil {
			t.Error("unmatched action should not be handled")
		}
		want := []keymap.Action{keymap.ActionNext, keymap.ActionNext, keymap.ActionNext}
		if len(calls) != len(want) {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
		for i := range want {
			if calls[i] != want[i] {
				t.Errorf("calls[%d] = %q, want %q", i, calls[i], want[i])
			}
		}
	})
}
