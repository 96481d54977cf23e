// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playback operations
	OpClipLoad  Op = "load clip"
	OpClipPlay  Op = "play clip"
	OpClipProbe Op = "read clip duration"

	// Configuration
	OpConfigLoad     Op = "load configuration"
	OpConfigValidate Op = "validate configuration"

	// Desktop integration
	OpMprisStart Op = "start media controls"
	OpNotify     Op = "send notification"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
