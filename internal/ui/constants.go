// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of items to keep visible above/below the cursor.
	ScrollMargin = 2

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// MinProgressBarWidth is the minimum width for a usable slider.
	MinProgressBarWidth = 10

	// MaxProgressBarWidth caps the slider on wide terminals.
	MaxProgressBarWidth = 40
)
