// Package ui provides the Bubble Tea TUI for the project tracker.
package ui

// Message types for TUI updates

// ErrorMsg is sent when an error occurs. The open drawer shows it in place
// of the metric content; a nil Error clears it.
type ErrorMsg struct {
	Error error
}

// activationDoneMsg is sent when an activation's loading delay elapses.
type activationDoneMsg struct {
	activation uint64
}

// drawerClosedMsg is produced by the host's close callback.
type drawerClosedMsg struct{}
