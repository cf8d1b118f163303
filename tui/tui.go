// Package tui provides the live terminal view of a tracked player.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidping/vidping/strategy"
)

// Options encapsulates the runtime configuration for the watch view.
type Options struct {
	// Strategy is sampled on every refresh.
	Strategy strategy.Strategy

	// Source names what is being watched, e.g. the session name.
	Source string

	// Interval is the refresh period.
	Interval time.Duration

	// Done is closed when the source stops producing events. May be nil.
	Done <-chan struct{}
}

// Run initializes and executes the Bubble Tea program until the user quits.
func Run(options *Options) error {
	_, err := tea.NewProgram(newBubble(options), tea.WithAltScreen()).Run()
	return err
}
