// Package player defines the contract of the observed video player.
// The player is an external collaborator: strategies only query it asynchronously
// and subscribe to its event stream through a single listener slot.
package player

import (
	"fmt"

	"github.com/samber/mo"
)

// Player encapsulates the capabilities a playback strategy consumes from a host player.
type Player interface {
	// GetThumbnail asynchronously resolves the thumbnail URL of the active media.
	GetThumbnail(callback func(url string))

	// GetTitle asynchronously resolves the human readable title of the active media.
	GetTitle(callback func(title string))

	// GetDuration asynchronously resolves the total duration of the active media in seconds.
	GetDuration(callback func(seconds float64))

	// GetCurrentTime asynchronously resolves the playhead position in seconds.
	GetCurrentTime(callback func(seconds float64))

	// Listener returns the listener currently installed in the event slot, or nil.
	Listener() Listener

	// SetListener replaces the listener installed in the event slot.
	SetListener(listener Listener)

	// Config returns the static configuration snapshot the player was created with.
	// It may be nil.
	Config() Config
}

// Config is the loosely typed static configuration of a player (its "merged config").
type Config map[string]any

// Well-known configuration fields.
const (
	ConfigTitle   = "title"
	ConfigVideo   = "video"
	ConfigBaseURL = "baseURL"
)

// String returns the field as a string if it is present and is a non-empty string.
func (c Config) String(key string) mo.Option[string] {
	if c == nil {
		return mo.None[string]()
	}

	s, ok := c[key].(string)
	if !ok || s == "" {
		return mo.None[string]()
	}

	return mo.Some(s)
}

// Format renders the field with its default format, whatever its type is.
// Absent fields render as an empty string.
func (c Config) Format(key string) string {
	if c == nil {
		return ""
	}

	v, ok := c[key]
	if !ok || v == nil {
		return ""
	}

	// JSON numbers decode as float64; video IDs are integers in practice
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}

	return fmt.Sprint(v)
}
