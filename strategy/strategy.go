// Package strategy derives a normalized, poll-ready playback state from a host video player.
//
// A strategy observes one player, keeps a snapshot of what the video is doing
// (title, duration, position, play state, content type, bitrate, thumbnail)
// and answers synchronous getters an external ping pipeline calls at its own cadence.
// Getters never block on the player.
package strategy

import (
	"time"

	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/vidping/vidping/key"
)

// Strategy is the getter surface polled by the ping pipeline.
// Optional results are None when the value is unknown, which is distinct from zero.
type Strategy interface {
	// Name is a short 2-3 character identifier of the strategy.
	Name() string

	// IsReady reports whether pings may be sent.
	IsReady() bool

	// Title is the human readable title (ping key i).
	Title() mo.Option[string]

	// VideoPath identifies the video (ping key p).
	VideoPath() string

	// ContentType reports whether an ad or the main content is playing (_vt).
	ContentType() ContentType

	// AdPosition is the position of the playing ad (_vap).
	AdPosition() mo.Option[AdPosition]

	// TotalDuration is the total duration in milliseconds (_vd).
	TotalDuration() mo.Option[float64]

	// State is the current play state (_vs).
	State() VideoState

	// CurrentPlayTime is the playhead position in milliseconds (_vpt).
	CurrentPlayTime() float64

	// Bitrate is the current bitrate in kbps (_vbr).
	Bitrate() mo.Option[float64]

	// ThumbnailPath is the absolute thumbnail URL, or "" (_vtn).
	ThumbnailPath() string

	// AutoplayType reports how playback was initiated.
	AutoplayType() AutoplayType

	// PlayerType is a user defined player type (_vplt).
	PlayerType() mo.Option[string]

	// ViewStartTime is the number of milliseconds since viewing started, or 0 (_vvs).
	ViewStartTime() int64

	// ViewPlayTime is the number of milliseconds since the user entered a play state (_vvsp).
	ViewPlayTime() mo.Option[int64]

	// ViewAdPlayTime is the number of milliseconds since play start for users who saw a preroll (_vasp).
	ViewAdPlayTime() mo.Option[int64]

	// Close releases the strategy's timer and listener.
	Close()
}

const defaultPositionInterval = 50 * time.Millisecond

// Options tune a strategy instance.
type Options struct {
	// PositionInterval is the period of the playhead position poll.
	PositionInterval time.Duration

	// Now is the clock used for view timing. Defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions reads the strategy options from the configuration.
func DefaultOptions() Options {
	return Options{
		PositionInterval: time.Duration(viper.GetInt(key.StrategyPositionInterval)) * time.Millisecond,
		Now:              time.Now,
	}
}

func (o Options) withDefaults() Options {
	if o.PositionInterval <= 0 {
		o.PositionInterval = defaultPositionInterval
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
