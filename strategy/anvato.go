package strategy

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/samber/mo"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/vidping/vidping/log"
	"github.com/vidping/vidping/player"
)

// AnvatoName is the identifier reported by the Anvato strategy.
const AnvatoName = "AN"

// Anvato tracks an Anvato player.
type Anvato struct {
	player    player.Player
	store     *store
	now       func() time.Time
	backfills []backfiller

	detached  atomic.Bool
	stop      chan struct{}
	ticker    sync.WaitGroup
	closeOnce sync.Once
}

// New starts tracking the given player.
//
// It requests the thumbnail right away, starts polling the playhead position
// every opts.PositionInterval and installs its listener after whatever listener
// the player already had, which keeps being called first.
func New(p player.Player, opts Options) *Anvato {
	opts = opts.withDefaults()

	a := &Anvato{
		player: p,
		store:  newStore(),
		now:    opts.Now,
		stop:   make(chan struct{}),
	}

	a.backfills = []backfiller{
		fetchOnce[string]{store: a.store, field: titleField, query: p.GetTitle},
		fetchOnce[float64]{store: a.store, field: durationField, query: p.GetDuration},
		fetchOnce[string]{store: a.store, field: thumbnailField, query: p.GetThumbnail},
	}

	p.GetThumbnail(func(url string) {
		fillOnce(a.store, thumbnailField, url)
	})

	a.startPositionPoll(opts.PositionInterval)
	a.subscribe()

	log.Debugf("anvato strategy attached (position interval %s)", opts.PositionInterval)
	return a
}

// startPositionPoll refreshes the current time on every tick until Close.
func (a *Anvato) startPositionPoll(interval time.Duration) {
	a.ticker.Add(1)
	go func() {
		defer a.ticker.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-a.stop:
				return
			case <-ticker.C:
				a.player.GetCurrentTime(a.setCurrentTime)
			}
		}
	}()
}

func (a *Anvato) setCurrentTime(seconds float64) {
	if a.detached.Load() {
		return
	}

	a.store.write(func(s *Snapshot) {
		s.CurrentTime = seconds
	})
}

func (a *Anvato) subscribe() {
	previous := a.player.Listener()
	a.player.SetListener(player.Chain(previous, a.handle))
}

// handle derives the snapshot from a single player event.
func (a *Anvato) handle(evt player.Event) {
	if a.detached.Load() {
		return
	}

	log.With(logrus.Fields{"strategy": AnvatoName, "event": evt.Name, "args": len(evt.Args)}).Trace("player event")

	for _, b := range a.backfills {
		b.attempt()
	}

	switch evt.Name {
	case player.EventMetadataLoaded, player.EventProgramChanged:
		a.updateMetadata(evt)
	case player.EventStateChange:
		switch evt.Arg(0) {
		case player.StateVideoPause:
			a.setState(VideoStateStopped)
		case player.StateVideoPlay:
			a.setState(VideoStatePlayed)
		}
	case player.EventPlayingStart:
		// Only the first play event marks the start of the view.
		now := a.now()
		a.store.write(func(s *Snapshot) {
			if s.ViewStart.IsAbsent() {
				s.ViewStart = mo.Some(now)
			}
		})
	case player.EventVideoCompleted:
		a.setState(VideoStateCompleted)
	case player.EventAdStarted:
		a.store.write(func(s *Snapshot) {
			s.ContentType = mo.Some(ContentTypeAd)
			s.State = VideoStatePlayed
		})
	case player.EventVideoStarted:
		a.setContentType(ContentTypeContent)
	case player.EventFirstFrameReady:
		a.store.write(func(s *Snapshot) {
			s.Ready = true
		})
	case player.EventClientBandwidth:
		a.setBitrate(evt.Arg(0))
	case player.EventAdTimeUpdated:
		a.setContentType(ContentTypeAd)
	}
}

func (a *Anvato) setState(state VideoState) {
	a.store.write(func(s *Snapshot) {
		s.State = state
	})
}

func (a *Anvato) setContentType(ct ContentType) {
	a.store.write(func(s *Snapshot) {
		s.ContentType = mo.Some(ct)
	})
}

func (a *Anvato) setBitrate(arg any) {
	bitrate := mo.None[float64]()
	if arg != nil {
		kbps, err := cast.ToFloat64E(arg)
		if err != nil {
			log.Debugf("client bandwidth: %v", err)
		} else {
			bitrate = mo.Some(kbps)
		}
	}

	a.store.write(func(s *Snapshot) {
		s.Bitrate = bitrate
	})
}

// metadata is the payload nested in the third element of the first argument
// of METADATA_LOADED and PROGRAM_CHANGED.
type metadata struct {
	title     string
	duration  float64
	thumbnail string
}

var errNoMetadata = errors.New("no metadata in event")

func metadataOf(evt player.Event) (metadata, error) {
	outer, err := cast.ToSliceE(evt.Arg(0))
	if err != nil {
		return metadata{}, fmt.Errorf("first argument: %w", err)
	}

	if len(outer) < 3 || outer[2] == nil {
		return metadata{}, errNoMetadata
	}

	fields, err := cast.ToStringMapE(outer[2])
	if err != nil {
		return metadata{}, fmt.Errorf("metadata: %w", err)
	}

	return metadata{
		title:     cast.ToString(fields["title"]),
		duration:  cast.ToFloat64(fields["duration"]),
		thumbnail: cast.ToString(fields["thumbnail"]),
	}, nil
}

// updateMetadata applies an authoritative metadata event: its values always win.
func (a *Anvato) updateMetadata(evt player.Event) {
	md, err := metadataOf(evt)
	if err != nil {
		log.Warnf("%s: %v", evt.Name, err)
		return
	}

	overwrite(a.store, titleField, md.title)
	overwrite(a.store, durationField, md.duration)
	overwrite(a.store, thumbnailField, md.thumbnail)
}

// Snapshot returns a copy of the derived state.
func (a *Anvato) Snapshot() Snapshot {
	return a.store.copy()
}

// Close stops the position poll and detaches the strategy from the player.
// The listener it installed keeps forwarding events to the listener it wrapped.
func (a *Anvato) Close() {
	a.closeOnce.Do(func() {
		a.detached.Store(true)
		close(a.stop)
		a.ticker.Wait()
		log.Debugf("anvato strategy detached")
	})
}

// Name returns AnvatoName.
func (a *Anvato) Name() string {
	return AnvatoName
}

// IsReady reports whether the first frame was rendered.
func (a *Anvato) IsReady() (ready bool) {
	a.store.read(func(s *Snapshot) { ready = s.Ready })
	return
}

// Title falls back to the player configuration once, caching what it finds there.
func (a *Anvato) Title() mo.Option[string] {
	var title mo.Option[string]
	a.store.read(func(s *Snapshot) { title = s.Title })
	if title.IsPresent() {
		return title
	}

	configured, ok := a.player.Config().String(player.ConfigTitle).Get()
	if !ok {
		return mo.None[string]()
	}

	return a.adoptTitle(configured)
}

// adoptTitle caches a configured title unless a title was stored meanwhile,
// and returns whichever title the snapshot ends up holding.
func (a *Anvato) adoptTitle(title string) mo.Option[string] {
	if fillOnce(a.store, titleField, title) {
		return mo.Some(title)
	}

	var stored mo.Option[string]
	a.store.read(func(s *Snapshot) { stored = s.Title })
	return stored
}

// VideoPath returns the configured video identifier, or "".
func (a *Anvato) VideoPath() string {
	return a.player.Config().Format(player.ConfigVideo)
}

// ContentType defaults to content until an ad boundary is seen.
func (a *Anvato) ContentType() (ct ContentType) {
	a.store.read(func(s *Snapshot) {
		ct = s.ContentType.OrElse(ContentTypeContent)
	})
	return
}

// AdPosition is not tracked.
func (a *Anvato) AdPosition() mo.Option[AdPosition] {
	return mo.None[AdPosition]()
}

// TotalDuration returns the duration in milliseconds.
func (a *Anvato) TotalDuration() mo.Option[float64] {
	var duration mo.Option[float64]
	a.store.read(func(s *Snapshot) { duration = s.Duration })

	seconds, ok := duration.Get()
	if !ok {
		return mo.None[float64]()
	}
	return mo.Some(seconds * 1000)
}

// State returns the latest play state.
func (a *Anvato) State() (state VideoState) {
	a.store.read(func(s *Snapshot) { state = s.State })
	return
}

// CurrentPlayTime returns the last polled position in milliseconds.
func (a *Anvato) CurrentPlayTime() (ms float64) {
	a.store.read(func(s *Snapshot) { ms = s.CurrentTime * 1000 })
	return
}

// Bitrate returns the last reported client bandwidth in kbps.
func (a *Anvato) Bitrate() (kbps mo.Option[float64]) {
	a.store.read(func(s *Snapshot) { kbps = s.Bitrate })
	return
}

// ThumbnailPath returns the thumbnail URL, or "".
func (a *Anvato) ThumbnailPath() (url string) {
	a.store.read(func(s *Snapshot) { url = s.Thumbnail.OrEmpty() })
	return
}

// AutoplayType is always unknown for this player.
func (a *Anvato) AutoplayType() AutoplayType {
	return AutoplayTypeUnknown
}

// PlayerType is not tracked.
func (a *Anvato) PlayerType() mo.Option[string] {
	return mo.None[string]()
}

// ViewStartTime returns the milliseconds elapsed since the first play event, or 0.
func (a *Anvato) ViewStartTime() int64 {
	var start mo.Option[time.Time]
	a.store.read(func(s *Snapshot) { start = s.ViewStart })

	t, ok := start.Get()
	if !ok {
		return 0
	}
	return a.now().Sub(t).Milliseconds()
}

// ViewPlayTime is not tracked.
func (a *Anvato) ViewPlayTime() mo.Option[int64] {
	return mo.None[int64]()
}

// ViewAdPlayTime is not tracked.
func (a *Anvato) ViewAdPlayTime() mo.Option[int64] {
	return mo.None[int64]()
}
