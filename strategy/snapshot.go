package strategy

import (
	"sync"
	"time"

	"github.com/samber/mo"
)

// Snapshot is the derived playback state of a single player.
// Values returned by Anvato.Snapshot are copies and safe to keep.
type Snapshot struct {
	Title     mo.Option[string]
	Duration  mo.Option[float64] // seconds
	Thumbnail mo.Option[string]

	// CurrentTime is the latest playhead position in seconds.
	CurrentTime float64
	State       VideoState
	ContentType mo.Option[ContentType]
	Bitrate     mo.Option[float64] // kbps
	Ready       bool
	ViewStart   mo.Option[time.Time]
}

func newSnapshot() Snapshot {
	return Snapshot{
		Title:       mo.None[string](),
		Duration:    mo.None[float64](),
		Thumbnail:   mo.None[string](),
		State:       VideoStateUnplayed,
		ContentType: mo.None[ContentType](),
		Bitrate:     mo.None[float64](),
		ViewStart:   mo.None[time.Time](),
	}
}

// store owns the snapshot. Every mutation goes through one of its methods,
// which encode the write policy of the field they touch.
type store struct {
	mu sync.RWMutex
	s  Snapshot
}

func newStore() *store {
	return &store{s: newSnapshot()}
}

// field selects an optional field of the snapshot.
type field[T comparable] func(*Snapshot) *mo.Option[T]

var (
	titleField     field[string]  = func(s *Snapshot) *mo.Option[string] { return &s.Title }
	durationField  field[float64] = func(s *Snapshot) *mo.Option[float64] { return &s.Duration }
	thumbnailField field[string]  = func(s *Snapshot) *mo.Option[string] { return &s.Thumbnail }
)

func (st *store) read(fn func(s *Snapshot)) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	fn(&st.s)
}

func (st *store) write(fn func(s *Snapshot)) {
	st.mu.Lock()
	defer st.mu.Unlock()
	fn(&st.s)
}

func (st *store) copy() (s Snapshot) {
	st.read(func(cur *Snapshot) { s = *cur })
	return
}

// empty reports whether the field holds no value yet.
func empty[T comparable](st *store, f field[T]) (ok bool) {
	st.read(func(s *Snapshot) { ok = f(s).IsAbsent() })
	return
}

// fillOnce stores v only if the field is still empty. A zero v never populates the field.
// It reports whether v was stored.
func fillOnce[T comparable](st *store, f field[T], v T) (stored bool) {
	var zero T
	if v == zero {
		return false
	}

	st.write(func(s *Snapshot) {
		if f(s).IsPresent() {
			return
		}
		*f(s) = mo.Some(v)
		stored = true
	})
	return
}

// overwrite stores v unconditionally. A zero v clears the field.
func overwrite[T comparable](st *store, f field[T], v T) {
	var zero T
	st.write(func(s *Snapshot) {
		if v == zero {
			*f(s) = mo.None[T]()
			return
		}
		*f(s) = mo.Some(v)
	})
}
