package player

import (
	"context"
	"sync"
	"time"
)

// Props are the values a player reports through its asynchronous queries.
// Nil fields are left untouched by Scripted.Set.
type Props struct {
	Title       *string  `json:"title,omitempty"`
	Duration    *float64 `json:"duration,omitempty"`
	Thumbnail   *string  `json:"thumbnail,omitempty"`
	CurrentTime *float64 `json:"time,omitempty"`
}

// Scripted is an in-memory Player whose reported values and emitted events are driven by the caller.
// Queries resolve on their own goroutine after Latency, reading the values current at resolution time.
type Scripted struct {
	// Latency delays every query callback.
	Latency time.Duration

	mu          sync.Mutex
	config      Config
	title       string
	duration    float64
	thumbnail   string
	currentTime float64
	listener    Listener

	// pending counts unresolved queries; idle is signalled when it drops to zero.
	pending int
	idle    *sync.Cond
}

// NewScripted creates a scripted player with the given static configuration.
func NewScripted(config Config) *Scripted {
	s := &Scripted{config: config}
	s.idle = sync.NewCond(&s.mu)
	return s
}

// Set updates the values reported by future query resolutions.
func (s *Scripted) Set(props Props) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if props.Title != nil {
		s.title = *props.Title
	}
	if props.Duration != nil {
		s.duration = *props.Duration
	}
	if props.Thumbnail != nil {
		s.thumbnail = *props.Thumbnail
	}
	if props.CurrentTime != nil {
		s.currentTime = *props.CurrentTime
	}
}

// SetConfig replaces the static configuration.
func (s *Scripted) SetConfig(config Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = config
}

// Emit delivers the event to the installed listener, if any.
func (s *Scripted) Emit(evt Event) {
	s.mu.Lock()
	listener := s.listener
	s.mu.Unlock()

	if listener != nil {
		listener(evt)
	}
}

// Wait blocks until no query is pending.
func (s *Scripted) Wait() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for s.pending > 0 {
		s.idle.Wait()
	}
}

// Drain is Wait bounded by ctx. It returns the context error if ctx ends first.
// Callers must stop issuing queries before draining, or it may never return nil.
func (s *Scripted) Drain(ctx context.Context) error {
	idle := make(chan struct{})
	go func() {
		s.Wait()
		close(idle)
	}()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scripted) GetThumbnail(callback func(url string)) {
	resolve(s, func() string { return s.thumbnail }, callback)
}

func (s *Scripted) GetTitle(callback func(title string)) {
	resolve(s, func() string { return s.title }, callback)
}

func (s *Scripted) GetDuration(callback func(seconds float64)) {
	resolve(s, func() float64 { return s.duration }, callback)
}

func (s *Scripted) GetCurrentTime(callback func(seconds float64)) {
	resolve(s, func() float64 { return s.currentTime }, callback)
}

func (s *Scripted) Listener() Listener {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listener
}

func (s *Scripted) SetListener(listener Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = listener
}

func (s *Scripted) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

// resolve runs callback with the value read at resolution time, off the caller's goroutine.
func resolve[T any](s *Scripted, read func() T, callback func(T)) {
	s.mu.Lock()
	s.pending++
	s.mu.Unlock()

	time.AfterFunc(s.Latency, func() {
		s.mu.Lock()
		v := read()
		s.mu.Unlock()

		callback(v)

		s.mu.Lock()
		s.pending--
		if s.pending == 0 {
			s.idle.Broadcast()
		}
		s.mu.Unlock()
	})
}
