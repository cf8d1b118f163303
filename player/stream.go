package player

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"

	"github.com/vidping/vidping/log"
)

// Emitter accepts events and delivers them to its listener slot.
type Emitter interface {
	Emit(evt Event)
}

// Stream feeds newline-delimited JSON events into an Emitter.
// Each line is an Event object: {"name": "...", "args": [...]}.
type Stream struct {
	source   io.ReadCloser
	target   Emitter
	done     chan struct{}
	mu       sync.Mutex
	running  bool
	stopped  bool
	received int
	err      error
}

// NewStream creates a stream reading events from r into target.
func NewStream(r io.Reader, target Emitter) *Stream {
	rc, ok := r.(io.ReadCloser)
	if !ok {
		rc = io.NopCloser(r)
	}

	return &Stream{
		source: rc,
		target: target,
		done:   make(chan struct{}),
	}
}

// DialStream connects to a unix socket that publishes player events.
func DialStream(socketPath string, target Emitter) (*Stream, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("event stream connect: %w", err)
	}

	return NewStream(conn, target), nil
}

// Start begins the read loop in a background goroutine.
func (s *Stream) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running || s.stopped {
		return
	}
	s.running = true

	go s.readLoop()
}

// Stop closes the source and waits for the read loop to exit.
func (s *Stream) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	running := s.running
	s.mu.Unlock()

	_ = s.source.Close()
	if running {
		<-s.done
	} else {
		close(s.done)
	}
}

// Done returns a channel that is closed when the read loop exits.
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

// Err returns the error that terminated the read loop, if any.
// Reaching EOF or stopping the stream is not an error.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Received reports the number of events delivered so far.
func (s *Stream) Received() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.received
}

func (s *Stream) readLoop() {
	defer close(s.done)

	scanner := bufio.NewScanner(s.source)
	scanner.Buffer(make([]byte, 4096), 1<<20)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		evt, err := decodeEvent(line)
		if err != nil {
			log.Warnf("event stream: skipping line: %v", err)
			continue
		}

		s.target.Emit(evt)

		s.mu.Lock()
		s.received++
		s.mu.Unlock()
	}

	err := scanner.Err()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil && !s.stopped && !errors.Is(err, net.ErrClosed) {
		s.err = fmt.Errorf("event stream read: %w", err)
	}
}

func decodeEvent(line string) (Event, error) {
	var evt Event
	if err := json.Unmarshal([]byte(line), &evt); err != nil {
		return Event{}, fmt.Errorf("unmarshal: %w", err)
	}

	if evt.Name == "" {
		return Event{}, errors.New("event without name")
	}

	return evt, nil
}
