// Package session loads recorded player sessions and replays them into a scripted player.
//
// A session file holds one JSON object per line. Each entry happens "at" a number of
// milliseconds after the session start and may replace the player configuration,
// change the values the player reports to queries, emit an event, or any combination:
//
//	{"at": 0, "config": {"baseURL": "https://up.anv.bz/", "video": "3254104"}}
//	{"at": 0, "props": {"title": "Clip", "duration": 90}}
//	{"at": 120, "name": "FIRST_FRAME_READY"}
//	{"at": 500, "props": {"time": 0.5}}
package session

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/vidping/vidping/filesystem"
	"github.com/vidping/vidping/player"
	"github.com/vidping/vidping/where"
)

// Extension is the file extension of session files.
const Extension = ".jsonl"

// Entry is a single timed step of a session.
type Entry struct {
	At     int64         `json:"at"`
	Config player.Config `json:"config,omitempty"`
	Props  *player.Props `json:"props,omitempty"`
	Name   string        `json:"name,omitempty"`
	Args   []any         `json:"args,omitempty"`
}

// Offset is the time of the entry relative to the session start.
func (e Entry) Offset() time.Duration {
	return time.Duration(e.At) * time.Millisecond
}

// IsEvent reports whether the entry emits an event.
func (e Entry) IsEvent() bool {
	return e.Name != ""
}

// Session is an ordered list of entries.
type Session struct {
	Name    string
	Entries []Entry
}

var errEmptyEntry = errors.New("entry has neither config, props nor event")

// Resolve maps a bare session name to a file in the sessions directory.
// Anything that looks like a path is returned unchanged.
func Resolve(name string) string {
	if strings.ContainsRune(name, filepath.Separator) || filepath.Ext(name) != "" {
		return name
	}
	return filepath.Join(where.Sessions(), name+Extension)
}

// Load reads a session file.
func Load(path string) (*Session, error) {
	f, err := filesystem.API().Open(path)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", path, err)
	}

	s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return s, nil
}

// Parse decodes session entries and orders them by time. Entries sharing a time keep their file order.
func Parse(r io.Reader) (*Session, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 4096), 1<<20)

	line := 0
	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "//") {
			continue
		}

		var entry Entry
		if err := json.Unmarshal([]byte(text), &entry); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		if entry.At < 0 {
			return nil, fmt.Errorf("line %d: negative time %d", line, entry.At)
		}

		if entry.Config == nil && entry.Props == nil && entry.Name == "" {
			return nil, fmt.Errorf("line %d: %w", line, errEmptyEntry)
		}

		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].At < entries[j].At
	})

	return &Session{Entries: entries}, nil
}

// Config returns the first configuration of the session, which a player should start with.
func (s *Session) Config() player.Config {
	entry, ok := lo.Find(s.Entries, func(e Entry) bool {
		return e.Config != nil
	})
	if !ok {
		return nil
	}
	return entry.Config
}

// Events counts the entries emitting an event.
func (s *Session) Events() int {
	return lo.CountBy(s.Entries, Entry.IsEvent)
}

// Duration is the offset of the last entry.
func (s *Session) Duration() time.Duration {
	if len(s.Entries) == 0 {
		return 0
	}
	return s.Entries[len(s.Entries)-1].Offset()
}
