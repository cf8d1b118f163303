package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidping/vidping/filesystem"
	"github.com/vidping/vidping/player"
	"github.com/vidping/vidping/strategy"
)

func init() {
	filesystem.SetMemMapFs()
}

const recorded = `{"at": 0, "config": {"baseURL": "https://up.anv.bz/web/", "video": 3254104}}
// the player knows the title before announcing it
{"at": 0, "props": {"title": "Opportunistic", "thumbnail": "https://img/a.jpg"}}
{"at": 40, "name": "PLAYING_START"}
{"at": 20, "name": "AD_STARTED"}
{"at": 40, "name": "VIDEO_STARTED"}
{"at": 60, "name": "METADATA_LOADED", "args": [["3254104", 1, {"title": "Clip", "duration": 90, "thumbnail": "https://img/b.jpg"}]]}
{"at": 80, "name": "FIRST_FRAME_READY"}
{"at": 80, "name": "CLIENT_BANDWIDTH", "args": [2200]}
{"at": 100, "props": {"time": 12}}
`

func TestParse(t *testing.T) {
	Convey("Given a recorded session", t, func() {
		s, err := Parse(strings.NewReader(recorded))
		So(err, ShouldBeNil)

		Convey("Entries are ordered by time, keeping file order on ties", func() {
			names := lo.FilterMap(s.Entries, func(e Entry, _ int) (string, bool) {
				return e.Name, e.IsEvent()
			})
			So(names, ShouldResemble, []string{
				"AD_STARTED", "PLAYING_START", "VIDEO_STARTED", "METADATA_LOADED", "FIRST_FRAME_READY", "CLIENT_BANDWIDTH",
			})
		})

		Convey("It exposes its starting configuration", func() {
			So(s.Config().String(player.ConfigBaseURL).OrEmpty(), ShouldEqual, "https://up.anv.bz/web/")
			So(s.Config().Format(player.ConfigVideo), ShouldEqual, "3254104")
		})

		Convey("It counts events and measures its length", func() {
			So(s.Events(), ShouldEqual, 6)
			So(s.Duration(), ShouldEqual, 100*time.Millisecond)
		})
	})

	Convey("Parse rejects broken sessions", t, func() {
		_, err := Parse(strings.NewReader(`{"at": 0}`))
		So(err, ShouldNotBeNil)

		_, err = Parse(strings.NewReader(`{"at": -5, "name": "X"}`))
		So(err, ShouldNotBeNil)

		_, err = Parse(strings.NewReader(`{"at": 0, "name": "X"}` + "\n" + `not json`))
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "line 2")
	})
}

func TestLoad(t *testing.T) {
	Convey("Given a session file", t, func() {
		path := "/sessions/clip.jsonl"
		So(filesystem.API().WriteFile(path, []byte(recorded), 0644), ShouldBeNil)

		Convey("It is loaded and named after the file", func() {
			s, err := Load(path)
			So(err, ShouldBeNil)
			So(s.Name, ShouldEqual, "clip")
			So(len(s.Entries), ShouldEqual, 9)
		})

		Convey("A missing file is an error", func() {
			_, err := Load("/sessions/missing.jsonl")
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Resolve keeps paths and completes names", t, func() {
		So(Resolve("./clip.jsonl"), ShouldEqual, "./clip.jsonl")
		So(Resolve("clip"), ShouldEndWith, "clip"+Extension)
	})
}

func TestPlay(t *testing.T) {
	Convey("Given a strategy attached to a scripted player", t, func() {
		s, err := Parse(strings.NewReader(recorded))
		So(err, ShouldBeNil)

		p := player.NewScripted(s.Config())
		So(strategy.Verify(p), ShouldBeTrue)

		tracker := strategy.New(p, strategy.Options{PositionInterval: 5 * time.Millisecond})
		defer tracker.Close()

		Convey("Replaying the session derives the final state", func() {
			So(Play(context.Background(), s, p, 4), ShouldBeNil)
			p.Wait()

			So(tracker.IsReady(), ShouldBeTrue)
			So(tracker.Title().OrEmpty(), ShouldEqual, "Clip")
			So(tracker.TotalDuration().OrEmpty(), ShouldEqual, 90000.0)
			So(tracker.ThumbnailPath(), ShouldEqual, "https://img/b.jpg")
			So(tracker.ContentType(), ShouldEqual, strategy.ContentTypeContent)
			So(tracker.State(), ShouldEqual, strategy.VideoStatePlayed)
			So(tracker.Bitrate().OrEmpty(), ShouldEqual, 2200.0)
			So(tracker.VideoPath(), ShouldEqual, "3254104")
		})

		Convey("A cancelled context stops the replay", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			So(Play(ctx, s, p, 1), ShouldEqual, context.Canceled)
		})
	})
}
