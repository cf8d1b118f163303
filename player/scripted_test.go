package player

import (
	"context"
	"testing"
	"time"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestScripted(t *testing.T) {
	Convey("Given a scripted player", t, func() {
		p := NewScripted(Config{ConfigTitle: "Configured", ConfigVideo: 3254104.0})
		p.Latency = time.Millisecond

		Convey("Queries should report the values current at resolution time", func() {
			var title string
			var duration float64

			p.GetTitle(func(v string) { title = v })
			p.GetDuration(func(v float64) { duration = v })
			p.Set(Props{Title: lo.ToPtr("Clip"), Duration: lo.ToPtr(90.0)})
			p.Wait()

			So(title, ShouldEqual, "Clip")
			So(duration, ShouldEqual, 90.0)
		})

		Convey("Set should leave nil props untouched", func() {
			p.Set(Props{Thumbnail: lo.ToPtr("https://img.example/a.jpg"), CurrentTime: lo.ToPtr(4.5)})
			p.Set(Props{CurrentTime: lo.ToPtr(5.0)})

			var thumbnail string
			var position float64
			p.GetThumbnail(func(v string) { thumbnail = v })
			p.GetCurrentTime(func(v float64) { position = v })
			p.Wait()

			So(thumbnail, ShouldEqual, "https://img.example/a.jpg")
			So(position, ShouldEqual, 5.0)
		})

		Convey("Emit should reach the installed listener", func() {
			var got []Event
			p.Emit(Event{Name: EventPlayingStart})
			So(p.Listener(), ShouldBeNil)

			p.SetListener(func(evt Event) { got = append(got, evt) })
			p.Emit(Event{Name: EventStateChange, Args: []any{StateVideoPlay}})

			So(got, ShouldHaveLength, 1)
			So(got[0].Arg(0), ShouldEqual, StateVideoPlay)
			So(got[0].Arg(1), ShouldBeNil)
		})

		Convey("Drain should return once pending queries resolved", func() {
			var title string
			p.Set(Props{Title: lo.ToPtr("Clip")})
			p.GetTitle(func(v string) { title = v })

			So(p.Drain(context.Background()), ShouldBeNil)
			So(title, ShouldEqual, "Clip")
		})

		Convey("Drain should give up when the context ends", func() {
			p.Latency = time.Hour
			p.GetTitle(func(string) {})

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
			defer cancel()
			So(p.Drain(ctx), ShouldEqual, context.DeadlineExceeded)
		})

		Convey("Config should be replaceable", func() {
			So(p.Config().Format(ConfigVideo), ShouldEqual, "3254104")

			p.SetConfig(Config{ConfigBaseURL: "https://up.anv.bz/"})
			So(p.Config().String(ConfigBaseURL).OrEmpty(), ShouldEqual, "https://up.anv.bz/")
			So(p.Config().String(ConfigTitle).IsAbsent(), ShouldBeTrue)
		})
	})
}
