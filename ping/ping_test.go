package ping

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidping/vidping/strategy"
)

// stubStrategy reports fixed values.
type stubStrategy struct {
	ready    bool
	title    mo.Option[string]
	duration mo.Option[float64]
}

func (s *stubStrategy) Name() string { return "ST" }
func (s *stubStrategy) IsReady() bool { return s.ready }
func (s *stubStrategy) Title() mo.Option[string] { return s.title }
func (s *stubStrategy) VideoPath() string { return "4242" }
func (s *stubStrategy) ContentType() strategy.ContentType { return strategy.ContentTypeAd }
func (s *stubStrategy) AdPosition() mo.Option[strategy.AdPosition] { return mo.None[strategy.AdPosition]() }
func (s *stubStrategy) TotalDuration() mo.Option[float64] { return s.duration }
func (s *stubStrategy) State() strategy.VideoState { return strategy.VideoStatePlayed }
func (s *stubStrategy) CurrentPlayTime() float64 { return 1500 }
func (s *stubStrategy) Bitrate() mo.Option[float64] { return mo.Some(800.0) }
func (s *stubStrategy) ThumbnailPath() string { return "" }
func (s *stubStrategy) AutoplayType() strategy.AutoplayType { return strategy.AutoplayTypeUnknown }
func (s *stubStrategy) PlayerType() mo.Option[string] { return mo.None[string]() }
func (s *stubStrategy) ViewStartTime() int64 { return 3000 }
func (s *stubStrategy) ViewPlayTime() mo.Option[int64] { return mo.None[int64]() }
func (s *stubStrategy) ViewAdPlayTime() mo.Option[int64] { return mo.None[int64]() }
func (s *stubStrategy) Close() {}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestCollect(t *testing.T) {
	Convey("Given a strategy with partial knowledge", t, func() {
		s := &stubStrategy{ready: true, title: mo.Some("Clip"), duration: mo.None[float64]()}
		at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

		Convey("Collect maps the getters to ping keys", func() {
			p := Collect(s, at)
			raw, err := json.Marshal(p)
			So(err, ShouldBeNil)

			var fields map[string]any
			So(json.Unmarshal(raw, &fields), ShouldBeNil)

			So(fields["strategy"], ShouldEqual, "ST")
			So(fields["i"], ShouldEqual, "Clip")
			So(fields["p"], ShouldEqual, "4242")
			So(fields["_vt"], ShouldEqual, "ad")
			So(fields["_vs"], ShouldEqual, "s2")
			So(fields["_vpt"], ShouldEqual, 1500.0)
			So(fields["_vbr"], ShouldEqual, 800.0)
			So(fields["_vtn"], ShouldEqual, "")
			So(fields["_va"], ShouldEqual, "unkn")
			So(fields["_vvs"], ShouldEqual, 3000.0)

			Convey("And leaves unknown values out", func() {
				for _, k := range []string{"_vd", "_vap", "_vplt", "_vvsp", "_vasp"} {
					_, present := fields[k]
					So(present, ShouldBeFalse)
				}
			})
		})

		Convey("A known duration is kept in milliseconds", func() {
			s.duration = mo.Some(90000.0)
			So(*Collect(s, at).TotalDuration, ShouldEqual, 90000.0)
		})
	})
}

func TestPoller(t *testing.T) {
	Convey("Given a poller", t, func() {
		var out bytes.Buffer
		s := &stubStrategy{title: mo.None[string]()}
		poller := &Poller{Interval: 5 * time.Millisecond, Out: &out, RequireReady: true}

		Convey("It skips samples until the strategy is ready", func() {
			_, ok := poller.Sample(s)
			So(ok, ShouldBeFalse)

			s.ready = true
			_, ok = poller.Sample(s)
			So(ok, ShouldBeTrue)
		})

		Convey("It writes JSON lines until cancelled", func() {
			s.ready = true
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
			defer cancel()

			written, err := poller.Run(ctx, s)
			So(err, ShouldBeNil)
			So(written, ShouldBeGreaterThan, 0)

			lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
			So(len(lines), ShouldEqual, written)

			var p Ping
			So(json.Unmarshal(lines[0], &p), ShouldBeNil)
			So(p.State, ShouldEqual, "s2")
		})

		Convey("It reports write failures", func() {
			s.ready = true
			poller.Out = failingWriter{}
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			_, err := poller.Run(ctx, s)
			So(err, ShouldNotBeNil)
		})

		Convey("It rejects a non-positive interval", func() {
			poller.Interval = 0
			_, err := poller.Run(context.Background(), s)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSchema(t *testing.T) {
	Convey("The schema lists the ping keys", t, func() {
		schema := Schema()
		So(schema, ShouldNotBeNil)

		_, ok := schema.Properties.Get("_vs")
		So(ok, ShouldBeTrue)
		_, ok = schema.Properties.Get("_vvs")
		So(ok, ShouldBeTrue)
	})
}
