package player

import (
	"io"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

type emitted struct {
	events []Event
}

func (e *emitted) Emit(evt Event) {
	e.events = append(e.events, evt)
}

func TestStream(t *testing.T) {
	Convey("Given a stream of JSON lines", t, func() {
		input := strings.Join([]string{
			`{"name": "FIRST_FRAME_READY", "args": []}`,
			``,
			`not json`,
			`{"args": ["missing name"]}`,
			`{"name": "STATE_CHANGE", "args": ["videoPlay"]}`,
		}, "\n")

		target := &emitted{}
		stream := NewStream(strings.NewReader(input), target)

		Convey("It should emit every well formed event in order", func() {
			stream.Start()
			<-stream.Done()

			So(stream.Err(), ShouldBeNil)
			So(stream.Received(), ShouldEqual, 2)
			So(target.events, ShouldHaveLength, 2)
			So(target.events[0].Name, ShouldEqual, EventFirstFrameReady)
			So(target.events[1].Arg(0), ShouldEqual, StateVideoPlay)
		})

		Convey("Stopping before starting should not block", func() {
			stream.Stop()
			stream.Stop()
			stream.Start()

			_, open := <-stream.Done()
			So(open, ShouldBeFalse)
			So(target.events, ShouldBeEmpty)
		})
	})

	Convey("Given a stream over a pipe", t, func() {
		r, w := io.Pipe()
		target := NewScripted(nil)

		var got []string
		target.SetListener(func(evt Event) { got = append(got, evt.Name) })

		stream := NewStream(r, target)
		stream.Start()

		_, err := io.WriteString(w, `{"name": "VIDEO_STARTED"}`+"\n")
		So(err, ShouldBeNil)

		Convey("Stop should end the read loop without an error", func() {
			stream.Stop()

			select {
			case <-stream.Done():
			case <-time.After(time.Second):
				So("stream did not stop", ShouldBeEmpty)
			}

			So(stream.Err(), ShouldBeNil)
			So(got, ShouldResemble, []string{EventVideoStarted})
		})
	})
}

func TestDialStream(t *testing.T) {
	Convey("Dialing a missing socket should fail", t, func() {
		_, err := DialStream("/nonexistent/vidping.sock", &emitted{})
		So(err, ShouldNotBeNil)
	})
}
