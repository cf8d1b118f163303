package log

import (
	"bytes"
	"testing"

	logrus "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidping/vidping/key"
)

func TestLog(t *testing.T) {
	Convey("Given logging disabled", t, func() {
		enabled = false

		Convey("With hands out a silent entry", func() {
			var buf bytes.Buffer
			logrus.SetOutput(&buf)
			With(logrus.Fields{"event": "X"}).Error("dropped")
			Warnf("dropped %d", 1)
			So(buf.Len(), ShouldEqual, 0)
		})
	})

	Convey("Given logging into a writer", t, func() {
		viper.Set(key.LogsLevel, "debug")
		viper.Set(key.LogsJson, false)
		var buf bytes.Buffer
		SetupWriter(&buf)

		Reset(func() {
			enabled = false
			viper.Set(key.LogsLevel, "info")
		})

		Convey("Messages at or above the level are written", func() {
			Debugf("position %d", 42)
			So(buf.String(), ShouldContainSubstring, "position 42")
		})

		Convey("Messages below the level are not", func() {
			Tracef("too verbose")
			So(buf.String(), ShouldNotContainSubstring, "too verbose")
		})

		Convey("Fields are rendered", func() {
			With(logrus.Fields{"event": "FIRST_FRAME_READY"}).Info("player event")
			So(buf.String(), ShouldContainSubstring, "event=FIRST_FRAME_READY")
		})
	})
}
