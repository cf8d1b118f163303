package cmd

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidping/vidping/config"
	"github.com/vidping/vidping/key"
)

func TestParseValue(t *testing.T) {
	Convey("Values are parsed to the type of the default", t, func() {
		v, err := parseValue(config.Default[key.PingInterval], []string{"500"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 500)

		v, err = parseValue(config.Default[key.ReplaySpeed], []string{"2.5"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 2.5)

		v, err = parseValue(config.Default[key.PingRequireReady], []string{"false"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, false)

		v, err = parseValue(config.Default[key.IconsVariant], []string{"emoji"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "emoji")
	})

	Convey("Invalid or missing values are rejected", t, func() {
		_, err := parseValue(config.Default[key.PingInterval], []string{"often"})
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, key.PingInterval)

		_, err = parseValue(config.Default[key.PingInterval], nil)
		So(err, ShouldNotBeNil)
	})
}

func TestLookupField(t *testing.T) {
	Convey("Keys are looked up from the arguments first", t, func() {
		field, err := lookupField(configGetCmd, []string{key.ReplaySpeed})
		So(err, ShouldBeNil)
		So(field.Key, ShouldEqual, key.ReplaySpeed)
	})

	Convey("Unknown keys suggest the closest known one", t, func() {
		_, err := lookupField(configGetCmd, []string{"ping.intervall"})
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, key.PingInterval)
	})

	Convey("A key is required", t, func() {
		_, err := lookupField(configGetCmd, nil)
		So(err, ShouldNotBeNil)
	})
}
