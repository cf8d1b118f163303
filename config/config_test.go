package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidping/vidping/filesystem"
	"github.com/vidping/vidping/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			// After setup, viper should have defaults from Default map
			for name, field := range Default {
				val := viper.Get(name)
				So(val, ShouldNotBeNil)
				_ = field // just ensuring iteration works
			}
		})

		Convey("Should expose the strategy defaults", func() {
			_ = Setup()
			So(viper.GetInt(key.StrategyPositionInterval), ShouldEqual, 50)
			So(viper.GetFloat64(key.ReplaySpeed), ShouldEqual, 1.0)
			So(viper.GetBool(key.PingRequireReady), ShouldBeTrue)
		})

		Convey("Field env names carry the application prefix", func() {
			field := Default[key.StrategyPositionInterval]
			So(field.Env(), ShouldEqual, "VIDPING_STRATEGY_POSITION_INTERVAL")
			So(field.typeName(), ShouldEqual, "int")

			speed := Default[key.ReplaySpeed]
			So(speed.typeName(), ShouldEqual, "float")
		})

		Convey("Fields are grouped by section", func() {
			So(Sections(), ShouldResemble, []string{"cli", "icons", "logs", "ping", "replay", "strategy"})

			keys := make([]string, 0)
			for _, f := range Fields("ping") {
				keys = append(keys, f.Key)
			}
			So(keys, ShouldResemble, []string{key.PingInterval, key.PingRequireReady})
			So(Fields(""), ShouldHaveLength, len(Default))
			So(Fields("nothing"), ShouldBeEmpty)
		})

		Convey("An environment variable overrides the default", func() {
			t.Setenv("VIDPING_PING_INTERVAL", "250")
			So(Setup(), ShouldBeNil)
			So(viper.GetInt(key.PingInterval), ShouldEqual, 250)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("ping.require.ready")
			So(result, ShouldEqual, "ping_require_ready")
		})
	})
}
