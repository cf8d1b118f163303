package strategy

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidping/vidping/player"
)

func TestRegistry(t *testing.T) {
	Convey("Given a registry with two strategies", t, func() {
		everything := Descriptor{
			Name:   "ALL",
			Verify: func(player.Player) bool { return true },
			New: func(p player.Player) Strategy {
				return New(p, quiet)
			},
		}
		registry := NewRegistry(AnvatoDescriptor, everything)

		Convey("The first accepting strategy wins", func() {
			p := player.NewScripted(player.Config{player.ConfigBaseURL: "https://up.anv.bz/"})
			So(registry.Match(p).MustGet().Name, ShouldEqual, AnvatoName)

			other := player.NewScripted(player.Config{player.ConfigBaseURL: "https://example.com/"})
			So(registry.Match(other).MustGet().Name, ShouldEqual, "ALL")
		})

		Convey("Names keep registration order", func() {
			registry.Register(Descriptor{Name: "XX", Verify: func(player.Player) bool { return false }})
			So(registry.Names(), ShouldResemble, []string{AnvatoName, "ALL", "XX"})
		})

		Convey("Attach creates a strategy for a matching player", func() {
			p := player.NewScripted(player.Config{player.ConfigBaseURL: "https://example.com/"})
			s := registry.Attach(p)
			So(s.IsPresent(), ShouldBeTrue)
			defer s.MustGet().Close()

			So(p.Listener(), ShouldNotBeNil)
		})
	})

	Convey("The default registry does not match unknown players", t, func() {
		p := player.NewScripted(player.Config{})
		So(Default.Match(p).IsAbsent(), ShouldBeTrue)
		So(Default.Attach(p).IsAbsent(), ShouldBeTrue)
	})
}
