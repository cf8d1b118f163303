package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidping/vidping/key"
)

func TestGet(t *testing.T) {
	Convey("Given the ready icon", t, func() {
		Reset(func() {
			viper.Set(key.IconsVariant, plain)
		})

		Convey("It renders for each variant", func() {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				So(Get(Ready), ShouldNotBeEmpty)
			}
		})

		Convey("The plain variant is readable text", func() {
			viper.Set(key.IconsVariant, plain)
			So(Get(Ready), ShouldEqual, "[ready]")
			So(Get(Ad), ShouldEqual, "AD")
		})

		Convey("It is empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "nerd")
			So(Get(Ready), ShouldBeEmpty)
		})
	})
}
