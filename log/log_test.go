package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/chapconv/chapconv/filesystem"
	"github.com/chapconv/chapconv/key"
	"github.com/chapconv/chapconv/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)

		Convey("Setup should be a no-op", func() {
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeFalse)
		})

		Convey("With should still return a usable entry", func() {
			entry := With(Fields{"grammar": "ogm"})
			So(entry, ShouldNotBeNil)
			So(entry.Data["grammar"], ShouldEqual, "ogm")
			entry.Info("discarded")
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer viper.Set(key.LogsWrite, false)

		Convey("Setup should create the daily log file", func() {
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeTrue)

			path := filepath.Join(where.Logs(), Filename(time.Now()))
			So(lo.Must(filesystem.API().Exists(path)), ShouldBeTrue)

			Info("hello")
			content := lo.Must(filesystem.API().ReadFile(path))
			So(string(content), ShouldContainSubstring, "hello")
		})
	})
}

func TestFilename(t *testing.T) {
	Convey("Filename", t, func() {
		day := time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC)
		So(Filename(day), ShouldEqual, "2024-03-09.log")
	})
}
