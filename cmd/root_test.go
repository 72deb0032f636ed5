package cmd

import (
	"errors"
	"testing"

	"github.com/chapconv/chapconv/convert"
	"github.com/chapconv/chapconv/grammar"
	"github.com/chapconv/chapconv/key"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestNeedsContainer(t *testing.T) {
	Convey("Given conversion options", t, func() {
		Convey("Media and xml input need the container tool", func() {
			So(needsContainer(&convert.Options{Input: "movie.mkv"}), ShouldBeTrue)
			So(needsContainer(&convert.Options{Input: "chapters.xml"}), ShouldBeTrue)
		})

		Convey("Xml output needs the container tool", func() {
			So(needsContainer(&convert.Options{Input: "a.txt", Format: mo.Some(grammar.XML)}), ShouldBeTrue)
			So(needsContainer(&convert.Options{Input: "a.txt", Output: mo.Some("out.XML")}), ShouldBeTrue)
		})

		Convey("An explicit format beats the output extension", func() {
			So(needsContainer(&convert.Options{
				Input:  "a.txt",
				Format: mo.Some(grammar.OGM),
				Output: mo.Some("out.xml"),
			}), ShouldBeFalse)
		})

		Convey("Plain text needs nothing", func() {
			So(needsContainer(&convert.Options{Input: "a.txt"}), ShouldBeFalse)
			So(needsContainer(&convert.Options{FromClipboard: true}), ShouldBeFalse)
		})
	})
}

func TestOutputFormat(t *testing.T) {
	Convey("Given the output.format setting", t, func() {
		Reset(func() {
			viper.Set(key.OutputFormat, "")
		})

		Convey("When it is empty the format is left to the converter", func() {
			viper.Set(key.OutputFormat, "")
			format, err := outputFormat()
			So(err, ShouldBeNil)
			So(format.IsAbsent(), ShouldBeTrue)
		})

		Convey("When it names a writable grammar it is used", func() {
			viper.Set(key.OutputFormat, "Tab")
			format, err := outputFormat()
			So(err, ShouldBeNil)
			So(format.MustGet(), ShouldEqual, grammar.Tab)
		})

		Convey("When it names a read-only grammar it is rejected", func() {
			viper.Set(key.OutputFormat, "youtube")
			_, err := outputFormat()
			So(errors.Is(err, grammar.ErrUnsupportedOutput), ShouldBeTrue)
		})

		Convey("When it is misspelled a suggestion is made", func() {
			viper.Set(key.OutputFormat, "ogn")
			_, err := outputFormat()
			So(errors.Is(err, grammar.ErrUnknownGrammar), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "did you mean ogm?")
		})
	})
}
