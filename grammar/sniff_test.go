package grammar

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSniff(t *testing.T) {
	Convey("Sniff", t, func() {
		cases := []struct {
			name    string
			lines   []string
			grammar Grammar
		}{
			{"youtube description", []string{"0:00 Intro", "5:30 Chapter Two"}, YouTube},
			{"youtube with a leading number", []string{"01:02:03 3 Intro"}, YouTube},
			{"simple", []string{"00:00:00,Intro", "00:05:30,Chapter Two"}, Simple},
			{"simple with spaces after the comma", []string{"00:00:00,   Intro"}, Simple},
			{"tab", []string{"0:00:00.000\tIntro", "0:05:30.000\tChapter Two"}, Tab},
			{"tab with spaces in the title", []string{"0:00:00.000\tThe Intro"}, Tab},
			{"ogm", []string{"CHAPTER01=00:00:00.000", "CHAPTER01NAME=Intro"}, OGM},
			{"pot", []string{"[Bookmark]", "0=0*Intro*"}, POT},
			{"mediainfo menu", []string{"Menu", "00:00:00.000                : en:Intro"}, MediaInfo},
			{"mediainfo row without menu header", []string{"00:00:00.000\f: en:Intro"}, MediaInfo},
		}

		for _, c := range cases {
			Convey(c.name, func() {
				g, rest, err := Sniff(c.lines)
				So(err, ShouldBeNil)
				So(g, ShouldEqual, c.grammar)
				So(len(rest), ShouldBeGreaterThan, 0)
			})
		}

		Convey("A spaced MediaInfo row without its header reads as youtube", func() {
			g, _, err := Sniff([]string{"00:00:00.000 : en:Intro"})
			So(err, ShouldBeNil)
			So(g, ShouldEqual, YouTube)
		})

		Convey("The Menu header is dropped", func() {
			_, rest, err := Sniff([]string{"Menu", "00:00:00.000 : en:Intro"})
			So(err, ShouldBeNil)
			So(rest, ShouldResemble, []string{"00:00:00.000 : en:Intro"})
		})

		Convey("A Menu header without a MediaInfo row is unknown", func() {
			_, _, err := Sniff([]string{"Menu", "General"})
			So(errors.Is(err, ErrUnknownFormat), ShouldBeTrue)

			_, _, err = Sniff([]string{"Menu"})
			So(errors.Is(err, ErrUnknownFormat), ShouldBeTrue)
		})

		Convey("Garbage is unknown", func() {
			_, rest, err := Sniff([]string{"garbage line with no recognizable pattern"})
			So(errors.Is(err, ErrUnknownFormat), ShouldBeTrue)
			So(rest, ShouldBeNil)
		})

		Convey("Empty input is reported", func() {
			_, _, err := Sniff(nil)
			So(errors.Is(err, ErrEmptyInput), ShouldBeTrue)
		})

		Convey("Only the first line decides", func() {
			g, _, err := Sniff([]string{"00:00:00,Intro", "0:05:30 Chapter Two"})
			So(err, ShouldBeNil)
			So(g, ShouldEqual, Simple)
		})

		Convey("It is deterministic", func() {
			lines := []string{"01:02:03 3 Intro"}
			first, _, _ := Sniff(lines)
			for i := 0; i < 10; i++ {
				g, _, _ := Sniff(lines)
				So(g, ShouldEqual, first)
			}
		})
	})
}
