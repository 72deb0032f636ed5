package grammar

import (
	"errors"
	"testing"

	"github.com/chapconv/chapconv/chapter"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSerialize(t *testing.T) {
	Convey("Given two chapters", t, func() {
		Convey("ogm numbers pairs from 01", func() {
			lines, err := Serialize(OGM, twoChapters)
			So(err, ShouldBeNil)
			So(lines, ShouldResemble, []string{
				"CHAPTER01=00:00:00.000",
				"CHAPTER01NAME=Intro",
				"CHAPTER02=00:05:30.000",
				"CHAPTER02NAME=Chapter Two",
			})
		})

		Convey("xml renders the same OGM text", func() {
			ogm, _ := Serialize(OGM, twoChapters)
			xml, err := Serialize(XML, twoChapters)
			So(err, ShouldBeNil)
			So(xml, ShouldResemble, ogm)
		})

		Convey("pot numbers bookmarks from 0", func() {
			lines, err := Serialize(POT, twoChapters)
			So(err, ShouldBeNil)
			So(lines, ShouldResemble, []string{"[Bookmark]", "0=0*Intro*", "1=330000*Chapter Two*"})
		})

		Convey("tab", func() {
			lines, err := Serialize(Tab, twoChapters)
			So(err, ShouldBeNil)
			So(lines, ShouldResemble, []string{"0:00:00.000\tIntro", "0:05:30.000\tChapter Two"})
		})

		Convey("simple", func() {
			lines, err := Serialize(Simple, twoChapters)
			So(err, ShouldBeNil)
			So(lines, ShouldResemble, []string{"0:00:00.000,Intro", "0:05:30.000,Chapter Two"})
		})

		Convey("youtube and mediainfo are read-only", func() {
			_, err := Serialize(YouTube, twoChapters)
			So(errors.Is(err, ErrUnsupportedOutput), ShouldBeTrue)
			_, err = Serialize(MediaInfo, twoChapters)
			So(errors.Is(err, ErrUnsupportedOutput), ShouldBeTrue)
		})

		Convey("an empty list renders only headers", func() {
			lines, err := Serialize(POT, chapter.List{})
			So(err, ShouldBeNil)
			So(lines, ShouldResemble, []string{"[Bookmark]"})

			lines, err = Serialize(Tab, chapter.List{})
			So(err, ShouldBeNil)
			So(lines, ShouldBeEmpty)
		})

		Convey("indexes past 99 widen the ogm field", func() {
			list := make(chapter.List, 100)
			for i := range list {
				list[i] = chapter.New(int64(i)*1000, "c")
			}
			lines, err := Serialize(OGM, list)
			So(err, ShouldBeNil)
			So(lines[198], ShouldEqual, "CHAPTER100=00:01:39.000")
		})
	})
}

func TestJoin(t *testing.T) {
	Convey("Join terminates every line", t, func() {
		So(Join([]string{"a", "b"}), ShouldEqual, "a\nb\n")
		So(Join(nil), ShouldEqual, "")
	})
}

func TestRoundTrip(t *testing.T) {
	Convey("Given a chapter list with awkward times", t, func() {
		list := chapter.List{
			chapter.New(0, "Cold Open"),
			chapter.New(7, "Blink"),
			chapter.New(61001, "Minute"),
			chapter.New(3723456, "Hour"),
			chapter.New(90000000, "Marathon"),
			chapter.New(90000000, "Same Time"),
		}

		for _, g := range []Grammar{Tab, Simple, OGM, POT} {
			Convey("it survives "+g.String(), func() {
				lines, err := Serialize(g, list)
				So(err, ShouldBeNil)

				detected, back, err := Detect(lines)
				So(err, ShouldBeNil)
				So(detected, ShouldEqual, g)
				So(back, ShouldResemble, list)
			})
		}

		Convey("it survives tab to simple to tab", func() {
			tab, _ := Serialize(Tab, list)
			_, parsed, err := Detect(tab)
			So(err, ShouldBeNil)
			simple, _ := Serialize(Simple, parsed)
			_, parsed, err = Detect(simple)
			So(err, ShouldBeNil)
			again, _ := Serialize(Tab, parsed)
			So(again, ShouldResemble, tab)
		})
	})
}
