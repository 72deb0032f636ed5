package textio

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

func TestDecode(t *testing.T) {
	Convey("Decode", t, func() {
		Convey("It keeps valid UTF-8", func() {
			text, err := Decode([]byte("0:00 Intro\n"), "windows-1252")
			So(err, ShouldBeNil)
			So(text, ShouldEqual, "0:00 Intro\n")
		})

		Convey("It strips a UTF-8 byte order mark", func() {
			text, err := Decode([]byte("\xEF\xBB\xBF[Bookmark]\n"), "windows-1252")
			So(err, ShouldBeNil)
			So(text, ShouldEqual, "[Bookmark]\n")
		})

		Convey("It honours a UTF-16 byte order mark", func() {
			raw, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte("CHAPTER01=00:00:00.000"))
			So(err, ShouldBeNil)

			text, err := Decode(raw, "windows-1252")
			So(err, ShouldBeNil)
			So(text, ShouldEqual, "CHAPTER01=00:00:00.000")
		})

		Convey("Given a detector", func() {
			original := detect
			defer func() { detect = original }()

			raw, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte("0:00 オープニング"))
			So(err, ShouldBeNil)

			Convey("It decodes with the detected charset", func() {
				detect = func([]byte) string { return "Shift_JIS" }
				text, err := Decode(raw, "windows-1252")
				So(err, ShouldBeNil)
				So(text, ShouldEqual, "0:00 オープニング")
			})

			Convey("It falls back when detection is unusable", func() {
				detect = func([]byte) string { return "IBM420_ltr" }
				text, err := Decode([]byte("0:00 Caf\xe9"), "windows-1252")
				So(err, ShouldBeNil)
				So(text, ShouldEqual, "0:00 Café")
			})

			Convey("It reports an unknown fallback", func() {
				detect = func([]byte) string { return "" }
				_, err := Decode([]byte("0:00 Caf\xe9"), "klingon")
				So(errors.Is(err, ErrUnknownCharset), ShouldBeTrue)
			})
		})
	})
}

func TestEncode(t *testing.T) {
	Convey("Encode", t, func() {
		Convey("utf-8-sig writes a byte order mark", func() {
			raw, err := Encode("[Bookmark]\n", "utf-8-sig")
			So(err, ShouldBeNil)
			So(string(raw), ShouldEqual, "\xEF\xBB\xBF[Bookmark]\n")
		})

		Convey("utf-8 writes plain bytes", func() {
			raw, err := Encode("Café", "UTF-8")
			So(err, ShouldBeNil)
			So(string(raw), ShouldEqual, "Café")
		})

		Convey("Legacy charsets are supported", func() {
			raw, err := Encode("Café", "windows-1252")
			So(err, ShouldBeNil)
			So(raw, ShouldResemble, []byte("Caf\xe9"))
		})

		Convey("Unmappable characters are an error", func() {
			_, err := Encode("オープニング", "windows-1252")
			So(err, ShouldNotBeNil)
		})

		Convey("Unknown charsets are an error", func() {
			_, err := Encode("x", "klingon")
			So(errors.Is(err, ErrUnknownCharset), ShouldBeTrue)
		})
	})
}

func TestLines(t *testing.T) {
	Convey("Lines", t, func() {
		Convey("It drops blank lines and terminators", func() {
			So(Lines("\uFEFF[Bookmark]\r\n\r\n0=0*Intro*\r\n   \n1=330000*Chapter Two*\r"), ShouldResemble, []string{
				"[Bookmark]",
				"0=0*Intro*",
				"1=330000*Chapter Two*",
			})
		})

		Convey("It keeps leading and trailing spaces inside lines", func() {
			So(Lines(" 0:00 Intro \n"), ShouldResemble, []string{" 0:00 Intro "})
		})

		Convey("It returns nothing for blank text", func() {
			So(Lines(" \n\t\n"), ShouldBeEmpty)
		})
	})

	Convey("CRLF", t, func() {
		So(CRLF("a\nb\n"), ShouldEqual, "a\r\nb\r\n")
	})
}
