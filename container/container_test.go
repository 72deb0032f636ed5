package container

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chapconv/chapconv/filesystem"
	"github.com/chapconv/chapconv/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type call struct {
	name string
	args []string
}

// fakeTools stands in for mkvmerge and mkvextract by writing the requested
// outputs directly into the in-memory filesystem.
type fakeTools struct {
	calls []call
	ogm   string
	xml   string
	fail  string
}

func (f *fakeTools) run(_ context.Context, name string, args ...string) error {
	f.calls = append(f.calls, call{name: name, args: args})
	if name == f.fail {
		return errors.New(name + " failed")
	}

	switch name {
	case "mkvmerge":
		return filesystem.API().WriteFile(args[1], []byte("mks"), 0o644)
	case "mkvextract":
		if args[2] == "-s" {
			return filesystem.API().WriteFile(args[3], []byte(f.ogm), 0o644)
		}
		return filesystem.API().WriteFile(args[2], []byte(f.xml), 0o644)
	}
	return nil
}

func newTools(fake *fakeTools) *MKVToolNix {
	m := NewMKVToolNix("mkvmerge", "mkvextract")
	m.Run = fake.run
	return m
}

func temps() []string {
	entries := lo.Must(filesystem.API().ReadDir(where.Temp()))
	return lo.Map(entries, func(e os.FileInfo, _ int) string { return e.Name() })
}

func TestHandles(t *testing.T) {
	Convey("Given media paths", t, func() {
		So(Handles("movie.mkv"), ShouldBeTrue)
		So(Handles("movie.MP4"), ShouldBeTrue)
		So(Handles("chapters.xml"), ShouldBeTrue)
		So(Handles("chapters.txt"), ShouldBeFalse)
		So(Handles("chapters"), ShouldBeFalse)
	})
}

func TestExtractChapterText(t *testing.T) {
	Convey("Given an mkv file", t, func() {
		fake := &fakeTools{ogm: "\uFEFFCHAPTER01=00:00:00.000\r\nCHAPTER01NAME=Intro\r\n"}
		m := newTools(fake)
		m.ChapterCharset = "shift_jis"

		Convey("When extracting its chapters", func() {
			lines, err := m.ExtractChapterText(context.Background(), "movie.mkv")

			Convey("Then the OGM lines are returned", func() {
				So(err, ShouldBeNil)
				So(lines, ShouldResemble, []string{"CHAPTER01=00:00:00.000", "CHAPTER01NAME=Intro"})
			})

			Convey("Then mkvmerge drops audio and video with the chapter charset", func() {
				So(fake.calls, ShouldHaveLength, 2)
				args := fake.calls[0].args
				So(args[0], ShouldEqual, "-o")
				So(args[2:], ShouldResemble, []string{"-A", "-D", "--chapter-charset", "shift_jis", "movie.mkv"})
				So(fake.calls[1].args[1:3], ShouldResemble, []string{"chapters", "-s"})
			})

			Convey("Then no temporary files remain", func() {
				So(temps(), ShouldBeEmpty)
			})
		})
	})

	Convey("Given an xml file", t, func() {
		fake := &fakeTools{ogm: "CHAPTER01=00:00:01.000\nCHAPTER01NAME=One\n"}
		m := newTools(fake)

		Convey("Then mkvmerge reads it as chapters", func() {
			_, err := m.ExtractChapterText(context.Background(), "chapters.XML")
			So(err, ShouldBeNil)
			So(fake.calls[0].args[2:], ShouldResemble, []string{"--chapters", "chapters.XML"})
		})
	})

	Convey("Given a failing mkvmerge", t, func() {
		fake := &fakeTools{fail: "mkvmerge"}
		m := newTools(fake)

		Convey("Then the error is returned and mkvextract is skipped", func() {
			_, err := m.ExtractChapterText(context.Background(), "movie.mp4")
			So(err, ShouldNotBeNil)
			So(fake.calls, ShouldHaveLength, 1)
			So(temps(), ShouldBeEmpty)
		})
	})
}

func TestPackageChapterText(t *testing.T) {
	Convey("Given OGM lines", t, func() {
		fake := &fakeTools{xml: "<Chapters/>"}
		m := newTools(fake)
		lines := []string{"CHAPTER01=00:00:00.000", "CHAPTER01NAME=Intro"}

		Convey("When packaging them", func() {
			out, err := m.PackageChapterText(context.Background(), lines)

			Convey("Then the extracted xml is returned", func() {
				So(err, ShouldBeNil)
				So(string(out), ShouldEqual, "<Chapters/>")
			})

			Convey("Then mkvmerge receives the text as chapters", func() {
				So(fake.calls[0].args[2], ShouldEqual, "--chapters")
				So(fake.calls[1].args[1], ShouldEqual, "chapters")
				So(fake.calls[1].args, ShouldHaveLength, 3)
			})

			Convey("Then no temporary files remain", func() {
				So(temps(), ShouldBeEmpty)
			})
		})

		Convey("When mkvextract fails", func() {
			fake.fail = "mkvextract"
			_, err := m.PackageChapterText(context.Background(), lines)

			Convey("Then the error is returned", func() {
				So(err, ShouldNotBeNil)
				So(temps(), ShouldBeEmpty)
			})
		})
	})
}

func TestCollectGarbage(t *testing.T) {
	Convey("Given scratch files of different ages", t, func() {
		stale := filepath.Join(where.Temp(), "stale.mks")
		fresh := filepath.Join(where.Temp(), "fresh.mks")
		lo.Must0(filesystem.API().WriteFile(stale, nil, 0o644))
		lo.Must0(filesystem.API().WriteFile(fresh, nil, 0o644))

		old := time.Now().Add(-2 * TTL)
		lo.Must0(filesystem.API().Chtimes(stale, old, old))

		Convey("When collecting garbage", func() {
			CollectGarbage()

			Convey("Then only the stale file is removed", func() {
				So(lo.Must(filesystem.API().Exists(stale)), ShouldBeFalse)
				So(lo.Must(filesystem.API().Exists(fresh)), ShouldBeTrue)
				lo.Must0(filesystem.API().Remove(fresh))
			})
		})
	})
}
