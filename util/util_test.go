package util

import (
	"testing"

	"github.com/chapconv/chapconv/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "chapter", "chapters"), ShouldEqual, "1 chapter")
		So(Quantify(0, "chapter", "chapters"), ShouldEqual, "0 chapters")
		So(Quantify(2, "chapter", "chapters"), ShouldEqual, "2 chapters")
	})
}

func TestMax(t *testing.T) {
	Convey("Max", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Max("a", "c", "b"), ShouldEqual, "c")
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a file and a directory", t, func() {
		fs := filesystem.API()
		lo.Must0(fs.WriteFile("/scratch/a.mks", []byte("x"), 0o644))
		lo.Must0(fs.WriteFile("/scratch/dir/b.xml", []byte("x"), 0o644))

		Convey("Delete removes both", func() {
			So(Delete("/scratch/a.mks"), ShouldBeNil)
			So(Delete("/scratch/dir"), ShouldBeNil)
			So(lo.Must(fs.Exists("/scratch/a.mks")), ShouldBeFalse)
			So(lo.Must(fs.Exists("/scratch/dir/b.xml")), ShouldBeFalse)
		})

		Convey("Delete reports missing paths", func() {
			So(Delete("/scratch/missing"), ShouldNotBeNil)
		})
	})
}
