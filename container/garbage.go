package container

import (
	"os"
	"time"

	"github.com/chapconv/chapconv/filesystem"
	"github.com/chapconv/chapconv/log"
	"github.com/chapconv/chapconv/where"
)

// TTL is how long scratch files left behind by an interrupted run are kept.
const TTL = time.Hour

// CollectGarbage removes scratch files older than TTL. Files of a run in
// progress are always younger and are left alone.
func CollectGarbage() {
	fs := filesystem.API()
	_ = fs.Walk(where.Temp(), func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if time.Since(info.ModTime()) > TTL {
			log.Debugf("removing stale scratch file %s", path)
			_ = fs.Remove(path)
		}
		return nil
	})
}
