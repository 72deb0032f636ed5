package grammar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/chapconv/chapconv/chapter"
	"github.com/chapconv/chapconv/log"
)

const potHeader = "[Bookmark]"

var potRow = regexp.MustCompile(`^\d+=(\d+)\*([^*]+)`)

// parsePOT skips the header and reads index=ms*title* records. POT already
// stores milliseconds, so no clock parsing is involved.
func parsePOT(lines []string) (chapter.List, error) {
	if len(lines) == 0 {
		return chapter.List{}, nil
	}

	list := make(chapter.List, 0, len(lines)-1)
	for i, line := range lines[1:] {
		m := potRow.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			log.With(log.Fields{"grammar": POT, "line": i + 2}).Debug("skipping unmatched line")
			continue
		}

		ms, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			log.With(log.Fields{"grammar": POT, "line": i + 2}).Debugf("skipping line: %v", err)
			continue
		}
		list = append(list, chapter.New(ms, m[2]))
	}
	return list, nil
}

// renderPOT numbers bookmarks from 0.
func renderPOT(list chapter.List) []string {
	lines := make([]string, 0, len(list)+1)
	lines = append(lines, potHeader)
	for i, c := range list {
		lines = append(lines, fmt.Sprintf("%d=%d*%s*", i, c.Start, c.Title))
	}
	return lines
}
