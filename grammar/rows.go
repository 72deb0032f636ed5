package grammar

import (
	"regexp"

	"github.com/chapconv/chapconv/chapter"
	"github.com/chapconv/chapconv/log"
	"github.com/chapconv/chapconv/timestamp"
)

// row is a single-line chapter pattern. Patterns are anchored at the start
// of the line only, so trailing text after a match is ignored.
type row struct {
	pattern *regexp.Regexp
	time    int
	title   int
}

var (
	youtubeRow = row{
		// The optional integer after the time stays part of the title.
		pattern: regexp.MustCompile(`^([0-9:.]+?) ((\d* )?(.+))`),
		time:    1,
		title:   2,
	}
	simpleRow = row{
		pattern: regexp.MustCompile(`^([0-9:.]+?), *(.+)`),
		time:    1,
		title:   2,
	}
	tabRow = row{
		pattern: regexp.MustCompile(`^([0-9:.].+?)\t(.+)`),
		time:    1,
		title:   2,
	}
	mediainfoRow = row{
		pattern: regexp.MustCompile(`^([0-9:.]+?)\s+:\s[a-z]{0,2}:(.+)`),
		time:    1,
		title:   2,
	}
)

func (r row) match(line string) bool {
	return r.pattern.MatchString(line)
}

// extract returns the raw time and title of line.
func (r row) extract(line string) (clock, title string, ok bool) {
	m := r.pattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[r.time], m[r.title], true
}

// parser builds a permissive parser: lines that do not match, or whose
// time does not parse, are skipped.
func (r row) parser(g Grammar) func([]string) (chapter.List, error) {
	return func(lines []string) (chapter.List, error) {
		list := make(chapter.List, 0, len(lines))
		for i, line := range lines {
			clock, title, ok := r.extract(line)
			if !ok {
				log.With(log.Fields{"grammar": g, "line": i + 1}).Debug("skipping unmatched line")
				continue
			}

			ms, err := timestamp.ToMilliseconds(clock)
			if err != nil {
				log.With(log.Fields{"grammar": g, "line": i + 1}).Debugf("skipping line: %v", err)
				continue
			}

			list = append(list, chapter.New(ms, title))
		}
		return list, nil
	}
}
