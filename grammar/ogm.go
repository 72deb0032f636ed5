package grammar

import (
	"fmt"
	"strings"

	"github.com/chapconv/chapconv/chapter"
	"github.com/chapconv/chapconv/timestamp"
)

// parseOGM reads CHAPTERnn=time / CHAPTERnnNAME=title pairs. Only the text
// after the first '=' of each line is used.
func parseOGM(lines []string) (chapter.List, error) {
	if len(lines)%2 != 0 {
		return nil, fmt.Errorf("%w: ogm input has %d lines, the last chapter has no name line", ErrMalformedInput, len(lines))
	}

	list := make(chapter.List, 0, len(lines)/2)
	for i := 0; i < len(lines); i += 2 {
		clock, err := ogmValue(lines, i)
		if err != nil {
			return nil, err
		}
		title, err := ogmValue(lines, i+1)
		if err != nil {
			return nil, err
		}

		ms, err := timestamp.ToMilliseconds(clock)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, i+1, err)
		}
		list = append(list, chapter.New(ms, title))
	}
	return list, nil
}

func ogmValue(lines []string, i int) (string, error) {
	_, value, ok := strings.Cut(strings.TrimSpace(lines[i]), "=")
	if !ok {
		return "", fmt.Errorf("%w: line %d has no '='", ErrMalformedInput, i+1)
	}
	return value, nil
}

// renderOGM numbers chapters from 1 with a two digit index.
func renderOGM(list chapter.List) []string {
	lines := make([]string, 0, 2*len(list))
	for i, c := range list {
		lines = append(lines,
			fmt.Sprintf("CHAPTER%02d=%s", i+1, timestamp.ToFixedClock(c.Start)),
			fmt.Sprintf("CHAPTER%02dNAME=%s", i+1, c.Title),
		)
	}
	return lines
}
