package grammar

import (
	"fmt"

	"github.com/chapconv/chapconv/chapter"
)

var parsers map[Grammar]func([]string) (chapter.List, error)

func init() {
	parsers = map[Grammar]func([]string) (chapter.List, error){
		YouTube:   youtubeRow.parser(YouTube),
		Simple:    simpleRow.parser(Simple),
		Tab:       tabRow.parser(Tab),
		MediaInfo: mediainfoRow.parser(MediaInfo),
		OGM:       parseOGM,
		POT:       parsePOT,
	}
}

// Parse extracts chapters from lines written in g. Lines are expected to be
// non-blank and free of line terminators, as produced by Sniff.
func Parse(g Grammar, lines []string) (chapter.List, error) {
	parse, ok := parsers[g]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedInput, g)
	}
	return parse(lines)
}

// Detect sniffs lines and parses them with the detected grammar.
func Detect(lines []string) (Grammar, chapter.List, error) {
	g, rest, err := Sniff(lines)
	if err != nil {
		return "", nil, err
	}

	list, err := Parse(g, rest)
	if err != nil {
		return g, nil, err
	}
	return g, list, nil
}
