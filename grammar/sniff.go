package grammar

import (
	"fmt"
	"regexp"
	"strings"
)

type verdict int

const (
	// next hands the lines to the following rule.
	next verdict = iota
	// accept selects the rule's grammar.
	accept
	// reject stops sniffing with an unknown format.
	reject
)

// rule inspects the leading lines and may drop header lines from the input.
type rule struct {
	grammar Grammar
	test    func(lines []string) ([]string, verdict)
}

var ogmHead = regexp.MustCompile(`^CHAPTER\d`)

func matching(g Grammar, match func(string) bool) rule {
	return rule{
		grammar: g,
		test: func(lines []string) ([]string, verdict) {
			if match(lines[0]) {
				return lines, accept
			}
			return lines, next
		},
	}
}

func prefixed(g Grammar, prefix string) rule {
	return matching(g, func(line string) bool {
		return strings.HasPrefix(line, prefix)
	})
}

// mediainfoMenu handles a MediaInfo dump that still carries its "Menu" section header.
var mediainfoMenu = rule{
	grammar: MediaInfo,
	test: func(lines []string) ([]string, verdict) {
		if !strings.HasPrefix(lines[0], "Menu") {
			return lines, next
		}
		if len(lines) > 1 && mediainfoRow.match(lines[1]) {
			return lines[1:], accept
		}
		return lines, reject
	},
}

// rules are tried in order. The patterns overlap, so the order decides the
// classification of ambiguous lines and must not be changed.
var rules = []rule{
	matching(YouTube, youtubeRow.match),
	matching(Simple, simpleRow.match),
	matching(Tab, tabRow.match),
	matching(OGM, ogmHead.MatchString),
	prefixed(POT, "[Bookmark]"),
	mediainfoMenu,
	matching(MediaInfo, mediainfoRow.match),
}

// Sniff classifies non-blank input lines. It returns the grammar and the
// lines its parser should consume.
func Sniff(lines []string) (Grammar, []string, error) {
	if len(lines) == 0 {
		return "", nil, ErrEmptyInput
	}

	for _, r := range rules {
		rest, v := r.test(lines)
		switch v {
		case accept:
			return r.grammar, rest, nil
		case reject:
			return "", nil, fmt.Errorf("%w: %q", ErrUnknownFormat, lines[0])
		}
	}

	return "", nil, fmt.Errorf("%w: %q", ErrUnknownFormat, lines[0])
}
