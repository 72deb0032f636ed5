// Package grammar sniffs, parses and renders the chapter text dialects chapconv understands.
package grammar

import (
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// Grammar identifies one chapter text dialect.
type Grammar string

const (
	YouTube   Grammar = "youtube"
	Simple    Grammar = "simple"
	Tab       Grammar = "tab"
	OGM       Grammar = "ogm"
	POT       Grammar = "pot"
	MediaInfo Grammar = "mediainfo"
	XML       Grammar = "xml"
)

// All returns every grammar in sniffing order followed by xml.
func All() []Grammar {
	return []Grammar{YouTube, Simple, Tab, OGM, POT, MediaInfo, XML}
}

// Outputs returns the grammars Serialize can produce.
func Outputs() []Grammar {
	return lo.Filter(All(), func(g Grammar, _ int) bool {
		return g.Writable()
	})
}

func (g Grammar) String() string {
	return string(g)
}

// Readable reports whether Parse accepts g. XML reaches the parser as OGM text.
func (g Grammar) Readable() bool {
	_, ok := parsers[g]
	return ok
}

// Writable reports whether Serialize can render g.
func (g Grammar) Writable() bool {
	_, ok := renderers[g]
	return ok
}

// Description returns a one-line human description of g.
func (g Grammar) Description() string {
	switch g {
	case YouTube:
		return "video description lines: 0:00 Intro"
	case Simple:
		return "comma separated: 0:00:00.000,Intro"
	case Tab:
		return "tab separated, spreadsheet friendly: 0:00:00.000<TAB>Intro"
	case OGM:
		return "CHAPTER01=00:00:00.000 / CHAPTER01NAME=Intro pairs"
	case POT:
		return "PotPlayer bookmarks: [Bookmark] / 0=0*Intro*"
	case MediaInfo:
		return "MediaInfo menu dump: 00:00:00.000 : en:Intro"
	case XML:
		return "Matroska chapter XML, through mkvmerge/mkvextract"
	default:
		return ""
	}
}

// ParseName resolves a grammar literal, suggesting the closest known name on failure.
func ParseName(name string) (Grammar, error) {
	g := Grammar(strings.ToLower(strings.TrimSpace(name)))
	if lo.Contains(All(), g) {
		return g, nil
	}
	return "", fmt.Errorf("%w %q, did you mean %s?", ErrUnknownGrammar, name, closest(name, All()))
}

// ParseOutput is ParseName restricted to writable grammars.
func ParseOutput(name string) (Grammar, error) {
	g, err := ParseName(name)
	if err != nil {
		return "", err
	}
	if !g.Writable() {
		return "", fmt.Errorf("%w: %s, choose one of %s", ErrUnsupportedOutput, g, strings.Join(Names(Outputs()), ", "))
	}
	return g, nil
}

// Names converts grammars to their literals.
func Names(gs []Grammar) []string {
	return lo.Map(gs, func(g Grammar, _ int) string {
		return g.String()
	})
}

func closest(name string, candidates []Grammar) Grammar {
	name = strings.ToLower(name)
	return lo.MinBy(candidates, func(a Grammar, b Grammar) bool {
		return levenshtein.Distance(name, a.String()) < levenshtein.Distance(name, b.String())
	})
}
