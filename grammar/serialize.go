package grammar

import (
	"fmt"
	"strings"

	"github.com/chapconv/chapconv/chapter"
)

var renderers map[Grammar]func(chapter.List) []string

func init() {
	renderers = map[Grammar]func(chapter.List) []string{
		Tab:    delimited("\t"),
		Simple: delimited(","),
		OGM:    renderOGM,
		// XML is produced by the container tool from OGM text.
		XML: renderOGM,
		POT: renderPOT,
	}
}

// delimited renders clock, delimiter, title lines. Titles are not escaped.
func delimited(sep string) func(chapter.List) []string {
	return func(list chapter.List) []string {
		lines := make([]string, len(list))
		for i, c := range list {
			lines[i] = c.Clock() + sep + c.Title
		}
		return lines
	}
}

// Serialize renders list in g, one or more lines per chapter in list order.
func Serialize(g Grammar, list chapter.List) ([]string, error) {
	render, ok := renderers[g]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOutput, g)
	}
	return render(list), nil
}

// Join terminates every line with a newline.
func Join(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
