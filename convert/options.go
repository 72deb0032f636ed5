package convert

import (
	"io"

	"github.com/chapconv/chapconv/clipboard"
	"github.com/chapconv/chapconv/container"
	"github.com/chapconv/chapconv/grammar"
	"github.com/samber/mo"
)

type Options struct {
	// Input is the chapter file. May be empty when reading the clipboard.
	Input         string
	FromClipboard bool
	Format        mo.Option[grammar.Grammar]
	Output        mo.Option[string]
	// Charset of the written file. The container tool carries its own charsets.
	Charset         string
	FallbackCharset string
	Print           bool
	CRLF            bool
	Echo            bool
	Out             io.Writer
	Clipboard       clipboard.Clipboard
	Container       container.Container
}

// Destinations other than a file path.
const (
	ToClipboard = "clipboard"
	ToStdout    = "stdout"
)

type Result struct {
	Input       grammar.Grammar
	Output      grammar.Grammar
	Chapters    int
	Destination string
}
