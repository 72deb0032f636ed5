package convert

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/chapconv/chapconv/filesystem"
	"github.com/chapconv/chapconv/grammar"
	"github.com/chapconv/chapconv/textio"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ResolveFormat picks the output grammar. An explicit choice wins. Otherwise
// the default is pot, tab for clipboard input that is not already tab, and
// a known output extension overrides both.
func ResolveFormat(explicit mo.Option[grammar.Grammar], fromClipboard bool, outputExt string, input grammar.Grammar) grammar.Grammar {
	if g, ok := explicit.Get(); ok {
		return g
	}

	format := grammar.POT
	if fromClipboard && input != grammar.Tab {
		format = grammar.Tab
	}

	switch strings.ToLower(outputExt) {
	case ".pbf":
		format = grammar.POT
	case ".xml":
		format = grammar.XML
	case ".txt":
		format = grammar.OGM
	}
	return format
}

// OutputPath derives the output file name from the input file name.
func OutputPath(input string, format grammar.Grammar) (string, error) {
	if input == "" {
		return "", ErrNoOutput
	}

	stem := strings.TrimSuffix(input, filepath.Ext(input))
	switch format {
	case grammar.POT:
		return stem + ".pbf", nil
	case grammar.XML:
		return stem + ".xml", nil
	default:
		return fmt.Sprintf("%s.%s.txt", stem, format), nil
	}
}

// UniquePath appends " (2)", " (3)", ... before the extension until the path is free.
func UniquePath(path string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)

	candidate := path
	for i := 2; lo.Must(filesystem.API().Exists(candidate)); i++ {
		candidate = fmt.Sprintf("%s (%d)%s", stem, i, ext)
	}
	return candidate
}

// destination decides where the rendered chapters go.
func destination(options *Options, format grammar.Grammar) (string, error) {
	switch {
	case options.Print:
		return ToStdout, nil
	case options.FromClipboard && options.Output.IsAbsent():
		return ToClipboard, nil
	}

	path, ok := options.Output.Get()
	if !ok {
		var err error
		if path, err = OutputPath(options.Input, format); err != nil {
			return "", err
		}
	}
	return UniquePath(path), nil
}

func write(ctx context.Context, options *Options, format grammar.Grammar, lines []string, dest string) error {
	text := grammar.Join(lines)

	switch dest {
	case ToStdout:
		_, err := fmt.Fprint(options.Out, text)
		return err
	case ToClipboard:
		if options.Clipboard == nil {
			return errors.New("no clipboard available")
		}
		if options.Echo {
			fmt.Fprintln(options.Out, "Set data to clipboard:")
			fmt.Fprintln(options.Out, text)
		}
		if options.CRLF {
			text = textio.CRLF(text)
		}
		return options.Clipboard.Write(text)
	}

	var raw []byte
	if format == grammar.XML {
		if options.Container == nil {
			return fmt.Errorf("no container tool available for %s output", format)
		}
		var err error
		if raw, err = options.Container.PackageChapterText(ctx, lines); err != nil {
			return err
		}
	} else {
		var err error
		if raw, err = textio.Encode(text, options.Charset); err != nil {
			return err
		}
	}

	if err := filesystem.API().WriteFile(dest, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}
