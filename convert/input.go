package convert

import (
	"context"
	"errors"
	"fmt"

	"github.com/chapconv/chapconv/container"
	"github.com/chapconv/chapconv/filesystem"
	"github.com/chapconv/chapconv/log"
	"github.com/chapconv/chapconv/textio"
)

// Read acquires the chapter lines options point at: an existing file first,
// then the clipboard.
func Read(ctx context.Context, options *Options) ([]string, error) {
	if isFile(options.Input) {
		return readFile(ctx, options)
	}

	if options.FromClipboard {
		return readClipboard(options)
	}

	if options.Input != "" {
		return nil, fmt.Errorf("%w: %s", ErrNoInput, options.Input)
	}
	return nil, ErrNoInput
}

func isFile(path string) bool {
	if path == "" {
		return false
	}
	stat, err := filesystem.API().Stat(path)
	return err == nil && !stat.IsDir()
}

func readFile(ctx context.Context, options *Options) ([]string, error) {
	if container.Handles(options.Input) {
		if options.Container == nil {
			return nil, errors.New("no container tool available")
		}
		log.With(log.Fields{"input": options.Input}).Info("extracting chapters with container tool")
		return options.Container.ExtractChapterText(ctx, options.Input)
	}

	raw, err := filesystem.API().ReadFile(options.Input)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", options.Input, err)
	}

	text, err := textio.Decode(raw, options.FallbackCharset)
	if err != nil {
		return nil, err
	}
	return textio.Lines(text), nil
}

func readClipboard(options *Options) ([]string, error) {
	if options.Clipboard == nil {
		return nil, ErrNoInput
	}

	text, err := options.Clipboard.Read()
	if err != nil {
		return nil, err
	}

	lines := textio.Lines(text)
	if len(lines) == 0 {
		return nil, ErrEmptyClipboard
	}

	if options.Echo {
		fmt.Fprintln(options.Out, "Get data from clipboard:")
		fmt.Fprintln(options.Out, text)
	}
	return lines, nil
}
