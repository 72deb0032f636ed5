// Package convert runs a whole chapter conversion: acquire the text, sniff
// and parse it, pick an output grammar and deliver the rendered result.
package convert

import (
	"context"
	"os"
	"path/filepath"

	"github.com/chapconv/chapconv/chapter"
	"github.com/chapconv/chapconv/grammar"
	"github.com/chapconv/chapconv/log"
	"github.com/samber/lo"
)

func Run(ctx context.Context, options *Options) (*Result, error) {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	lines, err := Read(ctx, options)
	if err != nil {
		return nil, err
	}

	input, chapters, err := grammar.Detect(lines)
	if err != nil {
		return nil, err
	}

	ext := filepath.Ext(options.Output.OrEmpty())
	format := ResolveFormat(options.Format, options.FromClipboard, ext, input)

	logger := log.With(log.Fields{
		"input":    input,
		"output":   format,
		"chapters": len(chapters),
		"span":     chapters.Span().String(),
	})
	logger.Info("parsed chapters")
	logger.WithField("titles", chapters.Titles()).Debug("chapter titles")

	rendered, err := grammar.Serialize(format, chapters)
	if err != nil {
		return nil, err
	}

	dest, err := destination(options, format)
	if err != nil {
		return nil, err
	}

	if err := write(ctx, options, format, rendered, dest); err != nil {
		return nil, err
	}
	logger.WithField("destination", dest).Info("chapters written")

	return &Result{
		Input:       input,
		Output:      format,
		Chapters:    len(chapters),
		Destination: dest,
	}, nil
}

// Inspect reads and parses the input without writing anything.
func Inspect(ctx context.Context, options *Options) (*Report, error) {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	lines, err := Read(ctx, options)
	if err != nil {
		return nil, err
	}

	g, chapters, err := grammar.Detect(lines)
	if err != nil {
		return nil, err
	}

	return &Report{
		Grammar:  g,
		Chapters: lo.Map(chapters, func(c chapter.Chapter, _ int) Entry { return newEntry(c) }),
	}, nil
}
