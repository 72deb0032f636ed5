package grammar

import "errors"

var (
	// ErrEmptyInput is returned when there is no non-blank line to sniff.
	ErrEmptyInput = errors.New("no chapter lines in input")
	// ErrUnknownFormat is returned when no sniffing rule matches.
	ErrUnknownFormat = errors.New("can't guess file format")
	// ErrMalformedInput is returned for structurally broken input, such as an odd OGM line count.
	ErrMalformedInput = errors.New("malformed input")
	// ErrUnknownGrammar is returned for literals that name no grammar.
	ErrUnknownGrammar = errors.New("unknown format")
	// ErrUnsupportedInput is returned when a grammar cannot be parsed.
	ErrUnsupportedInput = errors.New("unsupported input format")
	// ErrUnsupportedOutput is returned when a grammar cannot be rendered.
	ErrUnsupportedOutput = errors.New("unsupported output format")
)
