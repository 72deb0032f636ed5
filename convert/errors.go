package convert

import "errors"

var (
	ErrNoInput        = errors.New("input file missing or invalid")
	ErrEmptyClipboard = errors.New("no valid input data in clipboard")
	ErrNoOutput       = errors.New("output file name required")
)
