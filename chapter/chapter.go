// Package chapter defines the normalized chapter model shared by every grammar.
package chapter

import (
	"fmt"
	"time"

	"github.com/chapconv/chapconv/timestamp"
)

// Chapter is a single (timestamp, title) record.
type Chapter struct {
	// Start is the chapter offset in milliseconds.
	Start int64 `json:"start_ms" jsonschema:"description=Chapter start offset in milliseconds.,minimum=0"`
	// Title is free text. It is never escaped for any output format.
	Title string `json:"title" jsonschema:"description=Chapter title as found in the source."`
}

// New creates a chapter starting at ms.
func New(ms int64, title string) Chapter {
	return Chapter{Start: ms, Title: title}
}

// Offset returns the start as a time.Duration.
func (c Chapter) Offset() time.Duration {
	return timestamp.ToDuration(c.Start)
}

// Clock returns the start as H:MM:SS.mmm.
func (c Chapter) Clock() string {
	return timestamp.ToClock(c.Start)
}

func (c Chapter) String() string {
	return fmt.Sprintf("%s %s", c.Clock(), c.Title)
}

// List is an ordered sequence of chapters in source order.
type List []Chapter

// Titles returns the titles in order.
func (l List) Titles() []string {
	titles := make([]string, len(l))
	for i, c := range l {
		titles[i] = c.Title
	}
	return titles
}

// Span returns the offset of the last chapter, or zero for an empty list.
func (l List) Span() time.Duration {
	if len(l) == 0 {
		return 0
	}
	return l[len(l)-1].Offset()
}
