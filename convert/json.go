package convert

import (
	"encoding/json"
	"io"

	"github.com/chapconv/chapconv/chapter"
	"github.com/chapconv/chapconv/grammar"
	"github.com/invopop/jsonschema"
)

// Entry is a chapter as reported by inspect.
type Entry struct {
	chapter.Chapter
	// Clock is the start rendered as H:MM:SS.mmm.
	Clock string `json:"clock" jsonschema:"description=Chapter start as H:MM:SS.mmm."`
}

func newEntry(c chapter.Chapter) Entry {
	return Entry{Chapter: c, Clock: c.Clock()}
}

// Report is the result of inspecting chapter text.
type Report struct {
	Grammar  grammar.Grammar `json:"grammar" jsonschema:"enum=youtube,enum=simple,enum=tab,enum=ogm,enum=pot,enum=mediainfo,description=Detected input grammar."`
	Chapters []Entry         `json:"chapters"`
}

// WriteJson encodes r to w.
func (r *Report) WriteJson(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(r)
}

// Schema describes the JSON produced by Report.WriteJson.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	return reflector.Reflect(&Report{})
}
