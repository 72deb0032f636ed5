// Package textio turns raw chapter bytes into lines and rendered chapters back into bytes.
package textio

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/chapconv/chapconv/constant"
	"github.com/chapconv/chapconv/log"
	"github.com/saintfish/chardet"
	"github.com/samber/lo"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const bom = "\uFEFF"

// ErrUnknownCharset is returned for charset names with no known encoding.
var ErrUnknownCharset = errors.New("unknown charset")

// detect guesses the charset of raw text. Replaced in tests.
var detect = func(raw []byte) string {
	result, err := chardet.NewTextDetector().DetectBest(raw)
	if err != nil {
		return ""
	}
	return result.Charset
}

// detectorAliases maps chardet names that are not WHATWG labels.
var detectorAliases = map[string]string{
	"GB-18030": "gb18030",
}

var boms = [][]byte{
	{0xEF, 0xBB, 0xBF},
	{0xFF, 0xFE},
	{0xFE, 0xFF},
}

// Lookup resolves a charset name. utf-8-sig is UTF-8 with a byte order mark.
func Lookup(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", constant.UTF8:
		return unicode.UTF8, nil
	case constant.UTF8Sig:
		return unicode.UTF8BOM, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCharset, name)
	}
	return enc, nil
}

// Decode converts raw file content to UTF-8. A byte order mark wins, valid
// UTF-8 is kept as is, otherwise the detected charset is used and fallback
// covers detections that cannot be decoded.
func Decode(raw []byte, fallback string) (string, error) {
	if lo.ContainsBy(boms, func(b []byte) bool { return bytes.HasPrefix(raw, b) }) {
		out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
		if err != nil {
			return "", fmt.Errorf("decode: %w", err)
		}
		return string(out), nil
	}

	if utf8.Valid(raw) {
		return string(raw), nil
	}

	name := detect(raw)
	if alias, ok := detectorAliases[name]; ok {
		name = alias
	}

	enc, err := Lookup(name)
	if name == "" || err != nil {
		log.Debugf("charset detection gave %q, using %s", name, fallback)
		if enc, err = Lookup(fallback); err != nil {
			return "", err
		}
	} else {
		log.Debugf("detected charset %s", name)
	}

	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return string(out), nil
}

// Encode renders text in the named charset.
func Encode(text, charset string) ([]byte, error) {
	enc, err := Lookup(charset)
	if err != nil {
		return nil, err
	}

	out, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode as %s: %w", charset, err)
	}
	return out, nil
}

// Lines splits text on any line terminator and drops blank lines.
func Lines(text string) []string {
	text = strings.TrimPrefix(text, bom)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	return lo.Filter(strings.Split(text, "\n"), func(line string, _ int) bool {
		return strings.TrimSpace(line) != ""
	})
}

// CRLF converts newlines for consumers that expect Windows line endings.
func CRLF(text string) string {
	return strings.ReplaceAll(text, "\n", "\r\n")
}
