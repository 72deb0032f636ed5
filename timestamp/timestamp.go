// Package timestamp converts chapter times between millisecond counts and clock strings.
//
// Three representations are supported:
//
//	1234567          canonical milliseconds
//	0:20:34.567      clock string, unpadded hours (ToClock)
//	00:20:34.567     fixed-width clock string (ToFixedClock, ToFixedClockString)
//
// Clock strings are split on ':' and '.'. Four components are read as
// hours, minutes, seconds and milliseconds; three as hours, minutes and
// seconds; two as minutes and seconds; one as seconds. Components are taken
// literally: no range checks are applied and "5" in the millisecond slot
// means five milliseconds.
package timestamp

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrMalformedTime is returned for clock strings that cannot be split into numeric components.
var ErrMalformedTime = errors.New("malformed timestamp")

var separators = regexp.MustCompile(`[:.]`)

type components struct {
	hours, minutes, seconds, millis int64
}

func (c components) total() int64 {
	return 1000*(c.hours*3600+c.minutes*60+c.seconds) + c.millis
}

func parse(clock string) (components, error) {
	var (
		c      components
		parts  = separators.Split(clock, -1)
		fields []*int64
	)

	switch len(parts) {
	case 4:
		fields = []*int64{&c.hours, &c.minutes, &c.seconds, &c.millis}
	case 3:
		fields = []*int64{&c.hours, &c.minutes, &c.seconds}
	case 2:
		fields = []*int64{&c.minutes, &c.seconds}
	case 1:
		fields = []*int64{&c.seconds}
	default:
		return c, fmt.Errorf("%w: %q has %d components", ErrMalformedTime, clock, len(parts))
	}

	for i, part := range parts {
		v, err := number(part)
		if err != nil {
			return c, fmt.Errorf("%w: %q: %v", ErrMalformedTime, clock, err)
		}
		*fields[i] = v
	}

	return c, nil
}

// number accepts unsigned decimal digits only.
func number(s string) (int64, error) {
	if s == "" {
		return 0, errors.New("empty component")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid component %q", s)
		}
	}
	return strconv.ParseInt(s, 10, 64)
}

// ToMilliseconds parses a clock string into a millisecond count.
func ToMilliseconds(clock string) (int64, error) {
	c, err := parse(clock)
	if err != nil {
		return 0, err
	}
	return c.total(), nil
}

// ToClock renders ms as H:MM:SS.mmm. Hours are not padded and may exceed 24.
func ToClock(ms int64) string {
	sign := ""
	if ms < 0 {
		sign, ms = "-", -ms
	}
	secs := ms / 1000
	return fmt.Sprintf("%s%d:%02d:%02d.%03d", sign, secs/3600, secs%3600/60, secs%60, ms%1000)
}

// ToFixedClock renders ms as HH:MM:SS.mmm.
func ToFixedClock(ms int64) string {
	sign := ""
	if ms < 0 {
		sign, ms = "-", -ms
	}
	secs := ms / 1000
	return fmt.Sprintf("%s%02d:%02d:%02d.%03d", sign, secs/3600, secs%3600/60, secs%60, ms%1000)
}

// ToFixedClockString re-renders a clock string with fixed field widths.
// Fields keep their literal values; missing ones become 00 or 000.
func ToFixedClockString(clock string) (string, error) {
	c, err := parse(clock)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d:%02d.%03d", c.hours, c.minutes, c.seconds, c.millis), nil
}

// ToDuration converts a millisecond count to a time.Duration.
func ToDuration(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// FromDuration truncates d to whole milliseconds.
func FromDuration(d time.Duration) int64 {
	return d.Milliseconds()
}
