// Copyright 2024 Aerospike, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package units

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Day is not provided by the time package.
const Day = 24 * time.Hour

// MaxMillis is the largest millisecond count a Duration can hold.
const MaxMillis = math.MaxInt64 / int64(time.Millisecond)

var (
	expDurationPart = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([a-zA-Z]+)`)
	expDurationFull = regexp.MustCompile(`^(\d+(?:\.\d+)?\s*[a-zA-Z]+\s*)+$`)
	expDigitsOnly   = regexp.MustCompile(`^\d+$`)
)

var durationUnits = map[string]time.Duration{
	"ms":           time.Millisecond,
	"milli":        time.Millisecond,
	"millis":       time.Millisecond,
	"millisecond":  time.Millisecond,
	"milliseconds": time.Millisecond,
	"s":            time.Second,
	"sec":          time.Second,
	"secs":         time.Second,
	"second":       time.Second,
	"seconds":      time.Second,
	"m":            time.Minute,
	"min":          time.Minute,
	"mins":         time.Minute,
	"minute":       time.Minute,
	"minutes":      time.Minute,
	"h":            time.Hour,
	"hour":         time.Hour,
	"hours":        time.Hour,
	"d":            Day,
	"day":          Day,
	"days":         Day,
}

// Duration is a time quantity parsed from text like "10s" or "1h 30m".
type Duration struct {
	time.Duration
}

// NewDuration wraps d.
func NewDuration(d time.Duration) Duration {
	return Duration{Duration: d}
}

// ParseDuration parses a duration. Accepted forms:
//   - a bare integer, read as milliseconds: "1500";
//   - Go duration syntax: "10s", "1h30m", "250ms";
//   - spaced or long unit names, including days: "1h 30m", "5 min", "2 days".
func ParseDuration(s string) (Duration, error) {
	text := strings.TrimSpace(s)

	switch {
	case text == "":
		return Duration{}, fmt.Errorf("empty duration")
	case expDigitsOnly.MatchString(text):
		ms, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Duration{}, fmt.Errorf("invalid duration %q: %w", s, err)
		}

		if ms > MaxMillis {
			return Duration{}, fmt.Errorf("invalid duration %q: overflow", s)
		}

		return NewDuration(time.Duration(ms) * time.Millisecond), nil
	}

	if d, err := time.ParseDuration(text); err == nil {
		if d < 0 {
			return Duration{}, fmt.Errorf("invalid duration %q: must be non-negative", s)
		}

		return NewDuration(d), nil
	}

	if !expDurationFull.MatchString(text) {
		return Duration{}, fmt.Errorf("invalid duration %q", s)
	}

	var total time.Duration

	for _, part := range expDurationPart.FindAllStringSubmatch(text, -1) {
		unit, ok := durationUnits[strings.ToLower(part[2])]
		if !ok {
			return Duration{}, fmt.Errorf("invalid duration %q: unknown unit %q", s, part[2])
		}

		d, err := durationPart(part[1], unit)
		if err != nil {
			return Duration{}, fmt.Errorf("invalid duration %q: %w", s, err)
		}

		if total > math.MaxInt64-d {
			return Duration{}, fmt.Errorf("invalid duration %q: overflow", s)
		}

		total += d
	}

	return NewDuration(total), nil
}

// durationPart multiplies a decimal number by unit. Whole numbers stay exact.
func durationPart(number string, unit time.Duration) (time.Duration, error) {
	if !strings.Contains(number, ".") {
		n, err := strconv.ParseInt(number, 10, 64)
		if err != nil {
			return 0, err
		}

		if n > math.MaxInt64/int64(unit) {
			return 0, fmt.Errorf("overflow")
		}

		return time.Duration(n) * unit, nil
	}

	f, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, err
	}

	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
	if d := f * float64(unit); d < math.MaxInt64 {
		return time.Duration(d), nil
	}

	return 0, fmt.Errorf("overflow")
}

// MustParseDuration is like ParseDuration but panics on error.
func MustParseDuration(s string) Duration {
	d, err := ParseDuration(s)
	if err != nil {
		panic(err)
	}

	return d
}

// String renders the duration as spaced components: "1d 2h 30m", "10s", "250ms".
// Durations with a sub-millisecond remainder use time.Duration syntax, so that
// ParseDuration reads back the same value.
func (d Duration) String() string {
	rest := d.Duration
	if rest <= 0 {
		return "0ms"
	}

	if rest%time.Millisecond != 0 {
		return rest.String()
	}

	parts := make([]string, 0, 5)

	for _, c := range []struct {
		unit time.Duration
		name string
	}{
		{Day, "d"},
		{time.Hour, "h"},
		{time.Minute, "m"},
		{time.Second, "s"},
		{time.Millisecond, "ms"},
	} {
		if n := rest / c.unit; n > 0 {
			parts = append(parts, strconv.FormatInt(int64(n), 10)+c.name)
			rest -= n * c.unit
		}
	}

	return strings.Join(parts, " ")
}

// MarshalText renders the duration with String.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses text with ParseDuration.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := ParseDuration(string(text))
	if err != nil {
		return err
	}

	*d = v

	return nil
}
