package readout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/litescript/ls-gnsstime/internal/gtime"
)

var (
	// ErrFieldCount is returned when a calendar string has neither 3 nor 6 fields.
	ErrFieldCount = errors.New("want 3 or 6 calendar fields")

	// ErrOutOfRange is returned when a calendar field is outside its valid range.
	ErrOutOfRange = errors.New("calendar field out of range")
)

var fieldReplacer = strings.NewReplacer("-", " ", "/", " ", ":", " ", "T", " ", "Z", " ", ",", " ")

// ParseEpoch parses "YYYY-MM-DD hh:mm:ss.sss", "YYYY/MM/DD hh:mm:ss" or six
// whitespace separated numbers. Three fields mean midnight of that day.
func ParseEpoch(s string) (gtime.Epoch, error) {
	var ep gtime.Epoch

	fields := strings.Fields(fieldReplacer.Replace(s))
	if len(fields) != 3 && len(fields) != 6 {
		return ep, fmt.Errorf("parse epoch %q: %w", s, ErrFieldCount)
	}

	for i, f := range fields {
		v, err := cast.ToFloat64E(f)
		if err != nil {
			return ep, fmt.Errorf("parse epoch %q field %d: %w", s, i+1, err)
		}
		ep[i] = v
	}

	if err := validate(ep); err != nil {
		return ep, fmt.Errorf("parse epoch %q: %w", s, err)
	}
	return ep, nil
}

func validate(ep gtime.Epoch) error {
	limits := [6]struct {
		name     string
		min, max float64
	}{
		{"year", gtime.MinYear, gtime.MaxYear},
		{"month", 1, 12},
		{"day", 1, 31},
		{"hour", 0, 23},
		{"minute", 0, 59},
		{"second", 0, 60},
	}
	for i, l := range limits {
		if i == 2 {
			l.max = daysInMonth(int(ep[0]), int(ep[1]))
		}
		if ep[i] < l.min || ep[i] > l.max {
			return fmt.Errorf("%s %v: %w", l.name, ep[i], ErrOutOfRange)
		}
		// only the second may carry a fraction
		if i < 5 && ep[i] != float64(int(ep[i])) {
			return fmt.Errorf("%s %v: %w", l.name, ep[i], ErrOutOfRange)
		}
	}
	return nil
}

func daysInMonth(year, mon int) float64 {
	switch mon {
	case 2:
		if year%4 == 0 {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	}
	return 31
}

var (
	firstInstant = gtime.EpochToTime(gtime.Epoch{gtime.MinYear, 1, 1, 0, 0, 0})
	lastInstant  = gtime.EpochToTime(gtime.Epoch{gtime.MaxYear, 12, 31, 23, 59, 59})
)

// CheckWeek reports whether week and tow in scale name an instant whose UTC
// calendar date lies in the supported years.
func CheckWeek(scale gtime.Scale, week int, tow float64) error {
	utc := FromScale(scale, week, tow, 0).UTC
	if utc.Sub(firstInstant) < 0 || utc.Sub(lastInstant) >= 1 {
		return fmt.Errorf("%s week %d tow %v: %w", scale, week, tow, ErrOutOfRange)
	}
	return nil
}
