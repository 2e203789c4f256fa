// Package gtime represents absolute instants and converts them between
// calendar time, UTC and the GNSS time scales (GPST, GST, BDT).
//
// An instant is a count of whole seconds since 1970-01-01 00:00:00 plus a
// fractional remainder. The count carries no scale of its own; it only
// means something next to the scale the caller is working in.
package gtime

import (
	"fmt"
	"math"
	"time"
)

// Time is an absolute instant. The zero value is the sentinel returned for
// invalid calendar input.
type Time struct {
	sec  int64   // whole seconds since 1970-01-01 00:00:00
	frac float64 // fraction of a second, always in [0, 1)
}

// Unix returns the whole-second count.
func (t Time) Unix() int64 {
	return t.sec
}

// Frac returns the fractional second in [0, 1).
func (t Time) Frac() float64 {
	return t.frac
}

// IsZero reports whether t is the invalid-input sentinel.
func (t Time) IsZero() bool {
	return t.sec == 0 && t.frac == 0
}

// Add returns t shifted by sec seconds. The whole part of sec goes to the
// seconds count and only the remainder touches the fraction, so integral
// shifts leave the fraction bit for bit unchanged. Floor is used so
// negative offsets borrow from the whole seconds.
func (t Time) Add(sec float64) Time {
	whole := math.Floor(sec)
	t.sec += int64(whole)
	t.frac += sec - whole
	// sec - floor(sec) rounds to exactly 1 for tiny negative sec
	if t.frac >= 1 {
		t.sec++
		t.frac -= 1
	}
	return t
}

// Sub returns t - u in seconds.
func (t Time) Sub(u Time) float64 {
	return float64(t.sec-u.sec) + t.frac - u.frac
}

// FromStd converts a Go time to an instant. The Unix count is taken as is;
// no scale conversion happens.
func FromStd(st time.Time) Time {
	return Time{sec: st.Unix(), frac: float64(st.Nanosecond()) / 1e9}
}

// Std converts t to a Go time in the UTC location, rounded to the nanosecond.
func (t Time) Std() time.Time {
	ns := int64(math.Round(t.frac * 1e9))
	return time.Unix(t.sec, ns).UTC()
}

// String formats t as "YYYY/MM/DD hh:mm:ss.sss".
func (t Time) String() string {
	// round to the millisecond first so 59.9996 s prints as the next minute
	if 1-t.frac < 0.0005 {
		t = Time{sec: t.sec + 1}
	}
	ep := t.Epoch()
	return fmt.Sprintf("%04.0f/%02.0f/%02.0f %02.0f:%02.0f:%06.3f",
		ep[0], ep[1], ep[2], ep[3], ep[4], ep[5])
}
