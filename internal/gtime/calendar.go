package gtime

import "math"

// Epoch is a calendar record {year, month, day, hour, minute, second}.
// The second field may carry a fraction.
type Epoch [6]float64

const (
	secondsPerDay = 86400

	// MinYear and MaxYear bound the years EpochToTime accepts. The leap
	// year rule used below (year%4 == 0) is only right inside this range.
	MinYear = 1970
	MaxYear = 2099
)

// day of year of the first day of each month in a common year
var monthStartDoy = [12]int{1, 32, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}

// month lengths over one four year cycle starting at 1970; the third
// block (1972, 1976, ...) is the leap year
var cycleMonthDays = [48]int{
	31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31,
	31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31,
	31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31,
	31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31,
}

// EpochToTime converts a calendar record to an instant. A year outside
// [MinYear, MaxYear] or a month outside [1, 12] yields the zero Time.
func EpochToTime(ep Epoch) Time {
	year, mon, day := int(ep[0]), int(ep[1]), int(ep[2])
	if year < MinYear || year > MaxYear || mon < 1 || mon > 12 {
		return Time{}
	}

	days := (year-1970)*365 + (year-1969)/4 + monthStartDoy[mon-1] + day - 2
	if year%4 == 0 && mon >= 3 {
		days++
	}

	sec := math.Floor(ep[5])
	return Time{
		sec:  int64(days)*secondsPerDay + int64(ep[3])*3600 + int64(ep[4])*60 + int64(sec),
		frac: ep[5] - sec,
	}
}

// Epoch converts t back to a calendar record. It inverts EpochToTime for
// every instant in the supported year range.
func (t Time) Epoch() Epoch {
	days := t.sec / secondsPerDay
	sod := int(t.sec - days*secondsPerDay)

	day := int(days % 1461)
	mon := 0
	for ; mon < len(cycleMonthDays); mon++ {
		if day < cycleMonthDays[mon] {
			break
		}
		day -= cycleMonthDays[mon]
	}

	return Epoch{
		float64(1970 + int(days/1461)*4 + mon/12),
		float64(mon%12 + 1),
		float64(day + 1),
		float64(sod / 3600),
		float64(sod % 3600 / 60),
		float64(sod%60) + t.frac,
	}
}

// DayOfYear returns the day of year of t, 1.0 at 00:00 on January 1st.
// The fraction is the elapsed part of the day.
func (t Time) DayOfYear() float64 {
	ep := t.Epoch()
	ep[1], ep[2] = 1, 1
	ep[3], ep[4], ep[5] = 0, 0, 0
	return t.Sub(EpochToTime(ep))/secondsPerDay + 1
}

// SecondsOfDay splits t into the seconds elapsed since midnight (with the
// fraction) and the instant of that midnight.
func (t Time) SecondsOfDay() (sec float64, day Time) {
	ep := t.Epoch()
	sec = ep[3]*3600 + ep[4]*60 + ep[5]
	ep[3], ep[4], ep[5] = 0, 0, 0
	return sec, EpochToTime(ep)
}
