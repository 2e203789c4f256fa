package gtime

import (
	"fmt"
	"strings"
)

// Scale identifies a continuous GNSS time scale that is counted in weeks
// and time of week from a fixed reference epoch.
type Scale int

const (
	GPST Scale = iota // GPS time, weeks from 1980-01-06
	GST               // Galileo system time, weeks from 1999-08-22
	BDT               // BeiDou time, weeks from 2006-01-01
)

const (
	secondsPerWeek = 7 * secondsPerDay

	// tows beyond this magnitude are treated as garbage and replaced by 0
	maxTow = 1e9

	// GPST - BDT, constant since BDT does not follow UTC leap seconds
	gpstMinusBDT = 14.0
)

var scaleNames = [...]string{
	GPST: "GPST",
	GST:  "GST",
	BDT:  "BDT",
}

// reference epochs, resolved once at load time
var scaleRefs = [...]Time{
	GPST: EpochToTime(Epoch{1980, 1, 6, 0, 0, 0}),
	GST:  EpochToTime(Epoch{1999, 8, 22, 0, 0, 0}),
	BDT:  EpochToTime(Epoch{2006, 1, 1, 0, 0, 0}),
}

// Scales lists every supported week-based scale.
func Scales() []Scale {
	return []Scale{GPST, GST, BDT}
}

func (s Scale) String() string {
	if s < 0 || int(s) >= len(scaleNames) {
		return fmt.Sprintf("Scale(%d)", int(s))
	}
	return scaleNames[s]
}

// ParseScale parses a scale name such as "gpst" or "BDT".
func ParseScale(name string) (Scale, error) {
	for i, n := range scaleNames {
		if strings.EqualFold(name, n) {
			return Scale(i), nil
		}
	}
	return 0, fmt.Errorf("unknown time scale %q", name)
}

// Reference returns the instant where week 0 of the scale starts.
func (s Scale) Reference() Time {
	return scaleRefs[s]
}

// FromWeek converts a week number and time of week in scale s to an
// instant. A tow with magnitude above 1e9 s is replaced by 0.
func (s Scale) FromWeek(week int, tow float64) Time {
	if tow < -maxTow || tow > maxTow {
		tow = 0
	}
	t := s.Reference()
	t.sec += int64(week) * secondsPerWeek
	return t.Add(tow)
}

// ToWeek converts t to a week number and time of week in scale s. The week
// is floored, so instants before the reference get negative weeks and a
// tow in [0, 604800).
func (s Scale) ToWeek(t Time) (week int, tow float64) {
	secs := t.sec - s.Reference().sec
	w := secs / secondsPerWeek
	if secs%secondsPerWeek != 0 && secs < 0 {
		w--
	}
	return int(w), float64(secs-w*secondsPerWeek) + t.frac
}

// GPSTime converts GPS week and tow to an instant.
func GPSTime(week int, tow float64) Time { return GPST.FromWeek(week, tow) }

// TimeToGPST converts t to GPS week and tow.
func TimeToGPST(t Time) (week int, tow float64) { return GPST.ToWeek(t) }

// GSTime converts Galileo week and tow to an instant.
func GSTime(week int, tow float64) Time { return GST.FromWeek(week, tow) }

// TimeToGST converts t to Galileo week and tow.
func TimeToGST(t Time) (week int, tow float64) { return GST.ToWeek(t) }

// BDTime converts BeiDou week and tow to an instant.
func BDTime(week int, tow float64) Time { return BDT.FromWeek(week, tow) }

// TimeToBDT converts t to BeiDou week and tow.
func TimeToBDT(t Time) (week int, tow float64) { return BDT.ToWeek(t) }

// GPSTToBDT converts an instant expressed in GPST to BDT.
func GPSTToBDT(t Time) Time {
	return t.Add(-gpstMinusBDT)
}

// BDTToGPST converts an instant expressed in BDT to GPST.
func BDTToGPST(t Time) Time {
	return t.Add(gpstMinusBDT)
}
