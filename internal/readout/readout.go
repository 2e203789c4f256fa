// Package readout assembles a view of one instant across UTC, the GNSS
// time scales and sidereal time, and renders it for the CLI.
package readout

import (
	"math"

	"github.com/litescript/ls-gnsstime/internal/astro"
	"github.com/litescript/ls-gnsstime/internal/gtime"
)

// WeekTow is a week number and time of week in one GNSS scale.
type WeekTow struct {
	Scale gtime.Scale `json:"-"`
	Name  string      `json:"scale"`
	Week  int         `json:"week"`
	Tow   float64     `json:"tow"`
}

// Readout is the same instant expressed in every supported scale.
type Readout struct {
	UTC  gtime.Time `json:"-"`
	GPST gtime.Time `json:"-"`

	UTCString    string      `json:"utc"`
	GPSTString   string      `json:"gpst"`
	Calendar     gtime.Epoch `json:"calendar"`
	DayOfYear    float64     `json:"day_of_year"`
	SecondsOfDay float64     `json:"seconds_of_day"`
	LeapSeconds  float64     `json:"leap_seconds"`
	UT1UTC       float64     `json:"ut1_utc"`
	Weeks        []WeekTow   `json:"weeks"`
	GMSTRad      float64     `json:"gmst_rad"`
	GMSTDeg      float64     `json:"gmst_deg"`
}

// Compute builds the readout for a UTC instant. ut1UTC is UT1 - UTC in
// seconds and only affects sidereal time.
func Compute(utc gtime.Time, ut1UTC float64) Readout {
	return build(utc, gtime.UTCToGPST(utc), ut1UTC)
}

// FromScale builds the readout for a week and time of week given in one of
// the GNSS scales.
func FromScale(scale gtime.Scale, week int, tow, ut1UTC float64) Readout {
	t := scale.FromWeek(week, tow)
	gpst := t
	if scale == gtime.BDT {
		gpst = gtime.BDTToGPST(t)
	}
	return build(gtime.GPSTToUTC(gpst), gpst, ut1UTC)
}

func build(utc, gpst gtime.Time, ut1UTC float64) Readout {
	sod, _ := utc.SecondsOfDay()
	gmst := gtime.UTCToGMST(utc, ut1UTC)

	r := Readout{
		UTC:          utc,
		GPST:         gpst,
		UTCString:    utc.String(),
		GPSTString:   gpst.String(),
		Calendar:     utc.Epoch(),
		DayOfYear:    utc.DayOfYear(),
		SecondsOfDay: sod,
		LeapSeconds:  gpst.Sub(utc),
		UT1UTC:       ut1UTC,
		GMSTRad:      gmst,
		GMSTDeg:      gmst * 180 / math.Pi,
	}

	for _, s := range gtime.Scales() {
		// GST runs in step with GPST; BDT lags it by a fixed offset
		t := gpst
		if s == gtime.BDT {
			t = gtime.GPSTToBDT(gpst)
		}
		week, tow := s.ToWeek(t)
		r.Weeks = append(r.Weeks, WeekTow{Scale: s, Name: s.String(), Week: week, Tow: tow})
	}
	return r
}

// Week returns the week/tow entry for scale s.
func (r Readout) Week(s gtime.Scale) (WeekTow, bool) {
	for _, w := range r.Weeks {
		if w.Scale == s {
			return w, true
		}
	}
	return WeekTow{}, false
}

// GMSTHours returns GMST as an "hh:mm:ss.s" string.
func (r Readout) GMSTHours() string {
	return formatHMS(r.GMSTRad * 12 / math.Pi)
}

// LSTDeg returns the local mean sidereal time in degrees at east
// longitude lonDeg.
func (r Readout) LSTDeg(lonDeg float64) float64 {
	return astro.LocalSiderealTime(r.UTC, r.UT1UTC, lonDeg)
}
