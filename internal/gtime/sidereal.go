package gtime

import "math"

// ratio of the sidereal to the solar rotation rate of the Earth
const siderealRatio = 1.002737909350795

var j2000 = EpochToTime(Epoch{2000, 1, 1, 12, 0, 0})

// UTCToGMST returns the Greenwich mean sidereal time in radians, in
// [0, 2π), for the UTC instant t. ut1UTC is UT1 - UTC in seconds.
func UTCToGMST(t Time, ut1UTC float64) float64 {
	ut, day := t.Add(ut1UTC).SecondsOfDay()

	// Julian centuries from J2000 to 0h UT1 of the day
	t1 := day.Sub(j2000) / secondsPerDay / 36525
	t2 := t1 * t1
	t3 := t2 * t1
	gmst0 := 24110.54841 + 8640184.812866*t1 + 0.093104*t2 - 6.2e-6*t3

	gmst := math.Mod(gmst0+siderealRatio*ut, secondsPerDay)
	if gmst < 0 {
		gmst += secondsPerDay
	}
	rad := gmst * math.Pi / 43200
	if rad >= 2*math.Pi {
		rad = 0
	}
	return rad
}
