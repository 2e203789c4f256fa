package astro

import (
	"math"

	"github.com/litescript/ls-gnsstime/internal/gtime"
)

// SkyCoord represents celestial coordinates with both equatorial (RA/Dec)
// and horizontal (Az/El) components.
type SkyCoord struct {
	// Equatorial coordinates (of date)
	RAdeg  float64 // Right Ascension in degrees (0-360)
	DecDeg float64 // Declination in degrees (-90 to +90)

	// Horizontal coordinates (observer-relative)
	AzDeg float64 // Azimuth in degrees (0=N, 90=E, 180=S, 270=W)
	ElDeg float64 // Elevation/Altitude in degrees (0=horizon, 90=zenith)
}

// Observer represents a ground-based observer location.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
	Name   string  // Optional name for the site
}

// EquatorialToHorizontal converts equatorial coordinates (RA/Dec) to horizontal
// coordinates (Az/El) for an observer at the UTC instant utc.
//
// The function preserves the input RA/Dec values and populates Az/El.
//   - Azimuth: 0° = North, 90° = East, 180° = South, 270° = West
//   - Elevation: 0° = horizon, 90° = zenith
func EquatorialToHorizontal(eq SkyCoord, obs Observer, utc gtime.Time, ut1UTC float64) SkyCoord {
	lat := degToRad(obs.LatDeg)
	dec := degToRad(eq.DecDeg)

	// Hour Angle = LST - RA
	ha := degToRad(LocalSiderealTime(utc, ut1UTC, obs.LonDeg) - eq.RAdeg)

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	alt := math.Asin(clamp(sinAlt))

	// undefined at the zenith; report north
	var az float64
	if den := math.Cos(alt) * math.Cos(lat); den > 1e-12 {
		az = math.Acos(clamp((math.Sin(dec) - math.Sin(alt)*math.Sin(lat)) / den))
		// positive hour angle: object is west of the meridian
		if math.Sin(ha) > 0 {
			az = 2*math.Pi - az
		}
	}

	return SkyCoord{
		RAdeg:  eq.RAdeg,
		DecDeg: eq.DecDeg,
		AzDeg:  radToDeg(az),
		ElDeg:  radToDeg(alt),
	}
}

// LocalSiderealTime returns the local mean sidereal time in degrees [0, 360)
// for an observer at longitude lonDeg.
func LocalSiderealTime(utc gtime.Time, ut1UTC, lonDeg float64) float64 {
	lst := math.Mod(radToDeg(gtime.UTCToGMST(utc, ut1UTC))+lonDeg, 360)
	if lst < 0 {
		lst += 360
	}
	return lst
}

func clamp(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
