package readout

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
)

// WriteJSON writes the readout as indented JSON.
func (r Readout) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteSummaryTable writes a fixed-width text summary.
func WriteSummaryTable(w io.Writer, r Readout) {
	fmt.Fprintf(w, "UTC  %s   DOY %7.3f   SOD %9.3f\n", r.UTCString, r.DayOfYear, r.SecondsOfDay)
	fmt.Fprintf(w, "GPST %s   GPST-UTC %+.0f s\n", r.GPSTString, r.LeapSeconds)
	fmt.Fprintln(w, strings.Repeat("─", 52))

	fmt.Fprintf(w, "%-6s %8s %16s\n", "Scale", "Week", "TOW (s)")
	fmt.Fprintln(w, strings.Repeat("─", 52))
	for _, wt := range r.Weeks {
		fmt.Fprintf(w, "%-6s %8d %16.6f\n", wt.Name, wt.Week, wt.Tow)
	}
	fmt.Fprintln(w, strings.Repeat("─", 52))

	fmt.Fprintf(w, "GMST %s  (%.6f°, UT1-UTC %+.3f s)\n", r.GMSTHours(), r.GMSTDeg, r.UT1UTC)
}

// formatHMS formats a number of hours in [0, 24) as hh:mm:ss.s. Values that
// round up to 24h wrap to 00:00:00.0.
func formatHMS(hours float64) string {
	tenths := int64(math.Round(hours*36000)) % 864000
	h := tenths / 36000
	m := tenths % 36000 / 600
	s := float64(tenths%600) / 10
	return fmt.Sprintf("%02d:%02d:%04.1f", h, m, s)
}
