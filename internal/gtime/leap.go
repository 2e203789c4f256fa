package gtime

// LeapSecond is one row of the leap second table: from Epoch (UTC) on,
// UTC - GPST equals Offset seconds.
type LeapSecond struct {
	Epoch  Epoch
	Offset float64
}

// newest first
var leapSeconds = [...]LeapSecond{
	{Epoch{2017, 1, 1, 0, 0, 0}, -18},
	{Epoch{2015, 7, 1, 0, 0, 0}, -17},
	{Epoch{2012, 7, 1, 0, 0, 0}, -16},
	{Epoch{2009, 1, 1, 0, 0, 0}, -15},
	{Epoch{2006, 1, 1, 0, 0, 0}, -14},
	{Epoch{1999, 1, 1, 0, 0, 0}, -13},
	{Epoch{1997, 7, 1, 0, 0, 0}, -12},
	{Epoch{1996, 1, 1, 0, 0, 0}, -11},
	{Epoch{1994, 7, 1, 0, 0, 0}, -10},
	{Epoch{1993, 7, 1, 0, 0, 0}, -9},
	{Epoch{1992, 7, 1, 0, 0, 0}, -8},
	{Epoch{1991, 1, 1, 0, 0, 0}, -7},
	{Epoch{1990, 1, 1, 0, 0, 0}, -6},
	{Epoch{1988, 1, 1, 0, 0, 0}, -5},
	{Epoch{1985, 7, 1, 0, 0, 0}, -4},
	{Epoch{1983, 7, 1, 0, 0, 0}, -3},
	{Epoch{1982, 7, 1, 0, 0, 0}, -2},
	{Epoch{1981, 7, 1, 0, 0, 0}, -1},
}

// LeapSecondTable returns a copy of the leap second table, newest first.
func LeapSecondTable() []LeapSecond {
	out := make([]LeapSecond, len(leapSeconds))
	copy(out, leapSeconds[:])
	return out
}

// GPSTToUTC converts an instant in GPST to UTC. Instants older than the
// first leap second are returned unchanged.
func GPSTToUTC(t Time) Time {
	for _, ls := range leapSeconds {
		tu := t.Add(ls.Offset)
		if tu.Sub(EpochToTime(ls.Epoch)) >= 0 {
			return tu
		}
	}
	return t
}

// UTCToGPST converts an instant in UTC to GPST. At the exact instant of an
// insertion the new offset already applies.
func UTCToGPST(t Time) Time {
	for _, ls := range leapSeconds {
		if t.Sub(EpochToTime(ls.Epoch)) >= 0 {
			return t.Add(-ls.Offset)
		}
	}
	return t
}

// LeapSeconds returns GPST - UTC in seconds at the UTC instant t.
func LeapSeconds(t Time) float64 {
	for _, ls := range leapSeconds {
		if t.Sub(EpochToTime(ls.Epoch)) >= 0 {
			return -ls.Offset
		}
	}
	return 0
}
