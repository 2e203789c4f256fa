package gtime

import "testing"

func TestUTCToGPST_LeapBoundary(t *testing.T) {
	tests := []struct {
		name string
		utc  Epoch
		want float64
	}{
		{"insertion instant takes new offset", Epoch{2017, 1, 1, 0, 0, 0}, 18},
		{"just before 2017", Epoch{2016, 12, 31, 23, 59, 59.9}, 17},
		{"mid 2015", Epoch{2015, 8, 1, 0, 0, 0}, 17},
		{"first leap second", Epoch{1981, 7, 1, 0, 0, 0}, 1},
		{"GPS epoch predates table", Epoch{1980, 1, 6, 0, 0, 0}, 0},
		{"after the table", Epoch{2030, 1, 1, 0, 0, 0}, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			utc := EpochToTime(tt.utc)
			if got := UTCToGPST(utc).Sub(utc); got != tt.want {
				t.Errorf("GPST - UTC = %v, want %v", got, tt.want)
			}
			if got := LeapSeconds(utc); got != tt.want {
				t.Errorf("LeapSeconds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGPSTToUTC(t *testing.T) {
	tests := []struct {
		name string
		gpst Epoch
		want Epoch
	}{
		{"2017 insertion", Epoch{2017, 1, 1, 0, 0, 18}, Epoch{2017, 1, 1, 0, 0, 0}},
		{"one second earlier", Epoch{2017, 1, 1, 0, 0, 17}, Epoch{2016, 12, 31, 23, 59, 60}},
		{"2006", Epoch{2006, 3, 1, 12, 0, 0}, Epoch{2006, 3, 1, 11, 59, 46}},
		{"predates table", Epoch{1981, 1, 1, 0, 0, 0}, Epoch{1981, 1, 1, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GPSTToUTC(EpochToTime(tt.gpst))
			// 23:59:60 is not a calendar value; compare as instants
			want := EpochToTime(Epoch{tt.want[0], tt.want[1], tt.want[2], 0, 0, 0}).
				Add(tt.want[3]*3600 + tt.want[4]*60 + tt.want[5])
			if got != want {
				t.Errorf("GPSTToUTC = %v, want %v", got, want)
			}
		})
	}
}

func TestLeapRoundTripAwayFromBoundaries(t *testing.T) {
	for _, ls := range LeapSecondTable() {
		// a day after each insertion there is no ambiguity
		utc := EpochToTime(ls.Epoch).Add(86400.25)
		if got := GPSTToUTC(UTCToGPST(utc)); got != utc {
			t.Errorf("%v: GPSTToUTC(UTCToGPST) = %v", ls.Epoch, got)
		}
	}
}

func TestLeapSecondTable(t *testing.T) {
	table := LeapSecondTable()
	if len(table) != 18 {
		t.Fatalf("len = %d, want 18", len(table))
	}
	if table[0].Offset != -18 || table[len(table)-1].Offset != -1 {
		t.Errorf("offsets run %v..%v, want -18..-1", table[0].Offset, table[len(table)-1].Offset)
	}
	for i := 1; i < len(table); i++ {
		if EpochToTime(table[i].Epoch).Sub(EpochToTime(table[i-1].Epoch)) >= 0 {
			t.Errorf("entry %d not older than entry %d", i, i-1)
		}
	}

	// callers get a copy
	table[0].Offset = 0
	if LeapSecondTable()[0].Offset != -18 {
		t.Error("LeapSecondTable exposed internal storage")
	}
}

func TestLeapShiftKeepsFraction(t *testing.T) {
	utc := EpochToTime(Epoch{2020, 1, 1, 0, 0, 0}).Add(0.8)

	gpst := UTCToGPST(utc)
	if gpst.Frac() != utc.Frac() {
		t.Errorf("UTCToGPST frac = %v, want %v", gpst.Frac(), utc.Frac())
	}
	if got := GPSTToUTC(gpst); got != utc {
		t.Errorf("GPSTToUTC(UTCToGPST(%v)) = %v", utc, got)
	}
}
