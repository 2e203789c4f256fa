package readout

import (
	"errors"
	"testing"

	"github.com/litescript/ls-gnsstime/internal/gtime"
)

func TestParseEpoch(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want gtime.Epoch
	}{
		{"iso", "2017-01-01 00:00:00", gtime.Epoch{2017, 1, 1, 0, 0, 0}},
		{"iso with T and Z", "2017-01-01T12:34:56.5Z", gtime.Epoch{2017, 1, 1, 12, 34, 56.5}},
		{"slashes", "2009/12/31 23:59:59.999", gtime.Epoch{2009, 12, 31, 23, 59, 59.999}},
		{"fields", "1980 1 6 0 0 0", gtime.Epoch{1980, 1, 6, 0, 0, 0}},
		{"date only", "2024-02-29", gtime.Epoch{2024, 2, 29, 0, 0, 0}},
		{"leap second label", "2016-12-31 23:59:60", gtime.Epoch{2016, 12, 31, 23, 59, 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEpoch(tt.in)
			if err != nil {
				t.Fatalf("ParseEpoch(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseEpoch(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseEpoch_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"empty", "", ErrFieldCount},
		{"too few", "2017 1", ErrFieldCount},
		{"four fields", "2017 1 1 0", ErrFieldCount},
		{"year too early", "1969-12-31", ErrOutOfRange},
		{"year too late", "2100-01-01", ErrOutOfRange},
		{"month", "2017-13-01", ErrOutOfRange},
		{"hour", "2017-01-01 24:00:00", ErrOutOfRange},
		{"fractional minute", "2017 1 1 0 0.5 0", ErrOutOfRange},
		{"february 30th", "2021-02-30", ErrOutOfRange},
		{"february 29th in common year", "2021-02-29", ErrOutOfRange},
		{"april 31st", "2017-04-31", ErrOutOfRange},
		{"not a number", "2017-ab-01", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEpoch(tt.in)
			if err == nil {
				t.Fatalf("ParseEpoch(%q) succeeded, want error", tt.in)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseEpoch_MonthLengths(t *testing.T) {
	for _, in := range []string{"2020-02-29", "2021-02-28", "2017-04-30", "2017-12-31"} {
		if _, err := ParseEpoch(in); err != nil {
			t.Errorf("ParseEpoch(%q) = %v, want nil", in, err)
		}
	}
}

func TestCheckWeek(t *testing.T) {
	tests := []struct {
		name    string
		scale   gtime.Scale
		week    int
		tow     float64
		wantErr bool
	}{
		{"2017 in GPST", gtime.GPST, 1930, 18, false},
		{"GPST origin", gtime.GPST, 0, 0, false},
		{"BDT origin", gtime.BDT, 0, 0, false},
		{"past 2099", gtime.GPST, 7000, 0, true},
		{"before GPST origin in 1979", gtime.GPST, -1, 0, false},
		{"before 1970", gtime.GPST, -600, 0, true},
		{"late BDT week", gtime.BDT, 6000, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckWeek(tt.scale, tt.week, tt.tow)
			if tt.wantErr {
				if !errors.Is(err, ErrOutOfRange) {
					t.Errorf("CheckWeek() = %v, want ErrOutOfRange", err)
				}
				return
			}
			if err != nil {
				t.Errorf("CheckWeek() = %v, want nil", err)
			}
		})
	}
}
