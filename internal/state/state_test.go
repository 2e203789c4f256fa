package state

import (
	"sync"
	"testing"
	"time"

	"github.com/litescript/ls-gnsstime/internal/gtime"
)

func TestNewManager(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UT1UTC = -0.1
	m := NewManager(cfg)

	if m == nil {
		t.Fatal("NewManager returned nil")
	}
	if m.RefreshInterval() != cfg.RefreshInterval {
		t.Errorf("RefreshInterval = %v, want %v", m.RefreshInterval(), cfg.RefreshInterval)
	}
	if m.UT1UTC() != -0.1 {
		t.Errorf("UT1UTC = %v, want -0.1", m.UT1UTC())
	}
	if m.HasData() {
		t.Error("HasData should be false initially")
	}
}

func TestManager_Update(t *testing.T) {
	m := NewManager(DefaultConfig())
	utc := gtime.EpochToTime(gtime.Epoch{2017, 1, 1, 0, 0, 0})

	m.Update(utc)

	if !m.HasData() {
		t.Error("HasData should be true after Update")
	}
	snap := m.Snapshot()
	if snap.Current.UTC != utc {
		t.Errorf("Current.UTC = %v, want %v", snap.Current.UTC, utc)
	}
	if snap.Current.LeapSeconds != 18 {
		t.Errorf("LeapSeconds = %v, want 18", snap.Current.LeapSeconds)
	}
	if snap.LastUpdate.IsZero() {
		t.Error("LastUpdate not set")
	}
	if len(snap.Events) != 0 {
		t.Errorf("first update produced events: %v", snap.Events)
	}
}

func TestManager_UpdateFromScale(t *testing.T) {
	m := NewManager(DefaultConfig())
	m.UpdateFromScale(gtime.BDT, 574, 4)

	want := gtime.EpochToTime(gtime.Epoch{2017, 1, 1, 0, 0, 0})
	if got := m.Snapshot().Current.UTC; got != want {
		t.Errorf("UTC = %v, want %v", got, want)
	}
}

func TestManager_Frozen(t *testing.T) {
	m := NewManager(DefaultConfig())
	first := gtime.EpochToTime(gtime.Epoch{2020, 1, 1, 0, 0, 0})
	m.Update(first)

	m.SetFrozen(true)
	if !m.Frozen() {
		t.Fatal("Frozen() = false after SetFrozen(true)")
	}
	m.Update(first.Add(10))
	m.UpdateFromScale(gtime.GPST, 0, 0)
	if got := m.Snapshot().Current.UTC; got != first {
		t.Errorf("frozen clock moved to %v", got)
	}

	m.SetFrozen(false)
	m.Update(first.Add(10))
	if got := m.Snapshot().Current.UTC; got != first.Add(10) {
		t.Errorf("resumed clock = %v, want %v", got, first.Add(10))
	}
}

func TestManager_EventDetection_LeapSecond(t *testing.T) {
	m := NewManager(DefaultConfig())
	before := gtime.EpochToTime(gtime.Epoch{2016, 12, 31, 23, 59, 59})

	m.Update(before)
	m.Update(before.Add(1))

	var leap, day *Event
	for _, e := range m.Snapshot().Events {
		e := e
		switch e.Type {
		case EventLeapSecond:
			leap = &e
		case EventDayChange:
			day = &e
		}
	}
	if leap == nil {
		t.Fatal("no LEAP_SECOND event")
	}
	if leap.Before != 17 || leap.After != 18 {
		t.Errorf("leap event = %+v, want 17 -> 18", *leap)
	}
	if day == nil {
		t.Error("no DAY_CHANGE event across midnight")
	}
}

func TestManager_EventDetection_WeekRollover(t *testing.T) {
	m := NewManager(DefaultConfig())

	m.UpdateFromScale(gtime.GPST, 2047, 604799)
	m.UpdateFromScale(gtime.GPST, 2048, 1)

	events := m.RecentEvents(10)
	found := false
	for _, e := range events {
		if e.Type == EventWeekRollover && e.Scale == "GPST" {
			found = true
			if e.Before != 2047 || e.After != 2048 {
				t.Errorf("rollover = %+v, want 2047 -> 2048", e)
			}
		}
	}
	if !found {
		t.Errorf("no GPST WEEK_ROLLOVER in %v", events)
	}
}

func TestManager_AdjustUT1UTC(t *testing.T) {
	m := NewManager(DefaultConfig())
	utc := gtime.EpochToTime(gtime.Epoch{2024, 1, 1, 6, 0, 0})
	m.Update(utc)
	base := m.Snapshot().Current.GMSTRad

	m.AdjustUT1UTC(0.5)

	snap := m.Snapshot()
	if snap.UT1UTC != 0.5 {
		t.Errorf("UT1UTC = %v, want 0.5", snap.UT1UTC)
	}
	if snap.Current.UTC != utc {
		t.Errorf("UTC changed to %v", snap.Current.UTC)
	}
	if snap.Current.GMSTRad <= base {
		t.Errorf("GMST did not advance: %v -> %v", base, snap.Current.GMSTRad)
	}
	if ev := m.RecentEvents(1); len(ev) != 1 || ev[0].Type != EventUT1UTCChanged {
		t.Errorf("RecentEvents(1) = %v", ev)
	}
}

func TestManager_EventRingBuffer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxEvents = 3
	m := NewManager(cfg)

	for i := 1; i <= 5; i++ {
		m.AdjustUT1UTC(0.1)
	}

	events := m.Snapshot().Events
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}
	// oldest first; the first two adjustments were overwritten
	for i := 1; i < len(events); i++ {
		if events[i].After <= events[i-1].After {
			t.Errorf("events not chronological: %v", events)
		}
	}

	recent := m.RecentEvents(2)
	if len(recent) != 2 || recent[0].After < recent[1].After {
		t.Errorf("RecentEvents(2) = %v, want newest first", recent)
	}
	if got := m.RecentEvents(10); len(got) != 3 {
		t.Errorf("RecentEvents(10) len = %d, want 3", len(got))
	}
}

func TestManager_Snapshot_IsCopy(t *testing.T) {
	m := NewManager(DefaultConfig())
	m.Update(gtime.EpochToTime(gtime.Epoch{2017, 1, 1, 0, 0, 0}))

	snap := m.Snapshot()
	snap.Current.Weeks[0].Week = 999

	if m.Snapshot().Current.Weeks[0].Week == 999 {
		t.Error("Snapshot modification affected manager state")
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	m := NewManager(DefaultConfig())
	start := gtime.EpochToTime(gtime.Epoch{2024, 1, 1, 0, 0, 0})

	var wg sync.WaitGroup
	iterations := 100

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			m.Update(start.Add(float64(i) * 3600))
			if i%10 == 0 {
				m.AdjustUT1UTC(0.01)
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				_ = m.Snapshot()
				_ = m.HasData()
				_ = m.RefreshInterval()
				_ = m.RecentEvents(5)
			}
		}()
	}

	wg.Wait()
}

func TestManager_SetRefreshInterval(t *testing.T) {
	m := NewManager(DefaultConfig())

	newInterval := 250 * time.Millisecond
	m.SetRefreshInterval(newInterval)

	if m.RefreshInterval() != newInterval {
		t.Errorf("RefreshInterval = %v, want %v", m.RefreshInterval(), newInterval)
	}
}
