// Package state provides thread-safe clock state shared by the TUI and the
// headless loop.
package state

import (
	"sync"
	"time"

	"github.com/litescript/ls-gnsstime/internal/gtime"
	"github.com/litescript/ls-gnsstime/internal/readout"
)

// EventType represents the type of clock event.
type EventType string

const (
	EventDayChange     EventType = "DAY_CHANGE"
	EventWeekRollover  EventType = "WEEK_ROLLOVER"
	EventLeapSecond    EventType = "LEAP_SECOND"
	EventUT1UTCChanged EventType = "UT1_UTC_CHANGED"
)

// Event represents a discontinuity observed between two updates.
type Event struct {
	Type   EventType `json:"type"`
	At     string    `json:"at"` // UTC of the update that saw the event
	Scale  string    `json:"scale,omitempty"`
	Before float64   `json:"before"`
	After  float64   `json:"after"`
}

// Snapshot is a consistent copy of the manager state.
type Snapshot struct {
	Current    readout.Readout
	HasData    bool
	LastUpdate time.Time
	Frozen     bool
	UT1UTC     float64
	Events     []Event
}

// Manager handles all shared clock state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	current    readout.Readout
	hasData    bool
	lastUpdate time.Time
	frozen     bool
	ut1UTC     float64

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	refreshInterval time.Duration
}

// Config holds configuration for the state manager.
type Config struct {
	MaxEvents       int
	RefreshInterval time.Duration
	UT1UTC          float64 // UT1 - UTC in seconds
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxEvents:       50,
		RefreshInterval: time.Second,
	}
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	return &Manager{
		maxEvents:       maxEvents,
		events:          make([]Event, 0, maxEvents),
		refreshInterval: cfg.RefreshInterval,
		ut1UTC:          cfg.UT1UTC,
	}
}

// Update recomputes the readout for the UTC instant utc. It is a no-op
// while the clock is frozen.
func (m *Manager) Update(utc gtime.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.frozen {
		return
	}
	m.setLocked(readout.Compute(utc, m.ut1UTC))
}

// UpdateFromScale sets the readout from a week and tow in a GNSS scale.
func (m *Manager) UpdateFromScale(scale gtime.Scale, week int, tow float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.frozen {
		return
	}
	m.setLocked(readout.FromScale(scale, week, tow, m.ut1UTC))
}

func (m *Manager) setLocked(next readout.Readout) {
	if m.hasData {
		m.detectEvents(m.current, next)
	}
	m.current = next
	m.hasData = true
	m.lastUpdate = time.Now()
}

// detectEvents compares consecutive readouts and records discontinuities.
func (m *Manager) detectEvents(prev, next readout.Readout) {
	at := next.UTCString

	if prev.LeapSeconds != next.LeapSeconds {
		m.addEvent(Event{Type: EventLeapSecond, At: at, Before: prev.LeapSeconds, After: next.LeapSeconds})
	}
	if prev.Calendar[2] != next.Calendar[2] || prev.Calendar[1] != next.Calendar[1] || prev.Calendar[0] != next.Calendar[0] {
		m.addEvent(Event{Type: EventDayChange, At: at, Before: prev.DayOfYear, After: next.DayOfYear})
	}
	for _, nw := range next.Weeks {
		pw, ok := prev.Week(nw.Scale)
		if ok && pw.Week != nw.Week {
			m.addEvent(Event{
				Type:   EventWeekRollover,
				At:     at,
				Scale:  nw.Name,
				Before: float64(pw.Week),
				After:  float64(nw.Week),
			})
		}
	}
}

// addEvent adds an event to the ring buffer.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
	}
	m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cur := m.current
	cur.Weeks = append([]readout.WeekTow(nil), m.current.Weeks...)

	return Snapshot{
		Current:    cur,
		HasData:    m.hasData,
		LastUpdate: m.lastUpdate,
		Frozen:     m.frozen,
		UT1UTC:     m.ut1UTC,
		Events:     m.getEventsOrdered(),
	}
}

// getEventsOrdered returns events in chronological order (oldest first).
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	result := make([]Event, len(m.events))
	if len(m.events) < m.maxEvents {
		copy(result, m.events)
		return result
	}

	// Buffer is full, read from eventWriteAt (oldest) around to eventWriteAt-1 (newest)
	n := copy(result, m.events[m.eventWriteAt:])
	copy(result[n:], m.events[:m.eventWriteAt])
	return result
}

// RecentEvents returns the n most recent events, newest first.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	events := m.getEventsOrdered()
	m.mu.RUnlock()

	if n > len(events) {
		n = len(events)
	}
	result := make([]Event, n)
	for i := 0; i < n; i++ {
		result[i] = events[len(events)-1-i]
	}
	return result
}

// SetFrozen freezes or resumes the clock.
func (m *Manager) SetFrozen(frozen bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frozen = frozen
}

// Frozen reports whether the clock is frozen.
func (m *Manager) Frozen() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.frozen
}

// AdjustUT1UTC shifts UT1 - UTC by delta seconds and recomputes the current
// readout for the same UTC instant.
func (m *Manager) AdjustUT1UTC(delta float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	before := m.ut1UTC
	m.ut1UTC += delta
	m.addEvent(Event{Type: EventUT1UTCChanged, Before: before, After: m.ut1UTC, At: m.current.UTCString})
	if m.hasData {
		m.current = readout.Compute(m.current.UTC, m.ut1UTC)
	}
}

// UT1UTC returns the configured UT1 - UTC in seconds.
func (m *Manager) UT1UTC() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ut1UTC
}

// RefreshInterval returns the configured refresh interval.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshInterval
}

// SetRefreshInterval updates the refresh interval.
func (m *Manager) SetRefreshInterval(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshInterval = d
}

// HasData returns true if at least one readout has been computed.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hasData
}
