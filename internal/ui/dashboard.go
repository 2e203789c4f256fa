package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-gnsstime/internal/gtime"
	"github.com/litescript/ls-gnsstime/internal/state"
	"github.com/litescript/ls-gnsstime/internal/version"
)

// Styles for the dashboard
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	frozenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	footerStyle = dimStyle
)

// DashboardModel renders the multi-scale clock.
type DashboardModel struct {
	width    int
	height   int
	selected int // index into gtime.Scales()
	snapshot state.Snapshot
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel() DashboardModel {
	return DashboardModel{}
}

// SetSize updates the viewport size.
func (m DashboardModel) SetSize(width, height int) DashboardModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new snapshot.
func (m DashboardModel) UpdateData(snapshot state.Snapshot) DashboardModel {
	m.snapshot = snapshot
	return m
}

// NextScale moves the highlight to the next GNSS scale.
func (m DashboardModel) NextScale() DashboardModel {
	m.selected = (m.selected + 1) % len(gtime.Scales())
	return m
}

// SelectedScale returns the highlighted scale.
func (m DashboardModel) SelectedScale() gtime.Scale {
	return gtime.Scales()[m.selected]
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ls-gnsstime v"+version.Version) + "\n\n")

	if !m.snapshot.HasData {
		b.WriteString(dimStyle.Render("waiting for clock...") + "\n")
		return b.String()
	}
	r := m.snapshot.Current

	status := ""
	if m.snapshot.Frozen {
		status = "  " + frozenStyle.Render("FROZEN")
	}
	b.WriteString(fmt.Sprintf("UTC   %s   DOY %3.0f%s\n", r.UTCString, r.DayOfYear, status))
	b.WriteString(fmt.Sprintf("GPST  %s   GPST-UTC %+.0f s\n\n", r.GPSTString, r.LeapSeconds))

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-5s %6s %14s  %-22s", "Scale", "Week", "TOW (s)", "Week progress")) + "\n")
	for i, wt := range r.Weeks {
		line := fmt.Sprintf("%-5s %6d %14.3f  %s", wt.Name, wt.Week, wt.Tow, m.renderProgressBar(wt.Tow/604800, 20))
		if i == m.selected {
			b.WriteString(selectedRowStyle.Render(line) + "\n")
		} else {
			b.WriteString(rowStyle.Render(line) + "\n")
		}
	}

	b.WriteString(fmt.Sprintf("\nGMST  %s  %10.6f°  %s\n", r.GMSTHours(), r.GMSTDeg, m.renderProgressBar(r.GMSTDeg/360, 20)))
	b.WriteString(dimStyle.Render(fmt.Sprintf("UT1-UTC %+.3f s", m.snapshot.UT1UTC)) + "\n")

	if len(m.snapshot.Events) > 0 {
		b.WriteString("\n" + headerStyle.Render("Events") + "\n")
		events := m.snapshot.Events
		if len(events) > 5 {
			events = events[len(events)-5:]
		}
		for _, e := range events {
			b.WriteString(dimStyle.Render(formatEvent(e)) + "\n")
		}
	}

	return b.String()
}

func formatEvent(e state.Event) string {
	switch e.Type {
	case state.EventWeekRollover:
		return fmt.Sprintf("%s  %s week %.0f -> %.0f", e.At, e.Scale, e.Before, e.After)
	case state.EventUT1UTCChanged:
		return fmt.Sprintf("%s  UT1-UTC %+.3f -> %+.3f s", e.At, e.Before, e.After)
	default:
		return fmt.Sprintf("%s  %s %g -> %g", e.At, e.Type, e.Before, e.After)
	}
}

func (m DashboardModel) renderProgressBar(frac float64, width int) string {
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
