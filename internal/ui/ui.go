// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-gnsstime/internal/gtime"
	"github.com/litescript/ls-gnsstime/internal/state"
)

// UT1 - UTC step for the u/U keys, in seconds
const ut1Step = 0.1

// TickMsg triggers a clock refresh.
type TickMsg time.Time

// Model is the root Bubble Tea model.
type Model struct {
	state *state.Manager

	width  int
	height int
	ready  bool

	dashboard DashboardModel
	snapshot  state.Snapshot
}

// New creates a new root UI model.
func New(stateMgr *state.Manager) Model {
	return Model{
		state:     stateMgr,
		dashboard: NewDashboardModel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "space":
			m.state.SetFrozen(!m.state.Frozen())
		case "u":
			m.state.AdjustUT1UTC(ut1Step)
		case "U":
			m.state.AdjustUT1UTC(-ut1Step)
		case "tab":
			m.dashboard = m.dashboard.NextScale()
		}
		m.refresh()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.dashboard = m.dashboard.SetSize(msg.Width, msg.Height-4)

	case TickMsg:
		// the system clock is read as UTC
		m.state.Update(gtime.FromStd(time.Time(msg)))
		m.refresh()
		return m, m.tickCmd()
	}

	return m, nil
}

func (m *Model) refresh() {
	m.snapshot = m.state.Snapshot()
	m.dashboard = m.dashboard.UpdateData(m.snapshot)
}

// View implements tea.Model.
func (m Model) View() string {
	return m.dashboard.View() + "\n" + footerStyle.Render("q quit · space freeze · u/U UT1-UTC ±0.1s · tab scale")
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.state.RefreshInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
