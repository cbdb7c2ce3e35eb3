// Package ui renders the kiosk board: arrival cards on the left, a
// clock/status sidebar on the right. The model owns all display state
// and receives poller results exclusively as messages.
package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jusunglee/pathboard/internal/config"
	"github.com/jusunglee/pathboard/internal/models"
	"github.com/jusunglee/pathboard/internal/status"
)

const sidebarWidth = 28

// Model is the root Bubble Tea model for the kiosk
type Model struct {
	cfg     config.Config
	tracker *status.Tracker
	spinner spinner.Model

	now    time.Time
	width  int
	height int
	ready  bool
}

// New creates the kiosk model
func New(cfg config.Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorLive)

	return Model{
		cfg:     cfg,
		tracker: status.NewTracker(cfg),
		spinner: s,
		now:     time.Now(),
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Init starts the clock tick and the first-fetch spinner
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickCmd())
}

// Update handles messages and returns the updated model and any commands
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "ctrl+q":
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case SnapshotMsg:
		m.tracker.RecordSuccess(msg.Snapshot, time.Now().UTC())
		return m, nil

	case FetchFailedMsg:
		m.tracker.RecordFailure()
		return m, nil

	case TickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()

	case spinner.TickMsg:
		// Only animate while waiting for the first snapshot
		if m.tracker.Snapshot() != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the kiosk board
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	cardsWidth := m.width - sidebarWidth - 6
	if cardsWidth < 20 {
		cardsWidth = 20
	}

	left := m.renderCards(cardsWidth)
	right := m.renderSidebar()

	board := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	return AppStyle.Width(m.width).Height(m.height - 2).Render(board)
}

func (m Model) renderCards(width int) string {
	snap := m.tracker.Snapshot()
	if snap == nil {
		return PlaceholderStyle.Render(m.spinner.View() + " Waiting for arrivals feed")
	}

	messages := snap.Top(m.cfg.MaxCards)
	if len(messages) == 0 {
		return PlaceholderStyle.Render("No upcoming trains posted")
	}

	cards := make([]string, 0, len(messages))
	for _, msg := range messages {
		cards = append(cards, renderCard(msg, width))
	}
	return strings.Join(cards, "\n\n")
}

// renderCard draws one arrival: a line-color strip, the headsign in
// the line color, and the arrival phrase right-aligned in accent
// yellow.
func renderCard(msg models.TrainMessage, width int) string {
	colors := msg.LineColors
	if len(colors) == 0 {
		colors = []string{models.DefaultLineColor}
	}

	strip := lipgloss.NewStyle().Foreground(lipgloss.Color(colors[0])).Render("▐")
	if len(colors) > 1 {
		strip += lipgloss.NewStyle().Foreground(lipgloss.Color(colors[1])).Render("▐")
	}

	head := HeadsignStyle.Foreground(lipgloss.Color(colors[0])).
		Render(strings.ToUpper(msg.DisplayHeadsign()))
	arrival := ArrivalStyle.Render(msg.DisplayArrival())

	gap := width - lipgloss.Width(strip) - lipgloss.Width(head) - lipgloss.Width(arrival) - 1
	if gap < 1 {
		gap = 1
	}
	return strip + " " + head + strings.Repeat(" ", gap) + arrival
}

func (m Model) renderSidebar() string {
	var b strings.Builder

	b.WriteString(ClockStyle.Render(m.now.Format("15:04")))
	b.WriteString("\n")
	b.WriteString(DayStyle.Render(m.now.Format("Monday")))
	b.WriteString("\n\n")
	b.WriteString(LastUpdatedStyle.Render("Last updated: " + m.lastUpdatedText()))
	b.WriteString("\n\n")

	if m.tracker.Stale(m.now) {
		b.WriteString(StalePill.Render("STALE"))
	} else {
		b.WriteString(LivePill.Render("LIVE"))
	}

	return SidebarStyle.Width(sidebarWidth).Render(b.String())
}

func (m Model) lastUpdatedText() string {
	snap := m.tracker.Snapshot()
	if snap == nil || snap.LastUpdated == nil {
		return "--:--:--"
	}
	return snap.LastUpdated.Local().Format("15:04:05")
}
