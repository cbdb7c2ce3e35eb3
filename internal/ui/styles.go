package ui

import "github.com/charmbracelet/lipgloss"

// Kiosk palette. Hex values match the station signage scheme.
var (
	colorBackground = lipgloss.Color("#0A111A")
	colorPanel      = lipgloss.Color("#0F1825")
	colorForeground = lipgloss.Color("#E7ECF3")
	colorMuted      = lipgloss.Color("#7B8A9A")
	colorSubtle     = lipgloss.Color("#9FB3C8")
	colorTimestamp  = lipgloss.Color("#C9D7E3")
	colorArrival    = lipgloss.Color("#F2C94C")
	colorLive       = lipgloss.Color("#56CC9D")
	colorStale      = lipgloss.Color("#E0A800")
	colorPillText   = lipgloss.Color("#0D141F")
)

// HeadsignStyle for destination names; foreground is overridden with
// the line color per card.
var HeadsignStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorForeground)

// ArrivalStyle for the arrival phrase, always the accent yellow.
var ArrivalStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorArrival)

// PlaceholderStyle for the empty-board message.
var PlaceholderStyle = lipgloss.NewStyle().
	Foreground(colorMuted)

// ClockStyle for the sidebar clock.
var ClockStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorForeground)

// DayStyle for the weekday line under the clock.
var DayStyle = lipgloss.NewStyle().
	Foreground(colorSubtle)

// LastUpdatedStyle for the feed timestamp line.
var LastUpdatedStyle = lipgloss.NewStyle().
	Foreground(colorTimestamp)

// LivePill and StalePill render the binary status.
var LivePill = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorPillText).
	Background(colorLive).
	Padding(0, 2)

var StalePill = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorPillText).
	Background(colorStale).
	Padding(0, 2)

// SidebarStyle frames the right panel.
var SidebarStyle = lipgloss.NewStyle().
	Background(colorPanel).
	Foreground(colorForeground).
	Padding(1, 2)

// AppStyle fills the kiosk background.
var AppStyle = lipgloss.NewStyle().
	Background(colorBackground).
	Padding(1, 2)
