package app

import (
	"github.com/charmbracelet/lipgloss"
)

// Name is the binary name used in usage lines.
const Name = "eventgen"

// Console styles shared by every command.
var (
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	SubtitleStyle  = lipgloss.NewStyle().Bold(true)
	HighlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500"))
	HelpStyle      = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#888888"))
	PathStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	WarningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	DiffAddStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	DiffDelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)
