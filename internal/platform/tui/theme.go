package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles of the panels around the board.
type Theme struct {
	// HUD styles
	HUDTitle     lipgloss.Style
	HUDLabel     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDControls  lipgloss.Style
	Panel        lipgloss.Style

	// Queue preview styles
	QueueNext lipgloss.Style
	QueueRest lipgloss.Style

	// Overlay styles
	Win     lipgloss.Style
	Lose    lipgloss.Style
	Message lipgloss.Style
	Error   lipgloss.Style

	// Level picker styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		HUDTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HUDControls:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),

		QueueNext: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		QueueRest: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),

		Win:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Lose:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Message: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Italic(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a theme without colors.
func MonochromeTheme() Theme {
	plain := lipgloss.NewStyle()
	bold := lipgloss.NewStyle().Bold(true)
	theme := DefaultTheme()
	theme.HUDTitle = bold
	theme.HUDLabel = plain
	theme.HUDValue = plain
	theme.HUDSeparator = plain
	theme.HUDControls = plain
	theme.Panel = theme.Panel.BorderForeground(lipgloss.NoColor{})
	theme.QueueNext = bold.Underline(true)
	theme.QueueRest = plain
	theme.Win = bold
	theme.Lose = bold
	theme.Message = plain.Italic(true)
	theme.Error = bold
	theme.MenuTitle = bold
	theme.MenuItemNormal = plain
	theme.MenuItemActive = bold
	theme.MenuDescription = plain
	return theme
}

// ThemeByName returns the named theme, falling back to the default.
func ThemeByName(name string) Theme {
	if name == "mono" || name == "monochrome" {
		return MonochromeTheme()
	}
	return DefaultTheme()
}
