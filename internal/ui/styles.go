package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Warna dasar
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	warn      = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	errColor  = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF5555"}

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(highlight).
				Bold(true)

	ItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243"))

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Bold(true)

	CommandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	HighlightVarStyle = lipgloss.NewStyle().
				Foreground(warn).
				Bold(true)

	BannerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(subtle).
			Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(errColor).
			Bold(true)

	WarnStyle = lipgloss.NewStyle().
			Foreground(warn).
			Bold(true)

	WindowStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1, 2)

	SidebarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(subtle).
			Padding(0, 1)

	ChatUserStyle = lipgloss.NewStyle().
			Foreground(highlight).
			Bold(true)

	ChatModelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	Border = subtle
)
