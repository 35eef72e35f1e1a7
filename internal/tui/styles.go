package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	subStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	itemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	blurbStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("37")).Bold(true)

	wallStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	entryStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	exitStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	solutionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
)
