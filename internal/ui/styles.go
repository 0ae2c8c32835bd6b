package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used across the TUI and charts.

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Width(14).
			Foreground(lipgloss.Color("252"))

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))

	chartTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	gridStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	recursiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4136"))
	iterativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0074D9"))

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)
