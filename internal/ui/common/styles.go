// Package common provides shared styles and utilities for the UI.
package common

import "github.com/charmbracelet/lipgloss"

// Lipgloss styles shared by every view.
var (
	DocStyle    = lipgloss.NewStyle().Margin(1, 2)
	RedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	BlackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	GrayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	TitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	PromptStyle = lipgloss.NewStyle().MarginTop(1)
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	StatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	HintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
