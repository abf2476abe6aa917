// Package ui provides the bubbletea front end for playing Tic-Tac-Toe
// against the engine in a terminal.
package ui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the game view.
type Styles struct {
	Title  lipgloss.Style
	Board  lipgloss.Style
	Cell   lipgloss.Style
	Cursor lipgloss.Style
	MarkX  lipgloss.Style
	MarkO  lipgloss.Style
	Status lipgloss.Style
	Help   lipgloss.Style
}

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62")).MarginBottom(1),
		Board:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Cell:   lipgloss.NewStyle().Padding(0, 1),
		Cursor: lipgloss.NewStyle().Padding(0, 1).Reverse(true),
		MarkX:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		MarkO:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		Status: lipgloss.NewStyle().MarginTop(1),
		Help:   lipgloss.NewStyle().Faint(true).MarginTop(1),
	}
}
