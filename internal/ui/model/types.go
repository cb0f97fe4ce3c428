// Package model defines the core types and interfaces for the UI.
package model

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/klondike/internal/game"
	"github.com/palemoky/klondike/internal/stats"
)

// GamePhase represents the current game phase.
type GamePhase int

const (
	PhaseMenu GamePhase = iota
	PhasePlaying
	PhaseWon
)

// --- Tea Messages ---

// ClearErrorMsg clears the input error line.
type ClearErrorMsg struct{}

// --- Model Interface ---

// Model is the main interface for GameModel, used by the view and input
// packages.
type Model interface {
	// Phase management
	Phase() GamePhase
	SetPhase(GamePhase)

	// Game session. GameState and GameSnapshot require an active deal,
	// so they must only be called in the playing and won phases.
	GameState() *game.State
	GameSnapshot() game.Snapshot
	NewDeal() tea.Cmd
	CheckWin() tea.Cmd
	LeaveGame()

	// Feedback lines
	Status() string
	SetStatus(string)
	InputError() string
	SetInputError(string)

	// Help overlay
	ShowingHelp() bool
	SetShowingHelp(bool)

	// Session stats
	StatsSummary() stats.Summary

	// Rendering options
	ASCII() bool

	// Sound
	PlaySound(name string)

	// UI components
	Input() *textinput.Model

	// Dimensions
	Width() int
	Height() int
}
