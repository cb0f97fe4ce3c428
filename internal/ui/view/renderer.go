// Package view renders every screen of the terminal UI.
package view

import (
	"github.com/palemoky/klondike/internal/ui/model"
)

// CreateViewRenderer creates a view renderer function that can be injected into GameModel.
func CreateViewRenderer() func(model.Model, model.GamePhase) string {
	return func(m model.Model, phase model.GamePhase) string {
		// Help overlays whichever screen requested it.
		if m.ShowingHelp() {
			return HelpView(m)
		}

		switch phase {
		case model.PhaseMenu:
			return MenuView(m)
		case model.PhasePlaying:
			return GameView(m)
		case model.PhaseWon:
			return WonView(m)
		default:
			return "Unknown phase"
		}
	}
}
