// Package ui provides the main entry point for the UI.
package ui

import (
	"github.com/palemoky/klondike/internal/config"
	"github.com/palemoky/klondike/internal/ui/input"
	"github.com/palemoky/klondike/internal/ui/model"
	"github.com/palemoky/klondike/internal/ui/view"
)

// NewGameModel creates the game model with its view renderer and key handler
// wired in. The indirection keeps the model, view and input packages from
// importing each other.
func NewGameModel(cfg *config.Config) *model.GameModel {
	m := model.NewGameModel(cfg)
	m.SetViewRenderer(view.CreateViewRenderer())
	m.SetKeyHandler(input.HandleKeyPress)
	return m
}
