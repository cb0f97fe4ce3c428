package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/klondike/internal/ui/common"
	"github.com/palemoky/klondike/internal/ui/model"
)

// RenderHelp renders the command reference and the rules of the game.
func RenderHelp() string {
	var sb string

	sb += "Commands\n"
	sb += "  M <src> <dst>   Move cards. M O SB plays the stock card,\n"
	sb += "                  M G12 SA moves card 12 of column G.\n"
	sb += "  C               Cycle the stock to the next card\n"
	sb += "  U               Undo the most recent move\n"
	sb += "  H               Show or hide this help\n"
	sb += "  N               Deal a new game\n"
	sb += "  Q               Quit to the menu\n\n"

	sb += "Locations\n"
	sb += "  O               The face-up stock card\n"
	sb += "  A to G          The columns. A source names the row too: B4 is\n"
	sb += "                  the card in row 4 of column B, and everything\n"
	sb += "                  stacked on it moves along.\n"
	sb += "  SA to SD        The four stack piles\n\n"

	sb += "Rules\n"
	sb += "  Columns build down in alternating colors. Only a King may move\n"
	sb += "  to an empty column. Stack piles build up in a single suit from\n"
	sb += "  the Ace. Uncovering the last face-down card of a column turns\n"
	sb += "  it face up.\n\n"

	sb += "Scoring\n"
	sb += "  +5  stock to column          -15  taking a card off a stack pile\n"
	sb += "  +10 stock to stack pile      -100 every stock cycle\n"
	sb += "  +10 column to stack pile     -2   every 10 seconds of play\n"
	sb += "  +5  turning a card face up\n"
	sb += "  Winning after 30 seconds adds a bonus of 700000 / seconds.\n"

	return common.BoxStyle.Render(sb)
}

// HelpView renders the help overlay centered on the screen.
func HelpView(m model.Model) string {
	var sb strings.Builder
	sb.WriteString(RenderHelp())
	sb.WriteString("\n")
	sb.WriteString(common.HintStyle.Render("H or ESC closes the help"))

	return lipgloss.Place(m.Width(), m.Height(),
		lipgloss.Center, lipgloss.Center,
		sb.String(),
		lipgloss.WithWhitespaceChars(" "),
	)
}
