package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/klondike/internal/ui/common"
	"github.com/palemoky/klondike/internal/ui/model"
)

// GameView renders the playing screen: the board, the outcome of the last
// move, any input error and the command prompt.
func GameView(m model.Model) string {
	width := m.Width()
	var sb strings.Builder

	board := RenderBoard(m.GameSnapshot(), m.ASCII())
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, board))
	sb.WriteString("\n")

	if status := m.Status(); status != "" {
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, common.StatusStyle.Render(status)))
		sb.WriteString("\n")
	}
	if errMsg := m.InputError(); errMsg != "" {
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, common.ErrorStyle.Render(errMsg)))
		sb.WriteString("\n")
	}

	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderPrompt(m)))

	return lipgloss.Place(width, m.Height(), lipgloss.Center, lipgloss.Center, sb.String())
}

func renderPrompt(m model.Model) string {
	var sb strings.Builder

	sb.WriteString(m.Input().View())
	sb.WriteString("\n")
	sb.WriteString(common.HintStyle.Render("M move  C cycle  U undo  H help  N new  Q menu"))

	return common.PromptStyle.Render(sb.String())
}
