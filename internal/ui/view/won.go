package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/klondike/internal/game"
	"github.com/palemoky/klondike/internal/ui/common"
	"github.com/palemoky/klondike/internal/ui/model"
)

// WonView renders the victory screen with the final score breakdown.
func WonView(m model.Model) string {
	width := m.Width()
	var sb strings.Builder

	title := common.TitleStyle("You won!")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderScoreBreakdown(m.GameSnapshot())))
	sb.WriteString("\n\n")

	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderSessionStats(m.StatsSummary())))
	sb.WriteString("\n\n")

	hint := common.HintStyle.Render("N new game  |  M back to the menu  |  Q quit")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hint))
	sb.WriteString("\n")

	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, m.Input().View()))

	return lipgloss.Place(width, m.Height(), lipgloss.Center, lipgloss.Center, sb.String())
}

// renderScoreBreakdown renders the final score of one finished game.
func renderScoreBreakdown(snap game.Snapshot) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Game %s\n", snap.ID)
	sb.WriteString(strings.Repeat("─", 44) + "\n")
	fmt.Fprintf(&sb, "Cleared in %d move(s) over %s\n",
		snap.MoveCount, common.FormatDuration(snap.Elapsed))
	sb.WriteString(strings.Repeat("─", 44) + "\n")
	fmt.Fprintf(&sb, "Base score:  %d\n", snap.BaseScore)
	fmt.Fprintf(&sb, "Time score:  %d\n", snap.TimeScore)
	fmt.Fprintf(&sb, "Final score: %d\n", snap.Score)

	return common.BoxStyle.Render(sb.String())
}
