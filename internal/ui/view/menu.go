package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/klondike/internal/stats"
	"github.com/palemoky/klondike/internal/ui/common"
	"github.com/palemoky/klondike/internal/ui/model"
)

// MenuView renders the start menu with the session record underneath.
func MenuView(m model.Model) string {
	width := m.Width()
	var sb strings.Builder

	title := common.TitleStyle("KLONDIKE")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	menu := common.BoxStyle.Padding(0, 2).Render(strings.Join([]string{
		"1. New game    (N)",
		"2. How to play (H)",
		"3. Quit        (Q)",
	}, "\n"))
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))
	sb.WriteString("\n\n")

	if summary := m.StatsSummary(); summary.GamesDealt > 0 {
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderSessionStats(summary)))
		sb.WriteString("\n\n")
	}

	if errMsg := m.InputError(); errMsg != "" {
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, common.ErrorStyle.Render(errMsg)))
		sb.WriteString("\n")
	}

	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, m.Input().View()))

	return lipgloss.Place(width, m.Height(), lipgloss.Center, lipgloss.Center, sb.String())
}

// renderSessionStats renders the record of the games played this session.
func renderSessionStats(s stats.Summary) string {
	var sb strings.Builder

	sb.WriteString("Session record\n")
	sb.WriteString(strings.Repeat("─", 40) + "\n")
	fmt.Fprintf(&sb, "Games: %d  Won: %d  Win rate: %.1f%%\n", s.GamesDealt, s.GamesWon, s.WinRate)
	fmt.Fprintf(&sb, "Moves played: %d\n", s.TotalMoves)
	if s.HasWin {
		fmt.Fprintf(&sb, "Best score: %d (game %.8s)\n", s.BestScore, s.BestGameID)
		fmt.Fprintf(&sb, "Fastest win: %s\n", common.FormatDuration(s.FastestWin))
	}

	return common.BoxStyle.Render(sb.String())
}
