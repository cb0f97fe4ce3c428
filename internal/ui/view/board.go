package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/klondike/internal/game"
	"github.com/palemoky/klondike/internal/game/card"
	"github.com/palemoky/klondike/internal/ui/common"
)

// Cell widths of the board grid. The gutter carries the row numbers, the
// stock cell spans the gap between the gutter and the stack piles, and every
// pile cell holds one card face. All rows add up to the same total width.
const (
	gutterWidth    = 3
	columnWidth    = 8
	stockCellWidth = 24
)

const (
	emptyCell    = "_ _"
	faceDownCell = "? ?"
)

// RenderBoard lays out one snapshot as the classic text board: a score
// header, the stock and stack pile row, and the seven columns with numbered
// rows. With ascii set the suits render as letters instead of glyphs.
func RenderBoard(snap game.Snapshot, ascii bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%d move(s) played in %s for %d points\n\n",
		snap.MoveCount, common.FormatDuration(snap.Elapsed), snap.Score)

	writePileNames(&sb, snap)
	writePileTops(&sb, snap, ascii)
	sb.WriteString("\n")
	writeColumnNames(&sb)
	writeColumnRows(&sb, snap, ascii)

	return sb.String()
}

// writePileNames writes the header above the stock and the stack piles. The
// stock counter is the face-up stock card plus everything waiting in the
// waste behind it.
func writePileNames(sb *strings.Builder, snap game.Snapshot) {
	sb.WriteString(common.Pad("", gutterWidth))
	sb.WriteString(common.Pad(fmt.Sprintf("O (%d)", snap.WasteSize+1), stockCellWidth))
	for _, stack := range snap.Stacks {
		sb.WriteString(common.Pad(stack.Name, columnWidth))
	}
	sb.WriteString("\n")
}

func writePileTops(sb *strings.Builder, snap game.Snapshot, ascii bool) {
	sb.WriteString(common.Pad("", gutterWidth))
	sb.WriteString(cardCell(snap.StockTop, stockCellWidth, ascii))
	for _, stack := range snap.Stacks {
		sb.WriteString(cardCell(stack.Top, columnWidth, ascii))
	}
	sb.WriteString("\n")
}

func writeColumnNames(sb *strings.Builder) {
	sb.WriteString(common.Pad("", gutterWidth))
	for _, name := range game.ColumnNames {
		sb.WriteString(common.Pad(name, columnWidth))
	}
	sb.WriteString("\n")
}

// writeColumnRows writes the numbered card rows. The loop runs one row past
// the tallest column so the board always ends in an empty row, which keeps
// the prompt from crowding the last card.
func writeColumnRows(sb *strings.Builder, snap game.Snapshot, ascii bool) {
	tallest := 0
	for _, column := range snap.Columns {
		tallest = max(tallest, column.Size())
	}

	for row := 0; row <= tallest; row++ {
		sb.WriteString(common.Pad(strconv.Itoa(row), gutterWidth))
		for _, column := range snap.Columns {
			sb.WriteString(columnCell(column, row, ascii))
		}
		sb.WriteString("\n")
	}
}

// columnCell renders one grid cell of a column: a face-down marker, a card
// face or blank space past the end of the column.
func columnCell(column game.ColumnView, row int, ascii bool) string {
	switch {
	case row < column.FaceDown:
		return styledCell(faceDownCell, columnWidth, common.GrayStyle)
	case row < column.Size():
		c := column.FaceUp[row-column.FaceDown]
		return styledCell(cardText(c, ascii), columnWidth, faceStyle(c))
	default:
		return common.Pad("", columnWidth)
	}
}

// cardCell renders a card slot that shows a placeholder while empty.
func cardCell(c *card.Card, width int, ascii bool) string {
	if c == nil {
		return styledCell(emptyCell, width, common.GrayStyle)
	}
	return styledCell(cardText(*c, ascii), width, faceStyle(*c))
}

func cardText(c card.Card, ascii bool) string {
	if ascii {
		return c.Text()
	}
	return c.String()
}

func faceStyle(c card.Card) lipgloss.Style {
	if c.Color() == card.Red {
		return common.RedStyle
	}
	return common.BlackStyle
}

// styledCell pads the text to the cell width first and colors only the text,
// so the escape sequences never throw off the grid alignment.
func styledCell(s string, width int, style lipgloss.Style) string {
	padded := common.Pad(s, width)
	trimmed := strings.TrimRight(padded, " ")
	if trimmed == "" {
		return padded
	}
	return style.Render(trimmed) + padded[len(trimmed):]
}
