package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"textgrid/grid"
)

// MarkdownExporter exports grids as a Markdown table.
// The header row holds column indexes; columns are padded to equal display width.
type MarkdownExporter struct{}

// NewMarkdownExporter creates a new Markdown exporter
func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{}
}

// Export converts a grid to a Markdown table
func (e *MarkdownExporter) Export(g *grid.Grid) (string, error) {
	if g == nil {
		return "", fmt.Errorf("nil grid")
	}

	header := make([]string, g.Cols())
	widths := make([]int, g.Cols())
	for x := range header {
		header[x] = strconv.Itoa(x)
		widths[x] = max(3, runewidth.StringWidth(header[x]))
	}

	rows := make([][]string, g.Rows())
	for y := range rows {
		rows[y] = g.Row(y)
		for x, cell := range rows[y] {
			cell = escapeCell(cell)
			rows[y][x] = cell
			widths[x] = max(widths[x], runewidth.StringWidth(cell))
		}
	}

	var sb strings.Builder
	writeRow(&sb, header, widths)

	sep := make([]string, len(widths))
	for x, w := range widths {
		sep[x] = strings.Repeat("-", w)
	}
	writeRow(&sb, sep, widths)

	for _, row := range rows {
		writeRow(&sb, row, widths)
	}

	return sb.String(), nil
}

// writeRow writes one "| a | b |" line with cells padded to widths
func writeRow(sb *strings.Builder, cells []string, widths []int) {
	sb.WriteString("|")
	for x, cell := range cells {
		sb.WriteString(" ")
		sb.WriteString(runewidth.FillRight(cell, widths[x]))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// GetFileExtension returns the file extension for Markdown
func (e *MarkdownExporter) GetFileExtension() string {
	return ".md"
}

// GetFormatName returns the format name
func (e *MarkdownExporter) GetFormatName() string {
	return "Markdown"
}
