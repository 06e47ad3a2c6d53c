// Package export provides functionality to export grids to text-based formats
package export

import (
	"fmt"

	"textgrid/grid"
)

// Format represents an export format
type Format string

const (
	// FormatText exports exactly what the console shows
	FormatText Format = "text"
	// FormatJSON exports dimensions and rows of cells
	FormatJSON Format = "json"
	// FormatMarkdown exports a Markdown table
	FormatMarkdown Format = "markdown"
)

// Exporter interface for different export formats
type Exporter interface {
	// Export converts a grid to the target format
	Export(g *grid.Grid) (string, error)
	// GetFileExtension returns the recommended file extension for this format
	GetFileExtension() string
	// GetFormatName returns a human-readable name for this format
	GetFormatName() string
}

// NewExporter creates an exporter for the specified format
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatText:
		return NewTextExporter(), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	case FormatMarkdown:
		return NewMarkdownExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text", "txt", "ascii":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// GetAvailableFormats returns a list of all available export formats
func GetAvailableFormats() []Format {
	return []Format{
		FormatText,
		FormatJSON,
		FormatMarkdown,
	}
}

// TextExporter exports the console rendering
type TextExporter struct{}

// NewTextExporter creates a new text exporter
func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

// Export returns g.Render()
func (e *TextExporter) Export(g *grid.Grid) (string, error) {
	if g == nil {
		return "", fmt.Errorf("nil grid")
	}
	return g.Render(), nil
}

// GetFileExtension returns the file extension for text
func (e *TextExporter) GetFileExtension() string {
	return ".txt"
}

// GetFormatName returns the format name
func (e *TextExporter) GetFormatName() string {
	return "Text"
}
