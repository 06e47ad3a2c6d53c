package export

import (
	"encoding/json"
	"fmt"

	"textgrid/grid"
)

// gridDocument is the JSON shape of an exported grid
type gridDocument struct {
	Rows  int        `json:"rows"`
	Cols  int        `json:"cols"`
	Cells [][]string `json:"cells"`
}

// JSONExporter exports grids to JSON format
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export converts a grid to JSON
func (e *JSONExporter) Export(g *grid.Grid) (string, error) {
	if g == nil {
		return "", fmt.Errorf("nil grid")
	}
	doc := gridDocument{
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Cells: make([][]string, g.Rows()),
	}
	for y := range doc.Cells {
		doc.Cells[y] = g.Row(y)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

// GetFileExtension returns the file extension for JSON
func (e *JSONExporter) GetFileExtension() string {
	return ".json"
}

// GetFormatName returns the format name
func (e *JSONExporter) GetFormatName() string {
	return "JSON"
}
