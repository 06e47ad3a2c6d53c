package export_test

import (
	"encoding/json"
	"strings"
	"testing"

	"textgrid/export"
	"textgrid/grid"
)

func sampleGrid() *grid.Grid {
	g := grid.New(2, 2)
	g.Set(0, 0, "a")
	g.Set(0, 1, "b")
	g.Set(1, 0, "c")
	g.Set(1, 1, "d")
	return g
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected export.Format
		wantErr  bool
	}{
		{"text", export.FormatText, false},
		{"txt", export.FormatText, false},
		{"ascii", export.FormatText, false},
		{"json", export.FormatJSON, false},
		{"markdown", export.FormatMarkdown, false},
		{"md", export.FormatMarkdown, false},
		{"invalid", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := export.ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewExporter(t *testing.T) {
	extensions := map[export.Format]string{
		export.FormatText:     ".txt",
		export.FormatJSON:     ".json",
		export.FormatMarkdown: ".md",
	}

	for _, format := range export.GetAvailableFormats() {
		t.Run(string(format), func(t *testing.T) {
			exporter, err := export.NewExporter(format)
			if err != nil {
				t.Fatalf("NewExporter(%v) error = %v", format, err)
			}
			if exporter.GetFormatName() == "" {
				t.Error("GetFormatName() returned empty string")
			}
			if got := exporter.GetFileExtension(); got != extensions[format] {
				t.Errorf("GetFileExtension() = %q, want %q", got, extensions[format])
			}
			if _, err := exporter.Export(nil); err == nil {
				t.Error("Export(nil) should fail")
			}
		})
	}

	if _, err := export.NewExporter("svg"); err == nil {
		t.Error("NewExporter(svg) should fail")
	}
}

func TestTextExporter(t *testing.T) {
	got, err := export.NewTextExporter().Export(sampleGrid())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if got != "a b\nc d\n" {
		t.Errorf("Export() = %q, want %q", got, "a b\nc d\n")
	}
}

func TestJSONExporter(t *testing.T) {
	g := sampleGrid()
	g.Resize(2, 3)

	out, err := export.NewJSONExporter().Export(g)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var doc struct {
		Rows  int        `json:"rows"`
		Cols  int        `json:"cols"`
		Cells [][]string `json:"cells"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if doc.Rows != 2 || doc.Cols != 3 {
		t.Errorf("dimensions = %dx%d, want 2x3", doc.Rows, doc.Cols)
	}
	want := [][]string{{"a", "b", ""}, {"c", "d", ""}}
	for y := range want {
		if strings.Join(doc.Cells[y], ",") != strings.Join(want[y], ",") {
			t.Errorf("row %d = %q, want %q", y, doc.Cells[y], want[y])
		}
	}
}

func TestMarkdownExporter(t *testing.T) {
	tests := []struct {
		name     string
		grid     func() *grid.Grid
		expected string
	}{
		{
			name: "simple",
			grid: sampleGrid,
			expected: "| 0   | 1   |\n" +
				"| --- | --- |\n" +
				"| a   | b   |\n" +
				"| c   | d   |\n",
		},
		{
			name: "wide and escaped",
			grid: func() *grid.Grid {
				g := grid.New(2, 2)
				g.Set(0, 0, "日本語")
				g.Set(1, 1, "a|b")
				return g
			},
			expected: "| 0      | 1    |\n" +
				"| ------ | ---- |\n" +
				"| 日本語 |      |\n" +
				"|        | a\\|b |\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := export.NewMarkdownExporter().Export(tt.grid())
			if err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("Export() =\n%s\nwant\n%s", got, tt.expected)
			}
		})
	}
}
