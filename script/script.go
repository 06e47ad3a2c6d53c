// Package script reads placement lists.
//
// Two formats are accepted. The line format has one placement per line:
//
//	# comment
//	ROW COL TEXT...
//
// where TEXT is everything after the second field and may be empty.
// Input whose first non-space byte is '[' is decoded as JSON:
//
//	[{"row": 0, "col": 1, "text": "hello"}]
package script

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"textgrid/layout"
)

// ErrSyntax is returned for malformed line-format input.
var ErrSyntax = errors.New("syntax error")

// Format identifies a script encoding.
type Format string

const (
	FormatLines Format = "lines"
	FormatJSON  Format = "json"
)

// Detect guesses the format of data.
func Detect(data []byte) Format {
	if trimmed := bytes.TrimLeftFunc(data, unicode.IsSpace); len(trimmed) > 0 && trimmed[0] == '[' {
		return FormatJSON
	}
	return FormatLines
}

// Parse reads all placements from r, detecting the format.
func Parse(r io.Reader) ([]layout.Placement, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	if Detect(data) == FormatJSON {
		return ParseJSON(data)
	}
	return ParseLines(bytes.NewReader(data))
}

// ParseJSON decodes a JSON array of placements.
func ParseJSON(data []byte) ([]layout.Placement, error) {
	var placements []layout.Placement
	if err := json.Unmarshal(data, &placements); err != nil {
		return nil, fmt.Errorf("decoding JSON script: %w", err)
	}
	return placements, nil
}

// ParseLines reads the line format.
func ParseLines(r io.Reader) ([]layout.Placement, error) {
	var placements []layout.Placement
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		pl, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		placements = append(placements, pl)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return placements, nil
}

// ParseLine parses a single "ROW COL TEXT..." line.
// Spacing inside TEXT is preserved; one separator after COL is dropped.
func ParseLine(line string) (layout.Placement, error) {
	rest := strings.TrimLeft(line, " \t")

	rowField, rest := cutField(rest)
	colField, rest := cutField(rest)
	if rowField == "" || colField == "" {
		return layout.Placement{}, fmt.Errorf("%w: want ROW COL TEXT, got %q", ErrSyntax, line)
	}

	row, err := strconv.Atoi(rowField)
	if err != nil {
		return layout.Placement{}, fmt.Errorf("%w: bad row %q", ErrSyntax, rowField)
	}
	col, err := strconv.Atoi(colField)
	if err != nil {
		return layout.Placement{}, fmt.Errorf("%w: bad column %q", ErrSyntax, colField)
	}

	return layout.Placement{Row: row, Col: col, Text: rest}, nil
}

// cutField splits off the first whitespace-delimited field and drops
// exactly one separator after it.
func cutField(s string) (field, rest string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

// Args builds a placement from command-line arguments ROW COL [TEXT...].
// Extra text arguments are joined with single spaces.
func Args(args []string) (layout.Placement, error) {
	if len(args) < 2 {
		return layout.Placement{}, fmt.Errorf("%w: want ROW COL [TEXT...]", ErrSyntax)
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return layout.Placement{}, fmt.Errorf("%w: bad row %q", ErrSyntax, args[0])
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return layout.Placement{}, fmt.Errorf("%w: bad column %q", ErrSyntax, args[1])
	}
	return layout.Placement{Row: row, Col: col, Text: strings.Join(args[2:], " ")}, nil
}
