// Package render provides the console collaborators that display a grid.
package render

import (
	"fmt"
	"io"
)

// Console receives the screen-clear signal and the rendered grid text.
type Console interface {
	// Clear clears the visible output.
	Clear() error
	// Print displays already-rendered text.
	Print(text string) error
}

// ClearSequence moves the cursor home and erases the display.
const ClearSequence = "\033[H\033[2J"

// ANSIConsole writes escape-sequence clears and plain text to a writer.
type ANSIConsole struct {
	w io.Writer
}

// NewANSIConsole creates a console writing to w.
func NewANSIConsole(w io.Writer) *ANSIConsole {
	return &ANSIConsole{w: w}
}

// Clear writes ClearSequence.
func (c *ANSIConsole) Clear() error {
	_, err := io.WriteString(c.w, ClearSequence)
	return err
}

// Print writes text unchanged.
func (c *ANSIConsole) Print(text string) error {
	_, err := io.WriteString(c.w, text)
	return err
}

// PlainConsole writes text only. Clear is accepted and ignored,
// which keeps pipes and dumb terminals free of escape codes.
type PlainConsole struct {
	w io.Writer
}

// NewPlainConsole creates a console writing to w.
func NewPlainConsole(w io.Writer) *PlainConsole {
	return &PlainConsole{w: w}
}

// Clear does nothing.
func (c *PlainConsole) Clear() error {
	return nil
}

// Print writes text unchanged.
func (c *PlainConsole) Print(text string) error {
	_, err := io.WriteString(c.w, text)
	return err
}

// DiscardConsole drops everything.
type DiscardConsole struct{}

// Clear does nothing.
func (DiscardConsole) Clear() error { return nil }

// Print does nothing.
func (DiscardConsole) Print(string) error { return nil }

// NewConsole creates the writer-backed console for mode.
// ModeScreen owns the terminal and is created with NewScreenConsole instead.
func NewConsole(mode Mode, w io.Writer) (Console, error) {
	switch mode {
	case ModePlain:
		return NewPlainConsole(w), nil
	case ModeANSI:
		return NewANSIConsole(w), nil
	default:
		return nil, fmt.Errorf("mode %s has no writer console", mode)
	}
}
