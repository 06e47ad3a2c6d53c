package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// ScreenConsole draws onto a full-screen tcell surface.
// Rows and columns past the screen edge are clipped.
type ScreenConsole struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewScreenConsole initializes the terminal screen.
// Call Close to restore the terminal.
func NewScreenConsole() (*ScreenConsole, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return NewScreenConsoleWith(s), nil
}

// NewScreenConsoleWith wraps an already initialized screen.
func NewScreenConsoleWith(s tcell.Screen) *ScreenConsole {
	s.SetStyle(tcell.StyleDefault)
	return &ScreenConsole{screen: s, style: tcell.StyleDefault}
}

// Clear blanks the screen.
func (c *ScreenConsole) Clear() error {
	c.screen.Clear()
	c.screen.Show()
	return nil
}

// Print draws text starting at the top-left corner, one line per row.
// Wide runes advance the column by their display width.
func (c *ScreenConsole) Print(text string) error {
	width, height := c.screen.Size()
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	for y, line := range lines {
		if y >= height {
			break
		}
		x := 0
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if x+w > width {
				break
			}
			c.screen.SetContent(x, y, r, nil, c.style)
			x += w
		}
	}

	c.screen.Show()
	return nil
}

// WaitKey blocks until a key is pressed or the screen is closed.
// Resize events redraw the current frame and keep waiting.
func (c *ScreenConsole) WaitKey() {
	for {
		switch c.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return
		case nil:
			return
		case *tcell.EventResize:
			c.screen.Sync()
		}
	}
}

// Close restores the terminal.
func (c *ScreenConsole) Close() {
	c.screen.Fini()
}
