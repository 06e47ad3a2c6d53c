package render

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// newSimConsole uses a simulation screen to avoid /dev/tty dependencies.
func newSimConsole(t *testing.T, width, height int) (*ScreenConsole, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("initializing screen failed: %v", err)
	}
	s.SetSize(width, height)
	c := NewScreenConsoleWith(s)
	t.Cleanup(c.Close)
	return c, s
}

func rowText(s tcell.Screen, y, n int) string {
	out := make([]rune, 0, n)
	for x := 0; x < n; x++ {
		r, _, _, _ := s.GetContent(x, y)
		out = append(out, r)
	}
	return string(out)
}

func TestScreenConsole_Print(t *testing.T) {
	c, s := newSimConsole(t, 20, 5)

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if err := c.Print("a b\nc d\n"); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	if got := rowText(s, 0, 3); got != "a b" {
		t.Errorf("row 0 = %q, want %q", got, "a b")
	}
	if got := rowText(s, 1, 3); got != "c d" {
		t.Errorf("row 1 = %q, want %q", got, "c d")
	}
}

func TestScreenConsole_ClearErasesPreviousFrame(t *testing.T) {
	c, s := newSimConsole(t, 20, 5)

	c.Print("hello\n")
	c.Clear()
	c.Print("x\n")

	if got := rowText(s, 0, 5); got != "x    " {
		t.Errorf("row 0 = %q, want %q", got, "x    ")
	}
}

func TestScreenConsole_Clipping(t *testing.T) {
	c, s := newSimConsole(t, 4, 2)

	if err := c.Print("abcdef\n1\n2\n3\n"); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	if got := rowText(s, 0, 4); got != "abcd" {
		t.Errorf("row 0 = %q, want %q", got, "abcd")
	}
	if got := rowText(s, 1, 1); got != "1" {
		t.Errorf("row 1 = %q, want %q", got, "1")
	}
}

func TestScreenConsole_WideRunes(t *testing.T) {
	c, s := newSimConsole(t, 10, 1)

	c.Print("日a\n")

	if r, _, _, _ := s.GetContent(0, 0); r != '日' {
		t.Errorf("cell 0 = %q, want %q", r, '日')
	}
	// The wide rune occupies two columns.
	if r, _, _, _ := s.GetContent(2, 0); r != 'a' {
		t.Errorf("cell 2 = %q, want %q", r, 'a')
	}
}

func TestScreenConsole_WaitKey(t *testing.T) {
	c, s := newSimConsole(t, 10, 2)
	c.Print("x\n")

	done := make(chan struct{})
	go func() {
		c.WaitKey()
		close(done)
	}()

	// A resize alone must not end the wait.
	s.SetSize(12, 3)
	if err := s.PostEvent(tcell.NewEventResize(12, 3)); err != nil {
		t.Fatalf("PostEvent() error = %v", err)
	}
	select {
	case <-done:
		t.Fatal("WaitKey returned on a resize event")
	case <-time.After(50 * time.Millisecond):
	}

	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("WaitKey did not return after a key press")
	}

	if got := rowText(s, 0, 1); got != "x" {
		t.Errorf("row 0 = %q, want %q after resize", got, "x")
	}
}
