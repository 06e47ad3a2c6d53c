package render

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// EnvTerminalMode overrides console selection: ansi, plain, or screen.
const EnvTerminalMode = "TEXTGRID_TERMINAL_MODE"

// Mode selects which console implementation draws the grid.
type Mode int

const (
	ModePlain  Mode = iota // No clearing, output appended
	ModeANSI               // Escape-sequence clear, then reprint
	ModeScreen             // Full-screen tcell surface
)

// String returns the mode name as accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeANSI:
		return "ansi"
	case ModeScreen:
		return "screen"
	default:
		return "unknown"
	}
}

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain", "none", "dumb":
		return ModePlain, nil
	case "ansi", "vt100":
		return ModeANSI, nil
	case "screen", "tcell", "fullscreen":
		return ModeScreen, nil
	default:
		return ModePlain, fmt.Errorf("unknown terminal mode: %s", s)
	}
}

// TerminalCapabilities represents what the current output can do.
type TerminalCapabilities struct {
	Name string
	Mode Mode
}

// DetectCapabilities picks a console mode for output.
// isTTY reports whether output is attached to a terminal.
func DetectCapabilities(isTTY bool) TerminalCapabilities {
	// Allow override via environment variable
	if forceMode := os.Getenv(EnvTerminalMode); forceMode != "" {
		if mode, err := ParseMode(forceMode); err == nil {
			return TerminalCapabilities{Name: mode.String(), Mode: mode}
		}
	}

	if !isTTY {
		return TerminalCapabilities{Name: "pipe", Mode: ModePlain}
	}

	name := os.Getenv("TERM")
	if name == "" || strings.Contains(name, "dumb") {
		if name == "" {
			name = "unknown"
		}
		return TerminalCapabilities{Name: name, Mode: ModePlain}
	}

	return TerminalCapabilities{Name: name, Mode: ModeANSI}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
