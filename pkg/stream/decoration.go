package stream

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Decoration is a tri-state override for styled output. The zero value
// leaves the decision to DetectDecoration.
type Decoration uint8

const (
	DecorationAuto Decoration = iota
	DecorationOn
	DecorationOff
)

// DecorationFrom turns a boolean into a forced decoration
func DecorationFrom(decorated bool) Decoration {
	if decorated {
		return DecorationOn
	}
	return DecorationOff
}

// Bool returns the forced value and whether one was set
func (d Decoration) Bool() (decorated, set bool) {
	switch d {
	case DecorationOn:
		return true, true
	case DecorationOff:
		return false, true
	default:
		return false, false
	}
}

// String returns "auto", "on" or "off"
func (d Decoration) String() string {
	switch d {
	case DecorationOn:
		return "on"
	case DecorationOff:
		return "off"
	default:
		return "auto"
	}
}

// ParseDecoration parses "auto" and the usual spellings of on and off
func ParseDecoration(s string) (Decoration, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return DecorationAuto, nil
	case "on", "true", "yes", "1", "always":
		return DecorationOn, nil
	case "off", "false", "no", "0", "never":
		return DecorationOff, nil
	default:
		return DecorationAuto, fmt.Errorf("unknown decoration: %s", s)
	}
}

// DetectDecoration reports whether w can display styles: it must be a
// terminal, NO_COLOR must be unset and the terminal must support colors.
func DetectDecoration(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}

	return termenv.NewOutput(w).EnvColorProfile() != termenv.Ascii
}
