package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ANSI indices of the named colors
var namedColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",

	"gray":           "8",
	"bright-black":   "8",
	"bright-red":     "9",
	"bright-green":   "10",
	"bright-yellow":  "11",
	"bright-blue":    "12",
	"bright-magenta": "13",
	"bright-cyan":    "14",
	"bright-white":   "15",
}

// resolveColor maps a color name, a 256 color index or a hex value to a
// lipgloss color. Empty and "default" mean no color. Unknown names are
// handed to lipgloss as is.
func resolveColor(name string) (lipgloss.TerminalColor, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" || n == "default" {
		return nil, false
	}
	if code, ok := namedColors[n]; ok {
		return lipgloss.Color(code), true
	}
	return lipgloss.Color(strings.TrimSpace(name)), true
}

// ColorNames returns the recognised color names, including "default"
func ColorNames() []string {
	return []string{
		"default", "black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
		"gray", "bright-black", "bright-red", "bright-green", "bright-yellow",
		"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
	}
}

// OptionNames returns the recognised style options
func OptionNames() []string {
	return []string{"bold", "underscore", "blink", "reverse", "conceal", "italic", "faint", "strikethrough"}
}

// applyOption sets one option on style. Unknown options leave it unchanged.
func applyOption(style lipgloss.Style, opt string) lipgloss.Style {
	switch opt {
	case "bold":
		return style.Bold(true)
	case "underscore", "underline":
		return style.Underline(true)
	case "blink":
		return style.Blink(true)
	case "reverse":
		return style.Reverse(true)
	case "italic":
		return style.Italic(true)
	case "faint":
		return style.Faint(true)
	case "strikethrough":
		return style.Strikethrough(true)
	case "conceal":
		// lipgloss has no conceal attribute; SGR 8 hides the text and 28 reveals it again
		return style.Transform(func(s string) string {
			return termenv.CSI + "8m" + s + termenv.CSI + "28m"
		})
	default:
		return style
	}
}
