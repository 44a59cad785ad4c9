package streamprinter

import (
	"github.com/charmbracelet/glamour"
)

const defaultMarkdownWidth = 80

// renderMarkdown renders content for a terminal. Undecorated output uses the
// notty style so no escape sequences are produced.
func renderMarkdown(content string, decorated bool, width int) (string, error) {
	var options []glamour.TermRendererOption

	if decorated {
		options = append(options, glamour.WithStandardStyle("dark"))
	} else {
		options = append(options, glamour.WithStandardStyle("notty"))
	}

	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", err
	}

	return renderer.Render(content)
}
