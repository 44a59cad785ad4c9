package formatter

import (
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// tagPattern matches opening tags (<name>, <fg=red;bg=blue>) and closing
// tags (</name>, </>).
var tagPattern = regexp.MustCompile(`<(([a-zA-Z][^<>]*)|/([a-zA-Z][^<>]*)?)>`)

// Formatter renders style markup using a table of named styles
type Formatter struct {
	renderer  *lipgloss.Renderer
	styles    StyleTable
	decorated bool
	// pinned is set when the renderer came from WithRenderer; Bind keeps it
	pinned bool
}

// Option configures a Formatter
type Option func(*Formatter)

// WithRenderer binds the formatter to an existing lipgloss renderer
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(f *Formatter) {
		if r != nil {
			f.renderer = r
			f.pinned = true
		}
	}
}

// WithStyles registers every style of the table on top of the defaults
func WithStyles(table StyleTable) Option {
	return func(f *Formatter) {
		for name, spec := range table {
			f.SetStyle(name, spec)
		}
	}
}

// New creates a formatter with the default styles, bound to stdout until
// Bind is called.
func New(decorated bool, opts ...Option) *Formatter {
	f := &Formatter{
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.renderer == nil {
		f.renderer = lipgloss.NewRenderer(os.Stdout)
	}
	f.SetDecorated(decorated)
	return f
}

// Bind points the formatter at the stream it will be rendered to, so color
// detection follows that stream. A renderer given with WithRenderer is kept.
func (f *Formatter) Bind(out io.Writer) {
	if !f.pinned {
		f.renderer = lipgloss.NewRenderer(out)
	}
	f.SetDecorated(f.decorated)
}

// Renderer returns the lipgloss renderer styles are built with
func (f *Formatter) Renderer() *lipgloss.Renderer {
	return f.renderer
}

// SetDecorated turns styling on or off
func (f *Formatter) SetDecorated(decorated bool) {
	f.decorated = decorated
	if decorated && f.renderer.ColorProfile() == termenv.Ascii {
		f.renderer.SetColorProfile(termenv.ANSI256)
	}
}

// IsDecorated reports whether styles are rendered
func (f *Formatter) IsDecorated() bool {
	return f.decorated
}

// SetStyle registers spec under name. Names are case insensitive.
func (f *Formatter) SetStyle(name string, spec StyleSpec) {
	f.styles[strings.ToLower(name)] = spec.clone()
}

// HasStyle reports whether a style is registered under name
func (f *Formatter) HasStyle(name string) bool {
	_, ok := f.styles[strings.ToLower(name)]
	return ok
}

// StyleSpec returns the descriptor registered under name
func (f *Formatter) StyleSpec(name string) (StyleSpec, bool) {
	spec, ok := f.styles[strings.ToLower(name)]
	return spec.clone(), ok
}

// Style returns the lipgloss style registered under name
func (f *Formatter) Style(name string) (lipgloss.Style, bool) {
	spec, ok := f.styles[strings.ToLower(name)]
	if !ok {
		return lipgloss.Style{}, false
	}
	return spec.build(f.renderer), true
}

// Styles returns a copy of the registered styles, defaults included
func (f *Formatter) Styles() StyleTable {
	return f.styles.Clone()
}

type openTag struct {
	tag   string
	style lipgloss.Style
}

// Format expands the markup in message. Undecorated formatters strip the
// recognised tags instead of rendering them.
func (f *Formatter) Format(message string) string {
	var (
		out    strings.Builder
		stack  []openTag
		offset int
	)

	for _, m := range tagPattern.FindAllStringSubmatchIndex(message, -1) {
		start, end := m[0], m[1]
		if start > 0 && message[start-1] == '\\' {
			continue
		}

		out.WriteString(f.apply(message[offset:start], stack))
		offset = end

		if m[4] >= 0 {
			name := message[m[4]:m[5]]
			style, ok := f.resolve(name)
			if !ok {
				out.WriteString(f.apply(message[start:end], stack))
				continue
			}
			stack = append(stack, openTag{tag: strings.ToLower(name), style: style})
			continue
		}

		var name string
		if m[6] >= 0 {
			name = strings.ToLower(message[m[6]:m[7]])
		}
		if idx := closingIndex(stack, name); idx >= 0 {
			stack = stack[:idx]
			continue
		}
		out.WriteString(f.apply(message[start:end], stack))
	}

	out.WriteString(f.apply(message[offset:], stack))

	return strings.NewReplacer(`\<`, "<", `\>`, ">").Replace(out.String())
}

// Strip removes the recognised tags from message without rendering styles
func (f *Formatter) Strip(message string) string {
	decorated := f.decorated
	f.decorated = false
	defer func() { f.decorated = decorated }()
	return f.Format(message)
}

// resolve looks up a named style first, then tries the inline form
func (f *Formatter) resolve(tag string) (lipgloss.Style, bool) {
	if spec, ok := f.styles[strings.ToLower(tag)]; ok {
		return spec.build(f.renderer), true
	}
	spec, ok := parseInline(tag)
	if !ok {
		return lipgloss.Style{}, false
	}
	return spec.build(f.renderer), true
}

// apply renders text with the innermost open style. Lines are rendered one
// at a time so lipgloss never pads them to a common width.
func (f *Formatter) apply(text string, stack []openTag) string {
	if text == "" || !f.decorated || len(stack) == 0 {
		return text
	}

	style := stack[len(stack)-1].style
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// closingIndex returns the stack position a closing tag pops to, or -1
func closingIndex(stack []openTag, name string) int {
	if len(stack) == 0 {
		return -1
	}
	if name == "" {
		return len(stack) - 1
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].tag == name {
			return i
		}
	}
	return -1
}

// parseInline parses "fg=red;bg=blue;options=bold,underscore"
func parseInline(tag string) (StyleSpec, bool) {
	var spec StyleSpec
	for _, part := range strings.Split(tag, ";") {
		key, value, found := strings.Cut(part, "=")
		if !found {
			return StyleSpec{}, false
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "fg":
			spec.Foreground = value
		case "bg":
			spec.Background = value
		case "options":
			spec.Options = splitOptions(value)
		default:
			return StyleSpec{}, false
		}
	}
	return spec, true
}

// Escape protects every unescaped "<" in text from being read as a tag
func Escape(text string) string {
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if text[i] == '<' && (i == 0 || text[i-1] != '\\') {
			b.WriteByte('\\')
		}
		b.WriteByte(text[i])
	}
	return b.String()
}
