package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/streamprinter/pkg/formatter"
	"github.com/arthur-debert/streamprinter/pkg/logging"
	"github.com/arthur-debert/streamprinter/pkg/stream"
	"github.com/rs/zerolog"
)

// Printer forwards formatted text to standard output or a file
type Printer struct {
	path       string
	hasPath    bool
	styles     formatter.StyleTable
	decoration stream.Decoration
	verbose    bool

	writer *stream.Writer

	resolver   StreamResolver
	formatters FormatterFactory
	log        zerolog.Logger
}

// Option configures a Printer
type Option func(*Printer)

// WithPath sets the destination path
func WithPath(path string) Option {
	return func(p *Printer) {
		p.path = path
		p.hasPath = true
	}
}

// WithStyles sets the style table
func WithStyles(styles formatter.StyleTable) Option {
	return func(p *Printer) {
		p.styles = styles.Clone()
	}
}

// WithDecorated sets the decoration override
func WithDecorated(decoration stream.Decoration) Option {
	return func(p *Printer) {
		p.decoration = decoration
	}
}

// WithVerbose sets the verbose flag
func WithVerbose(verbose bool) Option {
	return func(p *Printer) {
		p.verbose = verbose
	}
}

// WithStreamResolver replaces the way output streams are opened
func WithStreamResolver(r StreamResolver) Option {
	return func(p *Printer) {
		if r != nil {
			p.resolver = r
		}
	}
}

// WithFormatterFactory replaces the way formatters are built
func WithFormatterFactory(f FormatterFactory) Option {
	return func(p *Printer) {
		if f != nil {
			p.formatters = f
		}
	}
}

// WithStdout sets the stream used when no path is configured
func WithStdout(w io.Writer) Option {
	return func(p *Printer) {
		p.resolver = FileResolver{Stdout: w, Owner: typeName(p)}
	}
}

// WithLogger replaces the component logger
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Printer) {
		p.log = logger
	}
}

// New creates a printer that writes to standard output until a path is set
func New(opts ...Option) *Printer {
	p := &Printer{
		styles:     formatter.StyleTable{},
		formatters: FormatterFactoryFunc(defaultFormatterFactory),
		log:        logging.GetLogger("printer"),
	}
	p.resolver = FileResolver{Owner: typeName(p)}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// SetPath sets the destination path. The path is not checked until the next write.
func (p *Printer) SetPath(path string) {
	p.path = path
	p.hasPath = true
	p.invalidate("path")
}

// ClearPath goes back to writing to standard output
func (p *Printer) ClearPath() {
	p.path = ""
	p.hasPath = false
	p.invalidate("path")
}

// Path returns the destination path and whether one is set
func (p *Printer) Path() (string, bool) {
	return p.path, p.hasPath
}

// SetStyles replaces the style table
func (p *Printer) SetStyles(styles formatter.StyleTable) {
	p.styles = styles.Clone()
	p.invalidate("styles")
}

// Styles returns a copy of the style table
func (p *Printer) Styles() formatter.StyleTable {
	return p.styles.Clone()
}

// SetDecorated sets the decoration override
func (p *Printer) SetDecorated(decoration stream.Decoration) {
	p.decoration = decoration
	p.invalidate("decorated")
}

// Decorated returns the decoration override, DecorationAuto when never set
func (p *Printer) Decorated() stream.Decoration {
	return p.decoration
}

// SetVerbose sets the verbose flag
func (p *Printer) SetVerbose(verbose bool) {
	p.verbose = verbose
	p.invalidate("verbose")
}

// IsVerbose returns the verbose flag
func (p *Printer) IsVerbose() bool {
	return p.verbose
}

// Write writes the messages in order, without line breaks
func (p *Printer) Write(messages ...string) error {
	return p.write(messages, false)
}

// Writeln writes each message followed by a line break. Without messages it
// writes a single line break.
func (p *Printer) Writeln(messages ...string) error {
	if len(messages) == 0 {
		messages = []string{""}
	}
	return p.write(messages, true)
}

// WriteVerbose is Write for messages only shown by a verbose printer
func (p *Printer) WriteVerbose(messages ...string) error {
	return p.write(messages, false, stream.AtVerbosity(stream.VerbosityVerbose))
}

// WritelnVerbose is Writeln for messages only shown by a verbose printer
func (p *Printer) WritelnVerbose(messages ...string) error {
	if len(messages) == 0 {
		messages = []string{""}
	}
	return p.write(messages, true, stream.AtVerbosity(stream.VerbosityVerbose))
}

// Flush discards the cached writer. Configuration is kept; the next write
// builds a new writer.
func (p *Printer) Flush() {
	p.invalidate("flush")
}

// Writer returns the cached writer, building it first when needed
func (p *Printer) Writer() (*stream.Writer, error) {
	if p.writer != nil {
		return p.writer, nil
	}

	out, err := p.resolver.ResolveStream(p.path, p.hasPath)
	if err != nil {
		return nil, err
	}

	f := p.formatters.NewFormatter(p.styles.Clone())

	w := stream.New(out, stream.VerbosityNormal, p.decoration, f)

	if p.verbose {
		w.SetVerbosity(stream.VerbosityVerbose)
	}
	if decorated, set := p.decoration.Bool(); set {
		w.Formatter().SetDecorated(decorated)
	}

	p.log.Debug().
		Str("path", p.describePath()).
		Int("styles", len(p.styles)).
		Str("decoration", p.decoration.String()).
		Bool("decorated", w.IsDecorated()).
		Str("verbosity", w.Verbosity().String()).
		Msg("Output writer built")

	p.writer = w
	return w, nil
}

func (p *Printer) write(messages []string, newline bool, opts ...stream.WriteOption) error {
	w, err := p.Writer()
	if err != nil {
		return err
	}
	return w.Write(messages, newline, opts...)
}

func (p *Printer) invalidate(reason string) {
	if p.writer == nil {
		return
	}
	p.log.Trace().Str("reason", reason).Msg("Output writer discarded")
	p.writer = nil
}

func (p *Printer) describePath() string {
	if !p.hasPath {
		return "<stdout>"
	}
	return p.path
}

// String returns a representation for debugging
func (p *Printer) String() string {
	return fmt.Sprintf("%s{path: %s, styles: %d, decoration: %s, verbose: %t}",
		typeName(p), p.describePath(), len(p.styles), p.decoration, p.verbose)
}

// typeName returns the short type name of v, without package or pointer
func typeName(v interface{}) string {
	name := fmt.Sprintf("%T", v)
	name = strings.TrimLeft(name, "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
